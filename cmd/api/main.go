package main

import (
	"context"
	"log"

	"github.com/ekviron/orders-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("orders api: %v", err)
	}
}
