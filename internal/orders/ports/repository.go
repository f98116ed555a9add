package ports

import (
	"context"
	"errors"

	"github.com/ekviron/orders-api/internal/orders/domain"
)

var (
	// ErrNotFound reports that no order row exists for the requested id.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateKey reports that the store rejected a write because the
	// (seller, customer) pair already exists.
	ErrDuplicateKey = errors.New("duplicate seller and customer pair")
)

// Repository persists orders together with their products.
type Repository interface {
	// Save inserts a new order and its products, returning the entity with
	// store-assigned identifiers populated.
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	// Delete removes the order and, by cascade, its products.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Order, error)
}
