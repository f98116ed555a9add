// Package mapper converts between the wire representation of orders and the
// domain model. All functions are pure and total.
package mapper

import "github.com/ekviron/orders-api/internal/orders/domain"

// Order is the transport-layer order shape.
type Order struct {
	ID       int64     `json:"id"`
	Seller   string    `json:"seller" validate:"required,notblank,len=9"`
	Customer string    `json:"customer" validate:"required,notblank,len=9"`
	Products []Product `json:"products" validate:"required,min=1,dive"`
}

// Product is the transport-layer product shape.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,notblank"`
	Code string `json:"code" validate:"required,notblank,len=13"`
}

// ToDomainOrder converts a transport order into the domain model. The
// identifier fields are ignored; the store assigns them.
func ToDomainOrder(order Order) *domain.Order {
	products := make([]domain.Product, len(order.Products))
	for i, p := range order.Products {
		products[i] = domain.Product{Name: p.Name, Code: p.Code}
	}
	return &domain.Order{
		Seller:   order.Seller,
		Customer: order.Customer,
		Products: products,
	}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *domain.Order) Order {
	if order == nil {
		return Order{}
	}
	products := make([]Product, len(order.Products))
	for i, p := range order.Products {
		products[i] = Product{ID: p.ID, Name: p.Name, Code: p.Code}
	}
	return Order{
		ID:       order.ID,
		Seller:   order.Seller,
		Customer: order.Customer,
		Products: products,
	}
}

// FromDomainOrders maps a list element-wise, preserving order and length.
func FromDomainOrders(orders []*domain.Order) []Order {
	result := make([]Order, len(orders))
	for i, order := range orders {
		result[i] = FromDomainOrder(order)
	}
	return result
}
