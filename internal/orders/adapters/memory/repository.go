// Package memory provides an in-process order repository used when no
// database is configured. It mirrors the store semantics the API relies on:
// assigned identifiers, the (seller, customer) uniqueness rule, and
// not-found reporting on reads and deletes.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/ekviron/orders-api/internal/orders/domain"
	"github.com/ekviron/orders-api/internal/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu            sync.RWMutex
	orders        map[int64]*domain.Order
	nextOrderID   int64
	nextProductID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.Seller == clone.Seller && existing.Customer == clone.Customer {
			return nil, ports.ErrDuplicateKey
		}
	}
	r.nextOrderID++
	clone.ID = r.nextOrderID
	for i := range clone.Products {
		r.nextProductID++
		clone.Products[i].ID = r.nextProductID
	}
	r.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	return list, nil
}
