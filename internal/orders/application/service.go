// Package application orchestrates order persistence and translates
// low-level store failures into typed domain errors.
package application

import (
	"context"
	"errors"
	"strconv"

	"github.com/ekviron/orders-api/internal/orders/domain"
	"github.com/ekviron/orders-api/internal/orders/ports"
)

const entityOrder = "Order"

// Service implements the order use cases on top of a repository. It trusts
// entities arriving from the boundary layer and performs no field-level
// re-validation.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// ListOrders returns all orders in store-defined order.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// GetOrderByID fetches a single order.
func (s *Service) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder persists a new order together with its products. Identifiers
// are store-assigned; any client-supplied ids are cleared before the save.
func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	clone.ID = 0
	for i := range clone.Products {
		clone.Products[i].ID = 0
	}
	saved, err := s.repo.Save(ctx, clone)
	if err != nil {
		if errors.Is(err, ports.ErrDuplicateKey) {
			return nil, &AlreadyExistsError{Entity: entityOrder}
		}
		return nil, err
	}
	return saved, nil
}

// DeleteOrder removes the order and, by cascade, all its products. Deleting
// an absent id is an observable error, not a no-op.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return notFound(id)
		}
		return err
	}
	return nil
}

func notFound(id int64) error {
	return &NotFoundError{Entity: entityOrder, Field: "id", Value: strconv.FormatInt(id, 10)}
}

var _ ports.Service = (*Service)(nil)
