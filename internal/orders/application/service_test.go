package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ekviron/orders-api/internal/orders/domain"
	"github.com/ekviron/orders-api/internal/orders/ports"
)

type fakeOrderRepo struct {
	orders  map[int64]*domain.Order
	nextID  int64
	saveErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	clone := order.Clone()
	f.nextID++
	clone.ID = f.nextID
	for i := range clone.Products {
		clone.Products[i].ID = f.nextID*100 + int64(i) + 1
	}
	f.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o.Clone(), nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	list := make([]*domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		list = append(list, o.Clone())
	}
	return list, nil
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		Seller:   "123456789",
		Customer: "987654321",
		Products: []domain.Product{
			{Name: "Product 1", Code: "1234567890123"},
			{Name: "Product 2", Code: "3210987654321"},
		},
	}
}

func TestCreateOrder_AssignsIdentifiers(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	saved, err := svc.CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Len(t, saved.Products, 2)
	for _, p := range saved.Products {
		require.NotZero(t, p.ID)
	}
}

func TestCreateOrder_IgnoresClientSuppliedIDs(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	order := sampleOrder()
	order.ID = 555
	order.Products[0].ID = 777

	saved, err := svc.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	require.NotEqual(t, int64(555), saved.ID)
	require.NotEqual(t, int64(777), saved.Products[0].ID)

	// The caller's order must not be mutated by the save.
	require.Equal(t, int64(555), order.ID)
	require.Equal(t, int64(777), order.Products[0].ID)
}

func TestCreateOrder_DuplicatePair(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.saveErr = ports.ErrDuplicateKey
	svc := NewService(repo)

	_, err := svc.CreateOrder(context.Background(), sampleOrder())

	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	require.Equal(t, "Order already exist with same fields", err.Error())
}

func TestCreateOrder_RepositoryFailurePassesThrough(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.saveErr = errors.New("connection reset")
	svc := NewService(repo)

	_, err := svc.CreateOrder(context.Background(), sampleOrder())
	require.EqualError(t, err, "connection reset")
}

func TestGetOrderByID_NotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	_, err := svc.GetOrderByID(context.Background(), 123)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "Order not found with id : '123'", err.Error())
}

func TestGetOrderByID_ReturnsSavedOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	saved, err := svc.CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)

	got, err := svc.GetOrderByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestDeleteOrder_RemovesOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	saved, err := svc.CreateOrder(context.Background(), sampleOrder())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), saved.ID))

	_, err = svc.GetOrderByID(context.Background(), saved.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteOrder_AbsentID(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	err := svc.DeleteOrder(context.Background(), 42)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "Order not found with id : '42'", err.Error())
}

func TestListOrders_Empty(t *testing.T) {
	svc := NewService(newFakeOrderRepo())

	orders, err := svc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Empty(t, orders)
}
