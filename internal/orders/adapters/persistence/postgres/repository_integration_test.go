//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ekviron/orders-api/internal/orders/domain"
	"github.com/ekviron/orders-api/internal/orders/ports"
	"github.com/ekviron/orders-api/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orders_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newOrder(seller, customer string) *domain.Order {
	return &domain.Order{
		Seller:   seller,
		Customer: customer,
		Products: []domain.Product{
			{Name: "Product 1", Code: "1234567890123"},
			{Name: "Product 2", Code: "3210987654321"},
		},
	}
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newOrder("123456789", "987654321"))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	require.Len(t, saved.Products, 2)
	assert.NotZero(t, saved.Products[0].ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, fetched.ID)
	assert.Equal(t, "123456789", fetched.Seller)
	assert.Equal(t, "987654321", fetched.Customer)
	assert.Len(t, fetched.Products, 2)
}

func TestRepository_DuplicateSellerCustomerPair(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newOrder("123456789", "987654321"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newOrder("123456789", "987654321"))
	assert.ErrorIs(t, err, ports.ErrDuplicateKey)

	// Same participants in swapped roles are a different pair.
	_, err = repo.Save(ctx, newOrder("987654321", "123456789"))
	assert.NoError(t, err)
}

func TestRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	sellers := []string{"111111111", "222222222", "333333333"}
	for _, seller := range sellers {
		_, err := repo.Save(ctx, newOrder(seller, "987654321"))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	for _, order := range list {
		assert.Len(t, order.Products, 2)
	}
}

func TestRepository_DeleteCascadesToProducts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newOrder("123456789", "987654321"))
	require.NoError(t, err)

	err = repo.Delete(ctx, saved.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = repo.Delete(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	var count int64
	require.NoError(t, db.WithContext(ctx).Model(&productRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}
