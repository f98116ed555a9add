package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/ekviron/orders-api/internal/orders/domain"
	"github.com/ekviron/orders-api/internal/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderRecord maps the order aggregate to the order_t table. The composite
// unique index backs the one-order-per-seller-and-customer rule; the FK
// constraint cascades product deletion to the store.
type orderRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Seller    string          `gorm:"column:seller;type:varchar(9);uniqueIndex:idx_order_seller_customer"`
	Customer  string          `gorm:"column:customer;type:varchar(9);uniqueIndex:idx_order_seller_customer"`
	Products  []productRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "order_t" }

type productRecord struct {
	ID      int64  `gorm:"primaryKey;column:id"`
	Name    string `gorm:"column:name"`
	Code    string `gorm:"column:code;type:varchar(13)"`
	OrderID int64  `gorm:"column:order_id;index"`
}

func (productRecord) TableName() string { return "product_t" }

// Save inserts an order with its products in one cascaded create. Unlike an
// upsert, a uniqueness rejection must surface so it can become a conflict.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ports.ErrDuplicateKey
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order and its products by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).Preload("Products").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes an order; the product rows go with it via the FK cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all orders with their products.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Preload("Products").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

// isDuplicateKey matches both GORM's translated error and the raw SQLSTATE,
// since translation depends on the dialector configuration.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toRecord(order *domain.Order) orderRecord {
	products := make([]productRecord, len(order.Products))
	for i, p := range order.Products {
		products[i] = productRecord{Name: p.Name, Code: p.Code}
	}
	return orderRecord{
		Seller:   order.Seller,
		Customer: order.Customer,
		Products: products,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	products := make([]domain.Product, len(r.Products))
	for i, p := range r.Products {
		products[i] = domain.Product{ID: p.ID, Name: p.Name, Code: p.Code}
	}
	return &domain.Order{
		ID:       r.ID,
		Seller:   r.Seller,
		Customer: r.Customer,
		Products: products,
	}
}
