// Package migrations applies the relational schema for the orders context.
package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&productRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Seller    string          `gorm:"column:seller;type:varchar(9);uniqueIndex:idx_order_seller_customer"`
	Customer  string          `gorm:"column:customer;type:varchar(9);uniqueIndex:idx_order_seller_customer"`
	Products  []productRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "order_t" }

// Product schema mirrors the orders Postgres adapter.
type productRecord struct {
	ID      int64  `gorm:"primaryKey;column:id"`
	Name    string `gorm:"column:name"`
	Code    string `gorm:"column:code;type:varchar(13)"`
	OrderID int64  `gorm:"column:order_id;index"`
}

func (productRecord) TableName() string { return "product_t" }
