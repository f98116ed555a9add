// Package domain holds the order aggregate as stored and served by the API.
package domain

// Product is a line item owned by exactly one order. Products never exist
// outside their order: they are created with it and removed with it.
type Product struct {
	ID   int64
	Name string
	Code string
}

// Order groups the products a seller ships to a customer. The pair
// (seller, customer) is unique across all orders; the store enforces it.
type Order struct {
	ID       int64
	Seller   string
	Customer string
	Products []Product
}

// Clone returns a deep copy so adapters can hand out orders without
// sharing the products slice.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Products = make([]Product, len(o.Products))
	copy(clone.Products, o.Products)
	return &clone
}
