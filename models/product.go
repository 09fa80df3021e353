package models

import (
	"fmt"
	"time"
)

// Product is a catalogue item listed in the shop and managed from the
// admin pages.
type Product struct {
	ProductID   int64     `json:"product_id"`
	Title       string    `json:"title"`
	Price       int64     `json:"price"` // in cents
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// DisplayPrice formats Price as a decimal amount, e.g. 1999 -> "19.99".
func (p Product) DisplayPrice() string {
	return fmt.Sprintf("%d.%02d", p.Price/100, p.Price%100)
}
