// Package store holds the persistence-layer model types used by the
// examples and the end-to-end tests.
package store

import (
	"time"
)

// UserID is a composite record identifier. Key is the part exposed to
// API clients; Table stays internal.
type UserID struct {
	Table string `json:"table"`
	Key   string `json:"key"`
}

// Age is a named wrapper so an age can never be confused with an
// arbitrary small integer in model code.
type Age uint8

// User is the stored user record. Views project it into API responses
// without ever copying it into an intermediate struct.
type User struct {
	ID        UserID    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Age       Age       `json:"age"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Order represents a transaction made by a user.
type Order struct {
	ID         UserID      `json:"id"`
	UserKey    string      `json:"user_key"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderItem is a product line within an order. It snapshots the price
// at the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
