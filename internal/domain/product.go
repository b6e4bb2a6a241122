package domain

import "time"

type ProductId = int64

// Product is a single tracked item on a user's list.
// ExpiresAt is nil for products without an expiry date.
type Product struct {
	Id        ProductId
	Name      string
	UserId    UserId
	ExpiresAt *time.Time
	Price     float64
}
