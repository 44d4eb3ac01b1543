package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single sellable catalog item. The name is fixed at creation;
// only the price changes afterwards, through ProductService.ChangePrice.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
