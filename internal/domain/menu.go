package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Menu is a composite sellable item built from product line items. Its declared
// price must not exceed the sum of its line item subtotals; Displayed is the
// durable artifact of that check.
type Menu struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	MenuGroupID  string          `json:"menu_group_id"`
	Displayed    bool            `json:"displayed"`
	MenuProducts []MenuProduct   `json:"menu_products"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MenuProduct is one line item of a menu. It references the product by id only;
// the current product price is looked up at evaluation time.
type MenuProduct struct {
	Seq       int64  `json:"seq"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
