package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConsistencyResult is the outcome of checking a menu's declared price against
// the sum of its line item subtotals.
type ConsistencyResult struct {
	// PriceBound is the sum of product price × quantity over all line items,
	// the maximum price the menu may legally declare.
	PriceBound decimal.Decimal
	// IsConsistent is true when the declared price is <= PriceBound.
	IsConsistent bool
}

// EvaluateMenuPrice checks menuPrice against the line items using the product
// prices in products, keyed by product id. Callers must load products within
// the same transaction as the menu so the evaluation sees one consistent
// snapshot of current prices. A menu with no line items has a bound of zero.
func EvaluateMenuPrice(menuPrice decimal.Decimal, items []MenuProduct, products map[string]Product) (ConsistencyResult, error) {
	bound := decimal.Zero
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return ConsistencyResult{}, fmt.Errorf("line item seq %d: %w", item.Seq, ErrProductNotFound)
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(item.Quantity))
		bound = bound.Add(subtotal)
	}

	return ConsistencyResult{
		PriceBound:   bound,
		IsConsistent: menuPrice.LessThanOrEqual(bound),
	}, nil
}
