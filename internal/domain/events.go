package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

// ProductPriceChangedEvent is published after a product price change commits.
// HiddenMenuIDs lists the menus the cascade hid as part of that change.
type ProductPriceChangedEvent struct {
	EventType     string          `json:"event_type"`
	ProductID     string          `json:"product_id"`
	OldPrice      decimal.Decimal `json:"old_price"`
	NewPrice      decimal.Decimal `json:"new_price"`
	HiddenMenuIDs []string        `json:"hidden_menu_ids,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

const EventProductPriceChanged = "product.price_changed"
