package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductPriceAudit is the persisted audit record of one product price change.
// Prices are stored as strings to keep mongo documents exact.
type ProductPriceAudit struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID     string             `bson:"product_id" json:"product_id"`
	OldPrice      string             `bson:"old_price" json:"old_price"`
	NewPrice      string             `bson:"new_price" json:"new_price"`
	HiddenMenuIDs []string           `bson:"hidden_menu_ids,omitempty" json:"hidden_menu_ids,omitempty"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}
