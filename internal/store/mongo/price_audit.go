package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type PriceAuditRepository struct {
	collection *mongo.Collection
}

func NewPriceAuditRepository(db *mongo.Database) *PriceAuditRepository {
	return &PriceAuditRepository{
		collection: db.Collection("price_audit"),
	}
}

func (r *PriceAuditRepository) Create(ctx context.Context, audit *domain.ProductPriceAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create price audit: %w", err)
	}

	return nil
}

func (r *PriceAuditRepository) GetByProductID(ctx context.Context, productID string, limit int) ([]domain.ProductPriceAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list price audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.ProductPriceAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode price audits: %w", err)
	}

	return audits, nil
}
