package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type MenuGroupRepository struct {
	collection *mongo.Collection
}

func NewMenuGroupRepository(db *mongo.Database) *MenuGroupRepository {
	return &MenuGroupRepository{
		collection: db.Collection("menu_groups"),
	}
}

type menuGroupDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *MenuGroupRepository) Create(ctx context.Context, group *domain.MenuGroup) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	group.CreatedAt = time.Now()

	doc := menuGroupDocument{
		ID:        group.ID,
		Name:      group.Name,
		CreatedAt: group.CreatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create menu group: %w", err)
	}

	return nil
}

func (r *MenuGroupRepository) GetByID(ctx context.Context, id string) (*domain.MenuGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc menuGroupDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get menu group: %w", err)
	}

	return &domain.MenuGroup{
		ID:        doc.ID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (r *MenuGroupRepository) GetAll(ctx context.Context) ([]domain.MenuGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu groups: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []menuGroupDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode menu groups: %w", err)
	}

	groups := make([]domain.MenuGroup, 0, len(docs))
	for _, doc := range docs {
		groups = append(groups, domain.MenuGroup{
			ID:        doc.ID,
			Name:      doc.Name,
			CreatedAt: doc.CreatedAt,
		})
	}

	return groups, nil
}
