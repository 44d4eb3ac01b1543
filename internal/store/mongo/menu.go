package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection("menus"),
	}
}

type menuDocument struct {
	ID           string                `bson:"_id"`
	Name         string                `bson:"name"`
	Price        string                `bson:"price"`
	MenuGroupID  string                `bson:"menu_group_id"`
	Displayed    bool                  `bson:"displayed"`
	MenuProducts []menuProductDocument `bson:"menu_products"`
	CreatedAt    time.Time             `bson:"created_at"`
	UpdatedAt    time.Time             `bson:"updated_at"`
}

type menuProductDocument struct {
	Seq       int64  `bson:"seq"`
	ProductID string `bson:"product_id"`
	Quantity  int64  `bson:"quantity"`
}

func toMenuDocument(menu *domain.Menu) menuDocument {
	items := make([]menuProductDocument, 0, len(menu.MenuProducts))
	for _, item := range menu.MenuProducts {
		items = append(items, menuProductDocument{
			Seq:       item.Seq,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return menuDocument{
		ID:           menu.ID,
		Name:         menu.Name,
		Price:        menu.Price.String(),
		MenuGroupID:  menu.MenuGroupID,
		Displayed:    menu.Displayed,
		MenuProducts: items,
		CreatedAt:    menu.CreatedAt,
		UpdatedAt:    menu.UpdatedAt,
	}
}

func fromMenuDocument(doc menuDocument) (domain.Menu, error) {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		return domain.Menu{}, fmt.Errorf("invalid stored price %q for menu %s: %w", doc.Price, doc.ID, err)
	}

	items := make([]domain.MenuProduct, 0, len(doc.MenuProducts))
	for _, item := range doc.MenuProducts {
		items = append(items, domain.MenuProduct{
			Seq:       item.Seq,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return domain.Menu{
		ID:           doc.ID,
		Name:         doc.Name,
		Price:        price,
		MenuGroupID:  doc.MenuGroupID,
		Displayed:    doc.Displayed,
		MenuProducts: items,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	menu.CreatedAt = time.Now()
	menu.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, toMenuDocument(menu))
	if err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}

	return nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc menuDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	menu, err := fromMenuDocument(doc)
	if err != nil {
		return nil, err
	}

	return &menu, nil
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.findAll(ctx, bson.M{})
}

func (r *MenuRepository) FindAllByProductID(ctx context.Context, productID string) ([]domain.Menu, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.findAll(ctx, bson.M{"menu_products.product_id": productID})
}

func (r *MenuRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Menu, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []menuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode menus: %w", err)
	}

	menus := make([]domain.Menu, 0, len(docs))
	for _, doc := range docs {
		menu, err := fromMenuDocument(doc)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	return menus, nil
}

func (r *MenuRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"price":      price.String(),
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update menu price: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrMenuNotFound
	}

	return nil
}

func (r *MenuRepository) SetDisplayed(ctx context.Context, id string, displayed bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"displayed":  displayed,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update menu display state: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrMenuNotFound
	}

	return nil
}
