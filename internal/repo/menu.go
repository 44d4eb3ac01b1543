package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	GetByID(ctx context.Context, id string) (*domain.Menu, error)
	GetAll(ctx context.Context) ([]domain.Menu, error)
	// FindAllByProductID returns every menu with a line item referencing the
	// product, in unspecified order.
	FindAllByProductID(ctx context.Context, productID string) ([]domain.Menu, error)
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
	SetDisplayed(ctx context.Context, id string, displayed bool) error
}
