package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
	UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error
}
