package repo

import (
	"context"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type PriceAuditRepository interface {
	Create(ctx context.Context, audit *domain.ProductPriceAudit) error
	GetByProductID(ctx context.Context, productID string, limit int) ([]domain.ProductPriceAudit, error)
}
