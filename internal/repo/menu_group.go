package repo

import (
	"context"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type MenuGroupRepository interface {
	Create(ctx context.Context, group *domain.MenuGroup) error
	GetByID(ctx context.Context, id string) (*domain.MenuGroup, error)
	GetAll(ctx context.Context) ([]domain.MenuGroup, error)
}
