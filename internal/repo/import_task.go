package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
)

type ImportTaskRepository interface {
	Create(ctx context.Context, task *domain.ImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	UpdateResult(ctx context.Context, id primitive.ObjectID, imported, failed int, status domain.ImportTaskStatus) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
