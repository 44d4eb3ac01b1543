package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/parser"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
	"github.com/eleeje97/kitchen-catalog/internal/repo"
)

// ProductSheetParser pulls raw product rows out of a spreadsheet.
type ProductSheetParser interface {
	ParseProducts(ctx context.Context, spreadsheetID string) ([]parser.ProductRow, error)
}

type ImportService struct {
	tasks    repo.ImportTaskRepository
	products *ProductService
	parser   ProductSheetParser
	broker   queue.Broker
	logger   *zap.SugaredLogger
}

func NewImportService(
	tasks repo.ImportTaskRepository,
	products *ProductService,
	sheetParser ProductSheetParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		tasks:    tasks,
		products: products,
		parser:   sheetParser,
		broker:   broker,
		logger:   logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:        domain.StatusQueued,
		SpreadsheetID: spreadsheetID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	msg := domain.ProductImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal import message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueProductImport, msgBytes); err != nil {
		_ = s.tasks.UpdateStatus(ctx, task.ID, domain.StatusFailed, "failed to queue task")
		return primitive.NilObjectID, fmt.Errorf("failed to publish import message: %w", err)
	}

	s.logger.Infow("import task queued", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask runs one queued import. Every row goes through
// ProductService.Create so imported products get the same name and price
// validation as ones created through the API; rows that fail validation are
// counted and skipped rather than aborting the whole import.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID.Hex())

	rows, err := s.parser.ParseProducts(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse spreadsheet", "task_id", taskID.Hex(), "error", err)
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to parse spreadsheet: %w", err)
	}

	imported, failed := 0, 0
	for _, row := range rows {
		price, err := decimal.NewFromString(row.Price)
		if err != nil {
			s.logger.Warnw("skipping row with bad price", "task_id", taskID.Hex(), "name", row.Name, "price", row.Price)
			failed++
			continue
		}

		if _, err := s.products.Create(ctx, row.Name, &price); err != nil {
			s.logger.Warnw("skipping invalid product row", "task_id", taskID.Hex(), "name", row.Name, "error", err)
			failed++
			continue
		}
		imported++
	}

	if err := s.tasks.UpdateResult(ctx, taskID, imported, failed, domain.StatusCompleted); err != nil {
		return fmt.Errorf("failed to update task result: %w", err)
	}

	s.logger.Infow("import task completed", "task_id", taskID.Hex(), "imported", imported, "failed", failed)

	return nil
}
