package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/parser"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
	"github.com/eleeje97/kitchen-catalog/internal/service"
	"github.com/eleeje97/kitchen-catalog/internal/validation"
)

type importFixture struct {
	tasks    *importTaskRepoFake
	products *productRepoFake
	checker  *checkerFake
	broker   *brokerFake
	parser   *sheetParserFake
	svc      *service.ImportService
}

func newImportFixture() *importFixture {
	f := &importFixture{
		tasks:    newImportTaskRepoFake(),
		products: newProductRepoFake(),
		checker:  &checkerFake{},
		broker:   newBrokerFake(),
		parser:   &sheetParserFake{},
	}

	productService := service.NewProductService(
		f.products,
		newMenuRepoFake(),
		newPriceAuditRepoFake(),
		validation.NewNameValidator(f.checker),
		f.broker,
		txFake{},
		zap.NewNop().Sugar(),
	)

	f.svc = service.NewImportService(
		f.tasks,
		productService,
		f.parser,
		f.broker,
		zap.NewNop().Sugar(),
	)
	return f
}

func TestCreateImportTask(t *testing.T) {
	f := newImportFixture()

	taskID, err := f.svc.CreateImportTask(context.Background(), "sheet-123")

	require.NoError(t, err)
	assert.False(t, taskID.IsZero())

	task, err := f.svc.GetTaskStatus(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, task.Status)

	messages := f.broker.published[queue.QueueProductImport]
	require.Len(t, messages, 1)

	var msg domain.ProductImportMessage
	require.NoError(t, json.Unmarshal(messages[0], &msg))
	assert.Equal(t, taskID.Hex(), msg.TaskID)
	assert.Equal(t, "sheet-123", msg.SpreadsheetID)
}

func TestCreateImportTask_PublishFailure(t *testing.T) {
	f := newImportFixture()
	f.broker.publishErr = assert.AnError

	_, err := f.svc.CreateImportTask(context.Background(), "sheet-123")

	assert.Error(t, err)
}

func TestProcessImportTask(t *testing.T) {
	f := newImportFixture()
	f.parser.rows = []parser.ProductRow{
		{Name: "fried chicken", Price: "16000"},
		{Name: "cola", Price: "not-a-price"},
		{Name: "spicy wings", Price: "-5"},
		{Name: "rice", Price: "1500"},
	}

	taskID, err := f.svc.CreateImportTask(context.Background(), "sheet-123")
	require.NoError(t, err)

	require.NoError(t, f.svc.ProcessImportTask(context.Background(), taskID))

	task, err := f.svc.GetTaskStatus(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	assert.Equal(t, 2, task.Imported)
	assert.Equal(t, 2, task.Failed)

	products, err := f.products.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProcessImportTask_ParserFailure(t *testing.T) {
	f := newImportFixture()
	f.parser.err = assert.AnError

	taskID, err := f.svc.CreateImportTask(context.Background(), "sheet-123")
	require.NoError(t, err)

	err = f.svc.ProcessImportTask(context.Background(), taskID)
	assert.Error(t, err)

	task, getErr := f.svc.GetTaskStatus(context.Background(), taskID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusFailed, task.Status)
}
