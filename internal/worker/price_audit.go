package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
	"github.com/eleeje97/kitchen-catalog/internal/service"
)

type PriceAuditWorker struct {
	productService *service.ProductService
	broker         queue.Broker
	logger         *zap.SugaredLogger
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewPriceAuditWorker(
	productService *service.ProductService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *PriceAuditWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &PriceAuditWorker{
		productService: productService,
		broker:         broker,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (w *PriceAuditWorker) Start() error {
	w.logger.Info("starting price audit worker")

	return w.broker.Subscribe(w.ctx, queue.QueuePriceAudit, w.handleMessage)
}

func (w *PriceAuditWorker) Stop() {
	w.logger.Info("stopping price audit worker")
	w.cancel()
}

func (w *PriceAuditWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.ProductPriceChangedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing price change event", "product_id", event.ProductID)

	if err := w.productService.ProcessPriceChangeEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process price change event", "product_id", event.ProductID, "error", err)
		return err
	}

	return nil
}
