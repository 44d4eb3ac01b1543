package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueProductImport    = "product-import"
	QueuePriceAudit       = "price-audit"
	QueueProductImportDLQ = "product-import-dlq"
	QueuePriceAuditDLQ    = "price-audit-dlq"
)
