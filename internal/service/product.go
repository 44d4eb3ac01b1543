package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
	"github.com/eleeje97/kitchen-catalog/internal/repo"
	"github.com/eleeje97/kitchen-catalog/internal/validation"
)

type ProductService struct {
	products repo.ProductRepository
	menus    repo.MenuRepository
	audits   repo.PriceAuditRepository
	names    *validation.NameValidator
	broker   queue.Broker
	tx       repo.Transactor
	logger   *zap.SugaredLogger
}

func NewProductService(
	products repo.ProductRepository,
	menus repo.MenuRepository,
	audits repo.PriceAuditRepository,
	names *validation.NameValidator,
	broker queue.Broker,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *ProductService {
	return &ProductService{
		products: products,
		menus:    menus,
		audits:   audits,
		names:    names,
		broker:   broker,
		tx:       tx,
		logger:   logger,
	}
}

func (s *ProductService) Create(ctx context.Context, name string, price *decimal.Decimal) (*domain.Product, error) {
	if err := s.names.Validate(ctx, name); err != nil {
		return nil, err
	}
	if err := validation.ValidatePrice(price); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:    uuid.New().String(),
		Name:  name,
		Price: *price,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Infow("product created", "product_id", product.ID, "price", product.Price)

	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) FindAll(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ChangePrice writes the new product price and re-checks every menu that
// references the product, all within one transaction. A menu whose declared
// price now exceeds its line item sum is hidden; the price change itself still
// succeeds. Hidden menus are never re-displayed here.
func (s *ProductService) ChangePrice(ctx context.Context, id string, price *decimal.Decimal) (*domain.Product, error) {
	if err := validation.ValidatePrice(price); err != nil {
		return nil, err
	}

	var product *domain.Product
	var oldPrice decimal.Decimal
	var hidden []string

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		product, err = s.products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		oldPrice = product.Price

		if err := s.products.UpdatePrice(ctx, id, *price); err != nil {
			return fmt.Errorf("failed to update product price: %w", err)
		}
		product.Price = *price

		menus, err := s.menus.FindAllByProductID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to find menus referencing product: %w", err)
		}

		for _, menu := range menus {
			prices, err := loadLineItemProducts(ctx, s.products, menu.MenuProducts)
			if err != nil {
				return err
			}

			result, err := domain.EvaluateMenuPrice(menu.Price, menu.MenuProducts, prices)
			if err != nil {
				return err
			}

			if result.IsConsistent || !menu.Displayed {
				continue
			}

			if err := s.menus.SetDisplayed(ctx, menu.ID, false); err != nil {
				return fmt.Errorf("failed to hide menu %s: %w", menu.ID, err)
			}
			hidden = append(hidden, menu.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(hidden) > 0 {
		s.logger.Infow("menus hidden after product price change", "product_id", id, "menu_ids", hidden)
	}

	s.publishPriceChanged(ctx, product.ID, oldPrice, product.Price, hidden)

	return product, nil
}

// publishPriceChanged feeds the audit trail. Publishing is best effort: the
// price change has already committed, so a broker failure is only logged.
func (s *ProductService) publishPriceChanged(ctx context.Context, productID string, oldPrice, newPrice decimal.Decimal, hidden []string) {
	event := domain.ProductPriceChangedEvent{
		EventType:     domain.EventProductPriceChanged,
		ProductID:     productID,
		OldPrice:      oldPrice,
		NewPrice:      newPrice,
		HiddenMenuIDs: hidden,
		Timestamp:     time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal price change event", "product_id", productID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueuePriceAudit, eventBytes); err != nil {
		s.logger.Errorw("failed to publish price change event", "product_id", productID, "error", err)
	}
}

// ProcessPriceChangeEvent persists the audit record for one price change.
// Invoked by the price audit worker.
func (s *ProductService) ProcessPriceChangeEvent(ctx context.Context, event domain.ProductPriceChangedEvent) error {
	audit := &domain.ProductPriceAudit{
		ProductID:     event.ProductID,
		OldPrice:      event.OldPrice.String(),
		NewPrice:      event.NewPrice.String(),
		HiddenMenuIDs: event.HiddenMenuIDs,
		Timestamp:     event.Timestamp,
	}

	if err := s.audits.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to create price audit: %w", err)
	}

	s.logger.Infow("price audit created", "product_id", event.ProductID, "old_price", event.OldPrice, "new_price", event.NewPrice)

	return nil
}

func (s *ProductService) GetPriceAudit(ctx context.Context, productID string, limit int) ([]domain.ProductPriceAudit, error) {
	audits, err := s.audits.GetByProductID(ctx, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get price audit: %w", err)
	}

	return audits, nil
}

// loadLineItemProducts resolves every referenced product through the product
// store so evaluations always see current prices, never cached ones.
func loadLineItemProducts(ctx context.Context, products repo.ProductRepository, items []domain.MenuProduct) (map[string]domain.Product, error) {
	resolved := make(map[string]domain.Product, len(items))
	for _, item := range items {
		if _, ok := resolved[item.ProductID]; ok {
			continue
		}

		product, err := products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		resolved[item.ProductID] = *product
	}

	return resolved, nil
}
