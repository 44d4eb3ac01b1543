package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/repo"
	"github.com/eleeje97/kitchen-catalog/internal/validation"
)

type MenuService struct {
	menus    repo.MenuRepository
	products repo.ProductRepository
	groups   repo.MenuGroupRepository
	names    *validation.NameValidator
	tx       repo.Transactor
	logger   *zap.SugaredLogger
}

func NewMenuService(
	menus repo.MenuRepository,
	products repo.ProductRepository,
	groups repo.MenuGroupRepository,
	names *validation.NameValidator,
	tx repo.Transactor,
	logger *zap.SugaredLogger,
) *MenuService {
	return &MenuService{
		menus:    menus,
		products: products,
		groups:   groups,
		names:    names,
		tx:       tx,
		logger:   logger,
	}
}

type CreateMenuInput struct {
	Name        string
	Price       *decimal.Decimal
	MenuGroupID string
	LineItems   []LineItemInput
}

type LineItemInput struct {
	ProductID string
	Quantity  int64
}

// Create builds a new menu. The declared price must be consistent with the
// line item sum up front; an inconsistent price rejects the whole call rather
// than creating a hidden menu. New menus always start displayed.
func (s *MenuService) Create(ctx context.Context, input CreateMenuInput) (*domain.Menu, error) {
	if err := s.names.Validate(ctx, input.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	items := make([]domain.MenuProduct, 0, len(input.LineItems))
	seen := make(map[string]struct{}, len(input.LineItems))
	for i, item := range input.LineItems {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: line item %d", domain.ErrInvalidQuantity, i+1)
		}
		if _, ok := seen[item.ProductID]; ok {
			return nil, fmt.Errorf("%w: product %s", domain.ErrDuplicateLineItem, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}

		items = append(items, domain.MenuProduct{
			Seq:       int64(i + 1),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	var menu *domain.Menu
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.groups.GetByID(ctx, input.MenuGroupID); err != nil {
			return err
		}

		prices, err := loadLineItemProducts(ctx, s.products, items)
		if err != nil {
			return err
		}

		result, err := domain.EvaluateMenuPrice(*input.Price, items, prices)
		if err != nil {
			return err
		}
		if !result.IsConsistent {
			return fmt.Errorf("%w: price %s exceeds bound %s", domain.ErrInconsistentPrice, input.Price, result.PriceBound)
		}

		menu = &domain.Menu{
			ID:           uuid.New().String(),
			Name:         input.Name,
			Price:        *input.Price,
			MenuGroupID:  input.MenuGroupID,
			Displayed:    true,
			MenuProducts: items,
		}

		if err := s.menus.Create(ctx, menu); err != nil {
			return fmt.Errorf("failed to save menu: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("menu created", "menu_id", menu.ID, "price", menu.Price)

	return menu, nil
}

func (s *MenuService) GetByID(ctx context.Context, id string) (*domain.Menu, error) {
	return s.menus.GetByID(ctx, id)
}

func (s *MenuService) FindAll(ctx context.Context) ([]domain.Menu, error) {
	menus, err := s.menus.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	return menus, nil
}

// ChangePrice rejects the new price outright when it exceeds the current line
// item sum; the menu is never silently hidden by its own price change.
func (s *MenuService) ChangePrice(ctx context.Context, id string, price *decimal.Decimal) (*domain.Menu, error) {
	if err := validation.ValidatePrice(price); err != nil {
		return nil, err
	}

	var menu *domain.Menu
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		menu, err = s.menus.GetByID(ctx, id)
		if err != nil {
			return err
		}

		prices, err := loadLineItemProducts(ctx, s.products, menu.MenuProducts)
		if err != nil {
			return err
		}

		result, err := domain.EvaluateMenuPrice(*price, menu.MenuProducts, prices)
		if err != nil {
			return err
		}
		if !result.IsConsistent {
			return fmt.Errorf("%w: price %s exceeds bound %s", domain.ErrInconsistentPrice, price, result.PriceBound)
		}

		if err := s.menus.UpdatePrice(ctx, id, *price); err != nil {
			return fmt.Errorf("failed to update menu price: %w", err)
		}
		menu.Price = *price

		return nil
	})
	if err != nil {
		return nil, err
	}

	return menu, nil
}

// Display is the explicit re-display action. It re-checks consistency first:
// a menu whose declared price exceeds the current bound stays hidden.
func (s *MenuService) Display(ctx context.Context, id string) (*domain.Menu, error) {
	var menu *domain.Menu
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		menu, err = s.menus.GetByID(ctx, id)
		if err != nil {
			return err
		}

		prices, err := loadLineItemProducts(ctx, s.products, menu.MenuProducts)
		if err != nil {
			return err
		}

		result, err := domain.EvaluateMenuPrice(menu.Price, menu.MenuProducts, prices)
		if err != nil {
			return err
		}
		if !result.IsConsistent {
			return fmt.Errorf("%w: price %s exceeds bound %s", domain.ErrInconsistentPrice, menu.Price, result.PriceBound)
		}

		if err := s.menus.SetDisplayed(ctx, id, true); err != nil {
			return fmt.Errorf("failed to display menu: %w", err)
		}
		menu.Displayed = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	return menu, nil
}

func (s *MenuService) Hide(ctx context.Context, id string) (*domain.Menu, error) {
	menu, err := s.menus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.menus.SetDisplayed(ctx, id, false); err != nil {
		return nil, fmt.Errorf("failed to hide menu: %w", err)
	}
	menu.Displayed = false

	return menu, nil
}
