package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/moderation"
)

// NameValidator rejects empty and profane names. Each Validate call makes
// exactly one moderation request; results are not cached.
type NameValidator struct {
	checker moderation.Checker
}

func NewNameValidator(checker moderation.Checker) *NameValidator {
	return &NameValidator{checker: checker}
}

func (v *NameValidator) Validate(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", domain.ErrInvalidName)
	}

	contains, err := v.checker.ContainsProfanity(ctx, name)
	if err != nil {
		// a moderation outage rejects the name rather than crashing the caller
		return fmt.Errorf("%w: moderation check failed: %v", domain.ErrInvalidName, err)
	}
	if contains {
		return fmt.Errorf("%w: name contains profanity", domain.ErrInvalidName)
	}

	return nil
}

// ValidatePrice rejects absent and negative prices. Zero is legal.
func ValidatePrice(price *decimal.Decimal) error {
	if price == nil {
		return fmt.Errorf("%w: price is required", domain.ErrInvalidPrice)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidPrice)
	}

	return nil
}
