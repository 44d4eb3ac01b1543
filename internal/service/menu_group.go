package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/repo"
)

type MenuGroupService struct {
	groups repo.MenuGroupRepository
	logger *zap.SugaredLogger
}

func NewMenuGroupService(groups repo.MenuGroupRepository, logger *zap.SugaredLogger) *MenuGroupService {
	return &MenuGroupService{
		groups: groups,
		logger: logger,
	}
}

// Create only requires a non-empty name; group names skip the profanity check.
func (s *MenuGroupService) Create(ctx context.Context, name string) (*domain.MenuGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrInvalidName)
	}

	group := &domain.MenuGroup{
		ID:   uuid.New().String(),
		Name: name,
	}

	if err := s.groups.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to save menu group: %w", err)
	}

	return group, nil
}

func (s *MenuGroupService) GetByID(ctx context.Context, id string) (*domain.MenuGroup, error) {
	return s.groups.GetByID(ctx, id)
}

func (s *MenuGroupService) FindAll(ctx context.Context) ([]domain.MenuGroup, error) {
	groups, err := s.groups.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu groups: %w", err)
	}

	return groups, nil
}
