package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/service"
)

func newMenuGroupService() (*service.MenuGroupService, *menuGroupRepoFake) {
	groups := newMenuGroupRepoFake()
	return service.NewMenuGroupService(groups, zap.NewNop().Sugar()), groups
}

func TestCreateMenuGroup(t *testing.T) {
	svc, _ := newMenuGroupService()

	group, err := svc.Create(context.Background(), "double set")

	require.NoError(t, err)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "double set", group.Name)
}

func TestCreateMenuGroup_EmptyName(t *testing.T) {
	svc, _ := newMenuGroupService()

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	}
}

func TestFindAllMenuGroups(t *testing.T) {
	svc, _ := newMenuGroupService()

	_, err := svc.Create(context.Background(), "double set")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "triple set")
	require.NoError(t, err)

	groups, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}
