package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
	"github.com/eleeje97/kitchen-catalog/internal/service"
	"github.com/eleeje97/kitchen-catalog/internal/validation"
)

type productFixture struct {
	products *productRepoFake
	menus    *menuRepoFake
	audits   *priceAuditRepoFake
	checker  *checkerFake
	broker   *brokerFake
	svc      *service.ProductService
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products: newProductRepoFake(),
		menus:    newMenuRepoFake(),
		audits:   newPriceAuditRepoFake(),
		checker:  &checkerFake{},
		broker:   newBrokerFake(),
	}
	f.svc = service.NewProductService(
		f.products,
		f.menus,
		f.audits,
		validation.NewNameValidator(f.checker),
		f.broker,
		txFake{},
		zap.NewNop().Sugar(),
	)
	return f
}

func dec(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func decPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func (f *productFixture) seedProduct(t *testing.T, price int64) *domain.Product {
	t.Helper()
	product := &domain.Product{
		ID:    uuid.New().String(),
		Name:  "fried chicken",
		Price: dec(price),
	}
	require.NoError(t, f.products.Create(context.Background(), product))
	return product
}

func (f *productFixture) seedMenu(t *testing.T, price int64, displayed bool, items ...domain.MenuProduct) *domain.Menu {
	t.Helper()
	menu := &domain.Menu{
		ID:           uuid.New().String(),
		Name:         "fried 1+1",
		Price:        dec(price),
		MenuGroupID:  uuid.New().String(),
		Displayed:    displayed,
		MenuProducts: items,
	}
	require.NoError(t, f.menus.Create(context.Background(), menu))
	return menu
}

func TestCreateProduct(t *testing.T) {
	f := newProductFixture()

	product, err := f.svc.Create(context.Background(), "fried chicken", decPtr(16_000))

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "fried chicken", product.Name)
	assert.True(t, product.Price.Equal(dec(16_000)))
	assert.Equal(t, 1, f.checker.calls)

	stored, err := f.products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(dec(16_000)))
}

func TestCreateProduct_ProfaneName(t *testing.T) {
	f := newProductFixture()
	f.checker.profane = true

	_, err := f.svc.Create(context.Background(), "fuck chicken", decPtr(16_000))

	assert.ErrorIs(t, err, domain.ErrInvalidName)
	products, _ := f.products.GetAll(context.Background())
	assert.Empty(t, products)
}

func TestCreateProduct_EmptyName(t *testing.T) {
	f := newProductFixture()

	_, err := f.svc.Create(context.Background(), "", decPtr(16_000))

	assert.ErrorIs(t, err, domain.ErrInvalidName)
	assert.Equal(t, 0, f.checker.calls)
}

func TestCreateProduct_ModerationFailure(t *testing.T) {
	f := newProductFixture()
	f.checker.err = assert.AnError

	_, err := f.svc.Create(context.Background(), "fried chicken", decPtr(16_000))

	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	f := newProductFixture()

	_, err := f.svc.Create(context.Background(), "fried chicken", decPtr(-1))

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCreateProduct_MissingPrice(t *testing.T) {
	f := newProductFixture()

	_, err := f.svc.Create(context.Background(), "fried chicken", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCreateProduct_ZeroPrice(t *testing.T) {
	f := newProductFixture()

	product, err := f.svc.Create(context.Background(), "water", decPtr(0))

	require.NoError(t, err)
	assert.True(t, product.Price.IsZero())
}

func TestChangePrice(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 16_000)

	updated, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(18_000))

	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(dec(18_000)))

	stored, err := f.products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(dec(18_000)))
}

func TestChangePrice_NegativeLeavesPriceUnchanged(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 16_000)

	_, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(-1))

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	stored, err := f.products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, stored.Price.Equal(dec(16_000)))
}

func TestChangePrice_ProductNotFound(t *testing.T) {
	f := newProductFixture()

	_, err := f.svc.ChangePrice(context.Background(), uuid.New().String(), decPtr(18_000))

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestChangePrice_HidesInconsistentMenu(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 16_000)
	menu := f.seedMenu(t, 32_000, true, domain.MenuProduct{Seq: 1, ProductID: product.ID, Quantity: 2})

	_, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(15_000))

	require.NoError(t, err)

	stored, err := f.menus.GetByID(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.False(t, stored.Displayed)
}

func TestChangePrice_ConsistentMenuStaysDisplayed(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 16_000)
	menu := f.seedMenu(t, 32_000, true, domain.MenuProduct{Seq: 1, ProductID: product.ID, Quantity: 2})

	// bound rises to 34,000, well above the declared 32,000
	_, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(17_000))

	require.NoError(t, err)

	stored, err := f.menus.GetByID(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.True(t, stored.Displayed)
}

func TestChangePrice_NeverRedisplaysHiddenMenu(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 15_000)
	menu := f.seedMenu(t, 32_000, false, domain.MenuProduct{Seq: 1, ProductID: product.ID, Quantity: 2})

	// price rise makes the menu consistent again, but display stays off
	_, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(20_000))

	require.NoError(t, err)

	stored, err := f.menus.GetByID(context.Background(), menu.ID)
	require.NoError(t, err)
	assert.False(t, stored.Displayed)
}

func TestChangePrice_PublishesAuditEvent(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 16_000)
	menu := f.seedMenu(t, 32_000, true, domain.MenuProduct{Seq: 1, ProductID: product.ID, Quantity: 2})

	_, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(15_000))
	require.NoError(t, err)

	messages := f.broker.published[queue.QueuePriceAudit]
	require.Len(t, messages, 1)

	var event domain.ProductPriceChangedEvent
	require.NoError(t, json.Unmarshal(messages[0], &event))
	assert.Equal(t, product.ID, event.ProductID)
	assert.True(t, event.OldPrice.Equal(dec(16_000)))
	assert.True(t, event.NewPrice.Equal(dec(15_000)))
	assert.Equal(t, []string{menu.ID}, event.HiddenMenuIDs)
}

func TestChangePrice_BrokerFailureDoesNotFailCall(t *testing.T) {
	f := newProductFixture()
	product := f.seedProduct(t, 16_000)
	f.broker.publishErr = assert.AnError

	updated, err := f.svc.ChangePrice(context.Background(), product.ID, decPtr(17_000))

	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(dec(17_000)))
}

func TestFindAllProducts(t *testing.T) {
	f := newProductFixture()
	f.seedProduct(t, 16_000)
	f.seedProduct(t, 9_000)

	products, err := f.svc.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProcessPriceChangeEvent(t *testing.T) {
	f := newProductFixture()

	event := domain.ProductPriceChangedEvent{
		EventType:     domain.EventProductPriceChanged,
		ProductID:     uuid.New().String(),
		OldPrice:      dec(16_000),
		NewPrice:      dec(15_000),
		HiddenMenuIDs: []string{uuid.New().String()},
	}

	require.NoError(t, f.svc.ProcessPriceChangeEvent(context.Background(), event))

	audits, err := f.svc.GetPriceAudit(context.Background(), event.ProductID, 10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "16000", audits[0].OldPrice)
	assert.Equal(t, "15000", audits[0].NewPrice)
	assert.Equal(t, event.HiddenMenuIDs, audits[0].HiddenMenuIDs)
}
