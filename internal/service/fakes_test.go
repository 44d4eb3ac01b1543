package service_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eleeje97/kitchen-catalog/internal/domain"
	"github.com/eleeje97/kitchen-catalog/internal/parser"
	"github.com/eleeje97/kitchen-catalog/internal/queue"
)

// in-memory fakes standing in for the mongo repositories, the moderation
// client and the broker

type checkerFake struct {
	profane bool
	err     error
	calls   int
}

func (f *checkerFake) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	f.calls++
	return f.profane, f.err
}

type txFake struct{}

func (txFake) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type brokerFake struct {
	mu         sync.Mutex
	published  map[string][][]byte
	publishErr error
}

func newBrokerFake() *brokerFake {
	return &brokerFake{published: make(map[string][][]byte)}
}

func (f *brokerFake) Publish(ctx context.Context, queueName string, message []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published[queueName] = append(f.published[queueName], message)
	return nil
}

func (f *brokerFake) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (f *brokerFake) Close() error { return nil }

type productRepoFake struct {
	mu    sync.Mutex
	items map[string]domain.Product
}

func newProductRepoFake() *productRepoFake {
	return &productRepoFake{items: make(map[string]domain.Product)}
}

func (f *productRepoFake) Create(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[product.ID] = *product
	return nil
}

func (f *productRepoFake) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (f *productRepoFake) GetAll(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]domain.Product, 0, len(f.items))
	for _, product := range f.items {
		products = append(products, product)
	}
	return products, nil
}

func (f *productRepoFake) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.items[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	product.Price = price
	f.items[id] = product
	return nil
}

type menuRepoFake struct {
	mu    sync.Mutex
	items map[string]domain.Menu
}

func newMenuRepoFake() *menuRepoFake {
	return &menuRepoFake{items: make(map[string]domain.Menu)}
}

func (f *menuRepoFake) Create(ctx context.Context, menu *domain.Menu) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[menu.ID] = *menu
	return nil
}

func (f *menuRepoFake) GetByID(ctx context.Context, id string) (*domain.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	menu, ok := f.items[id]
	if !ok {
		return nil, domain.ErrMenuNotFound
	}
	return &menu, nil
}

func (f *menuRepoFake) GetAll(ctx context.Context) ([]domain.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	menus := make([]domain.Menu, 0, len(f.items))
	for _, menu := range f.items {
		menus = append(menus, menu)
	}
	return menus, nil
}

func (f *menuRepoFake) FindAllByProductID(ctx context.Context, productID string) ([]domain.Menu, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var menus []domain.Menu
	for _, menu := range f.items {
		for _, item := range menu.MenuProducts {
			if item.ProductID == productID {
				menus = append(menus, menu)
				break
			}
		}
	}
	return menus, nil
}

func (f *menuRepoFake) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	menu, ok := f.items[id]
	if !ok {
		return domain.ErrMenuNotFound
	}
	menu.Price = price
	f.items[id] = menu
	return nil
}

func (f *menuRepoFake) SetDisplayed(ctx context.Context, id string, displayed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	menu, ok := f.items[id]
	if !ok {
		return domain.ErrMenuNotFound
	}
	menu.Displayed = displayed
	f.items[id] = menu
	return nil
}

type menuGroupRepoFake struct {
	mu    sync.Mutex
	items map[string]domain.MenuGroup
}

func newMenuGroupRepoFake() *menuGroupRepoFake {
	return &menuGroupRepoFake{items: make(map[string]domain.MenuGroup)}
}

func (f *menuGroupRepoFake) Create(ctx context.Context, group *domain.MenuGroup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[group.ID] = *group
	return nil
}

func (f *menuGroupRepoFake) GetByID(ctx context.Context, id string) (*domain.MenuGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	group, ok := f.items[id]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	return &group, nil
}

func (f *menuGroupRepoFake) GetAll(ctx context.Context) ([]domain.MenuGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	groups := make([]domain.MenuGroup, 0, len(f.items))
	for _, group := range f.items {
		groups = append(groups, group)
	}
	return groups, nil
}

type priceAuditRepoFake struct {
	mu     sync.Mutex
	audits []domain.ProductPriceAudit
}

func newPriceAuditRepoFake() *priceAuditRepoFake {
	return &priceAuditRepoFake{}
}

func (f *priceAuditRepoFake) Create(ctx context.Context, audit *domain.ProductPriceAudit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audits = append(f.audits, *audit)
	return nil
}

func (f *priceAuditRepoFake) GetByProductID(ctx context.Context, productID string, limit int) ([]domain.ProductPriceAudit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var audits []domain.ProductPriceAudit
	for _, audit := range f.audits {
		if audit.ProductID == productID {
			audits = append(audits, audit)
		}
		if len(audits) == limit {
			break
		}
	}
	return audits, nil
}

type importTaskRepoFake struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]domain.ImportTask
}

func newImportTaskRepoFake() *importTaskRepoFake {
	return &importTaskRepoFake{items: make(map[primitive.ObjectID]domain.ImportTask)}
}

func (f *importTaskRepoFake) Create(ctx context.Context, task *domain.ImportTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	f.items[task.ID] = *task
	return nil
}

func (f *importTaskRepoFake) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &task, nil
}

func (f *importTaskRepoFake) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	task.Status = status
	if errorMsg != "" {
		task.ErrorMessage = errorMsg
	}
	f.items[id] = task
	return nil
}

func (f *importTaskRepoFake) UpdateResult(ctx context.Context, id primitive.ObjectID, imported, failed int, status domain.ImportTaskStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	task.Imported = imported
	task.Failed = failed
	task.Status = status
	f.items[id] = task
	return nil
}

func (f *importTaskRepoFake) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	task.RetryCount++
	f.items[id] = task
	return nil
}

type sheetParserFake struct {
	rows []parser.ProductRow
	err  error
}

func (f *sheetParserFake) ParseProducts(ctx context.Context, spreadsheetID string) ([]parser.ProductRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
