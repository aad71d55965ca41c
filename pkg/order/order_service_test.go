package order

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/entities"
	"canteen-queue-optimizer/pkg/prediction"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOrderRepository struct {
	orders      map[uint]*entities.Order
	nextID      uint
	activeCount int64
	snapshots   []*entities.QueueAnalytics
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: map[uint]*entities.Order{}, nextID: 1}
}

func (r *fakeOrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	order.ID = r.nextID
	r.nextID++
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepository) GetOrdersByUserID(ctx context.Context, userID uint, limit int) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, order := range r.orders {
		if order.UserID == userID && len(result) < limit {
			copied := *order
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeOrderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepository) CountActiveOrders(ctx context.Context) (int64, error) {
	return r.activeCount, nil
}

func (r *fakeOrderRepository) GetActiveOrderIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	for id, order := range r.orders {
		if order.Status != entities.OrderStatusCompleted {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeOrderRepository) GetAverageActiveWait(ctx context.Context) (float64, error) {
	return 0, nil
}

func (r *fakeOrderRepository) RecordQueueSnapshot(ctx context.Context, snapshot *entities.QueueAnalytics) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

type fakeMenuRepository struct {
	items map[uint]*entities.MenuItem
}

func newFakeMenuRepository(items ...*entities.MenuItem) *fakeMenuRepository {
	repo := &fakeMenuRepository{items: map[uint]*entities.MenuItem{}}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeMenuRepository) AddMenuItem(ctx context.Context, item *entities.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepository) GetAvailableItems(ctx context.Context) ([]*entities.MenuItem, error) {
	var result []*entities.MenuItem
	for _, item := range r.items {
		if item.IsAvailable {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeMenuRepository) GetAvailableItemsByCategory(ctx context.Context, category string) ([]*entities.MenuItem, error) {
	var result []*entities.MenuItem
	for _, item := range r.items {
		if item.IsAvailable && item.Category == category {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeMenuRepository) GetItemsByIDs(ctx context.Context, ids []uint) ([]*entities.MenuItem, error) {
	var result []*entities.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *fakeMenuRepository) GetItemByName(ctx context.Context, name string) (*entities.MenuItem, error) {
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func testMenuItems() []*entities.MenuItem {
	return []*entities.MenuItem{
		{ID: 1, Name: "Classic Cheeseburger", Category: "main", PrepTime: 8, Price: 8.99, IsAvailable: true, ImageURL: "https://example.com/burger.jpg"},
		{ID: 2, Name: "French Fries", Category: "side", PrepTime: 3, Price: 3.49, IsAvailable: true, ImageURL: "https://example.com/fries.jpg"},
		{ID: 3, Name: "Seasonal Special", Category: "main", PrepTime: 12, Price: 11.50, IsAvailable: false},
	}
}

func newTestOrderService(orderRepo *fakeOrderRepository, menuRepo *fakeMenuRepository) OrderService {
	predictor := prediction.NewPredictionService(prediction.DefaultPopularityTable, 7)
	return NewOrderService(orderRepo, menuRepo, predictor)
}

func TestCreateOrderPricesFromCatalog(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	orderRepo.activeCount = 4
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	res, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		Items: []domain.OrderItemRequest{
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 1},
		},
	}, 42)
	require.NoError(t, err)

	assert.InDelta(t, 21.47, res.TotalPrice, 0.001)
	assert.Equal(t, uint(42), res.UserID)
	assert.Equal(t, entities.OrderStatusPending, res.Status)
	assert.Equal(t, 5, res.QueuePosition)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Classic Cheeseburger", res.Items[0].ItemName)
	assert.Equal(t, 8.99, res.Items[0].Price)

	// wait covers preparing every unit: 8*2 + 3*1 = 19 minutes of prep
	assert.GreaterOrEqual(t, res.EstimatedWait, 19)

	require.Len(t, orderRepo.orders, 1)
	require.Len(t, orderRepo.snapshots, 1)
	assert.Equal(t, 5, orderRepo.snapshots[0].QueueLength)
}

func TestCreateOrderRejectsUnknownItemAtomically(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	_, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		Items: []domain.OrderItemRequest{
			{ItemID: 1, Quantity: 1},
			{ItemID: 999, Quantity: 1},
		},
	}, 42)

	assert.ErrorIs(t, err, domain.ErrOrderItemUnknown)
	assert.Empty(t, orderRepo.orders)
	assert.Empty(t, orderRepo.snapshots)
}

func TestCreateOrderRejectsUnavailableItem(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	_, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		Items: []domain.OrderItemRequest{{ItemID: 3, Quantity: 1}},
	}, 42)

	assert.ErrorIs(t, err, domain.ErrOrderItemUnavailable)
	assert.Empty(t, orderRepo.orders)
}

func TestCreateOrderRejectsEmptyAndBadQuantity(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	_, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{}, 42)
	assert.ErrorIs(t, err, domain.ErrOrderEmptyItems)

	_, err = svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		Items: []domain.OrderItemRequest{{ItemID: 1, Quantity: 0}},
	}, 42)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Empty(t, orderRepo.orders)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepository(), newFakeMenuRepository())

	_, err := svc.GetOrder(context.Background(), 77)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdateOrderStatusForwardOnly(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	created, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		Items: []domain.OrderItemRequest{{ItemID: 2, Quantity: 1}},
	}, 42)
	require.NoError(t, err)

	res, err := svc.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: entities.OrderStatusPreparing})
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPreparing, res.Status)

	// moving backwards or standing still is rejected
	_, err = svc.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: entities.OrderStatusPending})
	assert.ErrorIs(t, err, domain.ErrStatusNotForward)

	_, err = svc.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: entities.OrderStatusPreparing})
	assert.ErrorIs(t, err, domain.ErrStatusNotForward)

	_, err = svc.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateOrderStatusCompletionFillsActualWait(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	created, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
		Items: []domain.OrderItemRequest{{ItemID: 2, Quantity: 1}},
	}, 42)
	require.NoError(t, err)

	// backdate the order so the elapsed wait is measurable
	stored := orderRepo.orders[created.ID]
	stored.OrderTime = time.Now().Add(-10 * time.Minute)

	for _, status := range []string{entities.OrderStatusPreparing, entities.OrderStatusReady} {
		_, err = svc.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: status})
		require.NoError(t, err)
	}

	res, err := svc.UpdateOrderStatus(context.Background(), created.ID, domain.UpdateOrderStatusRequest{Status: entities.OrderStatusCompleted})
	require.NoError(t, err)
	require.NotNil(t, res.ActualWait)
	assert.Equal(t, 10, *res.ActualWait)
}

func TestCurrentQueueReflectsActiveOrders(t *testing.T) {
	orderRepo := newFakeOrderRepository()
	svc := newTestOrderService(orderRepo, newFakeMenuRepository(testMenuItems()...))

	for i := 0; i < 3; i++ {
		_, err := svc.CreateOrder(context.Background(), domain.CreateOrderRequest{
			Items: []domain.OrderItemRequest{{ItemID: 1, Quantity: 1}},
		}, 42)
		require.NoError(t, err)
	}

	snapshot, err := svc.CurrentQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.QueueLength)
	assert.Len(t, snapshot.ActiveOrders, 3)
}
