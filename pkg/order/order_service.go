package order

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/entities"
	"canteen-queue-optimizer/pkg/menu"
	"canteen-queue-optimizer/pkg/prediction"
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
)

var statusRank = map[string]int{
	entities.OrderStatusPending:   0,
	entities.OrderStatusPreparing: 1,
	entities.OrderStatusReady:     2,
	entities.OrderStatusCompleted: 3,
}

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID uint) (domain.OrderResponse, error)
		GetOrder(ctx context.Context, id uint) (domain.OrderResponse, error)
		GetUserOrders(ctx context.Context, userID uint) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, id uint, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error)
		CurrentQueue(ctx context.Context) (domain.QueueSnapshotResponse, error)
	}

	orderService struct {
		orderRepository   OrderRepository
		menuRepository    menu.MenuRepository
		predictionService prediction.PredictionService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	menuRepository menu.MenuRepository,
	predictionService prediction.PredictionService,
) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		menuRepository:    menuRepository,
		predictionService: predictionService,
	}
}

// CreateOrder resolves every line item against the catalog before
// anything is persisted. Prices and prep times come from the catalog,
// never from the client, and a single unknown item rejects the whole
// order.
func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID uint) (domain.OrderResponse, error) {
	if len(req.Items) == 0 {
		return domain.OrderResponse{}, domain.ErrOrderEmptyItems
	}

	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return domain.OrderResponse{}, domain.ErrInvalidQuantity
		}
		ids = append(ids, item.ItemID)
	}

	menuItems, err := s.menuRepository.GetItemsByIDs(ctx, ids)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	itemMap := make(map[uint]*entities.MenuItem, len(menuItems))
	for _, item := range menuItems {
		itemMap[item.ID] = item
	}

	lineItems := make([]domain.OrderLineItem, 0, len(req.Items))
	totalPrice := 0.0
	totalPrepTime := 0

	for _, reqItem := range req.Items {
		menuItem, ok := itemMap[reqItem.ItemID]
		if !ok {
			return domain.OrderResponse{}, domain.ErrOrderItemUnknown
		}
		if !menuItem.IsAvailable {
			return domain.OrderResponse{}, domain.ErrOrderItemUnavailable
		}

		image := menuItem.ImageURL
		if image == "" {
			image = menu.FallbackImage(menuItem.Category)
		}

		lineItems = append(lineItems, domain.OrderLineItem{
			ItemID:   menuItem.ID,
			ItemName: menuItem.Name,
			Quantity: reqItem.Quantity,
			Price:    menuItem.Price,
			Image:    image,
		})
		totalPrice += menuItem.Price * float64(reqItem.Quantity)
		totalPrepTime += menuItem.PrepTime * reqItem.Quantity
	}

	activeCount, err := s.orderRepository.CountActiveOrders(ctx)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	now := time.Now()
	estimatedWait := s.predictionService.PredictWaitTime(totalPrepTime, int(activeCount), now)

	serialized, err := json.Marshal(lineItems)
	if err != nil {
		return domain.OrderResponse{}, err
	}

	order := &entities.Order{
		UserID:        userID,
		Items:         string(serialized),
		TotalPrice:    math.Round(totalPrice*100) / 100,
		OrderTime:     now,
		EstimatedWait: estimatedWait,
		Status:        entities.OrderStatusPending,
		QueuePosition: int(activeCount) + 1,
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	s.recordQueueSnapshot(ctx, int(activeCount)+1, now)

	return s.toOrderResponse(ctx, order), nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return s.toOrderResponse(ctx, order), nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID uint) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUserID(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, s.toOrderResponse(ctx, order))
	}
	return result, nil
}

// UpdateOrderStatus enforces forward-only progression. Completing an
// order fills the actual wait from elapsed time.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id uint, req domain.UpdateOrderStatusRequest) (domain.OrderResponse, error) {
	newRank, ok := statusRank[req.Status]
	if !ok {
		return domain.OrderResponse{}, domain.ErrInvalidStatus
	}

	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	if newRank <= statusRank[order.Status] {
		return domain.OrderResponse{}, domain.ErrStatusNotForward
	}

	order.Status = req.Status
	if req.Status == entities.OrderStatusCompleted {
		elapsed := int(math.Round(time.Since(order.OrderTime).Minutes()))
		if elapsed < 0 {
			elapsed = 0
		}
		order.ActualWait = &elapsed
	}

	if err := s.orderRepository.UpdateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	return s.toOrderResponse(ctx, order), nil
}

func (s *orderService) CurrentQueue(ctx context.Context) (domain.QueueSnapshotResponse, error) {
	ids, err := s.orderRepository.GetActiveOrderIDs(ctx)
	if err != nil {
		return domain.QueueSnapshotResponse{}, err
	}
	return domain.QueueSnapshotResponse{
		QueueLength:  len(ids),
		ActiveOrders: ids,
	}, nil
}

// recordQueueSnapshot is best effort, analytics must never fail an
// order.
func (s *orderService) recordQueueSnapshot(ctx context.Context, queueLength int, at time.Time) {
	avgWait, err := s.orderRepository.GetAverageActiveWait(ctx)
	if err != nil {
		log.Printf("failed to compute average active wait: %v", err)
	}

	snapshot := &entities.QueueAnalytics{
		Timestamp:       at,
		QueueLength:     queueLength,
		AvgWaitTime:     avgWait,
		OrdersProcessed: queueLength,
		PeakHour:        s.predictionService.IsPeakHour(at),
	}
	if err := s.orderRepository.RecordQueueSnapshot(ctx, snapshot); err != nil {
		log.Printf("failed to record queue snapshot: %v", err)
	}
}

func (s *orderService) toOrderResponse(ctx context.Context, order *entities.Order) domain.OrderResponse {
	var lineItems []domain.OrderLineItem
	if err := json.Unmarshal([]byte(order.Items), &lineItems); err != nil {
		log.Printf("failed to parse line items of order %d: %v", order.ID, err)
		lineItems = []domain.OrderLineItem{}
	}

	s.fillMissingImages(ctx, lineItems)

	return domain.OrderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		Items:         lineItems,
		TotalPrice:    order.TotalPrice,
		OrderTime:     order.OrderTime,
		EstimatedWait: order.EstimatedWait,
		ActualWait:    order.ActualWait,
		Status:        order.Status,
		QueuePosition: order.QueuePosition,
	}
}

// fillMissingImages backfills image URLs on line items persisted before
// images were denormalized into the order.
func (s *orderService) fillMissingImages(ctx context.Context, lineItems []domain.OrderLineItem) {
	var missing []uint
	for _, item := range lineItems {
		if item.Image == "" {
			missing = append(missing, item.ItemID)
		}
	}
	if len(missing) == 0 {
		return
	}

	menuItems, err := s.menuRepository.GetItemsByIDs(ctx, missing)
	if err != nil {
		log.Printf("failed to resolve images for line items: %v", err)
		return
	}

	images := make(map[uint]string, len(menuItems))
	for _, item := range menuItems {
		if item.ImageURL != "" {
			images[item.ID] = item.ImageURL
		} else {
			images[item.ID] = menu.FallbackImage(item.Category)
		}
	}

	for i := range lineItems {
		if lineItems[i].Image == "" {
			lineItems[i].Image = images[lineItems[i].ItemID]
		}
	}
}
