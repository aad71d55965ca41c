package order

import (
	"canteen-queue-optimizer/entities"
	"context"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
		GetOrdersByUserID(ctx context.Context, userID uint, limit int) ([]*entities.Order, error)
		UpdateOrder(ctx context.Context, order *entities.Order) error

		// Active orders are derived from status, there is no separate
		// in-memory queue to fall out of sync with the store.
		CountActiveOrders(ctx context.Context) (int64, error)
		GetActiveOrderIDs(ctx context.Context) ([]uint, error)
		GetAverageActiveWait(ctx context.Context) (float64, error)

		RecordQueueSnapshot(ctx context.Context, snapshot *entities.QueueAnalytics) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUserID(ctx context.Context, userID uint, limit int) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_time desc").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) CountActiveOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("status <> ?", entities.OrderStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) GetActiveOrderIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("status <> ?", entities.OrderStatusCompleted).
		Order("id asc").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *orderRepository) GetAverageActiveWait(ctx context.Context) (float64, error) {
	var avg *float64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("status <> ?", entities.OrderStatusCompleted).
		Select("AVG(estimated_wait)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *orderRepository) RecordQueueSnapshot(ctx context.Context, snapshot *entities.QueueAnalytics) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}
