package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder  = "order created successfully"
	MessageSuccessGetOrder     = "order retrieved successfully"
	MessageSuccessGetOrders    = "orders retrieved successfully"
	MessageSuccessUpdateStatus = "order status updated successfully"
	MessageSuccessGetQueue     = "queue snapshot retrieved successfully"

	MessageFailedCreateOrder  = "failed to create order"
	MessageFailedGetOrder     = "failed to retrieve order"
	MessageFailedGetOrders    = "failed to retrieve orders"
	MessageFailedUpdateStatus = "failed to update order status"
	MessageFailedGetQueue     = "failed to retrieve queue snapshot"

	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderEmptyItems      = errors.New("order must contain at least one item")
	ErrOrderItemUnknown     = errors.New("menu item not found")
	ErrOrderItemUnavailable = errors.New("menu item is not available")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrStatusNotForward     = errors.New("order status can only move forward")
)

type (
	OrderItemRequest struct {
		ItemID   uint `json:"item_id" validate:"required"`
		Quantity int  `json:"quantity" validate:"required,min=1"`
	}

	CreateOrderRequest struct {
		Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	// OrderLineItem is the denormalized shape persisted with the order, so
	// historical orders stay interpretable after catalog changes.
	OrderLineItem struct {
		ItemID   uint    `json:"item_id"`
		ItemName string  `json:"item_name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
		Image    string  `json:"image,omitempty"`
	}

	OrderResponse struct {
		ID            uint            `json:"id"`
		UserID        uint            `json:"user_id"`
		Items         []OrderLineItem `json:"items"`
		TotalPrice    float64         `json:"total_price"`
		OrderTime     time.Time       `json:"order_time"`
		EstimatedWait int             `json:"estimated_wait"`
		ActualWait    *int            `json:"actual_wait,omitempty"`
		Status        string          `json:"status"`
		QueuePosition int             `json:"queue_position"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending preparing ready completed"`
	}

	QueueSnapshotResponse struct {
		QueueLength  int    `json:"queue_length"`
		ActiveOrders []uint `json:"active_orders"`
	}
)
