package entities

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	Items         string    `gorm:"type:text" json:"-"` // serialized line items, denormalized at order time
	TotalPrice    float64   `json:"total_price"`
	OrderTime     time.Time `gorm:"type:timestamp" json:"order_time"`
	EstimatedWait int       `json:"estimated_wait"` // minutes
	ActualWait    *int      `json:"actual_wait,omitempty"`
	Status        string    `gorm:"default:pending" json:"status"`
	QueuePosition int       `json:"queue_position"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type QueueAnalytics struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Timestamp       time.Time `gorm:"type:timestamp" json:"timestamp"`
	QueueLength     int       `json:"queue_length"`
	AvgWaitTime     float64   `json:"avg_wait_time"`
	OrdersProcessed int       `json:"orders_processed"`
	PeakHour        bool      `json:"peak_hour"`
}
