package entities

import "time"

// OrderStatus tracks a commissioned work through its lifecycle
type OrderStatus string

const (
	OrderStatusDraft                OrderStatus = "draft"
	OrderStatusNew                  OrderStatus = "new"
	OrderStatusAwaitingPayment      OrderStatus = "awaiting_payment"
	OrderStatusPaid                 OrderStatus = "paid"
	OrderStatusAccepted             OrderStatus = "accepted"
	OrderStatusQueued               OrderStatus = "queued"
	OrderStatusInProgress           OrderStatus = "in_progress"
	OrderStatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	OrderStatusPaused               OrderStatus = "paused"
	OrderStatusInReview             OrderStatus = "in_review"
	OrderStatusCompleted            OrderStatus = "completed"
	OrderStatusCancelledByClient    OrderStatus = "cancelled_by_client"
	OrderStatusCancelledBySystem    OrderStatus = "cancelled_by_system"
	OrderStatusRejected             OrderStatus = "rejected"
	OrderStatusRefund               OrderStatus = "refund"
	OrderStatusReturned             OrderStatus = "returned"
	OrderStatusArchived             OrderStatus = "archived"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusDraft: {}, OrderStatusNew: {}, OrderStatusAwaitingPayment: {},
	OrderStatusPaid: {}, OrderStatusAccepted: {}, OrderStatusQueued: {},
	OrderStatusInProgress: {}, OrderStatusAwaitingConfirmation: {},
	OrderStatusPaused: {}, OrderStatusInReview: {}, OrderStatusCompleted: {},
	OrderStatusCancelledByClient: {}, OrderStatusCancelledBySystem: {},
	OrderStatusRejected: {}, OrderStatusRefund: {}, OrderStatusReturned: {},
	OrderStatusArchived: {},
}

// Valid reports whether s is a known order status
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// PersonalOrder represents a custom commissioned order
type PersonalOrder struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"userId"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Status        OrderStatus `json:"status"`
	Price         float64     `json:"price"`
	TypeID        uint        `json:"typeId"`
	AgeCategoryID uint        `json:"ageCategoryId"`
	Deadline      time.Time   `json:"deadline"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// CreatePersonalOrderInput represents input for placing a personal order
type CreatePersonalOrderInput struct {
	Title         string  `json:"title" binding:"required,max=255"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	TypeID        uint    `json:"typeId" binding:"required"`
	AgeCategoryID uint    `json:"ageCategoryId" binding:"required"`
	Deadline      string  `json:"deadline"`
}

// UpdatePersonalOrderInput represents a status transition request
type UpdatePersonalOrderInput struct {
	Status OrderStatus `json:"status" binding:"required"`
}
