package domain

import "time"

// OrderStatus is the fulfilment state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderPending:   "Menunggu",
	OrderConfirmed: "Dikonfirmasi",
	OrderShipped:   "Dikirim",
	OrderDelivered: "Selesai",
	OrderCancelled: "Dibatalkan",
}

// Label returns the Indonesian status label
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// InProgress reports whether the order is still moving
func (s OrderStatus) InProgress() bool {
	return s == OrderPending || s == OrderConfirmed || s == OrderShipped
}

// Payment methods offered at checkout
const (
	PaymentTransfer = "transfer"
	PaymentEWallet  = "ewallet"
	PaymentCOD      = "cod"
)

// GuestBuyerID marks orders placed without logging in
const GuestBuyerID = "guest"

// CheckoutInput is the checkout form
type CheckoutInput struct {
	Name          string `json:"name" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"required,max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"required,max=500"`
	Notes         string `json:"notes" validate:"max=500"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=transfer ewallet cod"`
}

// Order is a placed order
type Order struct {
	ID            string      `json:"id"`
	BuyerID       string      `json:"buyer_id"`
	Items         []CartItem  `json:"items"`
	TotalPrice    int         `json:"total_price"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email"`
	Address       string      `json:"address"`
	Notes         string      `json:"notes,omitempty"`
	PaymentMethod string      `json:"payment_method"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// BuyerSummary aggregates a buyer's orders for the dashboard
type BuyerSummary struct {
	TotalOrders int `json:"total_orders"`
	InProgress  int `json:"in_progress"`
	TotalSpent  int `json:"total_spent"`
}
