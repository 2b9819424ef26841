package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. pending is the only initial state; transitions are driven
// by webhook/verification reconciliation or by the admin dashboard.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusFailed    = "failed"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// Supported payment methods.
const (
	PaymentMethodStripe   = "stripe"
	PaymentMethodPayPal   = "paypal"
	PaymentMethodRazorpay = "razorpay"
)

// ValidOrderStatus reports whether s is one of the five legal order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is the persisted ledger entry for a checkout attempt. Items and
// total are fixed at creation; only status, paymentIntentId and updatedAt
// change afterwards. Orders are never deleted.
type Order struct {
	ID               string                 `bson:"id" json:"id"`
	Items            []OrderItem            `bson:"items" json:"items"`
	Total            float64                `bson:"total" json:"total"`
	Status           string                 `bson:"status" json:"status"`
	PaymentMethod    string                 `bson:"paymentMethod" json:"paymentMethod"`
	PaymentSessionID string                 `bson:"paymentSessionId" json:"paymentSessionId"`
	PaymentIntentID  string                 `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CustomerEmail    string                 `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	CustomerName     string                 `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone    string                 `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	ShippingAddress  map[string]interface{} `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	Notes            string                 `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time              `bson:"updatedAt" json:"updatedAt"`
}

// NewOrder builds a pending order for a freshly created gateway session.
// The total is the server-computed one, never a client-supplied value.
func NewOrder(req *CheckoutSessionRequest, total float64, sessionID string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:               uuid.NewString(),
		Items:            req.Items,
		Total:            total,
		Status:           OrderStatusPending,
		PaymentMethod:    req.PaymentMethod,
		PaymentSessionID: sessionID,
		CustomerEmail:    req.CustomerEmail,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		ShippingAddress:  req.ShippingAddress,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

type CheckoutSessionRequest struct {
	Items           []OrderItem            `json:"items" binding:"required,min=1"`
	PaymentMethod   string                 `json:"paymentMethod"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerName    string                 `json:"customerName"`
	CustomerPhone   string                 `json:"customerPhone"`
	ShippingAddress map[string]interface{} `json:"shippingAddress"`
}

// CheckoutSessionResponse is the normalized gateway session payload.
// Amount, Currency and RazorpayKeyID are only set by the Razorpay gateway,
// which returns widget data instead of a redirect.
type CheckoutSessionResponse struct {
	SessionID     string `json:"sessionId"`
	URL           string `json:"url"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        int64  `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	RazorpayKeyID string `json:"razorpayKeyId,omitempty"`
}

type RazorpayVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

type PaymentStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	PendingOrders int     `json:"pendingOrders"`
	PaidOrders    int     `json:"paidOrders"`
	FailedOrders  int     `json:"failedOrders"`
	TodayRevenue  float64 `json:"todayRevenue"`
	TodayOrders   int     `json:"todayOrders"`
}
