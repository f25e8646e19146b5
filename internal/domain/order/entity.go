// internal/domain/order/entity.go
package order

import (
	"time"
)

// Status represents the order status as owned by the backend. The client
// only reads it and requests specific transitions.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPacked    Status = "Packed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCanceled  Status = "Canceled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

// PaymentMethod is the payment option chosen at checkout
type PaymentMethod string

const (
	PaymentMethodCOD      PaymentMethod = "Cash on Delivery"
	PaymentMethodRazorpay PaymentMethod = "Online Payment (Razorpay)"
)

// Order represents a placed order as served by the backend
type Order struct {
	ID                 int64         `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Address            string        `json:"address"`
	Status             Status        `json:"status"`
	PaymentStatus      PaymentStatus `json:"payment_status"`
	PaymentMethod      PaymentMethod `json:"payment_method"`
	TrackingID         string        `json:"tracking_id"`
	EstimatedDelivery  *time.Time    `json:"estimated_delivery"`
	CourierName        string        `json:"courier_name"`
	CourierTrackingURL string        `json:"courier_tracking_url"`
	OrderDate          time.Time     `json:"order_date"`
	TotalPrice         float64       `json:"total_price"`
	Items              []Item        `json:"items"`
}

// Item represents one line of a placed order. Stock is optional: the backend
// only includes it when the product still exists.
type Item struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Stock        *int    `json:"stock,omitempty"`
}

// Available reports whether the item can be ordered again. Unknown stock
// counts as available; the backend rejects it if it is not.
func (i *Item) Available() bool {
	return i.Stock == nil || *i.Stock > 0
}

// PaymentStatusDisplay returns the payment status for presentation. Once an
// order is canceled its payment status is frozen.
func (o *Order) PaymentStatusDisplay() string {
	if o.Status == StatusCanceled {
		return "Locked due to cancellation"
	}
	if o.PaymentStatus == "" {
		return string(PaymentStatusUnpaid)
	}
	return string(o.PaymentStatus)
}

// Action is a user-facing operation offered on an order
type Action string

const (
	ActionCancel  Action = "cancel"
	ActionReorder Action = "reorder"
	ActionPayNow  Action = "pay_now"
	ActionTrack   Action = "track"
	ActionInvoice Action = "invoice"
)

// actionRules is the visibility table. Each rule is a pure predicate over the
// order's current fields; nothing is cached between renders.
var actionRules = []struct {
	action  Action
	allowed func(o *Order) bool
}{
	{ActionCancel, func(o *Order) bool {
		return o.Status == StatusPending
	}},
	{ActionReorder, func(o *Order) bool {
		if o.Status != StatusCanceled {
			return false
		}
		for i := range o.Items {
			if !o.Items[i].Available() {
				return false
			}
		}
		return true
	}},
	{ActionPayNow, func(o *Order) bool {
		return o.PaymentStatus != PaymentStatusPaid &&
			o.Status != StatusCanceled &&
			o.PaymentMethod == PaymentMethodRazorpay
	}},
	{ActionTrack, func(o *Order) bool {
		return o.TrackingID != "" && o.Status != StatusCanceled
	}},
	{ActionInvoice, func(o *Order) bool {
		return true
	}},
}

// AllowedActions returns the actions currently offered on the order
func AllowedActions(o *Order) []Action {
	var actions []Action
	for _, rule := range actionRules {
		if rule.allowed(o) {
			actions = append(actions, rule.action)
		}
	}
	return actions
}

// Can reports whether one specific action is offered on the order
func (o *Order) Can(action Action) bool {
	for _, rule := range actionRules {
		if rule.action == action {
			return rule.allowed(o)
		}
	}
	return false
}
