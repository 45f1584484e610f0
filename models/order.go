package models

import (
	"fmt"
	"time"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	// Order statuses (primary lifecycle)
	OrderStatusPending   OrderStatus = "pending"   // Placed by storefront, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by operator
	OrderStatusShipped   OrderStatus = "shipped"   // Handed over for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before delivery

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	// Payment methods
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

// orderTransitions is the directed transition graph for the primary order
// lifecycle. Delivered and cancelled are terminal; cancellation is reachable
// from every non-terminal status.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// InvalidTransitionError is returned when an operator requests a status edge
// that is not in the transition graph.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition: %s -> %s", e.From, e.To)
}

// NextStatuses returns the legal successor statuses for the given status.
// Unknown statuses have no successors.
func NextStatuses(s OrderStatus) []OrderStatus {
	next, ok := orderTransitions[s]
	if !ok {
		return nil
	}
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// Valid reports whether s is one of the five enumerated statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Valid reports whether p is one of the four enumerated payment statuses.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Valid reports whether m is one of the enumerated payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI, PaymentMethodNetbanking, PaymentMethodWallet:
		return true
	}
	return false
}

type Order struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	OrderRef      string              `gorm:"uniqueIndex;not null" json:"order_ref"`
	CustomerName  string              `gorm:"not null" json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	CustomerPhone string              `json:"customer_phone"`
	Shipping      Address             `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Items         []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64             `json:"subtotal"`
	ShippingCost  float64             `json:"shipping_cost"`
	Tax           float64             `json:"tax"`
	TotalAmount   float64             `json:"total_amount"`
	Status        OrderStatus         `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod PaymentMethod       `gorm:"type:VARCHAR(20)" json:"payment_method"`
	PaymentStatus PaymentStatus       `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentNotes  string              `json:"payment_notes"`
	Delivery      *DeliveryAssignment `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"delivery_partner,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Address is the shipping destination snapshot embedded in Order.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

type OrderItem struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	OrderID   uint              `gorm:"index" json:"order_id"`
	Name      string            `gorm:"not null" json:"name"`
	Quantity  int               `gorm:"not null" json:"quantity"`
	UnitPrice float64           `gorm:"not null" json:"unit_price"`
	Options   map[string]string `gorm:"serializer:json" json:"options"` // selected option key -> value
	Image     string            `json:"image"`
}

// TransitionTo moves the order to next if the edge is legal.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !CanTransition(o.Status, next) {
		return &InvalidTransitionError{From: o.Status, To: next}
	}
	o.Status = next
	return nil
}
