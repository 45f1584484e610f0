package models

import (
	"fmt"
	"time"
)

type DeliveryStatus string

const (
	// Delivery statuses (fulfilment sub-lifecycle, owned by the assigned partner)
	DeliveryStatusAssigned       DeliveryStatus = "assigned"
	DeliveryStatusPickedUp       DeliveryStatus = "picked_up"
	DeliveryStatusInTransit      DeliveryStatus = "in_transit"
	DeliveryStatusOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryStatusDelivered      DeliveryStatus = "delivered"
	DeliveryStatusFailed         DeliveryStatus = "failed"
)

// deliveryTransitions keeps the fulfilment lifecycle forward-only. A failed
// attempt is reachable from every in-progress state and can be retried from
// pickup.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusAssigned:       {DeliveryStatusPickedUp, DeliveryStatusFailed},
	DeliveryStatusPickedUp:       {DeliveryStatusInTransit, DeliveryStatusFailed},
	DeliveryStatusInTransit:      {DeliveryStatusOutForDelivery, DeliveryStatusFailed},
	DeliveryStatusOutForDelivery: {DeliveryStatusDelivered, DeliveryStatusFailed},
	DeliveryStatusDelivered:      {},
	DeliveryStatusFailed:         {DeliveryStatusPickedUp},
}

// InvalidDeliveryTransitionError is returned for delivery status edges outside
// the fulfilment graph.
type InvalidDeliveryTransitionError struct {
	From DeliveryStatus
	To   DeliveryStatus
}

func (e *InvalidDeliveryTransitionError) Error() string {
	return fmt.Sprintf("invalid delivery status transition: %s -> %s", e.From, e.To)
}

// Valid reports whether s is one of the six enumerated delivery statuses.
func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryTransitions[s]
	return ok
}

// CanTransitionDelivery reports whether from -> to is a legal fulfilment edge.
func CanTransitionDelivery(from, to DeliveryStatus) bool {
	for _, s := range deliveryTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// DeliveryAssignment binds an order to a delivery partner. One row per order;
// re-assignment overwrites the partner fields while the parcel has not been
// picked up yet.
type DeliveryAssignment struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	OrderID           uint           `gorm:"uniqueIndex;not null" json:"order_id"`
	PartnerID         uint           `gorm:"not null" json:"partner_id"`
	PartnerName       string         `json:"partner_name"`
	DeliveryStatus    DeliveryStatus `gorm:"type:VARCHAR(20);default:'assigned'" json:"delivery_status"`
	TrackingNumber    string         `json:"tracking_number"`
	DeliveryFee       float64        `json:"delivery_fee"`
	EstimatedDelivery string         `json:"estimated_delivery"` // YYYY-MM-DD as entered by the operator
	Notes             string         `json:"notes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Reassignable reports whether the assignment may still be moved to a
// different partner. Once the parcel is picked up the binding is fixed.
func (a *DeliveryAssignment) Reassignable() bool {
	return a.DeliveryStatus == DeliveryStatusAssigned
}

// orderForward is the happy-path chain of the primary lifecycle, used when
// fulfilment progress has to drag the order status along.
var orderForward = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusShipped,
	OrderStatusShipped:   OrderStatusDelivered,
}

// advanceTo walks the order along the forward chain until it reaches target,
// taking each intermediate edge through TransitionTo. A cancelled or already
// further-along order cannot be advanced.
func (o *Order) advanceTo(target OrderStatus) error {
	for o.Status != target {
		next, ok := orderForward[o.Status]
		if !ok {
			return &InvalidTransitionError{From: o.Status, To: target}
		}
		if err := o.TransitionTo(next); err != nil {
			return err
		}
	}
	return nil
}

// ApplyDeliveryStatus advances the order's fulfilment sub-status and keeps the
// two lifecycles in sync: pickup moves the order to shipped, a delivered
// parcel marks the order itself delivered. An order assigned while still
// pending catches up through the intermediate edges. The order must carry an
// assignment.
func (o *Order) ApplyDeliveryStatus(next DeliveryStatus) error {
	if o.Delivery == nil {
		return fmt.Errorf("order %s has no delivery partner assigned", o.OrderRef)
	}
	if !CanTransitionDelivery(o.Delivery.DeliveryStatus, next) {
		return &InvalidDeliveryTransitionError{From: o.Delivery.DeliveryStatus, To: next}
	}
	switch next {
	case DeliveryStatusPickedUp:
		if o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed {
			if err := o.advanceTo(OrderStatusShipped); err != nil {
				return err
			}
		}
	case DeliveryStatusDelivered:
		if o.Status != OrderStatusDelivered {
			if err := o.advanceTo(OrderStatusDelivered); err != nil {
				return err
			}
		}
	}

	o.Delivery.DeliveryStatus = next
	return nil
}
