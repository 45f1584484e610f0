package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedOrder(status OrderStatus, ds DeliveryStatus) *Order {
	return &Order{
		OrderRef: "ref-1",
		Status:   status,
		Delivery: &DeliveryAssignment{PartnerID: 1, PartnerName: "Swift Movers", DeliveryStatus: ds},
	}
}

func TestCanTransitionDelivery(t *testing.T) {
	assert.True(t, CanTransitionDelivery(DeliveryStatusAssigned, DeliveryStatusPickedUp))
	assert.True(t, CanTransitionDelivery(DeliveryStatusOutForDelivery, DeliveryStatusDelivered))
	assert.True(t, CanTransitionDelivery(DeliveryStatusInTransit, DeliveryStatusFailed))
	assert.True(t, CanTransitionDelivery(DeliveryStatusFailed, DeliveryStatusPickedUp), "failed attempts can be retried")

	assert.False(t, CanTransitionDelivery(DeliveryStatusAssigned, DeliveryStatusDelivered))
	assert.False(t, CanTransitionDelivery(DeliveryStatusDelivered, DeliveryStatusInTransit))
	assert.False(t, CanTransitionDelivery(DeliveryStatusPickedUp, DeliveryStatusAssigned))
}

func TestApplyDeliveryStatusRequiresAssignment(t *testing.T) {
	o := &Order{OrderRef: "ref-1", Status: OrderStatusConfirmed}
	err := o.ApplyDeliveryStatus(DeliveryStatusPickedUp)
	require.Error(t, err)
}

func TestApplyDeliveryStatusRejectsIllegalEdge(t *testing.T) {
	o := assignedOrder(OrderStatusConfirmed, DeliveryStatusAssigned)
	err := o.ApplyDeliveryStatus(DeliveryStatusDelivered)
	require.Error(t, err)

	var invalid *InvalidDeliveryTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, DeliveryStatusAssigned, invalid.From)
	assert.Equal(t, DeliveryStatusAssigned, o.Delivery.DeliveryStatus)
}

func TestPickupAdvancesOrderToShipped(t *testing.T) {
	o := assignedOrder(OrderStatusConfirmed, DeliveryStatusAssigned)
	require.NoError(t, o.ApplyDeliveryStatus(DeliveryStatusPickedUp))
	assert.Equal(t, DeliveryStatusPickedUp, o.Delivery.DeliveryStatus)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

func TestDeliveredSyncsOrderStatus(t *testing.T) {
	o := assignedOrder(OrderStatusShipped, DeliveryStatusOutForDelivery)
	require.NoError(t, o.ApplyDeliveryStatus(DeliveryStatusDelivered))
	assert.Equal(t, DeliveryStatusDelivered, o.Delivery.DeliveryStatus)
	assert.Equal(t, OrderStatusDelivered, o.Status)
}

func TestPickupOnPendingOrderAdvancesToShipped(t *testing.T) {
	o := assignedOrder(OrderStatusPending, DeliveryStatusAssigned)
	require.NoError(t, o.ApplyDeliveryStatus(DeliveryStatusPickedUp))
	assert.Equal(t, DeliveryStatusPickedUp, o.Delivery.DeliveryStatus)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

func TestDeliveredOnPendingOrderCatchesUp(t *testing.T) {
	// A partner can be assigned before the operator confirms the order; the
	// full fulfilment walk must still land both lifecycles on delivered.
	o := assignedOrder(OrderStatusPending, DeliveryStatusAssigned)
	for _, next := range []DeliveryStatus{
		DeliveryStatusPickedUp,
		DeliveryStatusInTransit,
		DeliveryStatusOutForDelivery,
		DeliveryStatusDelivered,
	} {
		require.NoError(t, o.ApplyDeliveryStatus(next))
	}
	assert.Equal(t, DeliveryStatusDelivered, o.Delivery.DeliveryStatus)
	assert.Equal(t, OrderStatusDelivered, o.Status)
}

func TestDeliveredOnConfirmedOrderCatchesUp(t *testing.T) {
	o := assignedOrder(OrderStatusConfirmed, DeliveryStatusOutForDelivery)
	require.NoError(t, o.ApplyDeliveryStatus(DeliveryStatusDelivered))
	assert.Equal(t, OrderStatusDelivered, o.Status)
}

func TestDeliveredOnCancelledOrderIsRejected(t *testing.T) {
	o := assignedOrder(OrderStatusCancelled, DeliveryStatusOutForDelivery)
	err := o.ApplyDeliveryStatus(DeliveryStatusDelivered)
	require.Error(t, err)

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, OrderStatusCancelled, o.Status)
	assert.Equal(t, DeliveryStatusOutForDelivery, o.Delivery.DeliveryStatus)
}

func TestFailedLeavesOrderStatusUntouched(t *testing.T) {
	o := assignedOrder(OrderStatusShipped, DeliveryStatusInTransit)
	require.NoError(t, o.ApplyDeliveryStatus(DeliveryStatusFailed))
	assert.Equal(t, DeliveryStatusFailed, o.Delivery.DeliveryStatus)
	assert.Equal(t, OrderStatusShipped, o.Status)
}

func TestReassignable(t *testing.T) {
	a := &DeliveryAssignment{DeliveryStatus: DeliveryStatusAssigned}
	assert.True(t, a.Reassignable())

	a.DeliveryStatus = DeliveryStatusPickedUp
	assert.False(t, a.Reassignable())
}
