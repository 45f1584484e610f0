package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusesNeverContainsCurrent(t *testing.T) {
	for s := range orderTransitions {
		for _, next := range NextStatuses(s) {
			assert.NotEqual(t, s, next, "successors of %s must not contain itself", s)
		}
	}
}

func TestNextStatuses(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   []OrderStatus
	}{
		{OrderStatusPending, []OrderStatus{OrderStatusConfirmed, OrderStatusCancelled}},
		{OrderStatusConfirmed, []OrderStatus{OrderStatusShipped, OrderStatusCancelled}},
		{OrderStatusShipped, []OrderStatus{OrderStatusDelivered, OrderStatusCancelled}},
		{OrderStatusDelivered, []OrderStatus{}},
		{OrderStatusCancelled, []OrderStatus{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, NextStatuses(tt.status))
		})
	}
}

func TestNextStatusesUnknown(t *testing.T) {
	assert.Nil(t, NextStatuses(OrderStatus("bogus")))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransition(OrderStatusShipped, OrderStatusCancelled))

	// skipping a step is illegal
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusShipped))
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusDelivered))

	// terminal states stay terminal
	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusCancelled, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusCancelled, OrderStatusConfirmed))
}

func TestTransitionTo(t *testing.T) {
	o := &Order{OrderRef: "ref-1", Status: OrderStatusPending}

	require.NoError(t, o.TransitionTo(OrderStatusConfirmed))
	assert.Equal(t, OrderStatusConfirmed, o.Status)

	err := o.TransitionTo(OrderStatusDelivered)
	require.Error(t, err)

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, OrderStatusConfirmed, invalid.From)
	assert.Equal(t, OrderStatusDelivered, invalid.To)
	assert.Equal(t, OrderStatusConfirmed, o.Status, "status must not change on a rejected transition")
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatus("bogus").IsTerminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.False(t, OrderStatus("ready_to_ship").Valid())

	assert.True(t, PaymentStatusRefunded.Valid())
	assert.False(t, PaymentStatus("chargeback").Valid())

	assert.True(t, PaymentMethodUPI.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
}
