package order_test

import (
	"testing"
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T) *order.Order {
	t.Helper()

	userID, err := kernel.NewUserID("user-1")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.GenerateOrderNo(time.Now()),
		userID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		"482913",
		"small parcel",
		decimal.NewFromFloat(2.00),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in waiting_pickup with no courier", func(t *testing.T) {
		o := buildOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusWaitingPickup, o.Status())
		assert.Nil(t, o.Courier())
		assert.True(t, decimal.NewFromFloat(2.00).Equal(o.Amount()))
	})

	t.Run("requires pickup code", func(t *testing.T) {
		userID, _ := kernel.NewUserID("user-1")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.GenerateOrderNo(time.Now()), userID,
			kernel.NewUUID(), kernel.NewUUID(),
			"", "small parcel", decimal.NewFromFloat(2.00), time.Now(),
		)
		require.ErrorIs(t, err, order.ErrPickupCodeIsRequired)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		userID, _ := kernel.NewUserID("user-1")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.GenerateOrderNo(time.Now()), userID,
			kernel.NewUUID(), kernel.NewUUID(),
			"482913", "small parcel", decimal.NewFromFloat(-1), time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		o := buildOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.AssignCourier(courierID))
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("assignment is immutable", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.AssignCourier(kernel.NewUUID()))

		err := o.AssignCourier(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrCourierAlreadyAssigned)
	})

	t.Run("rejected after pickup", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusWaitingDelivery))

		err := o.AssignCourier(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrIllegalTransition)
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o := buildOrder(t)
		var zero kernel.UUID
		require.Error(t, o.AssignCourier(zero))
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("full delivery path", func(t *testing.T) {
		o := buildOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusWaitingDelivery))
		require.NoError(t, o.TransitionTo(order.StatusWaitingPayment))
		require.NoError(t, o.TransitionTo(order.StatusCompleted))
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("custody path", func(t *testing.T) {
		o := buildOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusWaitingDelivery))
		require.NoError(t, o.TransitionTo(order.StatusInCustody))
		require.NoError(t, o.TransitionTo(order.StatusWaitingPayment))
	})

	t.Run("cannot complete from waiting_pickup", func(t *testing.T) {
		o := buildOrder(t)

		err := o.TransitionTo(order.StatusCompleted)
		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.StatusWaitingPickup, o.Status())
	})

	t.Run("cancelled is immutable", func(t *testing.T) {
		o := buildOrder(t)
		require.NoError(t, o.TransitionTo(order.StatusCancelled))

		for _, target := range []order.Status{
			order.StatusWaitingPickup,
			order.StatusWaitingDelivery,
			order.StatusWaitingPayment,
			order.StatusCompleted,
			order.StatusCancelled,
		} {
			require.ErrorIs(t, o.TransitionTo(target), order.ErrIllegalTransition)
		}
		assert.Equal(t, order.StatusCancelled, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores status and courier", func(t *testing.T) {
		userID, _ := kernel.NewUserID("user-1")
		courierID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.GenerateOrderNo(time.Now()), userID,
			kernel.NewUUID(), kernel.NewUUID(), &courierID,
			"482913", "small parcel", decimal.NewFromFloat(2.00),
			order.StatusWaitingDelivery, time.Now(),
		)
		require.NoError(t, err)
		assert.Equal(t, order.StatusWaitingDelivery, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		userID, _ := kernel.NewUserID("user-1")
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.GenerateOrderNo(time.Now()), userID,
			kernel.NewUUID(), kernel.NewUUID(), nil,
			"482913", "small parcel", decimal.NewFromFloat(2.00),
			order.StatusUnknown, time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
}
