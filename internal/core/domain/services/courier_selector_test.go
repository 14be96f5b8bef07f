package services_test

import (
	"testing"

	"pickpoint/internal/core/domain/model/courier"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCourier(t *testing.T, id string, available bool) *courier.Courier {
	t.Helper()

	uid, err := kernel.UUIDFromString(id)
	require.NoError(t, err)
	c, err := courier.RestoreCourier(uid, "Courier "+id, "", available)
	require.NoError(t, err)
	return c
}

func TestCourierSelector_SelectCourier(t *testing.T) {
	selector := services.NewCourierSelector()

	t.Run("picks available courier with lowest identifier", func(t *testing.T) {
		low := buildCourier(t, "11111111-1111-1111-1111-111111111111", true)
		mid := buildCourier(t, "55555555-5555-5555-5555-555555555555", true)
		high := buildCourier(t, "99999999-9999-9999-9999-999999999999", true)

		selected, err := selector.SelectCourier([]*courier.Courier{high, low, mid})
		require.NoError(t, err)
		require.NotNil(t, selected)
		assert.True(t, selected.IsEqual(low))
	})

	t.Run("skips unavailable couriers", func(t *testing.T) {
		busy := buildCourier(t, "11111111-1111-1111-1111-111111111111", false)
		free := buildCourier(t, "99999999-9999-9999-9999-999999999999", true)

		selected, err := selector.SelectCourier([]*courier.Courier{busy, free})
		require.NoError(t, err)
		require.NotNil(t, selected)
		assert.True(t, selected.IsEqual(free))
	})

	t.Run("returns nil when no courier is available", func(t *testing.T) {
		busy := buildCourier(t, "11111111-1111-1111-1111-111111111111", false)

		selected, err := selector.SelectCourier([]*courier.Courier{busy})
		require.NoError(t, err)
		assert.Nil(t, selected)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		selected, err := selector.SelectCourier(nil)
		require.NoError(t, err)
		assert.Nil(t, selected)
	})

	t.Run("rejects invalid courier", func(t *testing.T) {
		_, err := selector.SelectCourier([]*courier.Courier{{}})
		require.ErrorIs(t, err, courier.ErrCourierIsNotConstructed)
	})
}
