package services

import (
	"errors"
	"strings"

	"pickpoint/internal/core/domain/model/courier"
)

// ErrCourierSelectorIsNotConstructed is returned when using an improperly initialized CourierSelector.
var ErrCourierSelectorIsNotConstructed = errors.New("CourierSelector must be created via NewCourierSelector constructor")

// CourierSelector picks a courier for a freshly created order.
//
// Selection is best effort: it only reads availability flags and does not
// reserve the courier, so two concurrent orders may pick the same one. An
// order that found no available courier is created unassigned and picked up
// later by the backfill job.
type CourierSelector interface {
	// SelectCourier returns the available courier with the lowest identifier,
	// or nil when no courier is available.
	SelectCourier(couriers []*courier.Courier) (*courier.Courier, error)
}

var _ CourierSelector = &courierSelector{}

type courierSelector struct {
	isConstructed bool
}

// NewCourierSelector creates a CourierSelector.
func NewCourierSelector() CourierSelector {
	return &courierSelector{isConstructed: true}
}

func (s *courierSelector) SelectCourier(couriers []*courier.Courier) (*courier.Courier, error) {
	if !s.isConstructed {
		return nil, ErrCourierSelectorIsNotConstructed
	}

	var best *courier.Courier
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAvailable() {
			continue
		}
		// Lowest identifier wins, so the choice is deterministic for a
		// given set of candidates.
		if best == nil || strings.Compare(c.ID().String(), best.ID().String()) < 0 {
			best = c
		}
	}

	return best, nil
}
