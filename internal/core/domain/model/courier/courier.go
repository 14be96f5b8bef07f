package courier

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery courier.
//
// From this core's perspective a courier is read-only reference data: the
// availability flag says whether the courier is currently accepting orders,
// and courier selection is a query over that flag, never a reservation.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID

	// name is the human-readable name of the courier
	name string

	// phone is the courier's contact number (optional)
	phone string

	// available reports whether the courier is currently accepting orders
	available bool

	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier. New couriers start unavailable; availability
// is flipped by courier management outside this core.
func NewCourier(id kernel.UUID, name string, phone string) (*Courier, error) {
	return RestoreCourier(id, name, phone, false)
}

// RestoreCourier reconstructs a courier from persistent storage.
func RestoreCourier(id kernel.UUID, name string, phone string, available bool) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}
	c.phone = phone
	c.available = available

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// IsAvailable reports whether the courier is currently accepting orders.
func (c *Courier) IsAvailable() bool {
	return c.available
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
