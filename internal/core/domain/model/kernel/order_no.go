package kernel

import (
	"fmt"
	"math/rand/v2"
	"time"

	"pickpoint/internal/pkg/errs"
)

// orderNoLength is the total length of an order number:
// 14 digits of timestamp (yyyymmddHHMMSS) plus a 4-digit random suffix.
const orderNoLength = 18

// ErrOrderNoIsRequired indicates an empty order number.
var ErrOrderNoIsRequired = errs.NewValueIsRequiredError("orderNo")

// OrderNo is the business-facing order number printed on labels and used by
// clients to address an order. The generation scheme (second-resolution
// timestamp plus a short random suffix) can collide under load, so the number
// is unique-constrained in the store and callers regenerate on conflict
// rather than trusting the scheme.
//
// Example:
//
//	no := kernel.GenerateOrderNo(time.Now())
//	fmt.Println(no.String()) // e.g. "202601021504051234"
type OrderNo struct {
	value string
}

// GenerateOrderNo produces a fresh order number for the given creation time.
// Successive calls with the same timestamp may still differ in the random
// suffix; uniqueness is enforced by the store, not by this function.
func GenerateOrderNo(at time.Time) OrderNo {
	return OrderNo{
		value: at.Format("20060102150405") + fmt.Sprintf("%04d", rand.IntN(10000)),
	}
}

// OrderNoFromString reconstructs an order number from its string form,
// e.g. when parsing a request path or loading from persistence.
func OrderNoFromString(s string) (OrderNo, error) {
	if s == "" {
		return OrderNo{}, ErrOrderNoIsRequired
	}
	if len(s) != orderNoLength {
		return OrderNo{}, errs.NewValueIsInvalidErrorWithCause("orderNo",
			fmt.Errorf("%q is not %d characters long", s, orderNoLength))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return OrderNo{}, errs.NewValueIsInvalidErrorWithCause("orderNo",
				fmt.Errorf("%q contains a non-digit character", s))
		}
	}
	return OrderNo{value: s}, nil
}

// String returns the order number digits.
func (n OrderNo) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n OrderNo) IsEqual(other OrderNo) bool {
	return n.value == other.value
}

// Validate checks the order number is non-empty.
func (n OrderNo) Validate() error {
	if n.value == "" {
		return ErrOrderNoIsRequired
	}
	return nil
}
