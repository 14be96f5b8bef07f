package recharge

import (
	"errors"
	"fmt"

	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPlansAreNotConstructed is returned when a Plans instance was not created via NewPlans.
	ErrPlansAreNotConstructed = errors.New("Plans must be created via NewPlans constructor")

	// ErrNoPlanForAmount is returned when a top-up amount matches no configured plan.
	ErrNoPlanForAmount = errors.New("no recharge plan matches the amount")
)

// Plan maps a recognized top-up amount to the number of credits it grants.
type Plan struct {
	Amount  decimal.Decimal
	Credits int
}

// Plans is the immutable lookup table of recognized recharge plans. It is
// built once at composition time and injected into the recharge use cases;
// nothing mutates it at runtime.
//
// Example:
//
//	plans, err := recharge.NewPlans([]recharge.Plan{
//	    {Amount: decimal.NewFromFloat(10.00), Credits: 7},
//	    {Amount: decimal.NewFromFloat(20.00), Credits: 15},
//	})
type Plans struct {
	credits map[string]int
}

// NewPlans builds the plan table. Amounts must be positive and unique,
// credits at least 1, and at least one plan must be configured.
func NewPlans(plans []Plan) (Plans, error) {
	if len(plans) == 0 {
		return Plans{}, errs.NewValueIsRequiredError("plans")
	}

	credits := make(map[string]int, len(plans))
	for _, p := range plans {
		if !p.Amount.IsPositive() {
			return Plans{}, errs.NewValueIsInvalidErrorWithCause("plan amount",
				fmt.Errorf("%s is not positive", p.Amount))
		}
		if p.Credits < 1 {
			return Plans{}, errs.NewValueIsInvalidErrorWithCause("plan credits",
				fmt.Errorf("%d is not greater than 0", p.Credits))
		}

		key := planKey(p.Amount)
		if _, ok := credits[key]; ok {
			return Plans{}, errs.NewValueIsInvalidErrorWithCause("plan amount",
				fmt.Errorf("duplicate plan for amount %s", key))
		}
		credits[key] = p.Credits
	}

	return Plans{credits: credits}, nil
}

// Validate ensures the table was built via NewPlans.
func (p Plans) Validate() error {
	if p.credits == nil {
		return ErrPlansAreNotConstructed
	}
	return nil
}

// CreditsFor returns the credits granted for a top-up of the given amount,
// or ErrNoPlanForAmount if the amount matches no configured plan.
func (p Plans) CreditsFor(amount decimal.Decimal) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	credits, ok := p.credits[planKey(amount)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoPlanForAmount, amount)
	}
	return credits, nil
}

// planKey canonicalizes an amount to two decimal places so 10, 10.0 and
// 10.00 address the same plan.
func planKey(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
