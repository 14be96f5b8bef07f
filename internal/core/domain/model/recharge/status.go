package recharge

import (
	"fmt"
)

// Status represents the lifecycle state of a recharge record.
//
// State transitions:
//
//	Pending ──┬──> Success
//	          └──> Failed
//
// Success and Failed are terminal; each record leaves Pending exactly once.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the top-up was initiated and awaits payment confirmation.
	StatusPending

	// StatusSuccess means the payment was confirmed and credits were granted.
	StatusSuccess

	// StatusFailed means the payment never arrived (e.g. the record expired).
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusPending: "pending",
		StatusSuccess: "success",
		StatusFailed:  "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending: "pending",
		StatusSuccess: "success",
		StatusFailed:  "failed",
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid recharge status", s)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid recharge status", s)
	}
	return nil
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the record has been finalized.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}
