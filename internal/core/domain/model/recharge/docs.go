// Package recharge contains the RechargeRecord aggregate and the immutable
// recharge plan table. A record is created pending when the user starts a
// top-up and is finalized exactly once: to success by the payment callback
// (which also credits the ledger in the same transaction) or to failed by
// expiry. Finalizing an already-terminal record returns ErrAlreadyFinalized
// so replayed payment callbacks can never grant credits twice.
package recharge
