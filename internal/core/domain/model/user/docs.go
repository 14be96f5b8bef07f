// Package user contains the User aggregate, which owns the order-credit
// balance. Every credit mutation in the system goes through this aggregate:
// order creation debits one credit, cancellation and recharge confirmation
// credit back. The persistence layer is responsible for serializing
// concurrent mutations of the same user (row-level lock); this package is
// responsible for the business invariants themselves.
package user
