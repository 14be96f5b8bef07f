// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID, UserID) and the order number value object with its
// generation scheme. All types are immutable and validate themselves, so the
// rest of the domain can rely on a constructed value being well-formed.
package kernel
