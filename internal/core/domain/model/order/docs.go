// Package order contains the Order aggregate and its status state machine.
// The transition table in status.go is the single source of truth for which
// lifecycle moves are legal; stored status strings are translated to the
// closed Status type at the persistence boundary and never re-interpreted
// elsewhere.
package order
