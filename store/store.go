// Package store holds the persistence adapters, one per resource collection.
// Every query is scoped by the owning user id, so a record belonging to
// another user behaves exactly like a missing one.
package store

import "errors"

// ErrNotFound is returned when a record does not exist or is owned by a
// different user.
var ErrNotFound = errors.New("record not found")
