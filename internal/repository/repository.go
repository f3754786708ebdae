// Package repository defines the entity store interfaces consumed by the
// services, plus their Postgres implementations. An in-memory implementation
// for DSN-less runs and tests lives in the memory subpackage.
package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced entity id does not exist.
// Postgres implementations translate pgx.ErrNoRows into it.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a Create collides with an existing id.
// Postgres implementations translate unique violations into it.
var ErrConflict = errors.New("record already exists")

// NoLimit disables pagination for full-scan callers such as exports and
// reports. A zero Limit still means the default page size.
const NoLimit = -1

// timestampOrNil lets INSERT queries fall back to NOW() via COALESCE while
// preserving timestamps carried by snapshot imports.
func timestampOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
