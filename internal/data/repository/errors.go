// Package repository holds the pgx-backed stores. Sentinel errors defined
// here let the service layer distinguish lost races from plain failures
// without parsing error strings.
package repository

import "errors"

// ErrTableUnavailable is returned when a conditional table claim affects
// zero rows: the table was already taken by a concurrent booking.
var ErrTableUnavailable = errors.New("table not available")
