package repository

import "errors"

// ErrNotFound is returned when a lookup by id or email matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique index rejects an insert.
var ErrDuplicate = errors.New("duplicate record")
