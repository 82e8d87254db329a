package repository

import "errors"

// ErrNotFound is returned when no owner-scoped record matches. The
// usecase layer translates it into the caller-facing taxonomy.
var ErrNotFound = errors.New("record not found")
