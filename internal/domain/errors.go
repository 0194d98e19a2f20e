package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrScreeningOverlap   = errors.New("screening overlaps an existing screening in the same room")
	ErrInvalidTimeRange   = errors.New("time range start must be before its end")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrNegativeMinutes    = errors.New("extra minutes must not be negative")
	ErrMovieNotFound      = errors.New("movie not found in catalog")
	ErrCatalogUnavailable = errors.New("movie catalog unavailable")
	ErrUnknownDuration    = errors.New("movie duration is unknown")
)

// NotFoundError reports a reference to an entity that does not exist.
// A screening pointing to a missing room or cinema is a data integrity fault.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// CatalogError is the failure variant of a movie catalog lookup.
type CatalogError struct {
	MovieID string
	Err     error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("movie catalog lookup for %s: %v", e.MovieID, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Reason classifies the failure for logs and metrics.
func (e *CatalogError) Reason() string {
	switch {
	case errors.Is(e.Err, ErrMovieNotFound):
		return "not_found"
	case errors.Is(e.Err, ErrCatalogUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}
