package common

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// DomainError is a business-rule failure that already knows the HTTP status it
// should be rendered with. Services return it for not-found and bad-input
// conditions; the handler layer renders Message under the matching Status and
// treats every other error as a 500.
type DomainError struct {
	Status  int
	Message string
}

func (e DomainError) Error() string {
	return e.Message
}

// NotFound builds a 404 DomainError.
func NotFound(msg string) error {
	return DomainError{Status: http.StatusNotFound, Message: msg}
}

// BadRequest builds a 400 DomainError.
func BadRequest(msg string) error {
	return DomainError{Status: http.StatusBadRequest, Message: msg}
}

// Postgres error codes the API translates into client errors. Anything else
// coming out of the driver stays a server error.
const (
	pqInvalidTextRepresentation = "22P02"
	pqNotNullViolation          = "23502"
	pqForeignKeyViolation       = "23503"
	pqUniqueViolation           = "23505"
)

// ClassifySQLError converts the constraint-violation classes reported by
// Postgres into DomainErrors: malformed input syntax and missing required
// columns become 400s, a dangling foreign key reference becomes a 404, and a
// uniqueness violation (duplicate topic slug) becomes a 400. Unrecognised
// errors are returned untouched so they surface as a 500 at the boundary.
func ClassifySQLError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqInvalidTextRepresentation, pqNotNullViolation:
		return BadRequest("Bad request")
	case pqForeignKeyViolation:
		return NotFound("Not found")
	case pqUniqueViolation:
		return BadRequest("Bad request")
	default:
		return err
	}
}

// ForeignKeyError reports whether err is a foreign key violation on the named
// constraint, for callers that want a more specific message than the generic
// classification above.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqForeignKeyViolation && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// UniqueViolation reports whether err is a uniqueness violation on the named
// constraint.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqUniqueViolation && pqErr.Constraint == name {
			return true
		}
	}

	return false
}
