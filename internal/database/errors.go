package database

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched (via errors.Is) by every lookup that finds no row.
var ErrNotFound = errors.New("not found")

// NotFoundError reports which entity and key a lookup missed.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, key any) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// QueryError wraps a failure reported by the store while running Op.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// RowShapeError is returned when a row does not have exactly the columns an
// entity expects, or a column holds a value of the wrong type.
type RowShapeError struct {
	Entity     string
	Missing    []string
	Unexpected []string
	Mismatched []string
}

func (e *RowShapeError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing columns "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected columns "+strings.Join(e.Unexpected, ", "))
	}
	if len(e.Mismatched) > 0 {
		parts = append(parts, "wrong value type for "+strings.Join(e.Mismatched, ", "))
	}
	return fmt.Sprintf("invalid %s row: %s", e.Entity, strings.Join(parts, "; "))
}
