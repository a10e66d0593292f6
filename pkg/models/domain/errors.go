package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is the single failure kind the dashboard surfaces to
// users: a project, period or report that does not exist (or an empty
// listing where at least one entry is required).
type NotFoundError struct {
	Entity string
	Path   string
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found at %q", e.Entity, e.Path)
}

func NewNotFoundError(entity, path string) *NotFoundError {
	return &NotFoundError{Entity: entity, Path: path}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
