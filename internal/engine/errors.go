package engine

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskCompleted = errors.New("task is already completed")
	ErrAmbiguousID   = errors.New("task id prefix is ambiguous")
)

// ValidationError reports bad caller input and should be shown to the user.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
