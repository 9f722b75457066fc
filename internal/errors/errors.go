//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import (
	"errors"
	"fmt"
)

// InvalidStatusError indicates the status is missing or not a known value.
type InvalidStatusError struct {
	Value any
}

func (e InvalidStatusError) Error() string {
	if e.Value == nil {
		return "invalid status: missing"
	}
	return fmt.Sprintf("invalid status: %v", e.Value)
}

// NothingToDoError indicates a deleted task, which never produces a record.
type NothingToDoError struct{}

func (e NothingToDoError) Error() string {
	return "nothing to do: task is deleted"
}

// RequiredFieldError indicates a field the status requires is absent.
type RequiredFieldError struct {
	Field string
}

func (e RequiredFieldError) Error() string {
	return fmt.Sprintf("required property: %s", e.Field)
}

// IllegalFieldError indicates a field the status does not allow is present.
type IllegalFieldError struct {
	Field string
}

func (e IllegalFieldError) Error() string {
	return fmt.Sprintf("illegal property: %s", e.Field)
}

// InvalidFieldError indicates a field is allowed but fails its format.
type InvalidFieldError struct {
	Field string
	Value any
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// IsNothingToDo reports whether err is or wraps a NothingToDoError.
func IsNothingToDo(err error) bool {
	var target NothingToDoError
	return errors.As(err, &target)
}

// FieldOf returns the field named by a field-level error.
func FieldOf(err error) (string, bool) {
	var required RequiredFieldError
	if errors.As(err, &required) {
		return required.Field, true
	}
	var illegal IllegalFieldError
	if errors.As(err, &illegal) {
		return illegal.Field, true
	}
	var invalid InvalidFieldError
	if errors.As(err, &invalid) {
		return invalid.Field, true
	}
	return "", false
}
