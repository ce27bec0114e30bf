package utils

import "fmt"

// Typed service errors. Handlers map these onto HTTP status codes with
// errors.As; everything else becomes a 500.

// NotFoundError indicates the referenced resource does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ForbiddenError indicates the actor is not a party to the resource.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// ConflictError indicates the request lost to current resource state
// (slot taken, illegal transition, feedback already set).
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// BadRequestError indicates invalid input or a time-window violation.
type BadRequestError struct {
	Reason string
}

func (e BadRequestError) Error() string {
	return e.Reason
}
