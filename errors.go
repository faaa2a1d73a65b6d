package tester

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNotSupported matches InteractionNotSupportedError and
	// LocationNotSupportedError with errors.Is.
	ErrNotSupported = errors.New("tester: not supported")

	// ErrDisabled matches DisabledError with errors.Is.
	ErrDisabled = errors.New("tester: target disabled")

	// ErrLookup matches LookupError with errors.Is.
	ErrLookup = errors.New("tester: lookup failed")

	// ErrDuplicate matches DuplicateRegistrationError with errors.Is.
	ErrDuplicate = errors.New("tester: duplicate registration")
)

// InteractionNotSupportedError is returned when no registry provides a
// handler for an interaction on a target type. Supported lists the
// interaction types that are available for the target instead.
type InteractionNotSupportedError struct {
	TargetType      reflect.Type
	InteractionType reflect.Type
	Supported       []reflect.Type
}

func (e *InteractionNotSupportedError) Error() string {
	return fmt.Sprintf("%s is not supported by %s. Supported these: [%s]",
		typeName(e.InteractionType), typeName(e.TargetType), typeNames(e.Supported))
}

func (e *InteractionNotSupportedError) Is(target error) bool { return target == ErrNotSupported }

// LocationNotSupportedError is returned when no registry provides a solver
// for a locator on a target type. Supported lists the locator types that
// are available for the target instead.
type LocationNotSupportedError struct {
	TargetType   reflect.Type
	LocationType reflect.Type
	Supported    []reflect.Type
}

func (e *LocationNotSupportedError) Error() string {
	return fmt.Sprintf("location %s is not supported for %s. Supported these: [%s]",
		typeName(e.LocationType), typeName(e.TargetType), typeNames(e.Supported))
}

func (e *LocationNotSupportedError) Is(target error) bool { return target == ErrNotSupported }

// DuplicateRegistrationError is returned when a registry already holds an
// entry for the same target and interaction (or locator) type. Kind is
// either "interaction" or "location".
type DuplicateRegistrationError struct {
	TargetType reflect.Type
	Type       reflect.Type
	Kind       string
}

func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("a %s handler for %s is already registered for %s",
		e.Kind, typeName(e.Type), typeName(e.TargetType))
}

func (e *DuplicateRegistrationError) Is(target error) bool { return target == ErrDuplicate }

// DisabledError is returned by handlers when the target exists and supports
// the interaction but cannot accept it right now, e.g. a read-only field.
type DisabledError struct {
	TargetType  reflect.Type
	Interaction reflect.Type
	Reason      string
}

// NewDisabledError describes target refusing interaction.
func NewDisabledError(target, interaction any, reason string) *DisabledError {
	return &DisabledError{
		TargetType:  reflect.TypeOf(target),
		Interaction: reflect.TypeOf(interaction),
		Reason:      reason,
	}
}

func (e *DisabledError) Error() string {
	msg := fmt.Sprintf("%s cannot accept %s", typeName(e.TargetType), typeName(e.Interaction))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *DisabledError) Is(target error) bool { return target == ErrDisabled }

// LookupError is returned by solvers when a locator does not resolve to an
// existing element. Err, if set, is the underlying cause.
type LookupError struct {
	Location any
	Reason   string
	Err      error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("cannot locate %#v", e.Location)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Is(target error) bool { return target == ErrLookup }

func (e *LookupError) Unwrap() error { return e.Err }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func typeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = typeName(t)
	}
	return strings.Join(names, ", ")
}
