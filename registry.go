package tester

import (
	"reflect"
	"slices"
	"strings"
)

// Handler performs or inspects an interaction on the target of w.
// Commands return a nil value; queries return what they read.
type Handler func(w *UIWrapper, interaction any) (any, error)

// Solver resolves a locator against the target of w and returns the
// nested target.
type Solver func(w *UIWrapper, location any) (any, error)

// Registry resolves interactions and locators for a target.
//
// Interactions and Locations report what the registry supports for target.
// Handler and Solver return *InteractionNotSupportedError and
// *LocationNotSupportedError when the requested type is not among them.
type Registry interface {
	Interactions(target any) []reflect.Type
	Handler(target any, interaction reflect.Type) (Handler, error)
	Locations(target any) []reflect.Type
	Solver(target any, location reflect.Type) (Solver, error)
}

// TargetRegistry maps exact target types to handlers and solvers.
//
// Lookup uses the dynamic type of the target as is: a handler registered
// for *Button does not cover a type that embeds *Button, nor is it found
// through an interface the target implements. Every concrete target type
// is registered on its own; use DynamicRegistry for behavior shared by
// many types.
//
// TargetRegistry is populated before use and read-only afterwards. It is
// not safe for concurrent registration.
type TargetRegistry struct {
	handlers map[reflect.Type]map[reflect.Type]Handler
	solvers  map[reflect.Type]map[reflect.Type]Solver
}

// NewTargetRegistry creates an empty TargetRegistry.
func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{
		handlers: make(map[reflect.Type]map[reflect.Type]Handler),
		solvers:  make(map[reflect.Type]map[reflect.Type]Solver),
	}
}

// RegisterInteraction adds handler for interactions of interactionType on
// targets of targetType. Registering the same pair twice fails with
// *DuplicateRegistrationError and keeps the first handler.
func (r *TargetRegistry) RegisterInteraction(targetType, interactionType reflect.Type, handler Handler) error {
	byInteraction, ok := r.handlers[targetType]
	if !ok {
		byInteraction = make(map[reflect.Type]Handler)
		r.handlers[targetType] = byInteraction
	}
	if _, exists := byInteraction[interactionType]; exists {
		return &DuplicateRegistrationError{TargetType: targetType, Type: interactionType, Kind: "interaction"}
	}
	byInteraction[interactionType] = handler
	return nil
}

// RegisterLocation adds solver for locators of locationType on targets of
// targetType. Registering the same pair twice fails with
// *DuplicateRegistrationError and keeps the first solver.
func (r *TargetRegistry) RegisterLocation(targetType, locationType reflect.Type, solver Solver) error {
	byLocation, ok := r.solvers[targetType]
	if !ok {
		byLocation = make(map[reflect.Type]Solver)
		r.solvers[targetType] = byLocation
	}
	if _, exists := byLocation[locationType]; exists {
		return &DuplicateRegistrationError{TargetType: targetType, Type: locationType, Kind: "location"}
	}
	byLocation[locationType] = solver
	return nil
}

// Interactions returns the interaction types registered for the type of
// target, sorted by name. Unknown targets have none.
func (r *TargetRegistry) Interactions(target any) []reflect.Type {
	return sortedKeys(r.handlers[reflect.TypeOf(target)])
}

// Handler returns the handler for interaction on the type of target.
func (r *TargetRegistry) Handler(target any, interaction reflect.Type) (Handler, error) {
	targetType := reflect.TypeOf(target)
	handler, ok := r.handlers[targetType][interaction]
	if !ok {
		return nil, &InteractionNotSupportedError{
			TargetType:      targetType,
			InteractionType: interaction,
			Supported:       r.Interactions(target),
		}
	}
	return handler, nil
}

// Locations returns the locator types registered for the type of target,
// sorted by name. Unknown targets have none.
func (r *TargetRegistry) Locations(target any) []reflect.Type {
	return sortedKeys(r.solvers[reflect.TypeOf(target)])
}

// Solver returns the solver for location on the type of target.
func (r *TargetRegistry) Solver(target any, location reflect.Type) (Solver, error) {
	targetType := reflect.TypeOf(target)
	solver, ok := r.solvers[targetType][location]
	if !ok {
		return nil, &LocationNotSupportedError{
			TargetType:   targetType,
			LocationType: location,
			Supported:    r.Locations(target),
		}
	}
	return solver, nil
}

// TargetTypes returns every target type with at least one registration,
// sorted by name.
func (r *TargetRegistry) TargetTypes() []reflect.Type {
	seen := make(map[reflect.Type]struct{}, len(r.handlers)+len(r.solvers))
	for t := range r.handlers {
		seen[t] = struct{}{}
	}
	for t := range r.solvers {
		seen[t] = struct{}{}
	}
	return sortedKeys(seen)
}

// RegisterInteraction registers a typed handler for targets of type T and
// interactions of type I. The handler receives the target and interaction
// already asserted to their types.
//
// This is a package-level function (not a method) because methods cannot
// have type parameters.
//
// Example:
//
//	tester.RegisterInteraction(r, func(w *tester.UIWrapper, b *term.Button, _ command.MouseClick) (any, error) {
//	    return nil, b.Screen().InjectClick(b)
//	})
func RegisterInteraction[T, I any](r *TargetRegistry, fn func(w *UIWrapper, target T, interaction I) (any, error)) error {
	return r.RegisterInteraction(reflect.TypeFor[T](), reflect.TypeFor[I](), func(w *UIWrapper, interaction any) (any, error) {
		target, _ := w.Target().(T)
		typed, _ := interaction.(I)
		return fn(w, target, typed)
	})
}

// RegisterLocation registers a typed solver for targets of type T and
// locators of type L.
func RegisterLocation[T, L any](r *TargetRegistry, fn func(w *UIWrapper, target T, location L) (any, error)) error {
	return r.RegisterLocation(reflect.TypeFor[T](), reflect.TypeFor[L](), func(w *UIWrapper, location any) (any, error) {
		target, _ := w.Target().(T)
		typed, _ := location.(L)
		return fn(w, target, typed)
	})
}

func sortedKeys[V any](m map[reflect.Type]V) []reflect.Type {
	keys := make([]reflect.Type, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortTypes(keys)
	return keys
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(typeName(a), typeName(b))
	})
}
