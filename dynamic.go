package tester

import "reflect"

// DynamicRegistry grants one shared set of handlers to every target its
// predicate accepts, regardless of the target's concrete type.
//
// It is meant as a safety net for capabilities many target types have in
// common, such as being enabled or visible. It never supports locators.
type DynamicRegistry struct {
	canSupport Predicate
	handlers   map[reflect.Type]Handler
}

// NewDynamicRegistry creates a DynamicRegistry that offers handlers, keyed
// by interaction type, to the targets accepted by canSupport.
//
// Example:
//
//	reg := tester.NewDynamicRegistry(
//	    tester.Implements[term.Control](),
//	    map[reflect.Type]tester.Handler{
//	        reflect.TypeFor[query.IsEnabled](): isEnabled,
//	    },
//	)
func NewDynamicRegistry(canSupport Predicate, handlers map[reflect.Type]Handler) *DynamicRegistry {
	copied := make(map[reflect.Type]Handler, len(handlers))
	for k, v := range handlers {
		copied[k] = v
	}
	return &DynamicRegistry{canSupport: canSupport, handlers: copied}
}

// Interactions returns the shared interaction types if the predicate
// accepts target, and none otherwise.
func (r *DynamicRegistry) Interactions(target any) []reflect.Type {
	if !r.canSupport.Match(target) {
		return nil
	}
	return sortedKeys(r.handlers)
}

// Handler returns the shared handler for interaction if the predicate
// accepts target.
func (r *DynamicRegistry) Handler(target any, interaction reflect.Type) (Handler, error) {
	if r.canSupport.Match(target) {
		if handler, ok := r.handlers[interaction]; ok {
			return handler, nil
		}
	}
	return nil, &InteractionNotSupportedError{
		TargetType:      reflect.TypeOf(target),
		InteractionType: interaction,
		Supported:       r.Interactions(target),
	}
}

// Locations always returns no locator types.
func (r *DynamicRegistry) Locations(any) []reflect.Type {
	return nil
}

// Solver always fails with *LocationNotSupportedError.
func (r *DynamicRegistry) Solver(target any, location reflect.Type) (Solver, error) {
	return nil, &LocationNotSupportedError{
		TargetType:   reflect.TypeOf(target),
		LocationType: location,
	}
}
