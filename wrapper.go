package tester

import (
	"fmt"
	"reflect"
	"slices"
	"time"
)

// EventProcessor flushes the host toolkit's pending events so that widget
// state reflects the input simulated so far.
type EventProcessor func() error

// config is shared, unchanged, by a wrapper and every wrapper located from
// it.
type config struct {
	registries        []Registry
	builtin           []Registry
	delay             time.Duration
	autoProcessEvents bool
	processEvents     EventProcessor
	hooks             hooks
}

// Option configures a UIWrapper or a Tester.
type Option func(*config)

// WithRegistries appends registries to the lookup order. Registries added
// first are consulted first.
func WithRegistries(registries ...Registry) Option {
	return func(c *config) {
		c.registries = append(c.registries, registries...)
	}
}

// WithBuiltinRegistries adds registries consulted after every registry
// added with WithRegistries.
func WithBuiltinRegistries(registries ...Registry) Option {
	return func(c *config) {
		c.builtin = append(c.builtin, registries...)
	}
}

// WithDelay sets how long handlers pause before simulating input.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithAutoProcessEvents controls whether pending events are processed
// after every handler and before every solver. It is on by default and has
// no effect without an event processor.
func WithAutoProcessEvents(enabled bool) Option {
	return func(c *config) {
		c.autoProcessEvents = enabled
	}
}

// WithEventProcessor sets the function used to flush pending events.
func WithEventProcessor(fn EventProcessor) Option {
	return func(c *config) {
		c.processEvents = fn
	}
}

func newConfig(opts []Option) *config {
	c := &config{autoProcessEvents: true}
	for _, opt := range opts {
		opt(c)
	}
	c.registries = append(c.registries, c.builtin...)
	c.builtin = nil
	return c
}

// UIWrapper wraps a target and dispatches interactions and locators to the
// handlers and solvers of its registries.
//
// Registries are consulted in order and the first one supporting the
// (target type, argument type) pair wins. An error returned by the chosen
// handler or solver is passed to the caller unchanged; it never causes the
// next registry to be tried.
//
// UIWrapper is not safe for concurrent use. Like the widgets it drives, it
// belongs to the UI thread.
type UIWrapper struct {
	target any
	cfg    *config
}

// New wraps target.
//
// Example:
//
//	w := tester.New(button,
//	    tester.WithRegistries(termtest.Registries()...),
//	    tester.WithEventProcessor(screen.ProcessEvents),
//	)
//	err := w.Perform(command.MouseClick{})
func New(target any, opts ...Option) *UIWrapper {
	return &UIWrapper{target: target, cfg: newConfig(opts)}
}

// Target returns the wrapped target.
func (w *UIWrapper) Target() any {
	return w.target
}

// Delay returns the pause handlers take before simulating input.
func (w *UIWrapper) Delay() time.Duration {
	return w.cfg.delay
}

// Pause sleeps for Delay. Handlers call it before each simulated input.
func (w *UIWrapper) Pause() {
	if w.cfg.delay > 0 {
		time.Sleep(w.cfg.delay)
	}
}

// AutoProcessEvents reports whether pending events are processed
// automatically.
func (w *UIWrapper) AutoProcessEvents() bool {
	return w.cfg.autoProcessEvents
}

// Registries returns the registries in lookup order.
func (w *UIWrapper) Registries() []Registry {
	return append([]Registry(nil), w.cfg.registries...)
}

// Perform applies a command to the target.
func (w *UIWrapper) Perform(interaction any) error {
	_, err := w.dispatch(OpPerform, interaction)
	return err
}

// Inspect applies a query to the target and returns its result.
func (w *UIWrapper) Inspect(query any) (any, error) {
	return w.dispatch(OpInspect, query)
}

// InspectAs applies a query and asserts the result to R.
//
// Example:
//
//	text, err := tester.InspectAs[string](label, query.DisplayedText{})
func InspectAs[R any](w *UIWrapper, query any) (R, error) {
	var zero R
	v, err := w.Inspect(query)
	if err != nil {
		return zero, err
	}
	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("tester: %T returned %T, want %s", query, v, reflect.TypeFor[R]())
	}
	return r, nil
}

// Locate resolves location against the target and wraps the result. The new
// wrapper shares this wrapper's registries, delay, event processing and
// hooks.
func (w *UIWrapper) Locate(location any) (*UIWrapper, error) {
	call := Call{Op: OpLocate, Target: reflect.TypeOf(w.target), Argument: reflect.TypeOf(location)}

	solver, err := w.resolveSolver(call)
	if err != nil {
		w.cfg.hooks.callOnNotSupported(call, err)
		return nil, err
	}

	w.cfg.hooks.callOnDispatch(call)
	start := time.Now()
	var target any
	err = w.processEvents()
	if err == nil {
		target, err = solver(w, location)
	}
	duration := time.Since(start)
	if err != nil {
		w.cfg.hooks.callOnFailure(call, err, duration)
		return nil, err
	}
	w.cfg.hooks.callOnSuccess(call, duration)

	return &UIWrapper{target: target, cfg: w.cfg}, nil
}

// ProcessEvents flushes pending events through the configured event
// processor, if any.
func (w *UIWrapper) ProcessEvents() error {
	if w.cfg.processEvents == nil {
		return nil
	}
	return w.cfg.processEvents()
}

func (w *UIWrapper) processEvents() error {
	if !w.cfg.autoProcessEvents {
		return nil
	}
	return w.ProcessEvents()
}

// dispatch runs the handler for interaction and processes events
// afterwards.
func (w *UIWrapper) dispatch(op Operation, interaction any) (any, error) {
	call := Call{Op: op, Target: reflect.TypeOf(w.target), Argument: reflect.TypeOf(interaction)}

	handler, err := w.resolveHandler(call)
	if err != nil {
		w.cfg.hooks.callOnNotSupported(call, err)
		return nil, err
	}

	w.cfg.hooks.callOnDispatch(call)
	start := time.Now()
	result, err := handler(w, interaction)
	if err == nil {
		err = w.processEvents()
	}
	duration := time.Since(start)
	if err != nil {
		w.cfg.hooks.callOnFailure(call, err, duration)
		return nil, err
	}
	w.cfg.hooks.callOnSuccess(call, duration)

	return result, nil
}

// resolveHandler returns the handler of the first registry supporting the
// call, or an error listing what all registries support.
func (w *UIWrapper) resolveHandler(call Call) (Handler, error) {
	var supported []reflect.Type
	for _, r := range w.cfg.registries {
		types := r.Interactions(w.target)
		if slices.Contains(types, call.Argument) {
			return r.Handler(w.target, call.Argument)
		}
		supported = append(supported, types...)
	}
	return nil, &InteractionNotSupportedError{
		TargetType:      call.Target,
		InteractionType: call.Argument,
		Supported:       uniqueTypes(supported),
	}
}

// resolveSolver returns the solver of the first registry supporting the
// call, or an error listing what all registries support.
func (w *UIWrapper) resolveSolver(call Call) (Solver, error) {
	var supported []reflect.Type
	for _, r := range w.cfg.registries {
		types := r.Locations(w.target)
		if slices.Contains(types, call.Argument) {
			return r.Solver(w.target, call.Argument)
		}
		supported = append(supported, types...)
	}
	return nil, &LocationNotSupportedError{
		TargetType:   call.Target,
		LocationType: call.Argument,
		Supported:    uniqueTypes(supported),
	}
}

func uniqueTypes(types []reflect.Type) []reflect.Type {
	seen := make(map[reflect.Type]struct{}, len(types))
	for _, t := range types {
		seen[t] = struct{}{}
	}
	return sortedKeys(seen)
}
