package tester

import "github.com/bjaus/tester/locator"

// Tester creates wrappers that all share one registry list and one set of
// settings.
type Tester struct {
	opts []Option
}

// NewTester creates a Tester. Registries given with WithRegistries are
// consulted before those given with WithBuiltinRegistries, so user
// registrations can take over from toolkit defaults.
//
// Example:
//
//	t := tester.NewTester(
//	    tester.WithBuiltinRegistries(termtest.Registries()...),
//	    tester.WithEventProcessor(screen.ProcessEvents),
//	)
//	name, err := t.FindByName(form, "name")
func NewTester(opts ...Option) *Tester {
	return &Tester{opts: append([]Option(nil), opts...)}
}

// Wrap wraps target with the tester's registries and settings.
func (t *Tester) Wrap(target any) *UIWrapper {
	return New(target, t.opts...)
}

// FindByName wraps target and locates its child named name.
func (t *Tester) FindByName(target any, name string) (*UIWrapper, error) {
	return t.Wrap(target).Locate(locator.TargetByName{Name: name})
}

// FindByID wraps target and locates its child with the given id.
func (t *Tester) FindByID(target any, id string) (*UIWrapper, error) {
	return t.Wrap(target).Locate(locator.TargetByID{ID: id})
}
