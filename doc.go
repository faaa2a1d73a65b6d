// Package tester drives user interface widgets in tests by dispatching
// typed interactions to handlers chosen at runtime.
//
// A test wraps a widget in a UIWrapper and asks it to perform a command
// (a click, a key press), inspect a query (the displayed text, whether a
// box is checked) or locate a nested widget (by name, by index). The
// wrapper finds a handler for the pair (type of target, type of argument)
// in an ordered list of registries and runs it. Tests never touch a
// toolkit directly.
//
// # Quick Start
//
//	screen, _ := term.NewScreen(80, 24)
//	screen.Add(form)
//
//	t := tester.NewTester(
//	    tester.WithBuiltinRegistries(termtest.Registries()...),
//	    tester.WithEventProcessor(screen.ProcessEvents),
//	)
//
//	button, _ := t.FindByName(form, "increment")
//	for i := 0; i < 5; i++ {
//	    _ = button.Perform(command.MouseClick{})
//	}
//
//	label, _ := t.FindByName(form, "count")
//	text, _ := tester.InspectAs[string](label, query.DisplayedText{})
//	// text == "5"
//
// # Interactions and Locators
//
// Interactions and locators are plain values whose type selects the
// handler. The command, query and locator packages hold the common ones;
// any type works.
//
//   - Commands change the UI and return no value.
//   - Queries read the UI and return a value.
//   - Locators resolve a nested target from a parent.
//
// # Registries
//
// A Registry answers, for a target, which interaction and locator types it
// supports and returns their handlers and solvers. Two implementations are
// provided:
//
//   - TargetRegistry: handlers keyed by exact target type. Registering the
//     same pair twice fails and keeps the first registration.
//   - DynamicRegistry: one handler set shared by every target a Predicate
//     accepts. It never supports locators.
//
// Use RegisterInteraction and RegisterLocation to register typed functions:
//
//	r := tester.NewTargetRegistry()
//	tester.RegisterInteraction(r, func(w *tester.UIWrapper, b *term.Button, _ command.MouseClick) (any, error) {
//	    return nil, b.Screen().InjectClick(b)
//	})
//
// # Dispatch
//
// Registries are consulted in order and the first one supporting the pair
// wins. If none does, the error lists every supported type across all
// registries:
//
//	var nse *tester.InteractionNotSupportedError
//	if errors.As(err, &nse) {
//	    fmt.Println(nse.Supported)
//	}
//
// Errors returned by the chosen handler reach the caller unchanged, so a
// DisabledError or LookupError from a handler is never mistaken for an
// unsupported interaction.
//
// A wrapper returned by Locate shares the registries, delay, event
// processing and hooks of its parent.
//
// # Events
//
// Handlers simulate input the way a user would, so its effect shows up
// only once the toolkit processes its events. With an EventProcessor
// configured, the wrapper processes pending events after every successful
// handler and before every solver. WithAutoProcessEvents(false) turns
// this off; call ProcessEvents explicitly then.
//
// # Hooks
//
// Hooks observe every dispatch without coupling to a logging system:
//
//	w := tester.New(form,
//	    tester.WithOnFailure(func(call tester.Call, err error, d time.Duration) {
//	        t.Logf("%s %s on %s failed: %v", call.Op, call.Argument, call.Target, err)
//	    }),
//	    tester.LogHooks(logrus.StandardLogger()),
//	)
//
// Available hooks:
//   - WithOnDispatch: Called just before a handler or solver runs
//   - WithOnSuccess: Called after a handler or solver succeeds
//   - WithOnFailure: Called after a handler or solver fails
//   - WithOnNotSupported: Called when no registry supports the call
//
// Multiple hooks of the same type are called in order.
//
// # Thread Safety
//
// Wrappers and registries belong to the UI thread and are not safe for
// concurrent use. Populate registries before dispatching through them.
package tester
