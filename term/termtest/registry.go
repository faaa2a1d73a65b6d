// Package termtest registers the term widgets with the tester dispatch
// core.
//
// Handlers simulate input by injecting native tcell events into the
// widget's screen. Like input on a real event loop, those events are
// delivered when the screen's events are processed, which a UIWrapper does
// after every handler unless auto-processing is turned off.
package termtest

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bjaus/tester"
	"github.com/bjaus/tester/command"
	"github.com/bjaus/tester/layout"
	"github.com/bjaus/tester/locator"
	"github.com/bjaus/tester/query"
	"github.com/bjaus/tester/term"
)

// Registries returns the registries for term widgets in lookup order: the
// per-widget registry first, then the shared fallback for any control.
// It panics if a registration fails, which only a programming error in this
// package can cause.
func Registries() []tester.Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return []tester.Registry{r, NewControlRegistry()}
}

// NewRegistry returns a TargetRegistry with the handlers and solvers of
// every term widget.
func NewRegistry() (*tester.TargetRegistry, error) {
	r := tester.NewTargetRegistry()
	for _, register := range []func(*tester.TargetRegistry) error{
		registerButton,
		registerLabel,
		registerTextField,
		registerCheckBox,
		registerRadioGrid,
		registerRadioItem,
		registerGroup,
		registerRangeField,
		registerSlider,
	} {
		if err := register(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewControlRegistry returns a DynamicRegistry answering IsEnabled and
// IsVisible for every target implementing term.Control.
func NewControlRegistry() *tester.DynamicRegistry {
	return tester.NewDynamicRegistry(
		tester.Implements[term.Control](),
		map[reflect.Type]tester.Handler{
			reflect.TypeFor[query.IsEnabled](): func(w *tester.UIWrapper, _ any) (any, error) {
				return w.Target().(term.Control).Enabled(), nil
			},
			reflect.TypeFor[query.IsVisible](): func(w *tester.UIWrapper, _ any) (any, error) {
				return w.Target().(term.Control).Visible(), nil
			},
		},
	)
}

func registerButton(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, b *term.Button, _ command.MouseClick) (any, error) {
			return nil, click(w, b)
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, b *term.Button, _ query.DisplayedText) (any, error) {
			return b.Text, nil
		}),
	)
}

func registerLabel(r *tester.TargetRegistry) error {
	return tester.RegisterInteraction(r, func(_ *tester.UIWrapper, l *term.Label, _ query.DisplayedText) (any, error) {
		return drawnText(l, l.Text()), nil
	})
}

func registerTextField(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, f *term.TextField, _ command.MouseClick) (any, error) {
			return nil, click(w, f)
		}),
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, f *term.TextField, _ command.MouseDClick) (any, error) {
			return nil, doubleClick(w, f)
		}),
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, f *term.TextField, c command.KeyClick) (any, error) {
			if err := editable(f, c); err != nil {
				return nil, err
			}
			return nil, keyClick(w, f, c.Key)
		}),
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, f *term.TextField, c command.KeySequence) (any, error) {
			if err := editable(f, c); err != nil {
				return nil, err
			}
			return nil, keySequence(w, f, c.Text)
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, f *term.TextField, _ query.DisplayedText) (any, error) {
			return f.Text(), nil
		}),
	)
}

func registerCheckBox(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, c *term.CheckBox, _ command.MouseClick) (any, error) {
			return nil, click(w, c)
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, c *term.CheckBox, _ query.IsChecked) (any, error) {
			return c.Checked(), nil
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, c *term.CheckBox, _ query.DisplayedText) (any, error) {
			return c.Text, nil
		}),
	)
}

func registerRadioGrid(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterLocation(r, func(_ *tester.UIWrapper, g *term.RadioGrid, loc locator.Index) (any, error) {
			rows, cols := g.Shape()
			slot, err := layout.ColumnMajorToRowMajor(loc.Index, g.Len(), rows, cols)
			if err != nil {
				return nil, &tester.LookupError{Location: loc, Err: err}
			}
			item, _ := g.Item(slot)
			return item, nil
		}),
		tester.RegisterLocation(r, func(_ *tester.UIWrapper, g *term.RadioGrid, loc locator.Cell) (any, error) {
			item, ok := g.ItemAt(loc.Row, loc.Column)
			if !ok {
				rows, cols := g.Shape()
				return nil, &tester.LookupError{
					Location: loc,
					Reason:   fmt.Sprintf("no item in a %dx%d grid of %d", rows, cols, g.Len()),
				}
			}
			return item, nil
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, g *term.RadioGrid, _ query.SelectedIndex) (any, error) {
			return g.Selected(), nil
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, g *term.RadioGrid, _ query.SelectedText) (any, error) {
			return g.SelectedText(), nil
		}),
	)
}

func registerRadioItem(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, item *term.RadioItem, _ command.MouseClick) (any, error) {
			return nil, click(w, item)
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, item *term.RadioItem, _ query.IsChecked) (any, error) {
			return item.Checked(), nil
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, item *term.RadioItem, _ query.DisplayedText) (any, error) {
			return item.Text(), nil
		}),
	)
}

func registerGroup(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterLocation(r, func(_ *tester.UIWrapper, g *term.Group, loc locator.TargetByName) (any, error) {
			child, ok := g.FindByName(loc.Name)
			if !ok {
				return nil, &tester.LookupError{Location: loc, Reason: fmt.Sprintf("no widget named %q", loc.Name)}
			}
			return child, nil
		}),
		tester.RegisterLocation(r, func(_ *tester.UIWrapper, g *term.Group, loc locator.TargetByID) (any, error) {
			child, ok := g.FindByID(loc.ID)
			if !ok {
				return nil, &tester.LookupError{Location: loc, Reason: fmt.Sprintf("no widget with id %q", loc.ID)}
			}
			return child, nil
		}),
		tester.RegisterLocation(r, func(_ *tester.UIWrapper, g *term.Group, loc locator.Index) (any, error) {
			children := g.Children()
			if loc.Index < 0 || loc.Index >= len(children) {
				return nil, &tester.LookupError{
					Location: loc,
					Reason:   fmt.Sprintf("group has %d children", len(children)),
				}
			}
			return children[loc.Index], nil
		}),
	)
}

func registerRangeField(r *tester.TargetRegistry) error {
	return tester.RegisterLocation(r, func(_ *tester.UIWrapper, rf *term.RangeField, loc locator.WidgetType) (any, error) {
		switch loc {
		case locator.Textbox:
			return rf.Field, nil
		case locator.Slider:
			return rf.Slider, nil
		default:
			return nil, &tester.LookupError{Location: loc, Reason: "range fields have a textbox and a slider"}
		}
	})
}

func registerSlider(r *tester.TargetRegistry) error {
	return all(
		tester.RegisterInteraction(r, func(w *tester.UIWrapper, s *term.Slider, c command.KeyClick) (any, error) {
			if !s.Enabled() {
				return nil, tester.NewDisabledError(s, c, "slider is disabled")
			}
			return nil, keyClick(w, s, c.Key)
		}),
		tester.RegisterInteraction(r, func(_ *tester.UIWrapper, s *term.Slider, _ query.DisplayedText) (any, error) {
			return strconv.Itoa(s.Value()), nil
		}),
	)
}

// all returns the first non-nil error.
func all(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// screenOf returns the screen w was added to.
func screenOf(w term.Widget) (*term.Screen, error) {
	s := w.Screen()
	if s == nil {
		return nil, errors.Errorf("termtest: %T is not on a screen", w)
	}
	return s, nil
}

func click(w *tester.UIWrapper, target term.Widget) error {
	s, err := screenOf(target)
	if err != nil {
		return err
	}
	w.Pause()
	return errors.Wrapf(s.InjectClick(target), "click %T", target)
}

func doubleClick(w *tester.UIWrapper, target term.Widget) error {
	s, err := screenOf(target)
	if err != nil {
		return err
	}
	w.Pause()
	return errors.Wrapf(s.InjectDoubleClick(target), "double click %T", target)
}

func keyClick(w *tester.UIWrapper, target term.Widget, key string) error {
	s, err := screenOf(target)
	if err != nil {
		return err
	}
	w.Pause()
	s.SetFocus(target)
	return errors.Wrapf(s.InjectKey(key), "key click on %T", target)
}

// keySequence types text one rune at a time.
func keySequence(w *tester.UIWrapper, target term.Widget, text string) error {
	s, err := screenOf(target)
	if err != nil {
		return err
	}
	s.SetFocus(target)
	for _, r := range text {
		w.Pause()
		s.InjectRune(r)
	}
	return nil
}

func editable(f *term.TextField, interaction any) error {
	switch {
	case !f.Enabled():
		return tester.NewDisabledError(f, interaction, "text field is disabled")
	case f.ReadOnly:
		return tester.NewDisabledError(f, interaction, "text field is read-only")
	}
	return nil
}

// drawnText reads what a widget shows on its screen, falling back to
// fallback when it is not drawn.
func drawnText(w term.Widget, fallback string) string {
	s, err := screenOf(w)
	if err != nil || !w.Visible() {
		return fallback
	}
	s.Draw()
	r := w.Bounds()
	return s.Text(r.X, r.Y, r.W)
}
