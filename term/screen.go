package term

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// DoubleClickTime is the longest gap between two clicks on the same widget
// that still counts as a double click.
const DoubleClickTime = 500 * time.Millisecond

// ErrClosed is returned when events are processed after Close.
var ErrClosed = errors.New("term: screen closed")

// Screen lays out widgets on a simulated terminal and routes native tcell
// events to them.
//
// Input injected into the screen stays queued until ProcessEvents runs, the
// way a real event loop only delivers input when it turns. The queue is
// unbounded, so injecting never blocks. Screen is not safe for concurrent
// use.
type Screen struct {
	sim     tcell.SimulationScreen
	pending []tcell.Event
	closed  bool
	widgets []Widget
	focus   Widget
	pressed Widget
	clicks  *clickTracker
}

// NewScreen creates a simulated terminal of width × height cells.
func NewScreen(width, height int) (*Screen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, errors.Wrap(err, "init simulation screen")
	}
	sim.SetSize(width, height)
	sim.EnableMouse()

	return &Screen{
		sim:    sim,
		clicks: newClickTracker(DoubleClickTime),
	}, nil
}

// Close releases the simulated terminal.
func (s *Screen) Close() {
	s.closed = true
	s.pending = nil
	s.sim.Fini()
}

// Add stacks widgets below the ones already added.
func (s *Screen) Add(widgets ...Widget) {
	for _, w := range widgets {
		s.attach(w)
		s.widgets = append(s.widgets, w)
	}
	s.layout()
}

// Focus returns the widget receiving key events, or nil.
func (s *Screen) Focus() Widget {
	return s.focus
}

// SetFocus directs key events to w.
func (s *Screen) SetFocus(w Widget) {
	s.focus = w
}

// Size returns the screen dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.sim.Size()
}

// Text returns the characters drawn in the row y from column x over width
// cells, with trailing blanks removed.
func (s *Screen) Text(x, y, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		r, _, _, _ := s.sim.GetContent(x+i, y) //nolint:staticcheck // GetContent is the correct API
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

// InjectClick queues a press and release of the primary button over the
// middle of w.
func (s *Screen) InjectClick(w Widget) error {
	x, y, err := s.pointAt(w)
	if err != nil {
		return err
	}
	s.pending = append(s.pending,
		tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone),
	)
	return nil
}

// InjectDoubleClick queues two clicks over the middle of w.
func (s *Screen) InjectDoubleClick(w Widget) error {
	if err := s.InjectClick(w); err != nil {
		return err
	}
	return s.InjectClick(w)
}

// InjectKey queues a key press for the focused widget. name is a key name
// understood by ParseKey.
func (s *Screen) InjectKey(name string) error {
	key, r, err := ParseKey(name)
	if err != nil {
		return err
	}
	s.pending = append(s.pending, tcell.NewEventKey(key, r, tcell.ModNone))
	return nil
}

// InjectRune queues typing r.
func (s *Screen) InjectRune(r rune) {
	s.pending = append(s.pending, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// Pending returns the number of injected events not yet processed.
func (s *Screen) Pending() int {
	return len(s.pending)
}

// ProcessEvents delivers every queued event to the widgets and redraws.
// It returns once the events injected before the call are handled.
//
// Queued input goes through the simulated terminal's bounded event queue in
// batches that fit, so any amount of pending input is delivered without
// blocking.
func (s *Screen) ProcessEvents() error {
	if s.closed {
		return ErrClosed
	}
	for {
		for len(s.pending) > 0 {
			if err := s.sim.PostEvent(s.pending[0]); err != nil {
				if errors.Is(err, tcell.ErrEventQFull) {
					break
				}
				return errors.Wrap(err, "post event")
			}
			s.pending = s.pending[1:]
		}
		for s.sim.HasPendingEvent() {
			s.handle(s.sim.PollEvent())
		}
		if len(s.pending) == 0 {
			break
		}
	}
	s.Draw()
	return nil
}

// Draw lays out and repaints every widget.
func (s *Screen) Draw() {
	s.layout()
	s.sim.Clear()
	for _, w := range s.widgets {
		drawWidget(s.sim, w)
	}
	s.sim.Show()
}

func drawWidget(scr tcell.Screen, w Widget) {
	if !w.Visible() {
		return
	}
	w.Draw(scr)
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			drawWidget(scr, child)
		}
	}
}

func (s *Screen) attach(w Widget) {
	w.attach(s)
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			s.attach(child)
		}
	}
}

func (s *Screen) layout() {
	y := 0
	for _, w := range s.widgets {
		w.Place(0, y)
		_, h := w.Size()
		y += h
	}
}

// pointAt returns the middle cell of w, refusing widgets that are hidden or
// off screen.
func (s *Screen) pointAt(w Widget) (int, int, error) {
	if w.base().Screen() != s {
		return 0, 0, errors.Errorf("term: %T is not on this screen", w)
	}
	s.layout()
	if !visible(w) {
		return 0, 0, errors.Errorf("term: %T %q is hidden", w, w.base().Name())
	}
	bounds := w.Bounds()
	width, height := s.sim.Size()
	if bounds.Empty() || bounds.X >= width || bounds.Y >= height {
		return 0, 0, errors.Errorf("term: %T %q is off screen at %+v", w, w.base().Name(), bounds)
	}
	x, y := bounds.Center()
	return x, y, nil
}

// visible reports whether w and every container holding it are shown.
func visible(w Widget) bool {
	s := w.base().Screen()
	if s == nil {
		return w.Visible()
	}
	for _, root := range s.widgets {
		if path := findPath(root, w); path != nil {
			for _, p := range path {
				if !p.Visible() {
					return false
				}
			}
			return true
		}
	}
	return false
}

func findPath(root, target Widget) []Widget {
	if root == target {
		return []Widget{root}
	}
	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			if path := findPath(child, target); path != nil {
				return append([]Widget{root}, path...)
			}
		}
	}
	return nil
}

// hit returns the innermost visible widget covering (x, y).
func (s *Screen) hit(x, y int) Widget {
	for _, w := range s.widgets {
		if found := hitWidget(w, x, y); found != nil {
			return found
		}
	}
	return nil
}

func hitWidget(w Widget, x, y int) Widget {
	if !w.Visible() || !w.Bounds().Contains(x, y) {
		return nil
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			if found := hitWidget(child, x, y); found != nil {
				return found
			}
		}
	}
	return w
}

func (s *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventKey:
		if s.focus == nil || !s.focus.Enabled() {
			return
		}
		if h, ok := s.focus.(KeyHandler); ok {
			h.HandleKey(ev)
		}
	case *tcell.EventResize:
		s.sim.Sync()
	}
}

// handleMouse turns press and release pairs on the same widget into clicks.
func (s *Screen) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	target := s.hit(x, y)

	if ev.Buttons()&tcell.Button1 != 0 {
		s.pressed = target
		if _, ok := target.(KeyHandler); ok && target.Enabled() {
			s.focus = target
		}
		return
	}

	if ev.Buttons() != tcell.ButtonNone || s.pressed == nil {
		return
	}
	pressed := s.pressed
	s.pressed = nil
	if pressed != target || !target.Enabled() {
		return
	}

	if c, ok := target.(Clicker); ok {
		c.Click()
	}
	if s.clicks.record(target, ev.When()) == 2 {
		if dc, ok := target.(DoubleClicker); ok {
			dc.DoubleClick()
		}
	}
}
