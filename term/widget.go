package term

import "github.com/gdamore/tcell/v2"

// Rect is a rectangle of screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the cell in the middle of r.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Widget is an element a Screen lays out, draws and routes events to.
type Widget interface {
	Control

	// Size returns the cells the widget wants.
	Size() (width, height int)

	// Place positions the widget, and any children, at (x, y).
	Place(x, y int)

	// Bounds returns the area assigned by the last Place.
	Bounds() Rect

	// Draw paints the widget onto scr.
	Draw(scr tcell.Screen)

	// Screen returns the screen the widget was added to, or nil.
	Screen() *Screen

	attach(s *Screen)
	base() *Base
}

// Control is implemented by every widget. Disabled widgets ignore input and
// hidden widgets are neither drawn nor hit by the mouse.
type Control interface {
	Enabled() bool
	Visible() bool
}

// Clicker is implemented by widgets that react to a primary button click.
type Clicker interface {
	Click()
}

// DoubleClicker is implemented by widgets that react to a double click.
type DoubleClicker interface {
	DoubleClick()
}

// KeyHandler is implemented by widgets that take keyboard focus.
type KeyHandler interface {
	HandleKey(ev *tcell.EventKey)
}

// Container is implemented by widgets holding other widgets.
type Container interface {
	Children() []Widget
}

// Base carries the state every widget shares. Widgets embed it.
type Base struct {
	name     string
	id       string
	disabled bool
	hidden   bool
	bounds   Rect
	screen   *Screen
}

// Name returns the widget's name, used by name lookups.
func (b *Base) Name() string { return b.name }

// SetName sets the widget's name.
func (b *Base) SetName(name string) { b.name = name }

// ID returns the widget's id, used by id lookups.
func (b *Base) ID() string { return b.id }

// SetID sets the widget's id.
func (b *Base) SetID(id string) { b.id = id }

// Enabled reports whether the widget accepts input.
func (b *Base) Enabled() bool { return !b.disabled }

// SetEnabled enables or disables the widget.
func (b *Base) SetEnabled(enabled bool) { b.disabled = !enabled }

// Visible reports whether the widget is shown.
func (b *Base) Visible() bool { return !b.hidden }

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(visible bool) { b.hidden = !visible }

// Bounds returns the area assigned by the last layout.
func (b *Base) Bounds() Rect { return b.bounds }

// Screen returns the screen the widget was added to, or nil.
func (b *Base) Screen() *Screen { return b.screen }

func (b *Base) attach(s *Screen) { b.screen = s }

func (b *Base) base() *Base { return b }

func (b *Base) place(x, y, w, h int) {
	b.bounds = Rect{X: x, Y: y, W: w, H: h}
}

// drawText writes s left to right from (x, y), clipped to width cells.
func drawText(scr tcell.Screen, x, y, width int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		scr.SetContent(x+i, y, r, nil, style)
		i++
	}
}

func styleFor(b *Base) tcell.Style {
	if b.disabled {
		return tcell.StyleDefault.Dim(true)
	}
	return tcell.StyleDefault
}
