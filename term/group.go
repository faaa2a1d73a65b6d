package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Group stacks its children vertically under an optional title.
type Group struct {
	Base
	Title string

	children []Widget
}

var _ Widget = &Group{}

// NewGroup creates a group named name holding children.
func NewGroup(name, title string, children ...Widget) *Group {
	g := &Group{Title: title, children: children}
	g.SetName(name)
	return g
}

// Children returns the group's children in order.
func (g *Group) Children() []Widget {
	return append([]Widget(nil), g.children...)
}

// Add appends children to the group.
func (g *Group) Add(children ...Widget) {
	g.children = append(g.children, children...)
	if s := g.Screen(); s != nil {
		for _, child := range children {
			s.attach(child)
		}
	}
}

// Find returns the first widget in the group's subtree accepted by match,
// searching depth first through every Container.
func (g *Group) Find(match func(w Widget) bool) (Widget, bool) {
	return findIn(g, match)
}

func findIn(c Container, match func(w Widget) bool) (Widget, bool) {
	for _, child := range c.Children() {
		if match(child) {
			return child, true
		}
		if sub, ok := child.(Container); ok {
			if found, ok := findIn(sub, match); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// FindByName returns the widget named name in the group's subtree.
func (g *Group) FindByName(name string) (Widget, bool) {
	return g.Find(func(w Widget) bool { return w.base().Name() == name })
}

// FindByID returns the widget with the given id in the group's subtree.
func (g *Group) FindByID(id string) (Widget, bool) {
	return g.Find(func(w Widget) bool { return w.base().ID() == id })
}

func (g *Group) titleRows() int {
	if g.Title == "" {
		return 0
	}
	return 1
}

func (g *Group) Size() (int, int) {
	width := utf8.RuneCountInString(g.Title)
	height := g.titleRows()
	for _, child := range g.children {
		w, h := child.Size()
		width = max(width, w)
		height += h
	}
	return width, height
}

func (g *Group) Place(x, y int) {
	w, h := g.Size()
	g.place(x, y, w, h)
	y += g.titleRows()
	for _, child := range g.children {
		child.Place(x, y)
		_, ch := child.Size()
		y += ch
	}
}

func (g *Group) Draw(scr tcell.Screen) {
	if g.Title == "" {
		return
	}
	r := g.Bounds()
	drawText(scr, r.X, r.Y, r.W, g.Title, styleFor(&g.Base).Bold(true))
}
