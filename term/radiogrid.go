package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/bjaus/tester/layout"
)

// RadioGrid shows mutually exclusive choices over a number of columns.
//
// The grid is built row by row but its choices read column by column, so
// with four columns and ten choices the choices sit at:
//
//	0  3  6  8
//	1  4  7  9
//	2  5
//
// Items are reachable by physical position only, through Item and ItemAt.
type RadioGrid struct {
	Base
	OnChange func(index int)

	options  []string
	rows     int
	cols     int
	slots    []*RadioItem
	selected int
}

var _ Widget = &RadioGrid{}

// RadioItem is one choice of a RadioGrid.
type RadioItem struct {
	Base
	grid  *RadioGrid
	index int
}

var _ Widget = &RadioItem{}

// NewRadioGrid lays out options over at most cols columns. No choice is
// selected initially.
func NewRadioGrid(name string, options []string, cols int) *RadioGrid {
	g := &RadioGrid{options: options, selected: -1}
	g.SetName(name)
	g.rows, g.cols = layout.GridShape(len(options), cols)

	g.slots = make([]*RadioItem, len(options))
	for i, option := range options {
		slot, err := layout.ColumnMajorToRowMajor(i, len(options), g.rows, g.cols)
		if err != nil {
			panic(err)
		}
		item := &RadioItem{grid: g, index: i}
		item.SetName(option)
		g.slots[slot] = item
	}
	return g
}

// Shape returns the number of rows and columns.
func (g *RadioGrid) Shape() (rows, cols int) { return g.rows, g.cols }

// Len returns the number of choices.
func (g *RadioGrid) Len() int { return len(g.options) }

// Item returns the item built at position slot, counted row by row.
func (g *RadioGrid) Item(slot int) (*RadioItem, bool) {
	if slot < 0 || slot >= len(g.slots) {
		return nil, false
	}
	return g.slots[slot], true
}

// ItemAt returns the item in the given row and column.
func (g *RadioGrid) ItemAt(row, col int) (*RadioItem, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, false
	}
	return g.Item(row*g.cols + col)
}

// Selected returns the index of the selected choice, or -1.
func (g *RadioGrid) Selected() int { return g.selected }

// SelectedText returns the selected choice, or "".
func (g *RadioGrid) SelectedText() string {
	if g.selected < 0 {
		return ""
	}
	return g.options[g.selected]
}

// Select selects the choice at index and calls OnChange if it changed.
func (g *RadioGrid) Select(index int) {
	if index < 0 || index >= len(g.options) || index == g.selected {
		return
	}
	g.selected = index
	if g.OnChange != nil {
		g.OnChange(index)
	}
}

// Children returns the items in build order.
func (g *RadioGrid) Children() []Widget {
	children := make([]Widget, len(g.slots))
	for i, item := range g.slots {
		children[i] = item
	}
	return children
}

func (g *RadioGrid) cellWidth() int {
	width := 1
	for _, option := range g.options {
		width = max(width, utf8.RuneCountInString(option))
	}
	return width + 5
}

func (g *RadioGrid) Size() (int, int) {
	return g.cols * g.cellWidth(), g.rows
}

func (g *RadioGrid) Place(x, y int) {
	w, h := g.Size()
	g.place(x, y, w, h)
	cell := g.cellWidth()
	for slot, item := range g.slots {
		item.place(x+(slot%g.cols)*cell, y+slot/g.cols, cell-1, 1)
	}
}

func (g *RadioGrid) Draw(tcell.Screen) {}

// Text returns the item's choice.
func (i *RadioItem) Text() string { return i.grid.options[i.index] }

// Index returns the item's position in reading order.
func (i *RadioItem) Index() int { return i.index }

// Checked reports whether the item is the selected choice.
func (i *RadioItem) Checked() bool { return i.grid.selected == i.index }

// Enabled reports whether both the item and its grid accept input.
func (i *RadioItem) Enabled() bool { return i.Base.Enabled() && i.grid.Enabled() }

func (i *RadioItem) Size() (int, int) {
	return i.grid.cellWidth() - 1, 1
}

func (i *RadioItem) Place(x, y int) {
	w, h := i.Size()
	i.place(x, y, w, h)
}

func (i *RadioItem) Draw(scr tcell.Screen) {
	mark := "( ) "
	if i.Checked() {
		mark = "(*) "
	}
	r := i.Bounds()
	drawText(scr, r.X, r.Y, r.W, mark+i.Text(), styleFor(&i.grid.Base))
}

// Click selects the item.
func (i *RadioItem) Click() {
	i.grid.Select(i.index)
}
