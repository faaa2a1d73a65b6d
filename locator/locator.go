// Package locator defines descriptors used to navigate from one target to
// a nested target.
package locator

// Index refers to the item at a position. For grouped choices the index is
// counted in the order the choices are read, column by column.
type Index struct {
	Index int
}

// Cell refers to a cell of a grid by row and column.
type Cell struct {
	Row    int
	Column int
}

// TargetByName refers to a child target by its name.
type TargetByName struct {
	Name string
}

// TargetByID refers to a child target by its id.
type TargetByID struct {
	ID string
}

// WidgetType refers to the part of a composite target with a given role.
type WidgetType int

const (
	// Textbox is the text entry part of a composite.
	Textbox WidgetType = iota + 1
	// Slider is the sliding part of a composite.
	Slider
)

func (w WidgetType) String() string {
	switch w {
	case Textbox:
		return "textbox"
	case Slider:
		return "slider"
	default:
		return "unknown"
	}
}
