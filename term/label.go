package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Label shows a line of text.
type Label struct {
	Base
	text string
}

var _ Widget = &Label{}

// NewLabel creates a label named name.
func NewLabel(name, text string) *Label {
	l := &Label{text: text}
	l.SetName(name)
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text. It shows on the next redraw.
func (l *Label) SetText(text string) { l.text = text }

func (l *Label) Size() (int, int) {
	return max(utf8.RuneCountInString(l.text), 1), 1
}

func (l *Label) Place(x, y int) {
	w, h := l.Size()
	l.place(x, y, w, h)
}

func (l *Label) Draw(scr tcell.Screen) {
	r := l.Bounds()
	drawText(scr, r.X, r.Y, r.W, l.text, styleFor(&l.Base))
}
