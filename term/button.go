package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Button is drawn as "[ Text ]" and calls OnClick when clicked.
type Button struct {
	Base
	Text    string
	OnClick func()
}

var _ Widget = &Button{}

// NewButton creates a button named name.
func NewButton(name, text string, onClick func()) *Button {
	b := &Button{Text: text, OnClick: onClick}
	b.SetName(name)
	return b
}

func (b *Button) Size() (int, int) {
	return utf8.RuneCountInString(b.Text) + 4, 1
}

func (b *Button) Place(x, y int) {
	w, h := b.Size()
	b.place(x, y, w, h)
}

func (b *Button) Draw(scr tcell.Screen) {
	r := b.Bounds()
	drawText(scr, r.X, r.Y, r.W, "[ "+b.Text+" ]", styleFor(&b.Base))
}

// Click calls OnClick.
func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
