package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// CheckBox is drawn as "[x] Text" and toggles when clicked.
type CheckBox struct {
	Base
	Text     string
	OnChange func(checked bool)

	checked bool
}

var _ Widget = &CheckBox{}

// NewCheckBox creates an unchecked box named name.
func NewCheckBox(name, text string) *CheckBox {
	c := &CheckBox{Text: text}
	c.SetName(name)
	return c
}

// Checked reports whether the box is checked.
func (c *CheckBox) Checked() bool { return c.checked }

// SetChecked checks or clears the box without calling OnChange.
func (c *CheckBox) SetChecked(checked bool) { c.checked = checked }

func (c *CheckBox) Size() (int, int) {
	return utf8.RuneCountInString(c.Text) + 4, 1
}

func (c *CheckBox) Place(x, y int) {
	w, h := c.Size()
	c.place(x, y, w, h)
}

func (c *CheckBox) Draw(scr tcell.Screen) {
	mark := "[ ] "
	if c.checked {
		mark = "[x] "
	}
	r := c.Bounds()
	drawText(scr, r.X, r.Y, r.W, mark+c.Text, styleFor(&c.Base))
}

// Click toggles the box.
func (c *CheckBox) Click() {
	c.checked = !c.checked
	if c.OnChange != nil {
		c.OnChange(c.checked)
	}
}
