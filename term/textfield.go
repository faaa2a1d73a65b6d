package term

import (
	"github.com/gdamore/tcell/v2"
)

// DefaultFieldWidth is the width of a TextField created with width 0.
const DefaultFieldWidth = 20

// TextField is a single line of editable text. Clicking it takes keyboard
// focus; double clicking selects the whole text so typing replaces it.
type TextField struct {
	Base
	Width    int
	ReadOnly bool
	OnChange func(text string)
	OnEnter  func(text string)

	text     []rune
	cursor   int
	selected bool
}

var _ Widget = &TextField{}

// NewTextField creates an empty field named name.
func NewTextField(name string, width int) *TextField {
	f := &TextField{Width: width}
	f.SetName(name)
	return f
}

// Text returns the field's contents.
func (f *TextField) Text() string { return string(f.text) }

// SetText replaces the contents and moves the cursor to the end without
// calling OnChange.
func (f *TextField) SetText(text string) {
	f.text = []rune(text)
	f.cursor = len(f.text)
	f.selected = false
}

// Cursor returns the cursor position in runes.
func (f *TextField) Cursor() int { return f.cursor }

// Selected reports whether the whole text is selected.
func (f *TextField) Selected() bool { return f.selected }

func (f *TextField) Size() (int, int) {
	if f.Width <= 0 {
		return DefaultFieldWidth, 1
	}
	return f.Width, 1
}

func (f *TextField) Place(x, y int) {
	w, h := f.Size()
	f.place(x, y, w, h)
}

func (f *TextField) Draw(scr tcell.Screen) {
	r := f.Bounds()
	style := styleFor(&f.Base).Underline(true)
	if f.selected {
		style = style.Reverse(true)
	}
	for i := 0; i < r.W; i++ {
		ch := ' '
		if i < len(f.text) {
			ch = f.text[i]
		}
		scr.SetContent(r.X+i, r.Y, ch, nil, style)
	}
}

// DoubleClick selects the whole text.
func (f *TextField) DoubleClick() {
	f.selected = len(f.text) > 0
	f.cursor = len(f.text)
}

// HandleKey edits the text. Read-only fields only move the cursor.
func (f *TextField) HandleKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEnter:
		if f.OnEnter != nil {
			f.OnEnter(f.Text())
		}
		return
	case ev.Key() == tcell.KeyLeft:
		f.cursor = max(f.cursor-1, 0)
	case ev.Key() == tcell.KeyRight:
		f.cursor = min(f.cursor+1, len(f.text))
	case ev.Key() == tcell.KeyHome:
		f.cursor = 0
	case ev.Key() == tcell.KeyEnd:
		f.cursor = len(f.text)
	case f.ReadOnly:
		return
	case ev.Key() == tcell.KeyRune:
		f.insert(ev.Rune())
		return
	case isBackspace(ev):
		f.erase(f.cursor - 1)
		return
	case ev.Key() == tcell.KeyDelete:
		f.erase(f.cursor)
		return
	default:
		return
	}
	f.selected = false
}

func (f *TextField) insert(r rune) {
	if f.selected {
		f.text = f.text[:0]
		f.cursor = 0
		f.selected = false
	}
	f.text = append(f.text[:f.cursor], append([]rune{r}, f.text[f.cursor:]...)...)
	f.cursor++
	f.changed()
}

func (f *TextField) erase(at int) {
	if f.selected {
		f.text = f.text[:0]
		f.cursor = 0
		f.selected = false
		f.changed()
		return
	}
	if at < 0 || at >= len(f.text) {
		return
	}
	f.text = append(f.text[:at], f.text[at+1:]...)
	if at < f.cursor {
		f.cursor--
	}
	f.changed()
}

func (f *TextField) changed() {
	if f.OnChange != nil {
		f.OnChange(f.Text())
	}
}
