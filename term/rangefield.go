package term

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Slider picks an integer in [Min, Max]. Clicking it takes keyboard focus;
// Left, Right, Home and End move the knob.
type Slider struct {
	Base
	Min, Max int
	Width    int
	OnChange func(value int)

	value int
}

var _ Widget = &Slider{}

// NewSlider creates a slider named name over [lo, hi], set to lo.
func NewSlider(name string, lo, hi, width int) *Slider {
	s := &Slider{Min: lo, Max: hi, Width: width, value: lo}
	s.SetName(name)
	return s
}

// Value returns the current value.
func (s *Slider) Value() int { return s.value }

// SetValue moves the knob, clamping to the range, and calls OnChange if the
// value changed.
func (s *Slider) SetValue(v int) {
	v = min(max(v, s.Min), s.Max)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) Size() (int, int) {
	return max(s.Width, 3), 1
}

func (s *Slider) Place(x, y int) {
	w, h := s.Size()
	s.place(x, y, w, h)
}

// track returns the number of knob positions.
func (s *Slider) track() int {
	w, _ := s.Size()
	return w - 2
}

func (s *Slider) knob() int {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return (s.value - s.Min) * (s.track() - 1) / span
}

func (s *Slider) Draw(scr tcell.Screen) {
	r := s.Bounds()
	style := styleFor(&s.Base)
	scr.SetContent(r.X, r.Y, '[', nil, style)
	for i := 0; i < s.track(); i++ {
		ch := '-'
		if i == s.knob() {
			ch = '|'
		}
		scr.SetContent(r.X+1+i, r.Y, ch, nil, style)
	}
	scr.SetContent(r.X+r.W-1, r.Y, ']', nil, style)
}

// HandleKey moves the knob.
func (s *Slider) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		s.SetValue(s.value - 1)
	case tcell.KeyRight:
		s.SetValue(s.value + 1)
	case tcell.KeyHome:
		s.SetValue(s.Min)
	case tcell.KeyEnd:
		s.SetValue(s.Max)
	}
}

// RangeField pairs a Slider with a TextField showing its value. Pressing
// Enter in the field moves the slider to the typed value.
type RangeField struct {
	Base
	Slider *Slider
	Field  *TextField
}

var _ Widget = &RangeField{}

// NewRangeField creates a range editor named name over [lo, hi].
func NewRangeField(name string, lo, hi int) *RangeField {
	rf := &RangeField{
		Slider: NewSlider(name+".slider", lo, hi, 12),
		Field:  NewTextField(name+".text", 6),
	}
	rf.SetName(name)
	rf.Field.SetText(strconv.Itoa(lo))
	rf.Slider.OnChange = func(v int) {
		rf.Field.SetText(strconv.Itoa(v))
	}
	rf.Field.OnEnter = func(text string) {
		v, err := strconv.Atoi(text)
		if err != nil {
			rf.Field.SetText(strconv.Itoa(rf.Slider.Value()))
			return
		}
		rf.Slider.SetValue(v)
		rf.Field.SetText(strconv.Itoa(rf.Slider.Value()))
	}
	return rf
}

// Value returns the slider's value.
func (rf *RangeField) Value() int { return rf.Slider.Value() }

// Children returns the slider and the field.
func (rf *RangeField) Children() []Widget {
	return []Widget{rf.Slider, rf.Field}
}

func (rf *RangeField) Size() (int, int) {
	sw, _ := rf.Slider.Size()
	fw, _ := rf.Field.Size()
	return sw + 1 + fw, 1
}

func (rf *RangeField) Place(x, y int) {
	w, h := rf.Size()
	rf.place(x, y, w, h)
	rf.Slider.Place(x, y)
	sw, _ := rf.Slider.Size()
	rf.Field.Place(x+sw+1, y)
}

func (rf *RangeField) Draw(tcell.Screen) {}
