// Package script runs JSON test scripts against a tester.UIWrapper.
package script

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/bjaus/tester/command"
	"github.com/bjaus/tester/locator"
	"github.com/bjaus/tester/query"
)

// Kind is what a step does to its target once located.
type Kind string

const (
	KindPerform Kind = "perform"
	KindInspect Kind = "inspect"
)

// Step is one decoded entry of a script.
type Step struct {
	Kind        Kind
	Locate      []any
	Interaction any
	Repeat      int

	// Expect is the raw JSON the query result must equal, or nil.
	Expect []byte
}

// decoder turns a View accepted by match into a value.
type decoder struct {
	match  Discriminator
	decode func(v View) (any, error)
}

func constant(v any) func(View) (any, error) {
	return func(View) (any, error) { return v, nil }
}

var stepKinds = []struct {
	match Discriminator
	kind  Kind
}{
	{And(HasFields("perform"), Not(HasFields("inspect"))), KindPerform},
	{And(HasFields("inspect"), Not(HasFields("perform"))), KindInspect},
}

var locators = []decoder{
	{HasFields("index"), func(v View) (any, error) {
		i, ok := v.GetInt("index")
		if !ok {
			return nil, errors.New("index must be an integer")
		}
		return locator.Index{Index: i}, nil
	}},
	{HasFields("cell"), func(v View) (any, error) {
		row, rok := v.GetInt("cell.0")
		col, cok := v.GetInt("cell.1")
		if !rok || !cok || v.HasField("cell.2") {
			return nil, errors.New("cell must be [row, column]")
		}
		return locator.Cell{Row: row, Column: col}, nil
	}},
	{HasFields("name"), func(v View) (any, error) {
		name, ok := v.GetString("name")
		if !ok {
			return nil, errors.New("name must be a string")
		}
		return locator.TargetByName{Name: name}, nil
	}},
	{HasFields("id"), func(v View) (any, error) {
		id, ok := v.GetString("id")
		if !ok {
			return nil, errors.New("id must be a string")
		}
		return locator.TargetByID{ID: id}, nil
	}},
	{FieldEquals("widget", "textbox"), constant(locator.Textbox)},
	{FieldEquals("widget", "slider"), constant(locator.Slider)},
}

var commands = []decoder{
	{Or(FieldEquals("perform", "mouse_click"), FieldEquals("perform", "click")), constant(command.MouseClick{})},
	{Or(FieldEquals("perform", "mouse_dclick"), FieldEquals("perform", "double_click")), constant(command.MouseDClick{})},
	{HasFields("perform.key_click"), func(v View) (any, error) {
		key, ok := v.GetString("perform.key_click")
		if !ok {
			return nil, errors.New("key_click must be a string")
		}
		return command.KeyClick{Key: key}, nil
	}},
	{HasFields("perform.key_sequence"), func(v View) (any, error) {
		text, ok := v.GetString("perform.key_sequence")
		if !ok {
			return nil, errors.New("key_sequence must be a string")
		}
		return command.KeySequence{Text: text}, nil
	}},
}

var queries = []decoder{
	{FieldEquals("inspect", "displayed_text"), constant(query.DisplayedText{})},
	{FieldEquals("inspect", "is_checked"), constant(query.IsChecked{})},
	{FieldEquals("inspect", "is_enabled"), constant(query.IsEnabled{})},
	{FieldEquals("inspect", "is_visible"), constant(query.IsVisible{})},
	{FieldEquals("inspect", "selected_text"), constant(query.SelectedText{})},
	{FieldEquals("inspect", "selected_index"), constant(query.SelectedIndex{})},
}

// decodeFirst runs the first decoder matching v.
func decodeFirst(decoders []decoder, v View, what string) (any, error) {
	for _, d := range decoders {
		if d.match.Match(v) {
			return d.decode(v)
		}
	}
	raw, _ := v.GetBytes("@this")
	return nil, errors.Errorf("unknown %s %s", what, raw)
}

// Parse decodes every step of a script without running any.
func Parse(raw []byte) ([]Step, error) {
	doc, err := Inspect(raw)
	if err != nil {
		return nil, err
	}

	var steps []Step
	ok, err := doc.Each("steps", func(i int, v View) error {
		step, err := parseStep(v)
		if err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
		steps = append(steps, step)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("script: steps must be an array")
	}
	return steps, nil
}

func parseStep(v View) (Step, error) {
	step := Step{Repeat: 1}

	matched := false
	for _, k := range stepKinds {
		if k.match.Match(v) {
			step.Kind, matched = k.kind, true
			break
		}
	}
	if !matched {
		return Step{}, errors.New("a step needs exactly one of perform and inspect")
	}

	if v.HasField("locate") {
		ok, err := v.Each("locate", func(i int, entry View) error {
			loc, err := decodeFirst(locators, entry, "locator")
			if err != nil {
				return errors.Wrapf(err, "locate %d", i)
			}
			step.Locate = append(step.Locate, loc)
			return nil
		})
		if err != nil {
			return Step{}, err
		}
		if !ok {
			return Step{}, errors.New("locate must be an array")
		}
	}

	var err error
	switch step.Kind {
	case KindPerform:
		if step.Interaction, err = decodeFirst(commands, v, "command"); err != nil {
			return Step{}, err
		}
		if v.HasField("repeat") {
			n, ok := v.GetInt("repeat")
			if !ok || n < 1 {
				return Step{}, errors.New("repeat must be a positive integer")
			}
			step.Repeat = n
		}
	case KindInspect:
		if step.Interaction, err = decodeFirst(queries, v, "query"); err != nil {
			return Step{}, err
		}
		if raw, ok := v.GetBytes("expect"); ok {
			step.Expect = raw
		}
	}
	return step, nil
}

// matches reports whether a query result equals the expected JSON value.
func matches(result any, expect []byte) bool {
	want := gjson.ParseBytes(expect)
	switch got := result.(type) {
	case string:
		return want.Type == gjson.String && want.Str == got
	case bool:
		return want.IsBool() && want.Bool() == got
	case int:
		return want.Type == gjson.Number && want.Float() == float64(got)
	case nil:
		return want.Type == gjson.Null
	default:
		return false
	}
}
