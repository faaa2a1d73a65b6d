package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tester/command"
	"github.com/bjaus/tester/locator"
	"github.com/bjaus/tester/query"
)

func TestParse(t *testing.T) {
	t.Run("decodes every kind of entry", func(t *testing.T) {
		steps, err := Parse([]byte(`{"steps": [
			{"locate": [{"name": "form"}, {"index": 2}], "perform": "mouse_click", "repeat": 5},
			{"locate": [{"cell": [1, 2]}], "perform": "mouse_dclick"},
			{"locate": [{"id": "volume"}, {"widget": "slider"}], "perform": {"key_click": "Right"}},
			{"locate": [{"widget": "textbox"}], "perform": {"key_sequence": "hello"}},
			{"inspect": "displayed_text", "expect": "5"},
			{"inspect": "is_checked"},
			{"inspect": "is_enabled"},
			{"inspect": "is_visible"},
			{"inspect": "selected_text"},
			{"inspect": "selected_index", "expect": 7}
		]}`))
		require.NoError(t, err)
		require.Len(t, steps, 10)

		assert.Equal(t, Step{
			Kind:        KindPerform,
			Locate:      []any{locator.TargetByName{Name: "form"}, locator.Index{Index: 2}},
			Interaction: command.MouseClick{},
			Repeat:      5,
		}, steps[0])
		assert.Equal(t, []any{locator.Cell{Row: 1, Column: 2}}, steps[1].Locate)
		assert.Equal(t, command.MouseDClick{}, steps[1].Interaction)
		assert.Equal(t, 1, steps[1].Repeat)
		assert.Equal(t, []any{locator.TargetByID{ID: "volume"}, locator.Slider}, steps[2].Locate)
		assert.Equal(t, command.KeyClick{Key: "Right"}, steps[2].Interaction)
		assert.Equal(t, []any{locator.Textbox}, steps[3].Locate)
		assert.Equal(t, command.KeySequence{Text: "hello"}, steps[3].Interaction)

		assert.Equal(t, KindInspect, steps[4].Kind)
		assert.Empty(t, steps[4].Locate)
		assert.Equal(t, query.DisplayedText{}, steps[4].Interaction)
		assert.Equal(t, `"5"`, string(steps[4].Expect))
		assert.Nil(t, steps[5].Expect)

		want := []any{query.IsChecked{}, query.IsEnabled{}, query.IsVisible{}, query.SelectedText{}, query.SelectedIndex{}}
		for i, q := range want {
			assert.Equal(t, q, steps[5+i].Interaction)
		}
		assert.Equal(t, "7", string(steps[9].Expect))
	})

	t.Run("click aliases", func(t *testing.T) {
		steps, err := Parse([]byte(`{"steps": [
			{"perform": "click"},
			{"perform": "double_click"}
		]}`))
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, command.MouseClick{}, steps[0].Interaction)
		assert.Equal(t, command.MouseDClick{}, steps[1].Interaction)
	})

	t.Run("empty script", func(t *testing.T) {
		steps, err := Parse([]byte(`{"steps": []}`))
		require.NoError(t, err)
		assert.Empty(t, steps)
	})

	tests := map[string]struct {
		raw     string
		wantErr string
	}{
		"invalid json":         {`{"steps": [`, "invalid JSON"},
		"missing steps":        {`{}`, "steps must be an array"},
		"neither kind":         {`{"steps": [{"locate": []}]}`, "step 0: a step needs exactly one"},
		"both kinds":           {`{"steps": [{"perform": "mouse_click", "inspect": "is_checked"}]}`, "exactly one"},
		"unknown command":      {`{"steps": [{"perform": "wave"}]}`, "unknown command"},
		"unknown query":        {`{"steps": [{"inspect": "colour"}]}`, "unknown query"},
		"unknown locator":      {`{"steps": [{"locate": [{"xpath": "//a"}], "perform": "mouse_click"}]}`, "step 0: locate 0: unknown locator"},
		"unknown widget":       {`{"steps": [{"locate": [{"widget": "dial"}], "perform": "mouse_click"}]}`, "unknown locator"},
		"locate not array":     {`{"steps": [{"locate": {"name": "a"}, "perform": "mouse_click"}]}`, "locate must be an array"},
		"fractional index":     {`{"steps": [{"locate": [{"index": 1.5}], "perform": "mouse_click"}]}`, "index must be an integer"},
		"short cell":           {`{"steps": [{"locate": [{"cell": [1]}], "perform": "mouse_click"}]}`, "cell must be [row, column]"},
		"long cell":            {`{"steps": [{"locate": [{"cell": [1, 2, 3]}], "perform": "mouse_click"}]}`, "cell must be [row, column]"},
		"numeric name":         {`{"steps": [{"locate": [{"name": 3}], "perform": "mouse_click"}]}`, "name must be a string"},
		"zero repeat":          {`{"steps": [{"perform": "mouse_click", "repeat": 0}]}`, "repeat must be a positive integer"},
		"numeric key":          {`{"steps": [{"perform": {"key_click": 1}}]}`, "key_click must be a string"},
		"error names step 1":   {`{"steps": [{"perform": "mouse_click"}, {"perform": "nod"}]}`, "step 1: unknown command"},
		"non-object step":      {`{"steps": ["mouse_click"]}`, "step 0"},
		"boolean key_sequence": {`{"steps": [{"perform": {"key_sequence": false}}]}`, "key_sequence must be a string"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMatches(t *testing.T) {
	tests := map[string]struct {
		result any
		expect string
		want   bool
	}{
		"equal strings":          {"5", `"5"`, true},
		"different strings":      {"5", `"6"`, false},
		"string against number":  {"5", `5`, false},
		"equal ints":             {7, `7`, true},
		"int against fraction":   {7, `7.5`, false},
		"int against string":     {7, `"7"`, false},
		"equal bools":            {true, `true`, true},
		"different bools":        {false, `true`, false},
		"nil against null":       {nil, `null`, true},
		"unsupported type":       {1.5, `1.5`, false},
		"negative int":           {-1, `-1`, true},
		"empty string expected":  {"", `""`, true},
		"empty string vs absent": {"", `null`, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, matches(tt.result, []byte(tt.expect)))
		})
	}
}
