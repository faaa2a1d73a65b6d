package script

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"

	"github.com/bjaus/tester"
)

// ExpectationError is returned when a query step reads something other
// than its expected value.
type ExpectationError struct {
	Query  reflect.Type
	Expect string
	Got    any
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %#v", e.Query, e.Expect, e.Got)
}

// Result is the outcome of one step.
type Result struct {
	Step  Step
	Value any
	Err   error
}

// Report records the steps a script ran, in order. Only the last one can
// have failed.
type Report struct {
	Results []Result
}

// Passed reports whether every step ran and succeeded.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
	}
	return true
}

// JSON renders the report.
func (r *Report) JSON() ([]byte, error) {
	out := []byte(`{"steps":[]}`)
	var err error
	set := func(path string, value any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, value)
		}
	}

	set("passed", r.Passed())
	for i, res := range r.Results {
		prefix := "steps." + strconv.Itoa(i) + "."
		set(prefix+"kind", string(res.Step.Kind))
		set(prefix+"interaction", reflect.TypeOf(res.Step.Interaction).String())
		if res.Value != nil {
			set(prefix+"value", res.Value)
		}
		if res.Err != nil {
			set(prefix+"error", res.Err.Error())
		}
	}
	return out, errors.Wrap(err, "render report")
}

// Run parses a script and runs its steps against root, stopping at the
// first step that fails. Each step locates its target starting from root.
//
// The returned error is a parse error, with a nil report, or the error of
// the failing step, with the report of the steps run so far.
func Run(root *tester.UIWrapper, raw []byte) (*Report, error) {
	steps, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for i, step := range steps {
		value, err := runStep(root, step)
		report.Results = append(report.Results, Result{Step: step, Value: value, Err: err})
		if err != nil {
			return report, errors.Wrapf(err, "step %d", i)
		}
	}
	return report, nil
}

func runStep(root *tester.UIWrapper, step Step) (any, error) {
	w := root
	for _, loc := range step.Locate {
		var err error
		if w, err = w.Locate(loc); err != nil {
			return nil, err
		}
	}

	switch step.Kind {
	case KindPerform:
		for n := 0; n < step.Repeat; n++ {
			if err := w.Perform(step.Interaction); err != nil {
				return nil, err
			}
		}
		return nil, nil
	default:
		value, err := w.Inspect(step.Interaction)
		if err != nil {
			return nil, err
		}
		if step.Expect != nil && !matches(value, step.Expect) {
			return value, &ExpectationError{
				Query:  reflect.TypeOf(step.Interaction),
				Expect: string(step.Expect),
				Got:    value,
			}
		}
		return value, nil
	}
}
