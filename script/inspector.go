package script

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a script, or a part of one, is not valid
// JSON.
var ErrInvalidJSON = errors.New("script: invalid JSON")

// View provides field access to one JSON object of a script, such as a step
// or a locate entry.
type View interface {
	// HasField returns true if the path exists.
	HasField(path string) bool

	// GetString returns the string value at path, or false if not found
	// or not a string.
	GetString(path string) (string, bool)

	// GetInt returns the integer value at path, or false if not found or
	// not a whole number.
	GetInt(path string) (int, bool)

	// GetBytes returns the raw JSON at path, or false if not found.
	GetBytes(path string) ([]byte, bool)

	// Each calls fn with a View of every element of the array at path, in
	// order, and returns false if path is not an array.
	Each(path string, fn func(i int, v View) error) (bool, error)
}

// Inspect validates raw and returns a View over it.
func Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView{raw: raw}, nil
}

type jsonView struct {
	raw []byte
}

func (v jsonView) HasField(path string) bool {
	return gjson.GetBytes(v.raw, path).Exists()
}

func (v jsonView) GetString(path string) (string, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return "", false
	}
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (v jsonView) GetInt(path string) (int, bool) {
	r := gjson.GetBytes(v.raw, path)
	if r.Type != gjson.Number || float64(r.Int()) != r.Float() {
		return 0, false
	}
	return int(r.Int()), true
}

func (v jsonView) GetBytes(path string) ([]byte, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}

func (v jsonView) Each(path string, fn func(i int, v View) error) (bool, error) {
	r := gjson.GetBytes(v.raw, path)
	if !r.IsArray() {
		return false, nil
	}
	var err error
	i := 0
	r.ForEach(func(_, value gjson.Result) bool {
		err = fn(i, jsonView{raw: []byte(value.Raw)})
		i++
		return err == nil
	})
	return true, err
}
