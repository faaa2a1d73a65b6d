package tester

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type foo struct {
	foo int
}

type isFoo struct{}

func fooIsOne() Predicate {
	return PredicateFunc(func(target any) bool {
		f, ok := target.(*foo)
		return ok && f.foo == 1
	})
}

func TestDynamicRegistry(t *testing.T) {
	r := NewDynamicRegistry(fooIsOne(), map[reflect.Type]Handler{
		reflect.TypeFor[isFoo](): handlerReturning(true),
	})

	t.Run("supports targets the predicate accepts", func(t *testing.T) {
		target := &foo{foo: 1}
		assert.Equal(t, []reflect.Type{reflect.TypeFor[isFoo]()}, r.Interactions(target))

		h, err := r.Handler(target, reflect.TypeFor[isFoo]())
		require.NoError(t, err)
		v, err := h(New(target), isFoo{})
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("rejects targets the predicate refuses", func(t *testing.T) {
		target := &foo{foo: 2}
		assert.Empty(t, r.Interactions(target))

		_, err := r.Handler(target, reflect.TypeFor[isFoo]())
		var notSupported *InteractionNotSupportedError
		require.ErrorAs(t, err, &notSupported)
		assert.Empty(t, notSupported.Supported)
	})

	t.Run("rejects unknown interactions", func(t *testing.T) {
		_, err := r.Handler(&foo{foo: 1}, reflect.TypeFor[click]())
		var notSupported *InteractionNotSupportedError
		require.ErrorAs(t, err, &notSupported)
		assert.Equal(t, []reflect.Type{reflect.TypeFor[isFoo]()}, notSupported.Supported)
	})

	t.Run("never supports locations", func(t *testing.T) {
		for _, target := range []any{&foo{foo: 1}, &foo{foo: 2}} {
			assert.Empty(t, r.Locations(target))

			_, err := r.Solver(target, reflect.TypeFor[child]())
			var notSupported *LocationNotSupportedError
			require.ErrorAs(t, err, &notSupported)
			assert.Empty(t, notSupported.Supported)
		}
	})

	t.Run("copies the handler map", func(t *testing.T) {
		handlers := map[reflect.Type]Handler{reflect.TypeFor[isFoo](): handlerReturning(true)}
		r := NewDynamicRegistry(fooIsOne(), handlers)
		handlers[reflect.TypeFor[click]()] = handlerReturning(nil)

		assert.Equal(t, []reflect.Type{reflect.TypeFor[isFoo]()}, r.Interactions(&foo{foo: 1}))
	})
}

func TestPredicates(t *testing.T) {
	stringer := Implements[interface{ String() string }]()
	one := fooIsOne()
	nonNil := PredicateFunc(func(target any) bool { return target != nil })

	tests := map[string]struct {
		predicate Predicate
		target    any
		want      bool
	}{
		"implements matches":       {stringer, reflect.TypeFor[int](), true},
		"implements refuses":       {stringer, &foo{}, false},
		"and matches when all do":  {And(nonNil, one), &foo{foo: 1}, true},
		"and refuses when one not": {And(nonNil, one), &foo{foo: 2}, false},
		"empty and matches":        {And(), nil, true},
		"or matches when one does": {Or(stringer, one), &foo{foo: 1}, true},
		"or refuses when none do":  {Or(stringer, one), &foo{foo: 2}, false},
		"empty or refuses":         {Or(), &foo{}, false},
		"not inverts":              {Not(one), &foo{foo: 2}, true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.predicate.Match(tt.target))
		})
	}
}
