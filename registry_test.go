package tester

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
}

type other struct{}

type embedsWidget struct {
	*widget
}

type click struct{}

type read struct{}

type child struct {
	name string
}

func handlerReturning(v any) Handler {
	return func(*UIWrapper, any) (any, error) { return v, nil }
}

func TestTargetRegistry_RegisterInteraction(t *testing.T) {
	t.Run("finds registered handler", func(t *testing.T) {
		r := NewTargetRegistry()
		require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[click](), handlerReturning("clicked")))

		h, err := r.Handler(&widget{}, reflect.TypeFor[click]())
		require.NoError(t, err)
		v, err := h(nil, click{})
		require.NoError(t, err)
		assert.Equal(t, "clicked", v)
	})

	t.Run("rejects duplicate and keeps the first handler", func(t *testing.T) {
		r := NewTargetRegistry()
		require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[click](), handlerReturning(1)))

		err := r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[click](), handlerReturning(2))
		require.ErrorIs(t, err, ErrDuplicate)
		var dup *DuplicateRegistrationError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "interaction", dup.Kind)
		assert.Equal(t, reflect.TypeFor[*widget](), dup.TargetType)
		assert.Equal(t, reflect.TypeFor[click](), dup.Type)

		h, err := r.Handler(&widget{}, reflect.TypeFor[click]())
		require.NoError(t, err)
		v, _ := h(nil, click{})
		assert.Equal(t, 1, v)
	})

	t.Run("same interaction on different targets is allowed", func(t *testing.T) {
		r := NewTargetRegistry()
		require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[click](), handlerReturning(1)))
		require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*other](), reflect.TypeFor[click](), handlerReturning(2)))
	})
}

func TestTargetRegistry_Handler(t *testing.T) {
	r := NewTargetRegistry()
	require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[click](), handlerReturning(nil)))
	require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[read](), handlerReturning(nil)))

	t.Run("unsupported interaction lists what is supported", func(t *testing.T) {
		_, err := r.Handler(&widget{}, reflect.TypeFor[child]())

		var notSupported *InteractionNotSupportedError
		require.ErrorAs(t, err, &notSupported)
		assert.ErrorIs(t, err, ErrNotSupported)
		assert.Equal(t, reflect.TypeFor[*widget](), notSupported.TargetType)
		assert.Equal(t, reflect.TypeFor[child](), notSupported.InteractionType)
		assert.Equal(t, []reflect.Type{reflect.TypeFor[click](), reflect.TypeFor[read]()}, notSupported.Supported)
	})

	t.Run("unknown target supports nothing", func(t *testing.T) {
		assert.Empty(t, r.Interactions(&other{}))

		_, err := r.Handler(&other{}, reflect.TypeFor[click]())
		var notSupported *InteractionNotSupportedError
		require.ErrorAs(t, err, &notSupported)
		assert.Empty(t, notSupported.Supported)
	})

	t.Run("lookup uses the exact type", func(t *testing.T) {
		assert.Empty(t, r.Interactions(widget{}), "value type is not the pointer type")
		assert.Empty(t, r.Interactions(embedsWidget{&widget{}}), "embedding does not inherit")
		assert.Empty(t, r.Interactions(nil))
	})

	t.Run("interactions are sorted by name", func(t *testing.T) {
		assert.Equal(t, []reflect.Type{reflect.TypeFor[click](), reflect.TypeFor[read]()}, r.Interactions(&widget{}))
	})
}

func TestTargetRegistry_Solver(t *testing.T) {
	r := NewTargetRegistry()
	require.NoError(t, RegisterLocation(r, func(_ *UIWrapper, w *widget, loc child) (any, error) {
		return &widget{name: w.name + "/" + loc.name}, nil
	}))

	t.Run("finds registered solver", func(t *testing.T) {
		parent := &widget{name: "form"}
		solver, err := r.Solver(parent, reflect.TypeFor[child]())
		require.NoError(t, err)

		got, err := solver(New(parent), child{name: "ok"})
		require.NoError(t, err)
		assert.Equal(t, "form/ok", got.(*widget).name)
	})

	t.Run("rejects duplicate location", func(t *testing.T) {
		err := r.RegisterLocation(reflect.TypeFor[*widget](), reflect.TypeFor[child](), nil)
		var dup *DuplicateRegistrationError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "location", dup.Kind)
	})

	t.Run("unsupported location lists what is supported", func(t *testing.T) {
		_, err := r.Solver(&widget{}, reflect.TypeFor[click]())

		var notSupported *LocationNotSupportedError
		require.ErrorAs(t, err, &notSupported)
		assert.ErrorIs(t, err, ErrNotSupported)
		assert.Equal(t, []reflect.Type{reflect.TypeFor[child]()}, notSupported.Supported)
	})

	t.Run("interactions and locations are separate", func(t *testing.T) {
		assert.Empty(t, r.Interactions(&widget{}))
		assert.Equal(t, []reflect.Type{reflect.TypeFor[child]()}, r.Locations(&widget{}))
	})
}

func TestTargetRegistry_TargetTypes(t *testing.T) {
	r := NewTargetRegistry()
	require.NoError(t, r.RegisterInteraction(reflect.TypeFor[*widget](), reflect.TypeFor[click](), handlerReturning(nil)))
	require.NoError(t, r.RegisterLocation(reflect.TypeFor[*widget](), reflect.TypeFor[child](), nil))
	require.NoError(t, r.RegisterLocation(reflect.TypeFor[*other](), reflect.TypeFor[child](), nil))

	assert.Equal(t, []reflect.Type{reflect.TypeFor[*other](), reflect.TypeFor[*widget]()}, r.TargetTypes())
}

func TestRegisterInteraction_Typed(t *testing.T) {
	r := NewTargetRegistry()
	wantErr := errors.New("handler failed")
	require.NoError(t, RegisterInteraction(r, func(_ *UIWrapper, w *widget, _ read) (any, error) {
		if w.name == "" {
			return nil, wantErr
		}
		return w.name, nil
	}))

	h, err := r.Handler(&widget{}, reflect.TypeFor[read]())
	require.NoError(t, err)

	v, err := h(New(&widget{name: "ok"}), read{})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = h(New(&widget{}), read{})
	assert.Same(t, wantErr, err)

	err = RegisterInteraction(r, func(*UIWrapper, *widget, read) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrDuplicate)
}
