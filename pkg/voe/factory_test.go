package voe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_NilErrorIsValue(t *testing.T) {
	t.Parallel()

	r := Select(7, nil)

	assert.True(t, r.HasValue())
	assert.False(t, r.IsError())
	assert.Equal(t, 7, r.MustValue())
}

func TestSelect_TypedNilErrorIsValue(t *testing.T) {
	t.Parallel()

	var e *X
	r := Select("v", error(e))

	assert.True(t, r.HasValue())
	assert.Equal(t, "v", r.MustValue())
}

func TestSelect_ErrorWins(t *testing.T) {
	t.Parallel()

	e := errors.New("failed")
	r := Select(7, e)

	assert.False(t, r.HasValue())
	assert.True(t, r.IsError())
	assert.Same(t, e, r.Error())

	v, err := r.Value()
	assert.Equal(t, 0, v)
	assert.Same(t, e, err)
}

func TestSelectFunc(t *testing.T) {
	t.Parallel()

	ok := SelectFunc(7, nil)
	assert.True(t, ok.HasValue())
	assert.Equal(t, 7, ok.MustValue())

	calls := 0
	failed := SelectFunc(7, func() error {
		calls++
		return errors.New("lazy")
	})
	assert.Equal(t, 0, calls)
	assert.False(t, failed.HasValue())
	assert.EqualError(t, failed.Error(), "lazy")
	assert.Equal(t, 1, calls)
}

func TestSelect_MatchesValueAndError(t *testing.T) {
	t.Parallel()

	e := &X{msg: "boom"}

	assert.Equal(t, Value(3).String(), Select(3, nil).String())
	assert.Equal(t, Error[int](e).String(), Select(3, e).String())
	assert.Equal(t, ErrorFunc[int](func() error { return e }).String(),
		SelectFunc(3, func() error { return e }).String())
}

func TestFactory_RejectsNilProvider(t *testing.T) {
	t.Parallel()

	err := recoverError(func() { ErrorFunc[string](nil) })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
