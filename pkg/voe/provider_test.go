package voe

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf_BuildsFreshErrorWithStack(t *testing.T) {
	t.Parallel()

	p := Errorf("bad value %d", 3)
	r := ErrorFunc[int](p)

	first := r.Error()
	second := r.Error()

	assert.EqualError(t, first, "bad value 3")
	assert.NotSame(t, first, second)
	assert.Contains(t, fmt.Sprintf("%+v", first), "TestErrorf_BuildsFreshErrorWithStack")
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	r := ErrorFunc[string](Wrapf(cause, "saving %s", "report"))

	assert.EqualError(t, r.Error(), "saving report: disk full")
	assert.ErrorIs(t, r.Error(), cause)

	err := recoverError(func() { Wrapf(nil, "x") })
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMemoize_InvokesOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := Memoize(func() error {
		calls.Add(1)
		return errors.New("expensive")
	})
	r := ErrorFunc[int](p)

	assert.Equal(t, int32(0), calls.Load())

	wg := &sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.EqualError(t, r.Error(), "expensive")
		}()
	}
	wg.Wait()

	assert.Same(t, r.Error(), r.Error())
	assert.Equal(t, int32(1), calls.Load())

	err := recoverError(func() { Memoize(nil) })
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	a := errors.New("a")
	b := errors.New("b")
	p := Join(
		func() error { return a },
		nil,
		func() error { return nil },
		func() error { return b },
	)

	err := p()
	require.Error(t, err)
	assert.ErrorIs(t, err, a)
	assert.ErrorIs(t, err, b)
	assert.Equal(t, []error{a, b}, GetErrors(err))

	assert.NoError(t, Join()())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	single := errors.New("single")
	assert.Equal(t, []error{single}, GetErrors(single))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var c chan int

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(f))
	assert.True(t, IsNil(c))

	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
	assert.False(t, IsNil(struct{}{}))
}
