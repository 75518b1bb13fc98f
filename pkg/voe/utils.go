package voe

import (
	"errors"
	"reflect"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidArgument is wrapped by the panic raised when a constructor gets
// a nil error or provider.
var ErrInvalidArgument = errors.New("invalid argument")

// IsNil reports whether i is nil or holds a nil pointer, map, slice,
// channel or func.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an error built by errors.Join.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func invalidArgument(name string) error {
	return pkgerrors.Wrapf(ErrInvalidArgument, "%s must not be nil", name)
}
