package sortedset

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNullArgument is returned when a nil item or collection is passed where a value is required.
	ErrNullArgument = errors.New("null argument")

	// ErrEmptyCollection is returned by Min() and Max() on an empty set.
	ErrEmptyCollection = errors.New("empty collection")

	// ErrNoSuchElement is returned by Floor() and Ceiling() when no value satisfies the query.
	ErrNoSuchElement = errors.New("no such element")

	// ErrNotOrderable is returned when no Compare is supplied and T has no natural order.
	ErrNotOrderable = errors.New("type has no natural order")

	// ErrInvariantViolation is returned by Validate() when the tree is malformed.
	ErrInvariantViolation = errors.New("LLRB invariant violation")
)

func newNotOrderableError(valueType reflect.Type) error {
	return errors.Wrapf(ErrNotOrderable, "%v", valueType)
}

func newInvariantViolationError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvariantViolation, format, args...)
}
