// Package sortedset provides an ordered set of unique values backed by a
// Left-Leaning Red-Black (LLRB) tree.
//
// Values are kept in ascending order as defined by a Compare function supplied
// at construction time (or the natural order of T when none is supplied).
// Besides membership operations, a SortedSet answers Floor and Ceiling queries,
// computes Union and Intersection, and iterates its values in ascending order.
//
// A SortedSet is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package sortedset

import (
	"cmp"
	"reflect"
)

// Compare returns a negative result if value1 < value2, zero if value1 == value2,
// and a positive result if value1 > value2. It must define a total order over T.
type Compare[T any] func(value1 T, value2 T) (result int)

// Comparable is implemented by types that carry their own natural order.
type Comparable[T any] interface {
	Compare(other T) (result int)
}

// DumpCallbacks renders values for String() and Dump()
type DumpCallbacks[T any] interface {
	DumpValue(value T) (valueAsString string, err error)
}

// CompareOrdered is the natural Compare for any cmp.Ordered type
func CompareOrdered[T cmp.Ordered](value1 T, value2 T) (result int) {
	result = cmp.Compare(value1, value2)
	return
}

// CompareInt is a Compare for int values
func CompareInt(value1 int, value2 int) (result int) {
	result = CompareOrdered(value1, value2)
	return
}

// CompareString is a Compare for string values
func CompareString(value1 string, value2 string) (result int) {
	result = CompareOrdered(value1, value2)
	return
}

// naturalCompare resolves the natural order of T once, at construction time.
func naturalCompare[T any]() (compare Compare[T], err error) {
	valueType := reflect.TypeOf((*T)(nil)).Elem()

	if valueType.Implements(reflect.TypeOf((*Comparable[T])(nil)).Elem()) {
		compare = func(value1 T, value2 T) int {
			return any(value1).(Comparable[T]).Compare(value2)
		}
		err = nil
		return
	}

	switch valueType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		compare = func(value1 T, value2 T) int {
			return cmp.Compare(reflect.ValueOf(value1).Int(), reflect.ValueOf(value2).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		compare = func(value1 T, value2 T) int {
			return cmp.Compare(reflect.ValueOf(value1).Uint(), reflect.ValueOf(value2).Uint())
		}
	case reflect.Float32, reflect.Float64:
		compare = func(value1 T, value2 T) int {
			return cmp.Compare(reflect.ValueOf(value1).Float(), reflect.ValueOf(value2).Float())
		}
	case reflect.String:
		compare = func(value1 T, value2 T) int {
			return cmp.Compare(reflect.ValueOf(value1).String(), reflect.ValueOf(value2).String())
		}
	default:
		err = newNotOrderableError(valueType)
		return
	}

	err = nil
	return
}

// isNilable reports whether values of T can be nil (pointers, interfaces, maps,
// slices, channels and funcs). It is resolved once per set so that isNil is never
// reached for the other kinds.
func isNilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

// isNil reports whether value, of a nilable T, is nil.
func isNil[T any](value T) bool {
	reflected := reflect.ValueOf(any(value))
	if !reflected.IsValid() {
		// nil interface
		return true
	}

	switch reflected.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return reflected.IsNil()
	default:
		return false
	}
}
