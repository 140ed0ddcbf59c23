package sortedset

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/NVIDIA/cstruct"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
)

// Hash digests the set's values in ascending order. Sets that are Equals hash alike
// as long as equal values also encode alike (true for the natural orders).
//
// Floats are encoded by their bits after folding -0 onto +0 and every NaN onto one NaN,
// matching cmp.Compare. Other fixed-layout values (sized integers, bools, arrays and
// structs of them) are encoded with cstruct; any other value is encoded by its
// DumpValue (or %v) rendering.
func (set *SortedSet[T]) Hash() uint64 {
	var lengthPrefix [binary.MaxVarintLen64]byte

	digest := xxhash.New()
	valueType := reflect.TypeOf((*T)(nil)).Elem()
	isFloat := (reflect.Float32 == valueType.Kind()) || (reflect.Float64 == valueType.Kind())
	packable := isPackable(valueType)

	for value := range set.All() {
		encodedValue := set.encodeValue(value, isFloat, packable)

		prefixLength := binary.PutUvarint(lengthPrefix[:], uint64(len(encodedValue)))
		_, _ = digest.Write(lengthPrefix[:prefixLength])
		_, _ = digest.Write(encodedValue)
	}

	return digest.Sum64()
}

func (set *SortedSet[T]) encodeValue(value T, isFloat bool, packable bool) (encodedValue []byte) {
	var err error

	if isFloat {
		encodedValue = encodeFloat(reflect.ValueOf(value).Float())
		return
	}

	if packable {
		encodedValue, err = packValue(value)
		if nil == err {
			return
		}
	}

	valueAsString, err := set.tree.dumpValue(value)
	if nil != err {
		valueAsString = fmt.Sprintf("%v", value)
	}

	encodedValue = []byte(valueAsString)

	return
}

func encodeFloat(value float64) (encodedValue []byte) {
	switch {
	case 0 == value: // -0 == +0
		value = 0
	case math.IsNaN(value):
		value = math.NaN()
	}

	encodedValue = binary.LittleEndian.AppendUint64(make([]byte, 0, 8), math.Float64bits(value))

	return
}

func packValue[T any](value T) (packedValue []byte, err error) {
	// Treat a panic from cstruct's reflection walk like an unsupported layout
	defer func() {
		if recovered := recover(); nil != recovered {
			packedValue = nil
			err = errors.Newf("cstruct.Pack() of %T panicked: %v", value, recovered)
		}
	}()

	packedValue, err = cstruct.Pack(value, cstruct.LittleEndian)

	return
}

func isPackable(valueType reflect.Type) bool {
	switch valueType.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
