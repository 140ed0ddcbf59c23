package sortedset

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type celsius float64

type person struct {
	name string
	age  int
}

type version struct {
	major int
	minor int
}

func (v version) Compare(other version) int {
	if v.major != other.major {
		return CompareInt(v.major, other.major)
	}
	return CompareInt(v.minor, other.minor)
}

type hexDumper struct{}

func (hexDumper) DumpValue(value int) (valueAsString string, err error) {
	valueAsString = fmt.Sprintf("0x%02X", value)
	err = nil
	return
}

func newIntSet(t *testing.T, values ...int) *SortedSet[int] {
	set := NewOrderedSortedSet[int]()
	require.NoError(t, set.AddRange(slices.Values(values)))
	require.NoError(t, set.Validate())
	return set
}

func TestSortedSetEmpty(t *testing.T) {
	set := NewOrderedSortedSet[int]()

	require.Equal(t, 0, set.Count())
	require.Empty(t, slices.Collect(set.All()))
	require.Equal(t, "", set.String())

	_, err := set.Min()
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = set.Max()
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = set.Floor(1)
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = set.Ceiling(1)
	require.ErrorIs(t, err, ErrNoSuchElement)

	_, ok := set.Iterator().Next()
	require.False(t, ok)
}

func TestSortedSetStringScenario(t *testing.T) {
	set, err := NewSortedSet[string](nil, nil)
	require.NoError(t, err)

	for _, value := range []string{"b", "a", "c"} {
		ok, err := set.Add(value)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(set.All()))

	ceiling, err := set.Ceiling("ab")
	require.NoError(t, err)
	require.Equal(t, "b", ceiling)

	floor, err := set.Floor("ab")
	require.NoError(t, err)
	require.Equal(t, "a", floor)

	require.Equal(t, "a,b,c", set.String())
}

func TestSortedSetSingleValueMin(t *testing.T) {
	set := newIntSet(t, 5)

	minValue, err := set.Min()
	require.NoError(t, err)
	require.Equal(t, 5, minValue)

	ok, err := set.Remove(5)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = set.Min()
	require.ErrorIs(t, err, ErrEmptyCollection)
}

func TestSortedSetAddDuplicate(t *testing.T) {
	set := newIntSet(t, 3, 1, 2)

	ok, err := set.Add(2)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 3, set.Count())
	require.Equal(t, []int{1, 2, 3}, slices.Collect(set.All()))
	require.NoError(t, set.Validate())
}

func TestSortedSetRemove(t *testing.T) {
	set := newIntSet(t, 1, 2, 3, 4, 5)

	ok, err := set.Remove(3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, set.Count())

	contains, err := set.Contains(3)
	require.NoError(t, err)
	require.False(t, contains)

	ok, err = set.Remove(3)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 4, set.Count())
	require.Equal(t, []int{1, 2, 4, 5}, slices.Collect(set.All()))
	require.NoError(t, set.Validate())
}

func TestSortedSetFloorCeiling(t *testing.T) {
	set := newIntSet(t, 10, 20, 30, 40, 50)

	tests := []struct {
		item    int
		floor   int
		ceiling int
	}{
		{item: 10, floor: 10, ceiling: 10},
		{item: 15, floor: 10, ceiling: 20},
		{item: 30, floor: 30, ceiling: 30},
		{item: 31, floor: 30, ceiling: 40},
		{item: 49, floor: 40, ceiling: 50},
	}

	for _, test := range tests {
		floor, err := set.Floor(test.item)
		require.NoError(t, err)
		require.Equal(t, test.floor, floor, "Floor(%v)", test.item)

		ceiling, err := set.Ceiling(test.item)
		require.NoError(t, err)
		require.Equal(t, test.ceiling, ceiling, "Ceiling(%v)", test.item)
	}

	_, err := set.Floor(9)
	require.ErrorIs(t, err, ErrNoSuchElement)
	_, err = set.Ceiling(51)
	require.ErrorIs(t, err, ErrNoSuchElement)

	floor, err := set.Floor(1000)
	require.NoError(t, err)
	require.Equal(t, 50, floor)
	ceiling, err := set.Ceiling(-1000)
	require.NoError(t, err)
	require.Equal(t, 10, ceiling)
}

func TestSortedSetMinMaxMatchIteration(t *testing.T) {
	set := newIntSet(t, 7, -3, 12, 0, 99, 4)
	values := slices.Collect(set.All())

	minValue, err := set.Min()
	require.NoError(t, err)
	require.Equal(t, values[0], minValue)

	maxValue, err := set.Max()
	require.NoError(t, err)
	require.Equal(t, values[len(values)-1], maxValue)
}

func TestSortedSetUnion(t *testing.T) {
	left := newIntSet(t, 1, 3, 5, 7)
	right := newIntSet(t, 2, 3, 4, 7, 9)

	union, err := left.Union(right)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 7, 9}, slices.Collect(union.All()))
	require.NoError(t, union.Validate())

	// Operands are left untouched
	require.Equal(t, []int{1, 3, 5, 7}, slices.Collect(left.All()))
	require.Equal(t, []int{2, 3, 4, 7, 9}, slices.Collect(right.All()))

	_, err = left.Union(nil)
	require.ErrorIs(t, err, ErrNullArgument)
}

func TestSortedSetIntersection(t *testing.T) {
	small := newIntSet(t, 3, 7, 11)
	large := newIntSet(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	intersection, err := small.Intersection(large)
	require.NoError(t, err)
	require.Equal(t, []int{3, 7}, slices.Collect(intersection.All()))

	intersection, err = large.Intersection(small)
	require.NoError(t, err)
	require.Equal(t, []int{3, 7}, slices.Collect(intersection.All()))
	require.NoError(t, intersection.Validate())

	self, err := large.Intersection(large)
	require.NoError(t, err)
	require.True(t, self.Equals(large))

	disjoint, err := small.Intersection(newIntSet(t, 100, 200))
	require.NoError(t, err)
	require.Equal(t, 0, disjoint.Count())

	_, err = small.Intersection(nil)
	require.ErrorIs(t, err, ErrNullArgument)
}

func TestSortedSetEqualsAndHash(t *testing.T) {
	set := newIntSet(t, 8, 6, 7, 5, 3, 0, 9)

	copied := NewOrderedSortedSet[int]()
	require.NoError(t, copied.AddRange(set.All()))

	require.True(t, set.Equals(copied))
	require.True(t, copied.Equals(set))
	require.True(t, set.Equals(set))
	require.Equal(t, set.Hash(), copied.Hash())

	require.False(t, set.Equals(nil))
	require.False(t, set.Equals(newIntSet(t, 8, 6, 7)))
	require.False(t, set.Equals(newIntSet(t, 8, 6, 7, 5, 3, 0, 10)))
	require.NotEqual(t, set.Hash(), newIntSet(t, 8, 6, 7).Hash())

	packed := NewOrderedSortedSet[int64]()
	require.NoError(t, packed.AddRange(slices.Values([]int64{3, 1, 2})))
	packedCopy := NewOrderedSortedSet[int64]()
	require.NoError(t, packedCopy.AddRange(slices.Values([]int64{2, 3, 1})))
	require.Equal(t, packed.Hash(), packedCopy.Hash())

	require.Equal(t, NewOrderedSortedSet[string]().Hash(), NewOrderedSortedSet[string]().Hash())
}

func TestSortedSetHashAgreesWithEqualsForFloats(t *testing.T) {
	negativeZero := NewOrderedSortedSet[float64]()
	require.NoError(t, negativeZero.AddRange(slices.Values([]float64{1.5, math.Copysign(0, -1)})))
	positiveZero := NewOrderedSortedSet[float64]()
	require.NoError(t, positiveZero.AddRange(slices.Values([]float64{0, 1.5})))

	require.True(t, negativeZero.Equals(positiveZero))
	require.Equal(t, negativeZero.Hash(), positiveZero.Hash())

	quietNaN := NewOrderedSortedSet[float64]()
	require.NoError(t, quietNaN.AddRange(slices.Values([]float64{math.NaN(), 2})))
	otherNaN := NewOrderedSortedSet[float64]()
	require.NoError(t, otherNaN.AddRange(slices.Values([]float64{2, math.Float64frombits(0x7FF8000000000ABC)})))

	require.True(t, quietNaN.Equals(otherNaN))
	require.Equal(t, quietNaN.Hash(), otherNaN.Hash())

	narrowNegativeZero := NewOrderedSortedSet[float32]()
	require.NoError(t, narrowNegativeZero.AddRange(slices.Values([]float32{float32(math.Copysign(0, -1))})))
	narrowPositiveZero := NewOrderedSortedSet[float32]()
	require.NoError(t, narrowPositiveZero.AddRange(slices.Values([]float32{0})))

	require.True(t, narrowNegativeZero.Equals(narrowPositiveZero))
	require.Equal(t, narrowNegativeZero.Hash(), narrowPositiveZero.Hash())

	freezing, err := NewSortedSet[celsius](nil, nil)
	require.NoError(t, err)
	require.NoError(t, freezing.AddRange(slices.Values([]celsius{celsius(math.Copysign(0, -1)), 100})))
	alsoFreezing, err := NewSortedSet[celsius](nil, nil)
	require.NoError(t, err)
	require.NoError(t, alsoFreezing.AddRange(slices.Values([]celsius{100, 0})))

	require.True(t, freezing.Equals(alsoFreezing))
	require.Equal(t, freezing.Hash(), alsoFreezing.Hash())

	require.NotEqual(t, positiveZero.Hash(), quietNaN.Hash())
}

func TestSortedSetHashAgreesWithEqualsForStrings(t *testing.T) {
	set := NewOrderedSortedSet[string]()
	require.NoError(t, set.AddRange(slices.Values([]string{"pear", "apple", "fig"})))
	copied := NewOrderedSortedSet[string]()
	require.NoError(t, copied.AddRange(slices.Values([]string{"fig", "pear", "apple"})))

	require.True(t, set.Equals(copied))
	require.Equal(t, set.Hash(), copied.Hash())

	// Length prefixes keep "ab","c" apart from "a","bc"
	split := NewOrderedSortedSet[string]()
	require.NoError(t, split.AddRange(slices.Values([]string{"ab", "c"})))
	resplit := NewOrderedSortedSet[string]()
	require.NoError(t, resplit.AddRange(slices.Values([]string{"a", "bc"})))

	require.False(t, split.Equals(resplit))
	require.NotEqual(t, split.Hash(), resplit.Hash())
}

func TestSortedSetEqualsIsSymmetric(t *testing.T) {
	foldCase := func(value1 string, value2 string) int {
		return CompareString(strings.ToLower(value1), strings.ToLower(value2))
	}

	folded, err := NewSortedSet[string](foldCase, nil)
	require.NoError(t, err)
	require.NoError(t, folded.AddRange(slices.Values([]string{"a", "b"})))

	exact := NewOrderedSortedSet[string]()
	require.NoError(t, exact.AddRange(slices.Values([]string{"A", "b"})))

	require.False(t, folded.Equals(exact))
	require.False(t, exact.Equals(folded))

	alsoFolded, err := NewSortedSet[string](foldCase, nil)
	require.NoError(t, err)
	require.NoError(t, alsoFolded.AddRange(slices.Values([]string{"A", "B"})))

	require.True(t, folded.Equals(alsoFolded))
	require.True(t, alsoFolded.Equals(folded))

	exactCopy := NewOrderedSortedSet[string]()
	require.NoError(t, exactCopy.AddRange(slices.Values([]string{"a", "b"})))

	require.True(t, folded.Equals(exactCopy))
	require.True(t, exactCopy.Equals(folded))
}

func TestSortedSetNilability(t *testing.T) {
	require.False(t, NewOrderedSortedSet[int]().nilable)
	require.False(t, newIntSet(t, 1).newEmptyLike().nilable)

	pointers, err := NewSortedSet[*int](func(value1 *int, value2 *int) int { return CompareInt(*value1, *value2) }, nil)
	require.NoError(t, err)
	require.True(t, pointers.nilable)
	require.True(t, pointers.newEmptyLike().nilable)

	versions, err := NewSortedSet[version](nil, nil)
	require.NoError(t, err)
	require.False(t, versions.nilable)

	require.True(t, isNilable[any]())
	require.True(t, isNilable[[]int]())
	require.True(t, isNilable[map[string]int]())
	require.False(t, isNilable[string]())
	require.False(t, isNilable[[2]int]())

	var nilInterface any
	var nilSlice []int
	require.True(t, isNil(nilInterface))
	require.True(t, isNil(nilSlice))
	require.False(t, isNil[any](7))
	require.False(t, isNil([]int{}))

	byLength := func(value1 []int, value2 []int) int { return CompareInt(len(value1), len(value2)) }
	slicesSet, err := NewSortedSet[[]int](byLength, nil)
	require.NoError(t, err)
	_, err = slicesSet.Add(nil)
	require.ErrorIs(t, err, ErrNullArgument)
	added, err := slicesSet.Add([]int{})
	require.NoError(t, err)
	require.True(t, added)
}

func TestSortedSetString(t *testing.T) {
	require.Equal(t, "1,2,3", newIntSet(t, 3, 2, 1).String())

	set, err := NewSortedSet[int](CompareInt, hexDumper{})
	require.NoError(t, err)
	require.NoError(t, set.AddRange(slices.Values([]int{255, 1, 16})))
	require.Equal(t, "0x01,0x10,0xFF", set.String())
}

func TestSortedSetNullArgument(t *testing.T) {
	comparePointers := func(value1 *int, value2 *int) int { return CompareInt(*value1, *value2) }

	set, err := NewSortedSet[*int](comparePointers, nil)
	require.NoError(t, err)

	_, err = set.Add(nil)
	require.ErrorIs(t, err, ErrNullArgument)
	_, err = set.Contains(nil)
	require.ErrorIs(t, err, ErrNullArgument)
	_, err = set.Remove(nil)
	require.ErrorIs(t, err, ErrNullArgument)
	_, err = set.Floor(nil)
	require.ErrorIs(t, err, ErrNullArgument)
	_, err = set.Ceiling(nil)
	require.ErrorIs(t, err, ErrNullArgument)
	require.ErrorIs(t, set.AddRange(nil), ErrNullArgument)

	one, two := 1, 2
	err = set.AddRange(slices.Values([]*int{&two, nil, &one}))
	require.ErrorIs(t, err, ErrNullArgument)
	require.Equal(t, 1, set.Count())

	ok, err := set.Contains(&two)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSortedSetNaturalOrder(t *testing.T) {
	_, err := NewSortedSet[person](nil, nil)
	require.ErrorIs(t, err, ErrNotOrderable)

	_, err = NewSortedSet[any](nil, nil)
	require.ErrorIs(t, err, ErrNotOrderable)

	temperatures, err := NewSortedSet[celsius](nil, nil)
	require.NoError(t, err)
	require.NoError(t, temperatures.AddRange(slices.Values([]celsius{21.5, -4, 37, 0})))
	require.Equal(t, []celsius{-4, 0, 21.5, 37}, slices.Collect(temperatures.All()))

	versions, err := NewSortedSet[version](nil, nil)
	require.NoError(t, err)
	require.NoError(t, versions.AddRange(slices.Values([]version{{1, 10}, {0, 9}, {1, 2}, {1, 10}})))
	require.Equal(t, []version{{0, 9}, {1, 2}, {1, 10}}, slices.Collect(versions.All()))

	unsigned, err := NewSortedSet[uint16](nil, nil)
	require.NoError(t, err)
	require.NoError(t, unsigned.AddRange(slices.Values([]uint16{65535, 0, 256})))
	require.Equal(t, []uint16{0, 256, 65535}, slices.Collect(unsigned.All()))
}

func TestSortedSetCustomComparer(t *testing.T) {
	descending := func(value1 int, value2 int) int { return CompareInt(value2, value1) }

	set, err := NewSortedSet[int](descending, nil)
	require.NoError(t, err)
	require.NoError(t, set.AddRange(slices.Values([]int{1, 5, 3})))
	require.Equal(t, []int{5, 3, 1}, slices.Collect(set.All()))

	minValue, err := set.Min()
	require.NoError(t, err)
	require.Equal(t, 5, minValue)

	// Floor is the last value not after 4 in this order
	floor, err := set.Floor(4)
	require.NoError(t, err)
	require.Equal(t, 5, floor)

	require.Equal(t, 0, set.Comparer()(2, 2))
}

func TestSortedSetIteration(t *testing.T) {
	set := newIntSet(t, 4, 2, 6, 1, 3, 5, 7)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(set.All()))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(set.All()))

	var firstThree []int
	for value := range set.All() {
		if 3 == len(firstThree) {
			break
		}
		firstThree = append(firstThree, value)
	}
	require.Equal(t, []int{1, 2, 3}, firstThree)

	iterator := set.Iterator()
	for expected := 1; expected <= 7; expected++ {
		value, ok := iterator.Next()
		require.True(t, ok)
		require.Equal(t, expected, value)
	}
	_, ok := iterator.Next()
	require.False(t, ok)
	_, ok = iterator.Next()
	require.False(t, ok)
}

func TestSortedSetClear(t *testing.T) {
	set := newIntSet(t, 1, 2, 3)

	set.Clear()

	require.Equal(t, 0, set.Count())
	require.Empty(t, slices.Collect(set.All()))

	ok, err := set.Add(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{2}, slices.Collect(set.All()))
}

func TestSortedSetDump(t *testing.T) {
	set, err := NewSortedSet[int](nil, hexDumper{})
	require.NoError(t, err)
	require.NoError(t, set.AddRange(slices.Values([]int{1, 2, 3})))

	var dump bytes.Buffer
	require.NoError(t, set.Dump(&dump))
	require.Contains(t, dump.String(), "BLACK Node.value == 0x02")
	require.Contains(t, dump.String(), "\n0x02\n")
}

func TestSortedSetAscendingThousand(t *testing.T) {
	set := NewOrderedSortedSet[int]()

	for value := 1; value <= 1000; value++ {
		ok, err := set.Add(value)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, set.Validate())
	}
	for value := 1; value <= 1000; value++ {
		ok, err := set.Remove(value)
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, set.Validate())
	}

	require.Equal(t, 0, set.Count())
}

func BenchmarkSortedSetUnion(b *testing.B) {
	left := NewOrderedSortedSet[int]()
	right := NewOrderedSortedSet[int]()
	for value := 0; value < 10000; value++ {
		_, _ = left.Add(2 * value)
		_, _ = right.Add(3 * value)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = left.Union(right)
	}
}
