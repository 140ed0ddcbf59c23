package sortedset

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// Count returns the number of values in the set.
func (set *SortedSet[T]) Count() int {
	return set.tree.Count()
}

// Add inserts item, returning false (and leaving the set untouched) if it is already present.
func (set *SortedSet[T]) Add(item T) (ok bool, err error) {
	if set.isNilItem(item) {
		err = errors.Wrap(ErrNullArgument, "Add()")
		return
	}

	if set.tree.Contains(item) {
		ok = false
		err = nil
		return
	}

	ok = set.tree.Add(item)
	err = nil

	return
}

// AddRange adds every value produced by items, stopping at the first nil value.
func (set *SortedSet[T]) AddRange(items iter.Seq[T]) (err error) {
	if nil == items {
		err = errors.Wrap(ErrNullArgument, "AddRange()")
		return
	}

	for item := range items {
		_, err = set.Add(item)
		if nil != err {
			return
		}
	}

	err = nil
	return
}

func (set *SortedSet[T]) Contains(item T) (ok bool, err error) {
	if set.isNilItem(item) {
		err = errors.Wrap(ErrNullArgument, "Contains()")
		return
	}

	ok = set.tree.Contains(item)
	err = nil

	return
}

// Remove deletes item, returning whether it was present.
func (set *SortedSet[T]) Remove(item T) (ok bool, err error) {
	if set.isNilItem(item) {
		err = errors.Wrap(ErrNullArgument, "Remove()")
		return
	}

	ok = set.tree.Remove(item)
	err = nil

	return
}

func (set *SortedSet[T]) Min() (value T, err error) {
	value, ok := set.tree.Min()
	if !ok {
		err = ErrEmptyCollection
		return
	}

	err = nil
	return
}

func (set *SortedSet[T]) Max() (value T, err error) {
	value, ok := set.tree.Max()
	if !ok {
		err = ErrEmptyCollection
		return
	}

	err = nil
	return
}

// Ceiling returns the smallest value >= item.
func (set *SortedSet[T]) Ceiling(item T) (value T, err error) {
	if set.isNilItem(item) {
		err = errors.Wrap(ErrNullArgument, "Ceiling()")
		return
	}

	node := set.ceiling(set.tree.root, item)
	if nil == node {
		err = errors.Wrapf(ErrNoSuchElement, "all values are less than %v", item)
		return
	}

	value = node.value
	err = nil

	return
}

// Floor returns the largest value <= item.
func (set *SortedSet[T]) Floor(item T) (value T, err error) {
	if set.isNilItem(item) {
		err = errors.Wrap(ErrNullArgument, "Floor()")
		return
	}

	node := set.floor(set.tree.root, item)
	if nil == node {
		err = errors.Wrapf(ErrNoSuchElement, "all values are greater than %v", item)
		return
	}

	value = node.value
	err = nil

	return
}

func (set *SortedSet[T]) ceiling(node *llrbNodeStruct[T], item T) (ceilingNode *llrbNodeStruct[T]) {
	if nil == node {
		return nil
	}

	compareResult := set.compare(node.value, item)

	switch {
	case compareResult == 0: // node.value == item
		return node
	case compareResult < 0: // node.value < item, so only the right subtree can hold the ceiling
		return set.ceiling(node.right, item)
	default: // node.value > item, so prefer a closer candidate from the left subtree
		ceilingNode = set.ceiling(node.left, item)
		if nil == ceilingNode {
			ceilingNode = node
		}
		return
	}
}

func (set *SortedSet[T]) floor(node *llrbNodeStruct[T], item T) (floorNode *llrbNodeStruct[T]) {
	if nil == node {
		return nil
	}

	compareResult := set.compare(node.value, item)

	switch {
	case compareResult == 0: // node.value == item
		return node
	case compareResult > 0: // node.value > item, so only the left subtree can hold the floor
		return set.floor(node.left, item)
	default: // node.value < item, so prefer a closer candidate from the right subtree
		floorNode = set.floor(node.right, item)
		if nil == floorNode {
			floorNode = node
		}
		return
	}
}

// Union returns a new set holding the values of both set and other, ordered as set is.
func (set *SortedSet[T]) Union(other *SortedSet[T]) (newSet *SortedSet[T], err error) {
	if nil == other {
		err = errors.Wrap(ErrNullArgument, "Union()")
		return
	}

	newSet = set.newEmptyLike()

	err = newSet.AddRange(set.All())
	if nil != err {
		return
	}
	err = newSet.AddRange(other.All())
	if nil != err {
		return
	}

	logger.Debug().Int("left", set.Count()).Int("right", other.Count()).Int("result", newSet.Count()).Msg("union")

	return
}

// Intersection returns a new set holding the values present in both set and other,
// ordered as set is. Only the smaller operand is iterated.
func (set *SortedSet[T]) Intersection(other *SortedSet[T]) (newSet *SortedSet[T], err error) {
	if nil == other {
		err = errors.Wrap(ErrNullArgument, "Intersection()")
		return
	}

	newSet = set.newEmptyLike()

	smaller, larger := other, set
	if set.Count() < other.Count() {
		smaller, larger = set, other
	}

	for value := range smaller.All() {
		if larger.tree.Contains(value) {
			newSet.tree.Add(value)
		}
	}

	logger.Debug().Int("left", set.Count()).Int("right", other.Count()).Int("result", newSet.Count()).Msg("intersection")

	err = nil
	return
}

// Clear empties the set.
func (set *SortedSet[T]) Clear() {
	logger.Debug().Int("count", set.Count()).Msg("clear")

	set.tree = newLLRBTree(set.compare, set.callbacks)
}

// Equals reports whether set and other hold the same values in the same order. Paired
// values must compare equal under both sets' comparators, so a.Equals(b) == b.Equals(a).
func (set *SortedSet[T]) Equals(other *SortedSet[T]) bool {
	if nil == other {
		return false
	}
	if set == other {
		return true
	}
	if set.Count() != other.Count() {
		return false
	}

	setIterator := set.Iterator()
	otherIterator := other.Iterator()

	for {
		setValue, setOk := setIterator.Next()
		otherValue, otherOk := otherIterator.Next()

		if setOk != otherOk {
			return false
		}
		if !setOk {
			return true
		}
		if (0 != set.compare(setValue, otherValue)) || (0 != other.compare(setValue, otherValue)) {
			return false
		}
	}
}

// String returns the ascending values joined by commas.
func (set *SortedSet[T]) String() string {
	var builder strings.Builder

	first := true

	for value := range set.All() {
		if !first {
			builder.WriteByte(',')
		}
		first = false

		valueAsString, err := set.tree.dumpValue(value)
		if nil != err {
			valueAsString = fmt.Sprintf("%v", value)
		}
		builder.WriteString(valueAsString)
	}

	return builder.String()
}

// Dump writes the underlying tree, node by node and then sideways, to w.
func (set *SortedSet[T]) Dump(w io.Writer) (err error) {
	err = set.tree.Dump(w)
	return
}

// Validate checks every LLRB invariant of the underlying tree.
func (set *SortedSet[T]) Validate() (err error) {
	err = set.tree.Validate()
	return
}
