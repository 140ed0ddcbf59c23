package sortedset

import "cmp"

// SortedSet holds unique values of T in ascending order.
//
// Adding a value already present is not an error: Add simply reports false.
// The zero value is not usable; construct with NewSortedSet or NewOrderedSortedSet.
type SortedSet[T any] struct {
	compare   Compare[T]
	callbacks DumpCallbacks[T]
	nilable   bool
	tree      *llrbTreeStruct[T]
}

// NewSortedSet returns an empty set ordered by compare. A nil compare selects the
// natural order of T (Comparable[T], integers, floats or strings); ErrNotOrderable is
// returned if T has none. A nil callbacks renders values with fmt's %v verb.
func NewSortedSet[T any](compare Compare[T], callbacks DumpCallbacks[T]) (set *SortedSet[T], err error) {
	if nil == compare {
		compare, err = naturalCompare[T]()
		if nil != err {
			return
		}
	}

	set = &SortedSet[T]{compare: compare, callbacks: callbacks, nilable: isNilable[T]()}
	set.tree = newLLRBTree(compare, callbacks)

	err = nil
	return
}

// NewOrderedSortedSet returns an empty set of a cmp.Ordered type in its natural order.
func NewOrderedSortedSet[T cmp.Ordered]() (set *SortedSet[T]) {
	set = &SortedSet[T]{compare: CompareOrdered[T], callbacks: nil, nilable: false}
	set.tree = newLLRBTree[T](CompareOrdered[T], nil)
	return
}

// Comparer returns the Compare the set orders its values by.
func (set *SortedSet[T]) Comparer() Compare[T] {
	return set.compare
}

// newEmptyLike returns an empty set sharing set's order and rendering.
func (set *SortedSet[T]) newEmptyLike() (newSet *SortedSet[T]) {
	newSet = &SortedSet[T]{compare: set.compare, callbacks: set.callbacks, nilable: set.nilable}
	newSet.tree = newLLRBTree(set.compare, set.callbacks)
	return
}

// isNilItem reports whether item must be rejected as a null argument.
func (set *SortedSet[T]) isNilItem(item T) bool {
	return set.nilable && isNil(item)
}
