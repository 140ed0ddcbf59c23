package sortedset

import "iter"

// Iterator walks a SortedSet in ascending order using an explicit stack of at
// most O(log n) nodes. Adding or removing values while an Iterator is in use is
// not supported: the order of any remaining values is then undefined.
type Iterator[T any] struct {
	stack []*llrbNodeStruct[T]
	node  *llrbNodeStruct[T]
}

// Iterator returns a fresh Iterator positioned before the smallest value.
func (set *SortedSet[T]) Iterator() (iterator *Iterator[T]) {
	iterator = &Iterator[T]{stack: make([]*llrbNodeStruct[T], 0), node: set.tree.root}
	return
}

// Next returns the next value in ascending order, or ok == false once exhausted.
func (iterator *Iterator[T]) Next() (value T, ok bool) {
	for (0 < len(iterator.stack)) || (nil != iterator.node) {
		if nil != iterator.node {
			// Save current node and go left
			iterator.stack = append(iterator.stack, iterator.node)
			iterator.node = iterator.node.left
		} else {
			top := len(iterator.stack) - 1
			iterator.node = iterator.stack[top]
			iterator.stack[top] = nil
			iterator.stack = iterator.stack[:top]

			value = iterator.node.value
			ok = true

			iterator.node = iterator.node.right

			return
		}
	}

	ok = false
	return
}

// All returns a sequence of the set's values in ascending order. Each range over
// it starts a new traversal.
func (set *SortedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		iterator := set.Iterator()
		for {
			value, ok := iterator.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
