package sortedset

import "io"

// LLRBTree is the rebalancing engine beneath SortedSet. Add reports a duplicate
// value by returning ok == false rather than by failing.
type LLRBTree[T any] interface {
	Add(value T) (ok bool)
	Remove(value T) (ok bool)
	Contains(value T) (ok bool)
	Min() (value T, ok bool)
	Max() (value T, ok bool)
	Count() (numberOfItems int)
	Clear()
	Validate() (err error)
	Dump(w io.Writer) (err error)
}

func NewLLRBTree[T any](compare Compare[T], callbacks DumpCallbacks[T]) (tree LLRBTree[T]) {
	tree = newLLRBTree(compare, callbacks)
	return
}

func newLLRBTree[T any](compare Compare[T], callbacks DumpCallbacks[T]) (tree *llrbTreeStruct[T]) {
	tree = &llrbTreeStruct[T]{compare: compare, callbacks: callbacks, root: nil, count: 0}
	return
}
