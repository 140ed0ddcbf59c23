package sortedset

const (
	RED   = true
	BLACK = false
)

type llrbNodeStruct[T any] struct {
	value T
	left  *llrbNodeStruct[T] // Pointer to Left Child (or nil)
	right *llrbNodeStruct[T] // Pointer to Right Child (or nil)
	color bool               // Color of parent link
}

// New nodes are always RED: a fresh value joins an existing 2-node or 3-node.
func newLLRBNode[T any](value T) (node *llrbNodeStruct[T]) {
	node = &llrbNodeStruct[T]{value: value, left: nil, right: nil, color: RED}
	return
}

func isRed[T any](node *llrbNodeStruct[T]) bool {
	if nil == node {
		return false
	}

	return (RED == node.color)
}

func isBlack[T any](node *llrbNodeStruct[T]) bool {
	if nil == node {
		return true
	}

	return (BLACK == node.color)
}

func colorString(color bool) string {
	if RED == color {
		return "RED"
	}
	return "BLACK"
}
