package sortedset

// Left-Leaning Red-Black (LLRB) described here:
//
//   http://www.cs.princeton.edu/~rs/talks/LLRB/08Penn.pdf
//   http://www.cs.princeton.edu/~rs/talks/LLRB/LLRB.pdf
//   http://www.cs.princeton.edu/~rs/talks/LLRB/Java/RedBlackBST.java
//
// Red-Black Trees are implemented by "coloring" nodes of a Binary Search Tree ("BST")
// so as to map a 2-3-4 Tree isomorphically. Insertion splits 4-nodes on the way down
// (so a node may transiently, and legitimately, carry two RED children) while deletion
// carries a RED link down the search path so that it never removes from a 2-node.

type llrbTreeStruct[T any] struct {
	compare   Compare[T]
	callbacks DumpCallbacks[T]
	root      *llrbNodeStruct[T]
	count     int // Maintained on leaf insertion/removal, never by walking the tree
}

// API functions (see llrb_tree_api.go)

func (tree *llrbTreeStruct[T]) Add(value T) (ok bool) {
	tree.root, ok = tree.insert(tree.root, value)
	tree.root.color = BLACK

	if !ok {
		logger.Debug().Msg("duplicate value rejected by insert")
	}

	return
}

func (tree *llrbTreeStruct[T]) Remove(value T) (ok bool) {
	initialCount := tree.count

	if nil != tree.root {
		tree.root = tree.remove(tree.root, value)
		if nil != tree.root {
			tree.root.color = BLACK
		}
	}

	ok = (initialCount != tree.count)

	return
}

func (tree *llrbTreeStruct[T]) Contains(value T) (ok bool) {
	ok = (nil != tree.findNode(value))
	return
}

func (tree *llrbTreeStruct[T]) Min() (value T, ok bool) {
	if nil == tree.root {
		ok = false
		return
	}

	value = getMinimum(tree.root).value
	ok = true

	return
}

func (tree *llrbTreeStruct[T]) Max() (value T, ok bool) {
	if nil == tree.root {
		ok = false
		return
	}

	value = getMaximum(tree.root).value
	ok = true

	return
}

func (tree *llrbTreeStruct[T]) Count() (numberOfItems int) {
	numberOfItems = tree.count
	return
}

func (tree *llrbTreeStruct[T]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Search functions

func (tree *llrbTreeStruct[T]) findNode(value T) (node *llrbNodeStruct[T]) {
	node = tree.root

	for nil != node {
		compareResult := tree.compare(value, node.value)

		switch {
		case compareResult < 0: // value < node.value
			node = node.left
		case compareResult > 0: // value > node.value
			node = node.right
		default: // compareResult == 0 (value == node.value)
			return
		}
	}

	// If we reach here, value was not found (and node == nil)

	return
}

func getMinimum[T any](node *llrbNodeStruct[T]) (minNode *llrbNodeStruct[T]) {
	minNode = node

	for nil != minNode.left {
		minNode = minNode.left
	}

	return
}

func getMaximum[T any](node *llrbNodeStruct[T]) (maxNode *llrbNodeStruct[T]) {
	maxNode = node

	for nil != maxNode.right {
		maxNode = maxNode.right
	}

	return
}

// Recursive functions

func (tree *llrbTreeStruct[T]) insert(oldNexusNode *llrbNodeStruct[T], value T) (newNexusNode *llrbNodeStruct[T], ok bool) {
	if nil == oldNexusNode {
		// Add new leaf node

		tree.count++

		newNexusNode = newLLRBNode(value)
		ok = true

		return
	}

	newNexusNode = oldNexusNode

	if isRed(newNexusNode.left) && isRed(newNexusNode.right) {
		// Split 4-node before descending
		colorFlip(newNexusNode)
	}

	compareResult := tree.compare(value, newNexusNode.value)

	switch {
	case compareResult < 0: // value < newNexusNode.value
		newNexusNode.left, ok = tree.insert(newNexusNode.left, value)
	case compareResult > 0: // value > newNexusNode.value
		newNexusNode.right, ok = tree.insert(newNexusNode.right, value)
	default: // compareResult == 0 (value == newNexusNode.value)
		ok = false // Duplicate value not supported
	}

	// The split above may have recolored this node even for a duplicate, so rebalance regardless

	if isRed(newNexusNode.right) {
		newNexusNode = tree.rotateLeft(newNexusNode)
	}
	if isRed(newNexusNode.left) && isRed(newNexusNode.left.left) {
		newNexusNode = tree.rotateRight(newNexusNode)
	}

	return
}

func (tree *llrbTreeStruct[T]) remove(oldNexusNode *llrbNodeStruct[T], value T) (newNexusNode *llrbNodeStruct[T]) {
	newNexusNode = oldNexusNode

	compareResult := tree.compare(value, newNexusNode.value)

	if compareResult < 0 { // value < newNexusNode.value
		if nil != newNexusNode.left {
			if isBlack(newNexusNode.left) && isBlack(newNexusNode.left.left) {
				newNexusNode = tree.moveRedLeft(newNexusNode)
			}

			newNexusNode.left = tree.remove(newNexusNode.left, value)
		}
	} else { // compareResult >= 0
		if isRed(newNexusNode.left) {
			newNexusNode = tree.rotateRight(newNexusNode)

			compareResult = tree.compare(value, newNexusNode.value)
		}
		if (0 == compareResult) && (nil == newNexusNode.right) {
			// Remove leaf node

			tree.count--

			newNexusNode = nil

			return
		}
		if nil != newNexusNode.right {
			if isBlack(newNexusNode.right) && isBlack(newNexusNode.right.left) {
				newNexusNode = tree.moveRedRight(newNexusNode)

				compareResult = tree.compare(value, newNexusNode.value)
			}
			if 0 == compareResult {
				// Take over the in-order successor's value, then remove the successor from the right subtree

				newNexusNode.value = getMinimum(newNexusNode.right).value
				newNexusNode.right = tree.remove(newNexusNode.right, newNexusNode.value)
			} else { // 0 != compareResult
				newNexusNode.right = tree.remove(newNexusNode.right, value)
			}
		}
	}

	newNexusNode = tree.fixUp(newNexusNode)

	return
}

// Helper functions

func colorFlip[T any](node *llrbNodeStruct[T]) {
	node.color = !node.color
	node.left.color = !node.left.color
	node.right.color = !node.right.color
}

func (tree *llrbTreeStruct[T]) rotateLeft(oldParentNode *llrbNodeStruct[T]) (newParentNode *llrbNodeStruct[T]) {
	// Adjust children fields

	newParentNode = oldParentNode.right
	oldParentNode.right = newParentNode.left
	newParentNode.left = oldParentNode

	// Adjust color field

	newParentNode.color = oldParentNode.color
	oldParentNode.color = RED

	return
}

func (tree *llrbTreeStruct[T]) rotateRight(oldParentNode *llrbNodeStruct[T]) (newParentNode *llrbNodeStruct[T]) {
	// Adjust children fields

	newParentNode = oldParentNode.left
	oldParentNode.left = newParentNode.right
	newParentNode.right = oldParentNode

	// Adjust color field

	newParentNode.color = oldParentNode.color
	oldParentNode.color = RED

	return
}

func (tree *llrbTreeStruct[T]) moveRedLeft(oldNexusNode *llrbNodeStruct[T]) (newNexusNode *llrbNodeStruct[T]) {
	newNexusNode = oldNexusNode

	colorFlip(newNexusNode)

	if isRed(newNexusNode.right.left) {
		newNexusNode.right = tree.rotateRight(newNexusNode.right)
		newNexusNode = tree.rotateLeft(newNexusNode)
		colorFlip(newNexusNode)

		if isRed(newNexusNode.right.right) {
			newNexusNode.right = tree.rotateLeft(newNexusNode.right)
		}
	}

	return
}

func (tree *llrbTreeStruct[T]) moveRedRight(oldNexusNode *llrbNodeStruct[T]) (newNexusNode *llrbNodeStruct[T]) {
	newNexusNode = oldNexusNode

	colorFlip(newNexusNode)

	if isRed(newNexusNode.left.left) {
		newNexusNode = tree.rotateRight(newNexusNode)
		colorFlip(newNexusNode)
	}

	return
}

func (tree *llrbTreeStruct[T]) fixUp(oldNexusNode *llrbNodeStruct[T]) (newNexusNode *llrbNodeStruct[T]) {
	newNexusNode = oldNexusNode

	if isRed(newNexusNode.right) {
		newNexusNode = tree.rotateLeft(newNexusNode)
	}
	if isRed(newNexusNode.left) && isRed(newNexusNode.left.left) {
		newNexusNode = tree.rotateRight(newNexusNode)
	}
	if isRed(newNexusNode.left) && isRed(newNexusNode.right) {
		colorFlip(newNexusNode)
	}

	// Deletion's moveRed steps can leave a RED right link under the left child

	if (nil != newNexusNode.left) && isRed(newNexusNode.left.right) && isBlack(newNexusNode.left.left) {
		newNexusNode.left = tree.rotateLeft(newNexusNode.left)
		if isRed(newNexusNode.left) {
			newNexusNode = tree.rotateRight(newNexusNode)
		}
	}

	return
}
