package sortedset

func (tree *llrbTreeStruct[T]) Validate() (err error) {
	if nil == tree.root {
		if 0 != tree.count {
			err = newInvariantViolationError("empty tree has count %v", tree.count)
			logger.Error().Err(err).Msg("validate failed")
			return
		}
		err = nil
		return
	}

	if isRed(tree.root) {
		err = newInvariantViolationError("root %v is RED", tree.root.value)
		logger.Error().Err(err).Msg("validate failed")
		return
	}

	// Every path from the root must see as many BLACK nodes as the leftmost one

	expectedBlackHeight := 0
	for node := tree.root; nil != node; node = node.left {
		if isBlack(node) {
			expectedBlackHeight++
		}
	}

	nodeCount, err := tree.validateNode(tree.root, nil, nil, 0, expectedBlackHeight)
	if nil != err {
		logger.Error().Err(err).Msg("validate failed")
		return
	}

	if nodeCount != tree.count {
		err = newInvariantViolationError("count is %v but tree holds %v nodes", tree.count, nodeCount)
		logger.Error().Err(err).Msg("validate failed")
		return
	}

	err = nil
	return
}

// validateNode checks the subtree at node; lowerBound/upperBound (exclusive, nil if unbounded)
// come from ancestors and blackHeight counts BLACK nodes above node.
func (tree *llrbTreeStruct[T]) validateNode(node *llrbNodeStruct[T], lowerBound *T, upperBound *T, blackHeight int, expectedBlackHeight int) (nodeCount int, err error) {
	if nil == node {
		if blackHeight != expectedBlackHeight {
			err = newInvariantViolationError("path has black height %v, expected %v", blackHeight, expectedBlackHeight)
			return
		}
		nodeCount = 0
		err = nil
		return
	}

	if (nil != lowerBound) && (tree.compare(node.value, *lowerBound) <= 0) {
		err = newInvariantViolationError("value %v not greater than ancestor %v", node.value, *lowerBound)
		return
	}
	if (nil != upperBound) && (tree.compare(node.value, *upperBound) >= 0) {
		err = newInvariantViolationError("value %v not less than ancestor %v", node.value, *upperBound)
		return
	}

	if isRed(node) && (isRed(node.left) || isRed(node.right)) {
		err = newInvariantViolationError("RED node %v has a RED child", node.value)
		return
	}
	if isRed(node.right) && isBlack(node.left) {
		err = newInvariantViolationError("node %v leans right", node.value)
		return
	}

	if isBlack(node) {
		blackHeight++
	}

	leftCount, err := tree.validateNode(node.left, lowerBound, &node.value, blackHeight, expectedBlackHeight)
	if nil != err {
		return
	}
	rightCount, err := tree.validateNode(node.right, &node.value, upperBound, blackHeight, expectedBlackHeight)
	if nil != err {
		return
	}

	nodeCount = leftCount + 1 + rightCount
	err = nil

	return
}
