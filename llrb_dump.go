package sortedset

import (
	"fmt"
	"io"
	"strings"
)

func (tree *llrbTreeStruct[T]) Dump(w io.Writer) (err error) {
	err = tree.dumpInFlatForm(w, tree.root)
	if nil != err {
		return
	}

	err = tree.dumpInTreeForm(w)

	return
}

func (tree *llrbTreeStruct[T]) dumpValue(value T) (valueAsString string, err error) {
	if nil == tree.callbacks {
		valueAsString = fmt.Sprintf("%v", value)
		err = nil
		return
	}

	valueAsString, err = tree.callbacks.DumpValue(value)

	return
}

func (tree *llrbTreeStruct[T]) dumpInFlatForm(w io.Writer, node *llrbNodeStruct[T]) (err error) {
	if nil == node {
		err = nil
		return
	}

	nodeValue, err := tree.dumpValue(node.value)
	if nil != err {
		return
	}

	nodeLeftValue := "nil"
	if nil != node.left {
		nodeLeftValue, err = tree.dumpValue(node.left.value)
		if nil != err {
			return
		}
	}

	nodeRightValue := "nil"
	if nil != node.right {
		nodeRightValue, err = tree.dumpValue(node.right.value)
		if nil != err {
			return
		}
	}

	_, err = fmt.Fprintf(w, "%v Node.value == %v Node.left.value == %v Node.right.value == %v\n", colorString(node.color), nodeValue, nodeLeftValue, nodeRightValue)
	if nil != err {
		return
	}

	err = tree.dumpInFlatForm(w, node.left)
	if nil != err {
		return
	}

	err = tree.dumpInFlatForm(w, node.right)

	return
}

func (tree *llrbTreeStruct[T]) dumpInTreeForm(w io.Writer) (err error) {
	if nil == tree.root {
		err = nil
		return
	}

	if nil != tree.root.right {
		err = tree.dumpInTreeFormNode(w, tree.root.right, true, "")
		if nil != err {
			return
		}
	}

	rootValue, err := tree.dumpValue(tree.root.value)
	if nil != err {
		return
	}
	_, err = fmt.Fprintln(w, rootValue)
	if nil != err {
		return
	}

	if nil != tree.root.left {
		err = tree.dumpInTreeFormNode(w, tree.root.left, false, "")
	}

	return
}

func (tree *llrbTreeStruct[T]) dumpInTreeFormNode(w io.Writer, node *llrbNodeStruct[T], isRight bool, indent string) (err error) {
	var indentAppendage string
	var nextIndent string

	if nil != node.right {
		if isRight {
			indentAppendage = "        "
		} else {
			indentAppendage = " |      "
		}
		nextIndent = strings.Join([]string{indent, indentAppendage}, "")
		err = tree.dumpInTreeFormNode(w, node.right, true, nextIndent)
		if nil != err {
			return
		}
	}

	nodeValue, err := tree.dumpValue(node.value)
	if nil != err {
		return
	}

	branch := " \\"
	if isRight {
		branch = " /"
	}
	linkStyle := "-----"
	if isRed(node) {
		linkStyle = "====="
	}

	_, err = fmt.Fprintf(w, "%v%v%v %v\n", indent, branch, linkStyle, nodeValue)
	if nil != err {
		return
	}

	if nil != node.left {
		if isRight {
			indentAppendage = " |      "
		} else {
			indentAppendage = "        "
		}
		nextIndent = strings.Join([]string{indent, indentAppendage}, "")
		err = tree.dumpInTreeFormNode(w, node.left, false, nextIndent)
	}

	return
}
