package treemap

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// printMap renders the node structure of a map for test logs.
func printMap[K, T any](m Map[K, T]) string {
	printer := tp.New()
	printNode(printer, m.root)
	return printer.String()
}

func printNode[K, T any](printer tp.Tree, n *node[K, T]) {
	if n == nil {
		printer.AddNode("∅")
		return
	}
	if n.isLeaf() {
		printer.AddNode(fmt.Sprintf("⟨%v⟩", n.key))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("⟨%v⟩ h=%d", n.key, n.height))
	printNode(branch, n.left)
	printNode(branch, n.right)
}
