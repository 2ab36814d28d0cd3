package Trees

// A node in BSTree and CBTree.
// Every node is referenced by exactly one slot: either the root of the tree
// or the l or r of its parent. Removing a node is done by rewriting that slot.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// height of the subtree rooting at n; an empty subtree has height 0. Recursive.
// Time: O(n)
func height[T any](n *node[T]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.l), height(n.r))
}

// leftmost returns the slot holding the minimum node of the non-empty subtree in slot.
// Time: O(D)
func leftmost[T any](slot **node[T]) **node[T] {
	for (*slot).l != nil {
		slot = &(*slot).l
	}
	return slot
}

// rightmost is the mirror of leftmost.
func rightmost[T any](slot **node[T]) **node[T] {
	for (*slot).r != nil {
		slot = &(*slot).r
	}
	return slot
}
