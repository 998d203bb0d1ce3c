package intervals

import "cmp"

// Tree is a self-balancing augmented binary search tree holding
// interval-value pairs.
//
// Nodes are ordered by their intervals' (low, high) bounds, and every node
// caches the maximum upper bound of its subtree, so overlap searches can
// prune subtrees wholesale. The zero amount of internal locking is
// intentional; see the package documentation for the concurrency contract.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
}

// New creates an empty interval tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of stored entries.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return countNodes(t.root)
}

func countNodes[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

// Height returns the tree height, where 0 means empty and 1 means a sole
// root node. AVL balancing bounds it by ~1.44·log2(n+2).
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return int(height(t.root))
}

// Insert adds an interval-value pair to the tree.
//
// Duplicate keys are permitted: inserting an interval that is already
// present creates a new, distinct entry and never overwrites an existing
// one. Insert cannot fail, and the tree is height-balanced with consistent
// subtree maxima before it returns.
func (t *Tree[K, V]) Insert(key Interval[K], value V) {
	t.root = insert(t.root, newNode(key, value))
}

func insert[K cmp.Ordered, V any](root, n *node[K, V]) *node[K, V] {
	if root == nil {
		return n
	}
	if n.key.less(root.key) {
		root.left = insert(root.left, n)
	} else {
		root.right = insert(root.right, n)
	}
	root.updateHeight()
	root.updateMax()
	return rebalance(root)
}

// rebalance restores the AVL invariant |balance factor| <= 1 at root,
// assuming both subtrees already satisfy it. At most two rotations are
// needed; the direction is decided by the heavier child's own balance
// factor.
func rebalance[K cmp.Ordered, V any](root *node[K, V]) *node[K, V] {
	switch bf := root.balanceFactor(); {
	case bf > 1:
		if root.left.balanceFactor() < 0 { // left-right case
			root.left = rotateLeft(root.left)
			root.updateHeight()
			root.updateMax()
		}
		return rotateRight(root)
	case bf < -1:
		if root.right.balanceFactor() > 0 { // right-left case
			root.right = rotateRight(root.right)
			root.updateHeight()
			root.updateMax()
		}
		return rotateLeft(root)
	}
	return root
}

func rotateLeft[K cmp.Ordered, V any](root *node[K, V]) *node[K, V] {
	assert(root.right != nil, "rotateLeft: no right child to pivot on")
	pivot := root.right
	root.right = pivot.left
	root.updateHeight()
	root.updateMax()
	pivot.left = root
	pivot.updateHeight()
	pivot.updateMax()
	return pivot
}

func rotateRight[K cmp.Ordered, V any](root *node[K, V]) *node[K, V] {
	assert(root.left != nil, "rotateRight: no left child to pivot on")
	pivot := root.left
	root.left = pivot.right
	root.updateHeight()
	root.updateMax()
	pivot.right = root
	pivot.updateHeight()
	pivot.updateMax()
	return pivot
}
