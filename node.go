package intervals

import "cmp"

// node is one tree node. It exclusively owns its two optional children;
// there are no parent pointers, rebalancing works by returning the new
// subtree root to the caller.
//
// height and balance factors share one signed width so that comparing them
// can never wrap. Heights are O(log n), so int32 is generous.
type node[K cmp.Ordered, V any] struct {
	key    Interval[K]
	value  V
	max    K // maximum high endpoint in this subtree
	height int32
	left   *node[K, V]
	right  *node[K, V]
}

func newNode[K cmp.Ordered, V any](key Interval[K], value V) *node[K, V] {
	return &node[K, V]{
		key:    key,
		value:  value,
		max:    key.high,
		height: 1,
	}
}

// height of a possibly absent subtree; nil counts as 0, a leaf as 1.
func height[K cmp.Ordered, V any](n *node[K, V]) int32 {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[K, V]) balanceFactor() int32 {
	return height(n.left) - height(n.right)
}

func (n *node[K, V]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// updateMax recomputes the cached subtree maximum from the node's own key
// and the children's maxima. Must run bottom-up after every structural
// change, or searches will prune live subtrees.
func (n *node[K, V]) updateMax() {
	n.max = n.key.high
	if n.left != nil && n.left.max > n.max {
		n.max = n.left.max
	}
	if n.right != nil && n.right.max > n.max {
		n.max = n.right.max
	}
}
