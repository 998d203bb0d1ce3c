package intervals

import (
	"cmp"
	"iter"
)

// Entry is a read-only view of one stored interval-value pair, produced by
// queries. It borrows from the tree and must not outlive it.
type Entry[K cmp.Ordered, V any] struct {
	n *node[K, V]
}

// Key returns the interval under which the entry is stored.
func (e Entry[K, V]) Key() Interval[K] {
	return e.n.key
}

// Value returns the value stored with the entry.
func (e Entry[K, V]) Value() V {
	return e.n.value
}

// Find returns an iterator over all entries whose interval overlaps the
// query, touching endpoints included.
//
// The sequence is lazy and restartable: ranging over it twice walks the
// tree twice and yields the same entries, as long as no insert happened in
// between. Yield order is unspecified. Iteration never mutates the tree.
func (t *Tree[K, V]) Find(query Interval[K]) iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		if t == nil {
			return
		}
		findOverlapping(t.root, query, yield)
	}
}

// findOverlapping is a pruned depth-first walk. The subtree maximum cuts
// off left descents whose intervals all end before the query starts; the
// (low, high) ordering cuts off right descents whose intervals all start
// after the query ends.
func findOverlapping[K cmp.Ordered, V any](n *node[K, V], query Interval[K], yield func(Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}
	if n.left != nil && n.left.max >= query.low {
		if !findOverlapping(n.left, query, yield) {
			return false
		}
	}
	if n.key.Overlaps(query) {
		if !yield(Entry[K, V]{n: n}) {
			return false
		}
	}
	if n.key.low <= query.high {
		return findOverlapping(n.right, query, yield)
	}
	return true
}

// All returns an iterator over every entry in the tree, in ascending
// (low, high) key order.
func (t *Tree[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		if t == nil {
			return
		}
		inorder(t.root, yield)
	}
}

func inorder[K cmp.Ordered, V any](n *node[K, V], yield func(Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, yield) && yield(Entry[K, V]{n: n}) && inorder(n.right, yield)
}
