package intervals

import (
	"cmp"
	"fmt"
)

// Check validates structural tree invariants: strict (low, high) search
// ordering, the AVL balance bound, exact height bookkeeping and exact
// subtree maxima.
//
// This checker is intentionally strict and meant for tests; a healthy tree
// can never fail it.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	_, _, err := checkNode(t.root)
	return err
}

func checkNode[K cmp.Ordered, V any](n *node[K, V]) (h int32, maxHigh K, err error) {
	if n.key.high < n.key.low {
		return 0, maxHigh, fmt.Errorf("%w: malformed key %s", ErrInvariantViolation, n.key)
	}
	var leftHeight, rightHeight int32
	maxHigh = n.key.high
	if n.left != nil {
		if !n.left.key.less(n.key) {
			return 0, maxHigh, fmt.Errorf("%w: left child %s not before %s",
				ErrInvariantViolation, n.left.key, n.key)
		}
		var leftMax K
		if leftHeight, leftMax, err = checkNode(n.left); err != nil {
			return 0, maxHigh, err
		}
		if leftMax > maxHigh {
			maxHigh = leftMax
		}
	}
	if n.right != nil {
		if n.right.key.less(n.key) {
			return 0, maxHigh, fmt.Errorf("%w: right child %s before %s",
				ErrInvariantViolation, n.right.key, n.key)
		}
		var rightMax K
		if rightHeight, rightMax, err = checkNode(n.right); err != nil {
			return 0, maxHigh, err
		}
		if rightMax > maxHigh {
			maxHigh = rightMax
		}
	}
	if bf := leftHeight - rightHeight; bf < -1 || bf > 1 {
		return 0, maxHigh, fmt.Errorf("%w: balance factor %d at %s",
			ErrInvariantViolation, bf, n.key)
	}
	h = max(leftHeight, rightHeight) + 1
	if n.height != h {
		return 0, maxHigh, fmt.Errorf("%w: height %d at %s, expected %d",
			ErrInvariantViolation, n.height, n.key, h)
	}
	if n.max != maxHigh {
		return 0, maxHigh, fmt.Errorf("%w: subtree max %v at %s, expected %v",
			ErrInvariantViolation, n.max, n.key, maxHigh)
	}
	return h, maxHigh, nil
}
