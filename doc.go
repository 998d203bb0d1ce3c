/*
Package intervals provides an in-memory index over closed numeric intervals.

Interval trees

An interval tree stores (interval, value) pairs and answers stabbing and
overlap queries: given a query interval, report every stored entry whose
interval intersects it. The tree in this package is an augmented AVL tree —
a self-balancing binary search tree ordered by the intervals' lower bounds,
where every node additionally caches the maximum upper bound found anywhere
in its subtree. The cached maximum lets an overlap search skip whole
subtrees that provably end before the query begins, which makes both
insertion and search logarithmic in the number of stored entries. Search
degrades towards O(n) only when almost everything overlaps the query.

Intervals are closed on both ends, and overlap is inclusive: [0,1] and
[1,3] share the point 1 and therefore overlap. Keys need not be unique —
inserting the same interval twice keeps two distinct entries.

	tree := intervals.New[int, string]()
	tree.Insert(iv, "apple")
	for entry := range tree.Find(query) {
		fmt.Println(entry.Key(), entry.Value())
	}

The tree is a pure data structure: it does no I/O, spawns no goroutines and
is not internally synchronized. A single writer may mutate it; multiple
readers may query it concurrently only while no writer is active. Callers
needing concurrent mutation must coordinate externally.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package intervals

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
