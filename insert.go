package rtree

import (
	"fmt"
	"math"
)

// step is one level of the path from the root to a leaf: the node visited
// and the index of the entry in its parent that leads to it. The root's
// entry index is -1.
type step struct {
	node  int
	entry int
}

// Insert adds a new item to the RTree. It fails without modifying the tree if
// item is nil or its bounding rectangle is invalid.
func (t *RTree) Insert(item Spatial) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", ErrPrecondition)
	}
	bb := item.Bounds()
	if !bb.Valid() {
		return fmt.Errorf("%w: invalid item rectangle %v", ErrPrecondition, bb)
	}

	path := t.chooseLeaf(bb)
	leaf := path[len(path)-1].node
	t.nodes[leaf].entries = append(t.nodes[leaf].entries, entry{box: bb, item: item})
	t.adjustTree(path)
	t.size++
	return nil
}

// chooseLeaf descends from the root to the leaf that needs the least area
// enlargement to accommodate bb, returning the path taken.
func (t *RTree) chooseLeaf(bb Rectangle) []step {
	path := []step{{node: t.root, entry: -1}}
	n := t.root
	for !t.nodes[n].leaf {
		entries := t.nodes[n].entries
		best := 0
		bestDelta := enlargement(entries[0].box, bb)
		for i := 1; i < len(entries); i++ {
			delta := enlargement(entries[i].box, bb)
			if delta < bestDelta {
				bestDelta = delta
				best = i
			} else if delta == bestDelta && area(entries[i].box) < area(entries[best].box) {
				// Area is used as a tie breaker if the enlargements are the same.
				best = i
			}
		}
		n = entries[best].child
		path = append(path, step{node: n, entry: best})
	}
	return path
}

// adjustTree walks the path from the leaf up to the root, splitting any node
// that overflows and tightening the bounding box held for each node by its
// parent.
func (t *RTree) adjustTree(path []step) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i].node
		sibling := -1
		if len(t.nodes[n].entries) > t.maxEntries {
			sibling = t.splitNode(n)
		}

		if i == 0 {
			if sibling != -1 {
				t.joinRoots(n, sibling)
			}
			return
		}

		parent := path[i-1].node
		t.nodes[parent].entries[path[i].entry].box = bound(t.nodes[n].entries)
		if sibling != -1 {
			t.nodes[parent].entries = append(t.nodes[parent].entries, entry{
				box:   bound(t.nodes[sibling].entries),
				child: sibling,
			})
		}
	}
}

// joinRoots grows the tree by one level, creating a new root above r1 and r2.
func (t *RTree) joinRoots(r1, r2 int) {
	t.nodes = append(t.nodes, node{
		leaf: false,
		entries: []entry{
			{box: bound(t.nodes[r1].entries), child: r1},
			{box: bound(t.nodes[r2].entries), child: r2},
		},
	})
	t.root = len(t.nodes) - 1
}

// splitNode splits node n into two nodes using the quadratic split. The first
// group replaces the entries of n, and the second group goes to a newly
// created node. The return value is the index of the new node.
func (t *RTree) splitNode(n int) int {
	entries := t.nodes[n].entries
	s1, s2 := pickSeeds(entries)

	groupA := []entry{entries[s1]}
	groupB := []entry{entries[s2]}
	boxA, boxB := entries[s1].box, entries[s2].box

	remaining := make([]entry, 0, len(entries)-2)
	for i, e := range entries {
		if i != s1 && i != s2 {
			remaining = append(remaining, e)
		}
	}

	for len(remaining) > 0 {
		// If one group needs every remaining entry to reach the minimum,
		// it gets them all.
		if len(groupA)+len(remaining) == t.minEntries {
			groupA = append(groupA, remaining...)
			break
		}
		if len(groupB)+len(remaining) == t.minEntries {
			groupB = append(groupB, remaining...)
			break
		}

		next := pickNext(remaining, boxA, boxB)
		e := remaining[next]
		remaining = append(remaining[:next], remaining[next+1:]...)

		if preferFirst(e.box, boxA, boxB, len(groupA), len(groupB)) {
			groupA = append(groupA, e)
			boxA = combine(boxA, e.box)
		} else {
			groupB = append(groupB, e)
			boxB = combine(boxB, e.box)
		}
	}

	// Use the existing node for A, and create a new node for B.
	t.nodes[n].entries = groupA
	t.nodes = append(t.nodes, node{
		leaf:    t.nodes[n].leaf,
		entries: groupB,
	})
	return len(t.nodes) - 1
}

// pickSeeds chooses the pair of entries that would waste the most area if
// they were put in the same group.
func pickSeeds(entries []entry) (int, int) {
	s1, s2 := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			d := area(combine(entries[i].box, entries[j].box)) -
				area(entries[i].box) - area(entries[j].box)
			if d > worst {
				worst = d
				s1, s2 = i, j
			}
		}
	}
	return s1, s2
}

// pickNext chooses the remaining entry with the strongest preference for one
// group over the other.
func pickNext(remaining []entry, boxA, boxB Rectangle) int {
	next := 0
	maxDiff := math.Inf(-1)
	for i, e := range remaining {
		diff := math.Abs(enlargement(boxA, e.box) - enlargement(boxB, e.box))
		if diff > maxDiff {
			maxDiff = diff
			next = i
		}
	}
	return next
}

// preferFirst decides whether bb joins group A rather than group B: least
// enlargement, then smaller area, then fewer entries, then A.
func preferFirst(bb, boxA, boxB Rectangle, lenA, lenB int) bool {
	dA, dB := enlargement(boxA, bb), enlargement(boxB, bb)
	if dA != dB {
		return dA < dB
	}
	if aA, aB := area(boxA), area(boxB); aA != aB {
		return aA < aB
	}
	return lenA <= lenB
}
