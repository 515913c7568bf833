package rtree

import (
	"fmt"
	"sort"
)

// Load bulk loads items into a new RTree with the given node size
// parameters. The tree is built bottom up, grouping entries that are close
// together along the longer axis of their combined bounds, which gives less
// node overlap than inserting the items one at a time.
//
// Load fails with ErrConfiguration for invalid parameters, and with
// ErrPrecondition if any item is nil or has an invalid rectangle.
func Load(minEntries, maxEntries int, items []Spatial) (*RTree, error) {
	t, err := New(minEntries, maxEntries)
	if err != nil {
		return nil, err
	}

	level := make([]entry, len(items))
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: nil item at index %d", ErrPrecondition, i)
		}
		bb := item.Bounds()
		if !bb.Valid() {
			return nil, fmt.Errorf("%w: invalid rectangle %v for item at index %d", ErrPrecondition, bb, i)
		}
		level[i] = entry{box: bb, item: item}
	}
	t.size = len(items)
	if len(level) <= maxEntries {
		t.nodes[t.root].entries = level
		return t, nil
	}

	t.nodes = t.nodes[:0]
	leaf := true
	for {
		groups := groupSizes(len(level), maxEntries)
		var parents []entry
		for _, group := range partition(level, groups) {
			t.nodes = append(t.nodes, node{leaf: leaf, entries: group})
			parents = append(parents, entry{box: bound(group), child: len(t.nodes) - 1})
		}
		level, leaf = parents, false
		if len(level) <= maxEntries {
			break
		}
	}
	t.nodes = append(t.nodes, node{leaf: false, entries: level})
	t.root = len(t.nodes) - 1
	return t, nil
}

// groupSizes divides k entries into the fewest groups of at most maxEntries,
// with group sizes differing by no more than one. When there are two or more
// groups, each holds more than maxEntries/2 entries, so the minimum is
// always met.
func groupSizes(k, maxEntries int) []int {
	g := (k + maxEntries - 1) / maxEntries
	sizes := make([]int, g)
	for i := range sizes {
		sizes[i] = k / g
		if i < k%g {
			sizes[i]++
		}
	}
	return sizes
}

// partition splits entries into consecutive runs with the given sizes. Runs
// are formed by recursively sorting along the longer axis and halving.
func partition(entries []entry, sizes []int) [][]entry {
	if len(sizes) == 1 {
		group := make([]entry, len(entries))
		copy(group, entries)
		return [][]entry{group}
	}

	bb := bound(entries)
	var sortBy func(i, j int) bool
	if bb.MaxX-bb.MinX > bb.MaxY-bb.MinY {
		sortBy = func(i, j int) bool {
			bi := entries[i].box
			bj := entries[j].box
			return bi.MinX+bi.MaxX < bj.MinX+bj.MaxX
		}
	} else {
		sortBy = func(i, j int) bool {
			bi := entries[i].box
			bj := entries[j].box
			return bi.MinY+bi.MaxY < bj.MinY+bj.MaxY
		}
	}
	sort.SliceStable(entries, sortBy)

	half := len(sizes) / 2
	split := 0
	for _, s := range sizes[:half] {
		split += s
	}
	return append(partition(entries[:split], sizes[:half]), partition(entries[split:], sizes[half:])...)
}
