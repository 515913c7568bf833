package rtree

import (
	"errors"
	"fmt"
)

// Spatial is implemented by anything that can be stored in an RTree or used
// to query one. Items are stored by value of the interface; query results
// hold exactly the values that were inserted.
type Spatial interface {
	Bounds() Rectangle
}

// node is a node in an R-Tree. nodes can either be leaf nodes holding entries
// for terminal items, or intermediate nodes holding entries for more nodes.
type node struct {
	leaf    bool
	entries []entry
}

// entry is an entry under a node, leading either to a terminal item, or to
// another node. For leaf nodes only item is set, otherwise only child is.
type entry struct {
	box   Rectangle
	child int
	item  Spatial
}

// RTree is an in-memory R-Tree data structure. Nodes are held in an arena
// and refer to their children by index.
//
// An RTree is not safe for concurrent use. Callers that mix inserts with
// queries from several goroutines must serialise access themselves.
type RTree struct {
	nodes      []node
	root       int
	minEntries int
	maxEntries int
	size       int
}

// New creates an empty RTree. Every node other than the root holds between
// minEntries and maxEntries entries, which requires minEntries to be at
// least 1 and at most half of maxEntries.
func New(minEntries, maxEntries int) (*RTree, error) {
	if err := checkCapacity(minEntries, maxEntries); err != nil {
		return nil, err
	}
	return &RTree{
		nodes:      []node{{leaf: true}},
		root:       0,
		minEntries: minEntries,
		maxEntries: maxEntries,
	}, nil
}

func checkCapacity(minEntries, maxEntries int) error {
	if minEntries < 1 {
		return fmt.Errorf("%w: min entries must be at least 1, got %d", ErrConfiguration, minEntries)
	}
	if maxEntries < 2*minEntries {
		return fmt.Errorf("%w: max entries (%d) must be at least twice min entries (%d)",
			ErrConfiguration, maxEntries, minEntries)
	}
	return nil
}

// Len returns the number of items in the tree.
func (t *RTree) Len() int {
	return t.size
}

// Height returns the number of levels in the tree. An empty tree has a
// height of 1 (a single empty leaf).
func (t *RTree) Height() int {
	h := 1
	for n := t.root; !t.nodes[n].leaf; n = t.nodes[n].entries[0].child {
		h++
	}
	return h
}

// Bounds returns the smallest rectangle covering every item in the tree.
// The second return value is false if the tree is empty.
func (t *RTree) Bounds() (Rectangle, bool) {
	root := &t.nodes[t.root]
	if len(root.entries) == 0 {
		return Rectangle{}, false
	}
	return bound(root.entries), true
}

// SearchOverlapping calls fn for each item whose rectangle overlaps the
// bounding rectangle of shape. Items that only touch the shape's bounds at
// an edge or corner are not reported. If fn returns an error the search is
// terminated early and the error is returned, except for Stop, in which
// case nil is returned.
func (t *RTree) SearchOverlapping(shape Spatial, fn func(Spatial) error) error {
	if shape == nil {
		return fmt.Errorf("%w: nil query shape", ErrPrecondition)
	}
	q := shape.Bounds()
	if !q.Valid() {
		return fmt.Errorf("%w: invalid query rectangle %v", ErrPrecondition, q)
	}
	return stopIsNil(t.search(t.root, func(box Rectangle) bool {
		return overlaps(box, q)
	}, func(box Rectangle) bool {
		return overlaps(box, q)
	}, fn))
}

// SearchContained calls fn for each item whose rectangle lies inside rect,
// boundaries included. Early termination works as for SearchOverlapping.
func (t *RTree) SearchContained(rect Rectangle, fn func(Spatial) error) error {
	if !rect.Valid() {
		return fmt.Errorf("%w: invalid query rectangle %v", ErrPrecondition, rect)
	}
	return stopIsNil(t.search(t.root, func(box Rectangle) bool {
		return touches(box, rect)
	}, func(box Rectangle) bool {
		return contains(rect, box)
	}, fn))
}

// OverlappedBy returns the items whose rectangle overlaps the bounding
// rectangle of shape. The result is unordered.
func (t *RTree) OverlappedBy(shape Spatial) ([]Spatial, error) {
	var found []Spatial
	err := t.SearchOverlapping(shape, func(item Spatial) error {
		found = append(found, item)
		return nil
	})
	return found, err
}

// ContainedBy returns the items whose rectangle lies inside rect, boundaries
// included. The result is unordered.
func (t *RTree) ContainedBy(rect Rectangle) ([]Spatial, error) {
	var found []Spatial
	err := t.SearchContained(rect, func(item Spatial) error {
		found = append(found, item)
		return nil
	})
	return found, err
}

// Nearby returns the items overlapping the bounds of shape grown by margin
// on every side.
func (t *RTree) Nearby(shape Spatial, margin float64) ([]Spatial, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: nil query shape", ErrPrecondition)
	}
	return t.OverlappedBy(shape.Bounds().Expand(margin))
}

// search walks the subtree rooted at n, descending into entries accepted by
// descend and reporting leaf items accepted by match.
func (t *RTree) search(n int, descend, match func(Rectangle) bool, fn func(Spatial) error) error {
	nd := &t.nodes[n]
	for _, e := range nd.entries {
		if nd.leaf {
			if !match(e.box) {
				continue
			}
			if err := fn(e.item); err != nil {
				return err
			}
			continue
		}
		if !descend(e.box) {
			continue
		}
		if err := t.search(e.child, descend, match, fn); err != nil {
			return err
		}
	}
	return nil
}

func stopIsNil(err error) error {
	if errors.Is(err, Stop) {
		return nil
	}
	return err
}
