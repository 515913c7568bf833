package rtree

// overlaps is the open overlap test. Rectangles sharing only an edge or a
// corner do not overlap.
func overlaps(a, q Rectangle) bool {
	return a.MinX < q.MaxX && a.MaxX > q.MinX &&
		a.MinY < q.MaxY && a.MaxY > q.MinY
}

// touches is the closed overlap test. It prunes containment searches, where
// a subtree touching the query at a single point may still hold a contained
// degenerate item.
func touches(a, q Rectangle) bool {
	return a.MinX <= q.MaxX && a.MaxX >= q.MinX &&
		a.MinY <= q.MaxY && a.MaxY >= q.MinY
}

// contains is the closed containment test: a is inside q, boundaries
// included.
func contains(q, a Rectangle) bool {
	return a.MinX >= q.MinX && a.MaxX <= q.MaxX &&
		a.MinY >= q.MinY && a.MaxY <= q.MaxY
}

// Overlaps reports whether r and o share a region of the plane beyond their
// boundaries. This is the test OverlappedBy applies.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return overlaps(r, o)
}

// Touches reports whether r and o share at least one point.
func (r Rectangle) Touches(o Rectangle) bool {
	return touches(r, o)
}

// Contains reports whether o lies inside r, with boundaries included. This
// is the test ContainedBy applies.
func (r Rectangle) Contains(o Rectangle) bool {
	return contains(r, o)
}
