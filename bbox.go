package rtree

import "math"

// Rectangle is an axis-aligned rectangle. A valid rectangle has MinX <= MaxX
// and MinY <= MaxY.
type Rectangle struct {
	MinX, MinY, MaxX, MaxY float64
}

// Rect creates a rectangle from its bounds.
func Rect(minX, minY, maxX, maxY float64) Rectangle {
	return Rectangle{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// RectFromPoints creates the smallest rectangle covering two corner points,
// given in any order.
func RectFromPoints(p, q Point) Rectangle {
	return Rectangle{
		MinX: math.Min(p.X, q.X),
		MinY: math.Min(p.Y, q.Y),
		MaxX: math.Max(p.X, q.X),
		MaxY: math.Max(p.Y, q.Y),
	}
}

// Bounds returns the rectangle itself, so that rectangles can be indexed and
// used as query shapes directly.
func (r Rectangle) Bounds() Rectangle {
	return r
}

// Valid reports whether the min bounds do not exceed the max bounds. NaN
// bounds are never valid.
func (r Rectangle) Valid() bool {
	return r.MinX <= r.MaxX && r.MinY <= r.MaxY
}

func (r Rectangle) Width() float64 {
	return r.MaxX - r.MinX
}

func (r Rectangle) Height() float64 {
	return r.MaxY - r.MinY
}

func (r Rectangle) Area() float64 {
	return area(r)
}

// Midpoint returns the centre of the rectangle.
func (r Rectangle) Midpoint() Point {
	return Point{
		X: (r.MinX + r.MaxX) / 2,
		Y: (r.MinY + r.MaxY) / 2,
	}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	return combine(r, o)
}

// Intersection returns the rectangle shared by r and o. The second return
// value is false when they are disjoint. Rectangles that only share an edge
// or corner intersect in a degenerate rectangle.
func (r Rectangle) Intersection(o Rectangle) (Rectangle, bool) {
	if !touches(r, o) {
		return Rectangle{}, false
	}
	return Rectangle{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}, true
}

// Expand grows the rectangle by margin on all sides.
func (r Rectangle) Expand(margin float64) Rectangle {
	return Rectangle{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Bounds returns the degenerate rectangle at the point.
func (p Point) Bounds() Rectangle {
	return Rectangle{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Line is a straight segment between two points.
type Line struct {
	Start, End Point
}

// Bounds returns the rectangle spanning both endpoints. A line is indexed
// and queried exactly as its bounding rectangle.
func (l Line) Bounds() Rectangle {
	return RectFromPoints(l.Start, l.End)
}

// combine gives the smallest bounding box containing both bbox1 and bbox2.
func combine(bbox1, bbox2 Rectangle) Rectangle {
	return Rectangle{
		MinX: math.Min(bbox1.MinX, bbox2.MinX),
		MinY: math.Min(bbox1.MinY, bbox2.MinY),
		MaxX: math.Max(bbox1.MaxX, bbox2.MaxX),
		MaxY: math.Max(bbox1.MaxY, bbox2.MaxY),
	}
}

// enlargement returns how much additional area the existing rectangle would
// have to enlarge by to accommodate the additional one.
func enlargement(existing, additional Rectangle) float64 {
	return area(combine(existing, additional)) - area(existing)
}

func area(bb Rectangle) float64 {
	return (bb.MaxX - bb.MinX) * (bb.MaxY - bb.MinY)
}

// bound calculates the smallest rectangle that fits all entries. The
// entries must not be empty.
func bound(entries []entry) Rectangle {
	bb := entries[0].box
	for _, e := range entries[1:] {
		bb = combine(bb, e.box)
	}
	return bb
}
