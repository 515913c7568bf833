package rtree

import "github.com/paulmach/orb"

// FromBound converts an orb bound into a Rectangle. An empty orb bound
// converts to an invalid rectangle.
func FromBound(b orb.Bound) Rectangle {
	return Rectangle{
		MinX: b.Min.X(),
		MinY: b.Min.Y(),
		MaxX: b.Max.X(),
		MaxY: b.Max.Y(),
	}
}

// Bound converts the rectangle into an orb bound.
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinX, r.MinY},
		Max: orb.Point{r.MaxX, r.MaxY},
	}
}

// FromOrbPoint converts an orb point.
func FromOrbPoint(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

// Geometry adapts an orb geometry so that it can be inserted into an RTree
// or used as a query shape. It is indexed by its bound.
//
// Only *Geometry implements Spatial. Most orb geometries are slices, and
// the pointer keeps query results comparable by identity.
type Geometry struct {
	orb.Geometry
}

// Bounds returns the bound of the wrapped geometry.
func (g *Geometry) Bounds() Rectangle {
	return FromBound(g.Geometry.Bound())
}
