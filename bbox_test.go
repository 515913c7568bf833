package rtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleMeasures(t *testing.T) {
	r := Rect(1, 2, 4, 8)
	assert.Equal(t, 3.0, r.Width())
	assert.Equal(t, 6.0, r.Height())
	assert.Equal(t, 18.0, r.Area())
	assert.Equal(t, Point{X: 2.5, Y: 5}, r.Midpoint())
	assert.Equal(t, Rect(0, 1, 5, 9), r.Expand(1))
}

func TestRectangleValid(t *testing.T) {
	assert.True(t, Rect(0, 0, 0, 0).Valid())
	assert.True(t, Rect(-1, -1, 1, 1).Valid())
	assert.False(t, Rect(1, 0, 0, 1).Valid())
	assert.False(t, Rect(0, 1, 1, 0).Valid())
	assert.False(t, Rect(math.NaN(), 0, 1, 1).Valid())
}

func TestUnion(t *testing.T) {
	assert.Equal(t, Rect(1, 1, 4, 6), Rect(1, 1, 3, 3).Union(Rect(2, 2, 4, 6)))
	assert.Equal(t, Rect(0, 0, 10, 10), Rect(0, 0, 10, 10).Union(Rect(2, 2, 3, 3)))
}

func TestIntersection(t *testing.T) {
	for _, tc := range []struct {
		name   string
		a, b   Rectangle
		want   Rectangle
		wantOK bool
	}{
		{"overlapping", Rect(1, 1, 3, 3), Rect(2, 2, 4, 6), Rect(2, 2, 3, 3), true},
		{"nested", Rect(0, 0, 10, 10), Rect(2, 3, 4, 5), Rect(2, 3, 4, 5), true},
		{"shared edge", Rect(0, 0, 1, 1), Rect(1, 0, 2, 1), Rect(1, 0, 1, 1), true},
		{"shared corner", Rect(0, 0, 1, 1), Rect(1, 1, 2, 2), Rect(1, 1, 1, 1), true},
		{"disjoint", Rect(0, 0, 1, 1), Rect(2, 2, 3, 3), Rectangle{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Intersection(tc.b)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShapeBounds(t *testing.T) {
	assert.Equal(t, Rect(2, 3, 2, 3), Point{X: 2, Y: 3}.Bounds())
	assert.Equal(t, Rect(1, 2, 5, 7), Line{Start: Point{X: 5, Y: 2}, End: Point{X: 1, Y: 7}}.Bounds())
	assert.Equal(t, Rect(1, 2, 5, 7), RectFromPoints(Point{X: 5, Y: 7}, Point{X: 1, Y: 2}))
}

func TestPredicates(t *testing.T) {
	q := Rect(0, 0, 4, 4)
	for _, tc := range []struct {
		name                        string
		r                           Rectangle
		overlaps, touches, contains bool
	}{
		{"inside", Rect(1, 1, 2, 2), true, true, true},
		{"equal", q, true, true, true},
		{"flush inside", Rect(0, 0, 2, 4), true, true, true},
		{"crossing", Rect(3, 3, 5, 5), true, true, false},
		{"covering", Rect(-1, -1, 5, 5), true, true, false},
		{"edge", Rect(4, 0, 6, 4), false, true, false},
		{"corner", Rect(4, 4, 6, 6), false, true, false},
		{"outside", Rect(5, 5, 6, 6), false, false, false},
		{"point inside", Rect(2, 2, 2, 2), true, true, true},
		{"point on edge", Rect(0, 2, 0, 2), false, true, true},
		{"point on corner", Rect(4, 4, 4, 4), false, true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.r.Overlaps(q), "overlaps")
			assert.Equal(t, tc.overlaps, q.Overlaps(tc.r), "overlaps is symmetric")
			assert.Equal(t, tc.touches, tc.r.Touches(q), "touches")
			assert.Equal(t, tc.contains, q.Contains(tc.r), "contains")
		})
	}
}

func TestEnlargement(t *testing.T) {
	assert.Equal(t, 0.0, enlargement(Rect(0, 0, 4, 4), Rect(1, 1, 2, 2)))
	assert.Equal(t, 2.0, enlargement(Rect(0, 0, 2, 2), Rect(2, 0, 3, 2)))
}
