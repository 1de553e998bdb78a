package wkb

// LineString is a curve defined by linear interpolation between an ordered
// sequence of Points. Every Point shares the LineString's own hasZ/hasM.
type LineString struct {
	dims
	Points []Point
}

var _ Geometry = (*LineString)(nil)

// NewLineString creates an empty LineString with the given dimensionality.
// Use AddPoint to populate it.
func NewLineString(hasZ, hasM bool) *LineString {
	return &LineString{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddPoint appends p, returning a DimensionMismatchError if p's
// dimensionality does not match the LineString's.
func (ls *LineString) AddPoint(p Point) error {
	if !sameDims(ls.dims, p.dims) {
		return &DimensionMismatchError{Container: TagLineString}
	}
	ls.Points = append(ls.Points, p)
	return nil
}

// Tag implements Geometry.
func (*LineString) Tag() GeometryTag { return TagLineString }

// IsEmpty implements Geometry.
func (ls *LineString) IsEmpty() bool { return len(ls.Points) == 0 }

// Len returns the number of points.
func (ls *LineString) Len() int { return len(ls.Points) }

// PointN returns the i-th point (0-based).
func (ls *LineString) PointN(i int) Point { return ls.Points[i] }

// CircularString is a curve whose segments are interpreted as circular
// arcs through successive triples of points, using the same "ordered
// sequence of Points" payload as LineString (spec.md §3.1).
type CircularString struct {
	dims
	Points []Point
}

var _ Geometry = (*CircularString)(nil)

// NewCircularString creates an empty CircularString with the given
// dimensionality.
func NewCircularString(hasZ, hasM bool) *CircularString {
	return &CircularString{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddPoint appends p, returning a DimensionMismatchError on mismatch.
func (cs *CircularString) AddPoint(p Point) error {
	if !sameDims(cs.dims, p.dims) {
		return &DimensionMismatchError{Container: TagCircularString}
	}
	cs.Points = append(cs.Points, p)
	return nil
}

// Tag implements Geometry.
func (*CircularString) Tag() GeometryTag { return TagCircularString }

// IsEmpty implements Geometry.
func (cs *CircularString) IsEmpty() bool { return len(cs.Points) == 0 }

// Len returns the number of points.
func (cs *CircularString) Len() int { return len(cs.Points) }

// PointN returns the i-th point (0-based).
func (cs *CircularString) PointN(i int) Point { return cs.Points[i] }
