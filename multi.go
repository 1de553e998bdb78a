package wkb

// MultiPoint is an ordered collection of Points.
type MultiPoint struct {
	dims
	Points []Point
}

var _ Geometry = (*MultiPoint)(nil)

// NewMultiPoint creates an empty MultiPoint with the given dimensionality.
func NewMultiPoint(hasZ, hasM bool) *MultiPoint {
	return &MultiPoint{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddPoint appends p, returning DimensionMismatchError on a mismatch.
func (mp *MultiPoint) AddPoint(p Point) error {
	if !sameDims(mp.dims, p.dims) {
		return &DimensionMismatchError{Container: TagMultiPoint}
	}
	mp.Points = append(mp.Points, p)
	return nil
}

// Tag implements Geometry.
func (*MultiPoint) Tag() GeometryTag { return TagMultiPoint }

// IsEmpty implements Geometry.
func (mp *MultiPoint) IsEmpty() bool { return len(mp.Points) == 0 }

// MultiLineString is an ordered collection of LineStrings.
type MultiLineString struct {
	dims
	LineStrings []*LineString
}

var _ Geometry = (*MultiLineString)(nil)

// NewMultiLineString creates an empty MultiLineString with the given
// dimensionality.
func NewMultiLineString(hasZ, hasM bool) *MultiLineString {
	return &MultiLineString{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddLineString appends ls, returning DimensionMismatchError on mismatch.
func (mls *MultiLineString) AddLineString(ls *LineString) error {
	if !sameDims(mls.dims, ls.dims) {
		return &DimensionMismatchError{Container: TagMultiLineString}
	}
	mls.LineStrings = append(mls.LineStrings, ls)
	return nil
}

// Tag implements Geometry.
func (*MultiLineString) Tag() GeometryTag { return TagMultiLineString }

// IsEmpty implements Geometry.
func (mls *MultiLineString) IsEmpty() bool { return len(mls.LineStrings) == 0 }

// MultiPolygon is an ordered collection of Polygons.
type MultiPolygon struct {
	dims
	Polygons []*Polygon
}

var _ Geometry = (*MultiPolygon)(nil)

// NewMultiPolygon creates an empty MultiPolygon with the given
// dimensionality.
func NewMultiPolygon(hasZ, hasM bool) *MultiPolygon {
	return &MultiPolygon{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddPolygon appends poly, returning DimensionMismatchError on mismatch.
func (mp *MultiPolygon) AddPolygon(poly *Polygon) error {
	if !sameDims(mp.dims, poly.dims) {
		return &DimensionMismatchError{Container: TagMultiPolygon}
	}
	mp.Polygons = append(mp.Polygons, poly)
	return nil
}

// Tag implements Geometry.
func (*MultiPolygon) Tag() GeometryTag { return TagMultiPolygon }

// IsEmpty implements Geometry.
func (mp *MultiPolygon) IsEmpty() bool { return len(mp.Polygons) == 0 }
