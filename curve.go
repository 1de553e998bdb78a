package wkb

// CompoundCurve is an ordered sequence of LineString and/or CircularString
// segments, joined end to end.
type CompoundCurve struct {
	dims
	Curves []Geometry
}

var _ Geometry = (*CompoundCurve)(nil)

// NewCompoundCurve creates an empty CompoundCurve with the given
// dimensionality.
func NewCompoundCurve(hasZ, hasM bool) *CompoundCurve {
	return &CompoundCurve{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddCurve appends a LineString or CircularString segment. It returns
// InvalidChildTypeError for any other tag, or DimensionMismatchError if
// the child's dimensionality does not match.
func (cc *CompoundCurve) AddCurve(g Geometry) error {
	if g.Tag() != TagLineString && g.Tag() != TagCircularString {
		return &InvalidChildTypeError{Container: TagCompoundCurve, Got: g.Tag()}
	}
	if g.HasZ() != cc.hasZ || g.HasM() != cc.hasM {
		return &DimensionMismatchError{Container: TagCompoundCurve}
	}
	cc.Curves = append(cc.Curves, g)
	return nil
}

// Tag implements Geometry.
func (*CompoundCurve) Tag() GeometryTag { return TagCompoundCurve }

// IsEmpty implements Geometry.
func (cc *CompoundCurve) IsEmpty() bool { return len(cc.Curves) == 0 }

// CurvePolygon is a planar surface bounded by an ordered sequence of curve
// rings, each one of LineString, CircularString, or CompoundCurve.
type CurvePolygon struct {
	dims
	Rings []Geometry
}

var _ Geometry = (*CurvePolygon)(nil)

// NewCurvePolygon creates an empty CurvePolygon with the given
// dimensionality.
func NewCurvePolygon(hasZ, hasM bool) *CurvePolygon {
	return &CurvePolygon{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddRing appends a curve ring. It returns InvalidChildTypeError for any
// tag other than LineString, CircularString, or CompoundCurve, or
// DimensionMismatchError on a dimensionality mismatch.
func (cp *CurvePolygon) AddRing(g Geometry) error {
	switch g.Tag() {
	case TagLineString, TagCircularString, TagCompoundCurve:
	default:
		return &InvalidChildTypeError{Container: TagCurvePolygon, Got: g.Tag()}
	}
	if g.HasZ() != cp.hasZ || g.HasM() != cp.hasM {
		return &DimensionMismatchError{Container: TagCurvePolygon}
	}
	cp.Rings = append(cp.Rings, g)
	return nil
}

// Tag implements Geometry.
func (*CurvePolygon) Tag() GeometryTag { return TagCurvePolygon }

// IsEmpty implements Geometry.
func (cp *CurvePolygon) IsEmpty() bool { return len(cp.Rings) == 0 }
