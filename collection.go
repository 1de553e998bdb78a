package wkb

// GeometryCollection is an ordered collection of arbitrary geometries. A
// collection whose children are all curves (LineString, CircularString,
// CompoundCurve) logically *is* a MultiCurve; one whose children are all
// surfaces (Polygon, CurvePolygon) logically *is* a MultiSurface. Those are
// exposed as predicates rather than as distinct stored tags (spec.md §4.3)
// — wrap the collection in an ExtendedGeometryCollection to round-trip
// that abstract identity through the wire format.
type GeometryCollection struct {
	dims
	Geometries []Geometry
}

var _ Geometry = (*GeometryCollection)(nil)

// NewGeometryCollection creates an empty GeometryCollection with the given
// dimensionality.
func NewGeometryCollection(hasZ, hasM bool) *GeometryCollection {
	return &GeometryCollection{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// Add appends a child geometry, returning DimensionMismatchError if its
// dimensionality does not match the collection's own.
func (gc *GeometryCollection) Add(g Geometry) error {
	if g.HasZ() != gc.hasZ || g.HasM() != gc.hasM {
		return &DimensionMismatchError{Container: TagGeometryCollection}
	}
	gc.Geometries = append(gc.Geometries, g)
	return nil
}

// Tag implements Geometry.
func (*GeometryCollection) Tag() GeometryTag { return TagGeometryCollection }

// IsEmpty implements Geometry.
func (gc *GeometryCollection) IsEmpty() bool { return len(gc.Geometries) == 0 }

// NumGeometries returns the number of direct children.
func (gc *GeometryCollection) NumGeometries() int { return len(gc.Geometries) }

// GeometryN returns the i-th child (0-based).
func (gc *GeometryCollection) GeometryN(i int) Geometry { return gc.Geometries[i] }

// IsMultiCurve reports whether every child is a curve (LineString,
// CircularString, or CompoundCurve). An empty collection is not a
// MultiCurve.
func (gc *GeometryCollection) IsMultiCurve() bool {
	if len(gc.Geometries) == 0 {
		return false
	}
	for _, g := range gc.Geometries {
		switch g.Tag() {
		case TagLineString, TagCircularString, TagCompoundCurve:
		default:
			return false
		}
	}
	return true
}

// IsMultiSurface reports whether every child is a surface (Polygon or
// CurvePolygon). An empty collection is not a MultiSurface.
func (gc *GeometryCollection) IsMultiSurface() bool {
	if len(gc.Geometries) == 0 {
		return false
	}
	for _, g := range gc.Geometries {
		switch g.Tag() {
		case TagPolygon, TagCurvePolygon:
		default:
			return false
		}
	}
	return true
}

// ExtendedGeometryCollection is a thin wrapper that, for writing, re-emits
// its inner collection's children under the MULTICURVE or MULTISURFACE
// wire code instead of GEOMETRYCOLLECTION (spec.md §4.3). Reading never
// produces this type directly: a decoded MULTICURVE/MULTISURFACE record
// materializes a plain *GeometryCollection whose IsMultiCurve()/
// IsMultiSurface() reports true.
type ExtendedGeometryCollection struct {
	Inner *GeometryCollection
	Kind  extendedKind
}

var _ Geometry = (*ExtendedGeometryCollection)(nil)

// AsMultiCurve wraps gc so that writing it emits the MULTICURVE wire code.
// The caller is responsible for gc.IsMultiCurve() being true; writing an
// ExtendedGeometryCollection does not itself re-validate child shape.
func AsMultiCurve(gc *GeometryCollection) *ExtendedGeometryCollection {
	return &ExtendedGeometryCollection{Inner: gc, Kind: extendedMultiCurve}
}

// AsMultiSurface wraps gc so that writing it emits the MULTISURFACE wire
// code.
func AsMultiSurface(gc *GeometryCollection) *ExtendedGeometryCollection {
	return &ExtendedGeometryCollection{Inner: gc, Kind: extendedMultiSurface}
}

// Tag implements Geometry. Extended collections still report
// TagGeometryCollection: the abstract MultiCurve/MultiSurface identity is
// wire-only, never a stored tag (spec.md §3.1).
func (*ExtendedGeometryCollection) Tag() GeometryTag { return TagGeometryCollection }

// HasZ implements Geometry.
func (e *ExtendedGeometryCollection) HasZ() bool { return e.Inner.HasZ() }

// HasM implements Geometry.
func (e *ExtendedGeometryCollection) HasM() bool { return e.Inner.HasM() }

// IsEmpty implements Geometry.
func (e *ExtendedGeometryCollection) IsEmpty() bool { return e.Inner.IsEmpty() }
