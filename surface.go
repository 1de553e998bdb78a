package wkb

// PolyhedralSurface is an ordered collection of Polygons forming the faces
// of a polyhedron.
type PolyhedralSurface struct {
	dims
	Polygons []*Polygon
}

var _ Geometry = (*PolyhedralSurface)(nil)

// NewPolyhedralSurface creates an empty PolyhedralSurface with the given
// dimensionality.
func NewPolyhedralSurface(hasZ, hasM bool) *PolyhedralSurface {
	return &PolyhedralSurface{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddPolygon appends a face, returning DimensionMismatchError on mismatch.
func (ps *PolyhedralSurface) AddPolygon(poly *Polygon) error {
	if !sameDims(ps.dims, poly.dims) {
		return &DimensionMismatchError{Container: TagPolyhedralSurface}
	}
	ps.Polygons = append(ps.Polygons, poly)
	return nil
}

// Tag implements Geometry.
func (*PolyhedralSurface) Tag() GeometryTag { return TagPolyhedralSurface }

// IsEmpty implements Geometry.
func (ps *PolyhedralSurface) IsEmpty() bool { return len(ps.Polygons) == 0 }

// TIN is a triangulated irregular network: an ordered collection of
// Triangles.
type TIN struct {
	dims
	Triangles []*Triangle
}

var _ Geometry = (*TIN)(nil)

// NewTIN creates an empty TIN with the given dimensionality.
func NewTIN(hasZ, hasM bool) *TIN {
	return &TIN{dims: dims{hasZ: hasZ, hasM: hasM}}
}

// AddTriangle appends a triangle, returning DimensionMismatchError on
// mismatch.
func (t *TIN) AddTriangle(tri *Triangle) error {
	if !sameDims(t.dims, tri.dims) {
		return &DimensionMismatchError{Container: TagTIN}
	}
	t.Triangles = append(t.Triangles, tri)
	return nil
}

// Tag implements Geometry.
func (*TIN) Tag() GeometryTag { return TagTIN }

// IsEmpty implements Geometry.
func (t *TIN) IsEmpty() bool { return len(t.Triangles) == 0 }
