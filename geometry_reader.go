package wkb

// GeometryReader recursively decodes a WKB byte stream into a Geometry
// tree, honoring each record's own declared byte order (spec.md §4.4) and
// optionally applying a PointFiniteFilter during decoding (spec.md §4.5).
type GeometryReader struct {
	Filter   *PointFiniteFilter
	MaxDepth int
}

// NewGeometryReader creates a GeometryReader with the given filter (nil
// accepts every point) and the default recursion depth limit.
func NewGeometryReader(filter *PointFiniteFilter) *GeometryReader {
	return &GeometryReader{Filter: filter, MaxDepth: MaxRecursionDepth}
}

// ReadGeometry decodes one WKB record from data. defaultOrder only matters
// for interpreting the first, single-byte order marker of the outermost
// record (and even that is order-independent, since it is read as a bare
// byte); every record thereafter declares its own order. ReadGeometry
// returns (nil, nil) when the filter has pruned the record down to
// emptiness.
func ReadGeometry(data []byte, defaultOrder ByteOrder, filter *PointFiniteFilter) (Geometry, error) {
	r := NewByteReader(data, defaultOrder)
	return NewGeometryReader(filter).Read(r)
}

// Read decodes one WKB record from r.
func (gr *GeometryReader) Read(r *ByteReader) (Geometry, error) {
	maxDepth := gr.MaxDepth
	if maxDepth <= 0 {
		maxDepth = MaxRecursionDepth
	}
	return gr.readRecord(r, 0, maxDepth)
}

func (gr *GeometryReader) readRecord(r *ByteReader, depth, maxDepth int) (Geometry, error) {
	if depth > maxDepth {
		return nil, &TruncatedError{Reason: "maximum recursion depth exceeded"}
	}

	orderByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	order := ByteOrder(orderByte)
	if order != XDR && order != NDR {
		return nil, &MalformedHeaderError{Reason: "byte order byte must be 0x00 or 0x01"}
	}
	if err := r.SetByteOrder(order); err != nil {
		return nil, err
	}

	code, err := r.ReadUInt32()
	if err != nil {
		return nil, err
	}
	tag, hasZ, hasM, _, err := tagFromCode(code)
	if err != nil {
		return nil, err
	}

	switch tag {
	case TagPoint:
		p, err := gr.readPointBody(r, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		if !gr.Filter.Accept(p) {
			return nil, nil
		}
		return p, nil

	case TagLineString:
		ls := NewLineString(hasZ, hasM)
		pts, err := gr.readBarePoints(r, hasZ, hasM, 0)
		if err != nil {
			return nil, err
		}
		ls.Points = pts
		if ls.IsEmpty() {
			return nil, nil
		}
		return ls, nil

	case TagCircularString:
		cs := NewCircularString(hasZ, hasM)
		pts, err := gr.readBarePoints(r, hasZ, hasM, 0)
		if err != nil {
			return nil, err
		}
		cs.Points = pts
		if cs.IsEmpty() {
			return nil, nil
		}
		return cs, nil

	case TagPolygon:
		return gr.readPolygonBody(r, hasZ, hasM, TagPolygon)

	case TagTriangle:
		poly, err := gr.readPolygonBody(r, hasZ, hasM, TagTriangle)
		if err != nil || poly == nil {
			return nil, err
		}
		t := &Triangle{dims: dims{hasZ: hasZ, hasM: hasM}, Rings: poly.(*Polygon).Rings}
		return t, nil

	case TagMultiPoint:
		n, err := gr.readChildCount(r, 0)
		if err != nil {
			return nil, err
		}
		mp := NewMultiPoint(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			p, ok := child.(Point)
			if !ok {
				return nil, &InvalidChildTypeError{Container: TagMultiPoint, Got: child.Tag()}
			}
			mp.Points = append(mp.Points, p)
		}
		if mp.IsEmpty() {
			return nil, nil
		}
		return mp, nil

	case TagMultiLineString:
		n, err := gr.readChildCount(r, 1)
		if err != nil {
			return nil, err
		}
		mls := NewMultiLineString(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			ls, ok := child.(*LineString)
			if !ok {
				return nil, &InvalidChildTypeError{Container: TagMultiLineString, Got: child.Tag()}
			}
			mls.LineStrings = append(mls.LineStrings, ls)
		}
		if mls.IsEmpty() {
			return nil, nil
		}
		return mls, nil

	case TagMultiPolygon:
		n, err := gr.readChildCount(r, 2)
		if err != nil {
			return nil, err
		}
		mp := NewMultiPolygon(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			poly, ok := child.(*Polygon)
			if !ok {
				return nil, &InvalidChildTypeError{Container: TagMultiPolygon, Got: child.Tag()}
			}
			mp.Polygons = append(mp.Polygons, poly)
		}
		if mp.IsEmpty() {
			return nil, nil
		}
		return mp, nil

	case TagCompoundCurve:
		n, err := gr.readChildCount(r, 1)
		if err != nil {
			return nil, err
		}
		cc := NewCompoundCurve(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			if child.Tag() != TagLineString && child.Tag() != TagCircularString {
				return nil, &InvalidChildTypeError{Container: TagCompoundCurve, Got: child.Tag()}
			}
			cc.Curves = append(cc.Curves, child)
		}
		if cc.IsEmpty() {
			return nil, nil
		}
		return cc, nil

	case TagCurvePolygon:
		n, err := gr.readChildCount(r, 1)
		if err != nil {
			return nil, err
		}
		cp := NewCurvePolygon(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			switch child.Tag() {
			case TagLineString, TagCircularString, TagCompoundCurve:
			default:
				return nil, &InvalidChildTypeError{Container: TagCurvePolygon, Got: child.Tag()}
			}
			cp.Rings = append(cp.Rings, child)
		}
		if cp.IsEmpty() {
			return nil, nil
		}
		return cp, nil

	case TagPolyhedralSurface:
		n, err := gr.readChildCount(r, 2)
		if err != nil {
			return nil, err
		}
		ps := NewPolyhedralSurface(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			poly, ok := child.(*Polygon)
			if !ok {
				return nil, &InvalidChildTypeError{Container: TagPolyhedralSurface, Got: child.Tag()}
			}
			ps.Polygons = append(ps.Polygons, poly)
		}
		if ps.IsEmpty() {
			return nil, nil
		}
		return ps, nil

	case TagTIN:
		n, err := gr.readChildCount(r, 2)
		if err != nil {
			return nil, err
		}
		tin := NewTIN(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			tri, ok := child.(*Triangle)
			if !ok {
				return nil, &InvalidChildTypeError{Container: TagTIN, Got: child.Tag()}
			}
			tin.Triangles = append(tin.Triangles, tri)
		}
		if tin.IsEmpty() {
			return nil, nil
		}
		return tin, nil

	case TagGeometryCollection:
		n, err := gr.readChildCount(r, 2)
		if err != nil {
			return nil, err
		}
		gc := NewGeometryCollection(hasZ, hasM)
		for i := uint32(0); i < n; i++ {
			child, err := gr.readRecord(r, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			if child == nil {
				continue
			}
			gc.Geometries = append(gc.Geometries, child)
		}
		if gc.IsEmpty() {
			return nil, nil
		}
		return gc, nil
	}

	return nil, &UnknownTypeCodeError{Code: code}
}

// readChildCount reads the uint32 count preceding a sequence of full child
// records, guarding it against the per-level element ceiling.
func (gr *GeometryReader) readChildCount(r *ByteReader, level int) (uint32, error) {
	n, err := r.ReadUInt32()
	if err != nil {
		return 0, err
	}
	if err := checkElementCount(level, n); err != nil {
		return 0, err
	}
	return n, nil
}

// readBarePoints reads a uint32 count followed by that many bare
// coordinate tuples (no per-point byte-order/type header), applying the
// filter to each.
func (gr *GeometryReader) readBarePoints(r *ByteReader, hasZ, hasM bool, level int) ([]Point, error) {
	n, err := gr.readChildCount(r, level)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, 0, n)
	for i := uint32(0); i < n; i++ {
		p, err := gr.readPointBody(r, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		if gr.Filter.Accept(p) {
			pts = append(pts, p)
		}
	}
	return pts, nil
}

func (gr *GeometryReader) readPointBody(r *ByteReader, hasZ, hasM bool) (Point, error) {
	x, err := r.ReadDouble()
	if err != nil {
		return Point{}, err
	}
	y, err := r.ReadDouble()
	if err != nil {
		return Point{}, err
	}
	p := Point{dims: dims{hasZ: hasZ, hasM: hasM}, X: x, Y: y}
	if hasZ {
		if p.Z, err = r.ReadDouble(); err != nil {
			return Point{}, err
		}
	}
	if hasM {
		if p.M, err = r.ReadDouble(); err != nil {
			return Point{}, err
		}
	}
	return p, nil
}

// readPolygonBody reads the "numRings, then bare rings" payload shared by
// Polygon and Triangle. The returned Geometry is always a *Polygon; Triangle
// decoding repackages its Rings afterward, since Triangle has no
// abstract-type complications of its own.
func (gr *GeometryReader) readPolygonBody(r *ByteReader, hasZ, hasM bool, container GeometryTag) (Geometry, error) {
	n, err := gr.readChildCount(r, 1)
	if err != nil {
		return nil, err
	}
	poly := NewPolygon(hasZ, hasM)
	for i := uint32(0); i < n; i++ {
		pts, err := gr.readBarePoints(r, hasZ, hasM, 0)
		if err != nil {
			return nil, err
		}
		if len(pts) == 0 {
			continue
		}
		poly.Rings = append(poly.Rings, &LineString{dims: dims{hasZ: hasZ, hasM: hasM}, Points: pts})
	}
	if poly.IsEmpty() {
		return nil, nil
	}
	return poly, nil
}
