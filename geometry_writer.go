package wkb

// GeometryWriter recursively encodes a Geometry tree into WKB bytes,
// writing every record — outermost and nested alike — under a single,
// caller-chosen byte order (spec.md §4.6). The spec leaves per-child order
// selection as an open question during writing; this implementation
// resolves it by always emitting every record under the writer's own
// order, never varying it child to child.
type GeometryWriter struct {
	Order ByteOrder
}

// NewGeometryWriter creates a GeometryWriter that encodes every record
// under order.
func NewGeometryWriter(order ByteOrder) *GeometryWriter {
	return &GeometryWriter{Order: order}
}

// WriteGeometry encodes g under order and returns the resulting bytes.
func WriteGeometry(g Geometry, order ByteOrder) ([]byte, error) {
	w := NewByteWriter(order)
	if err := NewGeometryWriter(order).writeRecord(w, g); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (gw *GeometryWriter) writeRecord(w *ByteWriter, g Geometry) error {
	if ext, ok := g.(*ExtendedGeometryCollection); ok {
		return gw.writeExtendedCollection(w, ext)
	}

	if err := w.WriteByte(byte(gw.Order)); err != nil {
		return err
	}
	if err := w.WriteUInt32(codeForGeometry(g)); err != nil {
		return err
	}

	switch v := g.(type) {
	case Point:
		return gw.writePointBody(w, v)
	case *LineString:
		return gw.writePoints(w, v.Points)
	case *CircularString:
		return gw.writePoints(w, v.Points)
	case *Polygon:
		return gw.writeRings(w, v.Rings)
	case *Triangle:
		return gw.writeRings(w, v.Rings)
	case *MultiPoint:
		if err := w.WriteUInt32(uint32(len(v.Points))); err != nil {
			return err
		}
		for _, p := range v.Points {
			if err := gw.writeRecord(w, p); err != nil {
				return err
			}
		}
		return nil
	case *MultiLineString:
		return gw.writeChildRecords(w, geometrySlice(v.LineStrings))
	case *MultiPolygon:
		return gw.writeChildRecords(w, geometrySlice(v.Polygons))
	case *CompoundCurve:
		return gw.writeChildRecords(w, v.Curves)
	case *CurvePolygon:
		return gw.writeChildRecords(w, v.Rings)
	case *PolyhedralSurface:
		return gw.writeChildRecords(w, geometrySlice(v.Polygons))
	case *TIN:
		return gw.writeChildRecords(w, geometrySlice(v.Triangles))
	case *GeometryCollection:
		return gw.writeChildRecords(w, v.Geometries)
	}

	return &InvalidChildTypeError{Container: g.Tag(), Got: g.Tag()}
}

// writeExtendedCollection emits ext's children under the MULTICURVE or
// MULTISURFACE wire code instead of GEOMETRYCOLLECTION; the payload layout
// is otherwise identical (spec.md §4.3).
func (gw *GeometryWriter) writeExtendedCollection(w *ByteWriter, ext *ExtendedGeometryCollection) error {
	if err := w.WriteByte(byte(gw.Order)); err != nil {
		return err
	}
	code := codeForExtendedCollection(ext.Kind, ext.HasZ(), ext.HasM())
	if err := w.WriteUInt32(code); err != nil {
		return err
	}
	return gw.writeChildRecords(w, ext.Inner.Geometries)
}

func (gw *GeometryWriter) writeChildRecords(w *ByteWriter, children []Geometry) error {
	if err := w.WriteUInt32(uint32(len(children))); err != nil {
		return err
	}
	for _, child := range children {
		if err := gw.writeRecord(w, child); err != nil {
			return err
		}
	}
	return nil
}

func (gw *GeometryWriter) writePoints(w *ByteWriter, points []Point) error {
	if err := w.WriteUInt32(uint32(len(points))); err != nil {
		return err
	}
	for _, p := range points {
		if err := gw.writePointBody(w, p); err != nil {
			return err
		}
	}
	return nil
}

func (gw *GeometryWriter) writeRings(w *ByteWriter, rings []*LineString) error {
	if err := w.WriteUInt32(uint32(len(rings))); err != nil {
		return err
	}
	for _, ring := range rings {
		if err := gw.writePoints(w, ring.Points); err != nil {
			return err
		}
	}
	return nil
}

func (gw *GeometryWriter) writePointBody(w *ByteWriter, p Point) error {
	if err := w.WriteDouble(p.X); err != nil {
		return err
	}
	if err := w.WriteDouble(p.Y); err != nil {
		return err
	}
	if p.hasZ {
		if err := w.WriteDouble(p.Z); err != nil {
			return err
		}
	}
	if p.hasM {
		if err := w.WriteDouble(p.M); err != nil {
			return err
		}
	}
	return nil
}

// geometrySlice adapts a slice of a concrete Geometry-implementing pointer
// type to []Geometry for the shared child-record writer.
func geometrySlice[T Geometry](items []T) []Geometry {
	out := make([]Geometry, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}
