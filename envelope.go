package wkb

import "math"

// Envelope is the axis-aligned minimum bounding box over every coordinate
// reachable from a geometry. MinZ/MaxZ and MinM/MaxM are only meaningful
// when HasZ/HasM are true. Envelope is never stored on a geometry; it is
// always derived by EnvelopeOf (spec.md §3.2).
type Envelope struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
	MinM, MaxM float64
	HasZ, HasM bool
}

// Equal reports whether two envelopes have identical defined bounds and
// matching HasZ/HasM flags (spec.md §3.2).
func (e *Envelope) Equal(other *Envelope) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.HasZ != other.HasZ || e.HasM != other.HasM {
		return false
	}
	if e.MinX != other.MinX || e.MaxX != other.MaxX || e.MinY != other.MinY || e.MaxY != other.MaxY {
		return false
	}
	if e.HasZ && (e.MinZ != other.MinZ || e.MaxZ != other.MaxZ) {
		return false
	}
	if e.HasM && (e.MinM != other.MinM || e.MaxM != other.MaxM) {
		return false
	}
	return true
}

// envelopeBuilder accumulates per-axis bounds while folding over a
// geometry tree.
type envelopeBuilder struct {
	env    Envelope
	sawAny bool
}

func newEnvelopeBuilder(hasZ, hasM bool) *envelopeBuilder {
	b := &envelopeBuilder{}
	b.env.HasZ = hasZ
	b.env.HasM = hasM
	b.env.MinX, b.env.MinY, b.env.MinZ, b.env.MinM = math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(1)
	b.env.MaxX, b.env.MaxY, b.env.MaxZ, b.env.MaxM = math.Inf(-1), math.Inf(-1), math.Inf(-1), math.Inf(-1)
	return b
}

func (b *envelopeBuilder) addPoint(p Point) {
	b.sawAny = true
	b.fold(&b.env.MinX, &b.env.MaxX, p.X)
	b.fold(&b.env.MinY, &b.env.MaxY, p.Y)
	if b.env.HasZ {
		b.fold(&b.env.MinZ, &b.env.MaxZ, p.Z)
	}
	if b.env.HasM {
		b.fold(&b.env.MinM, &b.env.MaxM, p.M)
	}
}

// fold updates min/max with v, skipping NaN (spec.md §4.7).
func (b *envelopeBuilder) fold(min, max *float64, v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < *min {
		*min = v
	}
	if v > *max {
		*max = v
	}
}

func (b *envelopeBuilder) visit(g Geometry) {
	switch v := g.(type) {
	case Point:
		b.addPoint(v)
	case *LineString:
		for _, p := range v.Points {
			b.addPoint(p)
		}
	case *CircularString:
		for _, p := range v.Points {
			b.addPoint(p)
		}
	case *Polygon:
		for _, ring := range v.Rings {
			b.visit(ring)
		}
	case *Triangle:
		for _, ring := range v.Rings {
			b.visit(ring)
		}
	case *CompoundCurve:
		for _, c := range v.Curves {
			b.visit(c)
		}
	case *CurvePolygon:
		for _, ring := range v.Rings {
			b.visit(ring)
		}
	case *MultiPoint:
		for _, p := range v.Points {
			b.addPoint(p)
		}
	case *MultiLineString:
		for _, ls := range v.LineStrings {
			b.visit(ls)
		}
	case *MultiPolygon:
		for _, poly := range v.Polygons {
			b.visit(poly)
		}
	case *PolyhedralSurface:
		for _, poly := range v.Polygons {
			b.visit(poly)
		}
	case *TIN:
		for _, tri := range v.Triangles {
			b.visit(tri)
		}
	case *GeometryCollection:
		for _, child := range v.Geometries {
			b.visit(child)
		}
	case *ExtendedGeometryCollection:
		b.visit(v.Inner)
	}
}

// EnvelopeOf folds over every coordinate reachable from g and returns the
// resulting axis-aligned bounding box. It returns nil if g has no
// reachable points (spec.md §3.2, §4.7).
func EnvelopeOf(g Geometry) *Envelope {
	if g == nil || g.IsEmpty() {
		return nil
	}
	b := newEnvelopeBuilder(g.HasZ(), g.HasM())
	b.visit(g)
	if !b.sawAny {
		return nil
	}
	env := b.env
	return &env
}
