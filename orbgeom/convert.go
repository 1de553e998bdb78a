// Package orbgeom converts between wkb.Geometry and github.com/paulmach/orb
// geometry types, the type-switch idiom grounded on
// hugr-lab-airport-go/catalog/geometry.go's EncodeGeometry/DecodeGeometry/
// ValidateGeometry. Curves, surfaces, and the extended-collection flavor
// have no orb equivalent and are rejected rather than lossily flattened.
package orbgeom

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/restayway/gowkb"
)

// UnsupportedError is returned when a wkb.Geometry has no orb equivalent:
// any curve (CircularString, CompoundCurve, CurvePolygon), surface
// (PolyhedralSurface, TIN, Triangle), or extended collection.
type UnsupportedError struct {
	Tag wkb.GeometryTag
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("orbgeom: %s has no orb.Geometry equivalent", e.Tag)
}

// ToOrb converts g into the matching orb.Geometry value.
func ToOrb(g wkb.Geometry) (orb.Geometry, error) {
	switch v := g.(type) {
	case wkb.Point:
		return orb.Point{v.X, v.Y}, nil
	case *wkb.LineString:
		return lineStringToOrb(v), nil
	case *wkb.Polygon:
		return polygonToOrb(v), nil
	case *wkb.MultiPoint:
		mp := make(orb.MultiPoint, len(v.Points))
		for i, p := range v.Points {
			mp[i] = orb.Point{p.X, p.Y}
		}
		return mp, nil
	case *wkb.MultiLineString:
		mls := make(orb.MultiLineString, len(v.LineStrings))
		for i, ls := range v.LineStrings {
			mls[i] = lineStringToOrb(ls)
		}
		return mls, nil
	case *wkb.MultiPolygon:
		mp := make(orb.MultiPolygon, len(v.Polygons))
		for i, poly := range v.Polygons {
			mp[i] = polygonToOrb(poly)
		}
		return mp, nil
	case *wkb.GeometryCollection:
		coll := make(orb.Collection, 0, len(v.Geometries))
		for _, child := range v.Geometries {
			o, err := ToOrb(child)
			if err != nil {
				return nil, err
			}
			coll = append(coll, o)
		}
		return coll, nil
	default:
		return nil, &UnsupportedError{Tag: g.Tag()}
	}
}

func lineStringToOrb(ls *wkb.LineString) orb.LineString {
	out := make(orb.LineString, len(ls.Points))
	for i, p := range ls.Points {
		out[i] = orb.Point{p.X, p.Y}
	}
	return out
}

func polygonToOrb(p *wkb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p.Rings))
	for i, ring := range p.Rings {
		out[i] = orb.Ring(lineStringToOrb(ring))
	}
	return out
}

// FromOrb converts an orb.Geometry into the matching wkb.Geometry value.
// Every converted geometry is 2D (hasZ=hasM=false), since orb itself has no
// Z/M concept.
func FromOrb(g orb.Geometry) (wkb.Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return wkb.NewPoint(v[0], v[1]), nil
	case orb.LineString:
		return lineStringFromOrb(v)
	case orb.Polygon:
		return polygonFromOrb(v)
	case orb.MultiPoint:
		mp := wkb.NewMultiPoint(false, false)
		for _, p := range v {
			if err := mp.AddPoint(wkb.NewPoint(p[0], p[1])); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case orb.MultiLineString:
		mls := wkb.NewMultiLineString(false, false)
		for _, ls := range v {
			converted, err := lineStringFromOrb(ls)
			if err != nil {
				return nil, err
			}
			if err := mls.AddLineString(converted); err != nil {
				return nil, err
			}
		}
		return mls, nil
	case orb.MultiPolygon:
		mp := wkb.NewMultiPolygon(false, false)
		for _, poly := range v {
			converted, err := polygonFromOrb(poly)
			if err != nil {
				return nil, err
			}
			if err := mp.AddPolygon(converted); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case orb.Collection:
		gc := wkb.NewGeometryCollection(false, false)
		for _, child := range v {
			converted, err := FromOrb(child)
			if err != nil {
				return nil, err
			}
			if err := gc.Add(converted); err != nil {
				return nil, err
			}
		}
		return gc, nil
	default:
		return nil, fmt.Errorf("orbgeom: unsupported orb type %T", g)
	}
}

func lineStringFromOrb(ls orb.LineString) (*wkb.LineString, error) {
	out := wkb.NewLineString(false, false)
	for _, p := range ls {
		if err := out.AddPoint(wkb.NewPoint(p[0], p[1])); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func polygonFromOrb(p orb.Polygon) (*wkb.Polygon, error) {
	out := wkb.NewPolygon(false, false)
	for _, ring := range p {
		converted, err := lineStringFromOrb(orb.LineString(ring))
		if err != nil {
			return nil, err
		}
		if err := out.AddRing(converted); err != nil {
			return nil, err
		}
	}
	return out, nil
}
