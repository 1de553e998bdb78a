// Package wkb implements a reader and writer for the OGC Simple Features
// Well-Known Binary (WKB) representation of geometries (SFS 1.2.1, ISO
// 19125), including the ISO SQL/MM Z/M dimensionality extensions and the
// curve/surface types (CircularString, CompoundCurve, CurvePolygon,
// PolyhedralSurface, TIN, Triangle).
//
// # Supported Geometry Types
//
// The package supports the full OGC/ISO hierarchy:
//   - Point, LineString, Polygon, Triangle
//   - CircularString, CompoundCurve, CurvePolygon
//   - MultiPoint, MultiLineString, MultiPolygon
//   - PolyhedralSurface, TIN
//   - GeometryCollection, including the non-standard "extended collection"
//     encoding that writes a GeometryCollection under the MULTICURVE or
//     MULTISURFACE code to preserve its abstract typing
//
// Every geometry may carry Z (elevation) and/or M (measure) ordinates; the
// hasZ/hasM flags are consistent for every Point reachable from a geometry.
//
// # Byte-order handling
//
// Each WKB record declares its own byte-order byte (0x00 big-endian,
// 0x01 little-endian, named XDR/NDR below after the historical XDR/NDR
// terminology). A container's children may be written in a byte order
// different from their parent; ReadGeometry honors each record's own
// declared order, not the order passed in by the caller.
//
// # Example Usage
//
//	pt := wkb.NewPoint(-74.0445, 40.6892)
//	data, err := wkb.WriteGeometry(pt, wkb.NDR)
//	...
//	geom, err := wkb.ReadGeometry(data, wkb.NDR, nil)
//
// # Finite-point filtering
//
// ReadGeometry accepts an optional *PointFiniteFilter that drops points
// (and, transitively, any container they would have left empty) that do
// not match a configured numeric-class policy (finite only, finite+NaN,
// or finite+infinite).
//
// # Scope
//
// This package is a pure byte-in/byte-out codec plus the object model it
// operates on. It does not parse Well-Known Text, does not know about
// coordinate reference systems, and does not implement topological
// predicates or geometric validation (ring closure, simplicity). Database
// and driver integration (GORM, pgx, paulmach/orb interop) live in the
// sibling sqlgeom, pgxgeom, and orbgeom packages, which are built on top
// of this one and introduce no additional codec semantics.
package wkb
