package wkb

// GeometryTag identifies the concrete shape of a Geometry value. The
// abstract OGC classes GEOMETRY, CURVE, SURFACE, MULTICURVE, and
// MULTISURFACE never appear as the stored tag of a constructed value;
// MULTICURVE and MULTISURFACE exist only as wire codes (see codeFor /
// tagFromCode) and as predicates on GeometryCollection.
type GeometryTag int

const (
	TagPoint GeometryTag = iota
	TagLineString
	TagCircularString
	TagPolygon
	TagTriangle
	TagCompoundCurve
	TagCurvePolygon
	TagMultiPoint
	TagMultiLineString
	TagMultiPolygon
	TagPolyhedralSurface
	TagTIN
	TagGeometryCollection
)

var tagNames = [...]string{
	TagPoint:              "POINT",
	TagLineString:         "LINESTRING",
	TagCircularString:     "CIRCULARSTRING",
	TagPolygon:            "POLYGON",
	TagTriangle:           "TRIANGLE",
	TagCompoundCurve:      "COMPOUNDCURVE",
	TagCurvePolygon:       "CURVEPOLYGON",
	TagMultiPoint:         "MULTIPOINT",
	TagMultiLineString:    "MULTILINESTRING",
	TagMultiPolygon:       "MULTIPOLYGON",
	TagPolyhedralSurface:  "POLYHEDRALSURFACE",
	TagTIN:                "TIN",
	TagGeometryCollection: "GEOMETRYCOLLECTION",
}

func (t GeometryTag) String() string {
	if int(t) < 0 || int(t) >= len(tagNames) {
		return "UNKNOWN"
	}
	return tagNames[t]
}
