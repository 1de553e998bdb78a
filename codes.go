package wkb

// Base WKB geometry type IDs (before the Z/M additive offsets), per
// spec.md §4.2. GEOMETRY, CURVE, SURFACE, MULTICURVE, and MULTISURFACE are
// abstract: they are valid wire codes but never a stored Geometry's tag.
const (
	baseCodeGeometry           = 0
	baseCodePoint              = 1
	baseCodeLineString         = 2
	baseCodePolygon            = 3
	baseCodeMultiPoint         = 4
	baseCodeMultiLineString    = 5
	baseCodeMultiPolygon       = 6
	baseCodeGeometryCollection = 7
	baseCodeCircularString     = 8
	baseCodeCompoundCurve      = 9
	baseCodeCurvePolygon       = 10
	baseCodeMultiCurve         = 11
	baseCodeMultiSurface       = 12
	baseCodeCurve              = 13
	baseCodeSurface            = 14
	baseCodePolyhedralSurface  = 15
	baseCodeTIN                = 16
	baseCodeTriangle           = 17
)

const (
	zOffset = 1000
	mOffset = 2000
)

var tagToBaseCode = [...]uint32{
	TagPoint:              baseCodePoint,
	TagLineString:         baseCodeLineString,
	TagCircularString:     baseCodeCircularString,
	TagPolygon:            baseCodePolygon,
	TagTriangle:           baseCodeTriangle,
	TagCompoundCurve:      baseCodeCompoundCurve,
	TagCurvePolygon:       baseCodeCurvePolygon,
	TagMultiPoint:         baseCodeMultiPoint,
	TagMultiLineString:    baseCodeMultiLineString,
	TagMultiPolygon:       baseCodeMultiPolygon,
	TagPolyhedralSurface:  baseCodePolyhedralSurface,
	TagTIN:                baseCodeTIN,
	TagGeometryCollection: baseCodeGeometryCollection,
}

var baseCodeToTag = map[uint32]GeometryTag{
	baseCodePoint:              TagPoint,
	baseCodeLineString:         TagLineString,
	baseCodeCircularString:     TagCircularString,
	baseCodePolygon:            TagPolygon,
	baseCodeTriangle:           TagTriangle,
	baseCodeCompoundCurve:      TagCompoundCurve,
	baseCodeCurvePolygon:       TagCurvePolygon,
	baseCodeMultiPoint:         TagMultiPoint,
	baseCodeMultiLineString:    TagMultiLineString,
	baseCodeMultiPolygon:       TagMultiPolygon,
	baseCodePolyhedralSurface:  TagPolyhedralSurface,
	baseCodeTIN:                TagTIN,
	baseCodeGeometryCollection: TagGeometryCollection,
}

// knownBaseCodes also includes the purely abstract codes (GEOMETRY, CURVE,
// SURFACE, MULTICURVE, MULTISURFACE) so tagFromCode can distinguish
// "abstract but recognized" from "unknown" before special-casing
// MULTICURVE/MULTISURFACE.
var knownBaseCodes = map[uint32]bool{
	baseCodeGeometry: true, baseCodeCurve: true, baseCodeSurface: true,
	baseCodeMultiCurve: true, baseCodeMultiSurface: true,
}

func init() {
	for code := range baseCodeToTag {
		knownBaseCodes[code] = true
	}
}

// codeFor returns the 32-bit WKB type code for a stored geometry tag with
// the given dimensionality.
func codeFor(tag GeometryTag, hasZ, hasM bool) uint32 {
	code := tagToBaseCode[tag]
	return addDimOffsets(code, hasZ, hasM)
}

// codeForGeometry returns the wire code for g using its own stored tag and
// dimensionality.
func codeForGeometry(g Geometry) uint32 {
	return codeFor(g.Tag(), g.HasZ(), g.HasM())
}

// codeForExtendedCollection returns the wire code for the non-standard
// "extended geometry collection" flavor: kind selects the abstract
// MULTICURVE or MULTISURFACE base code, which a *stored* geometry never
// carries as its own tag.
func codeForExtendedCollection(kind extendedKind, hasZ, hasM bool) uint32 {
	var base uint32
	switch kind {
	case extendedMultiCurve:
		base = baseCodeMultiCurve
	case extendedMultiSurface:
		base = baseCodeMultiSurface
	}
	return addDimOffsets(base, hasZ, hasM)
}

func addDimOffsets(base uint32, hasZ, hasM bool) uint32 {
	if hasZ {
		base += zOffset
	}
	if hasM {
		base += mOffset
	}
	return base
}

// tagFromCode decodes a wire code into a stored tag plus dimensionality.
// MULTICURVE/MULTISURFACE decode to TagGeometryCollection with
// isExtended set, per spec.md §4.3: the reader materializes a plain
// GeometryCollection whose IsMultiCurve()/IsMultiSurface() then reports the
// abstract identity based on its children's shape.
func tagFromCode(code uint32) (tag GeometryTag, hasZ, hasM, isExtended bool, err error) {
	base := code
	if base >= mOffset {
		hasM = true
		base -= mOffset
	}
	if base >= zOffset {
		hasZ = true
		base -= zOffset
	}

	if !knownBaseCodes[base] {
		return 0, false, false, false, &UnknownTypeCodeError{Code: code}
	}

	switch base {
	case baseCodeMultiCurve, baseCodeMultiSurface:
		return TagGeometryCollection, hasZ, hasM, true, nil
	case baseCodeGeometry, baseCodeCurve, baseCodeSurface:
		return 0, false, false, false, &UnknownTypeCodeError{Code: code}
	}

	return baseCodeToTag[base], hasZ, hasM, false, nil
}

// extendedKind selects which abstract wire code an ExtendedGeometryCollection
// re-emits its children under.
type extendedKind int

const (
	extendedMultiCurve extendedKind = iota
	extendedMultiSurface
)
