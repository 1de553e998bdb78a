package wkb

// Point is a single coordinate, optionally carrying Z (elevation) and/or M
// (measure) ordinates. Z and M are only meaningful when HasZ()/HasM()
// report true; otherwise they read as zero.
type Point struct {
	dims
	X, Y, Z, M float64
}

var _ Geometry = Point{}

// NewPoint creates a plain 2D point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewPointZ creates a point with an elevation ordinate.
func NewPointZ(x, y, z float64) Point {
	return Point{dims: dims{hasZ: true}, X: x, Y: y, Z: z}
}

// NewPointM creates a point with a measure ordinate.
func NewPointM(x, y, m float64) Point {
	return Point{dims: dims{hasM: true}, X: x, Y: y, M: m}
}

// NewPointZM creates a point with both elevation and measure ordinates.
func NewPointZM(x, y, z, m float64) Point {
	return Point{dims: dims{hasZ: true, hasM: true}, X: x, Y: y, Z: z, M: m}
}

// Tag implements Geometry.
func (Point) Tag() GeometryTag { return TagPoint }

// IsEmpty implements Geometry. A constructed Point always has a location.
func (Point) IsEmpty() bool { return false }

// Equal reports whether p and other have identical ordinates and
// dimensionality. NaN ordinates compare equal to themselves here (unlike
// IEEE-754 equality), since this is a structural, not numeric, comparison.
func (p Point) Equal(other Point) bool {
	if !sameDims(p.dims, other.dims) {
		return false
	}
	if !floatsEqual(p.X, other.X) || !floatsEqual(p.Y, other.Y) {
		return false
	}
	if p.hasZ && !floatsEqual(p.Z, other.Z) {
		return false
	}
	if p.hasM && !floatsEqual(p.M, other.M) {
		return false
	}
	return true
}

func floatsEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return isNaN(a) && isNaN(b)
}

func isNaN(f float64) bool { return f != f }
