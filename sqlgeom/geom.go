// Package sqlgeom carries wkb.Geometry through database/sql and GORM the
// way restayway/gogis carries its own Point/LineString/Polygon types:
// Scan/Value pairs that hex-decode/encode WKB against a PostGIS geometry
// column, generalized here from four hardcoded shapes to the full
// wkb.Geometry hierarchy.
package sqlgeom

import (
	"context"
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	"github.com/restayway/gowkb"
)

// Geom wraps any wkb.Geometry so it can be embedded directly as a GORM
// model field, e.g.:
//
//	type Location struct {
//	    ID    uint
//	    Name  string
//	    Shape sqlgeom.Geom `gorm:"type:geometry"`
//	}
type Geom struct {
	wkb.Geometry

	// Order controls the byte order Value() encodes under. The zero value is
	// XDR (big-endian); values other than XDR and NDR fall back to NDR
	// (little-endian).
	Order wkb.ByteOrder
}

var (
	_ gorm.Valuer                    = Geom{}
	_ schema.GormDBDataTypeInterface = Geom{}
)

// Scan implements sql.Scanner, reading a hex-encoded WKB column value the
// way restayway/gogis's Point.Scan does, generalized to decode any shape
// via wkb.ReadGeometry instead of a single hardcoded struct layout.
func (g *Geom) Scan(val any) error {
	if val == nil {
		g.Geometry = nil
		return nil
	}

	var encoded string
	switch v := val.(type) {
	case []byte:
		encoded = string(v)
	case string:
		encoded = v
	default:
		return fmt.Errorf("sqlgeom: unsupported Scan source type %T", val)
	}

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("sqlgeom: decoding hex WKB: %w", err)
	}

	geom, err := wkb.ReadGeometry(raw, wkb.NDR, nil)
	if err != nil {
		return fmt.Errorf("sqlgeom: decoding WKB: %w", err)
	}
	g.Geometry = geom
	return nil
}

// Value implements driver.Valuer, hex-encoding the geometry's WKB bytes —
// PostGIS accepts a hex WKB literal directly against a geometry column,
// the same implicit cast restayway/gogis relies on for its WKT Value().
func (g Geom) Value() (driver.Value, error) {
	if g.Geometry == nil {
		return nil, nil
	}
	order := g.Order
	if order != wkb.XDR && order != wkb.NDR {
		order = wkb.NDR
	}
	data, err := wkb.WriteGeometry(g.Geometry, order)
	if err != nil {
		return nil, fmt.Errorf("sqlgeom: encoding WKB: %w", err)
	}
	return hex.EncodeToString(data), nil
}

// GormValue implements gorm.Valuer so raw WKB hex is cast to a geometry on
// insert/update, rather than being quoted as a plain text literal.
func (g Geom) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	val, err := g.Value()
	if err != nil || val == nil {
		return clause.Expr{SQL: "NULL"}
	}
	return clause.Expr{SQL: "ST_GeomFromWKB(decode(?, 'hex'))", Vars: []interface{}{val}}
}

// GormDBDataType implements schema.GormDBDataTypeInterface, advertising an
// untyped PostGIS geometry column — unlike restayway/gogis's fixed
// "geometry(Point,4326)", this lets any concrete wkb.Geometry tag round-trip
// through the same column.
func (Geom) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "geometry"
}
