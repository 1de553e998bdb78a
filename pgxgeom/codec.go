// Package pgxgeom implements a github.com/jackc/pgx/v5/pgtype.Codec for the
// PostGIS "geometry" type, decoding and encoding through wkb.ReadGeometry /
// wkb.WriteGeometry instead of a third-party geometry model — for callers
// using pgx directly rather than through GORM (see sqlgeom for that path).
//
// Structure grounded on moeryomenko/pgxorb's geometryCodec.
package pgxgeom

import (
	"context"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/restayway/gowkb"
)

var geometryInterfaceType = reflect.TypeOf((*wkb.Geometry)(nil)).Elem()

// Codec implements pgtype.Codec for wkb.Geometry values.
type Codec struct {
	// Order controls the byte order used when encoding. The zero value is
	// XDR (big-endian); values other than XDR and NDR fall back to NDR.
	Order wkb.ByteOrder
}

func (c *Codec) order() wkb.ByteOrder {
	if c.Order != wkb.XDR && c.Order != wkb.NDR {
		return wkb.NDR
	}
	return c.Order
}

// FormatSupported implements pgtype.Codec.
func (c *Codec) FormatSupported(format int16) bool {
	return format == pgtype.BinaryFormatCode || format == pgtype.TextFormatCode
}

// PreferredFormat implements pgtype.Codec.
func (c *Codec) PreferredFormat() int16 { return pgtype.BinaryFormatCode }

// PlanEncode implements pgtype.Codec.
func (c *Codec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	switch format {
	case pgtype.BinaryFormatCode:
		return binaryEncodePlan{codec: c}
	case pgtype.TextFormatCode:
		return textEncodePlan{codec: c}
	default:
		return nil
	}
}

// PlanScan implements pgtype.Codec.
func (c *Codec) PlanScan(m *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	switch format {
	case pgx.BinaryFormatCode:
		return binaryScanPlan{}
	case pgx.TextFormatCode:
		return textScanPlan{}
	default:
		return nil
	}
}

// DecodeDatabaseSQLValue implements pgtype.Codec.
func (c *Codec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	return nil, errors.ErrUnsupported
}

// DecodeValue implements pgtype.Codec.
func (c *Codec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	switch format {
	case pgtype.TextFormatCode:
		var err error
		src, err = hex.DecodeString(string(src))
		if err != nil {
			return nil, err
		}
		fallthrough
	case pgtype.BinaryFormatCode:
		return wkb.ReadGeometry(src, wkb.NDR, nil)
	default:
		return nil, errors.ErrUnsupported
	}
}

type binaryEncodePlan struct{ codec *Codec }

func (p binaryEncodePlan) Encode(value any, buf []byte) ([]byte, error) {
	geom, ok := value.(wkb.Geometry)
	if !ok {
		return buf, errors.ErrUnsupported
	}
	data, err := wkb.WriteGeometry(geom, p.codec.order())
	if err != nil {
		return buf, fmt.Errorf("pgxgeom: encoding geometry: %w", err)
	}
	return append(buf, data...), nil
}

type textEncodePlan struct{ codec *Codec }

func (p textEncodePlan) Encode(value any, buf []byte) ([]byte, error) {
	geom, ok := value.(wkb.Geometry)
	if !ok {
		return buf, errors.ErrUnsupported
	}
	data, err := wkb.WriteGeometry(geom, p.codec.order())
	if err != nil {
		return buf, fmt.Errorf("pgxgeom: encoding geometry: %w", err)
	}
	return append(buf, []byte(hex.EncodeToString(data))...), nil
}

type binaryScanPlan struct{}

func (binaryScanPlan) Scan(src []byte, target any) error {
	return scanInto(src, target, false)
}

type textScanPlan struct{}

func (textScanPlan) Scan(src []byte, target any) error {
	return scanInto(src, target, true)
}

func scanInto(src []byte, target any, hexEncoded bool) error {
	targetType := reflect.TypeOf(target)
	if targetType.Kind() != reflect.Ptr {
		return fmt.Errorf("pgxgeom: target must be a pointer to a wkb.Geometry")
	}
	if !targetType.Elem().Implements(geometryInterfaceType) && targetType.Elem().Kind() != reflect.Interface {
		return fmt.Errorf("pgxgeom: target must be a pointer to a wkb.Geometry")
	}
	if len(src) == 0 {
		return nil
	}

	if hexEncoded {
		var err error
		src, err = hex.DecodeString(string(src))
		if err != nil {
			return err
		}
	}

	geom, err := wkb.ReadGeometry(src, wkb.NDR, nil)
	if err != nil {
		return err
	}

	reflect.ValueOf(target).Elem().Set(reflect.ValueOf(geom))
	return nil
}

// Register installs Codec against the connection's "geometry" OID, the way
// moeryomenko/pgxorb's registerGeom does for its own orb-backed codec.
func Register(ctx context.Context, conn *pgx.Conn) error {
	var geomOID uint32
	err := conn.QueryRow(ctx, "select 'geometry'::text::regtype::oid").Scan(&geomOID)
	if err != nil {
		return fmt.Errorf("pgxgeom: looking up geometry oid: %w", err)
	}

	conn.TypeMap().RegisterType(&pgtype.Type{
		Name:  "geometry",
		Codec: &Codec{},
		OID:   geomOID,
	})
	return nil
}
