package wkb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripPoint(t *testing.T) {
	for _, order := range []ByteOrder{XDR, NDR} {
		p := NewPointZM(1.5, -2.25, 3.75, 4.125)
		data, err := WriteGeometry(p, order)
		require.NoError(t, err)

		got, err := ReadGeometry(data, order, nil)
		require.NoError(t, err)
		gotPoint, ok := got.(Point)
		require.True(t, ok)
		assert.True(t, p.Equal(gotPoint))
	}
}

func TestRoundTripLineString(t *testing.T) {
	ls := NewLineString(false, false)
	require.NoError(t, ls.AddPoint(NewPoint(1, 2)))
	require.NoError(t, ls.AddPoint(NewPoint(3, 4)))
	require.NoError(t, ls.AddPoint(NewPoint(5, 6)))

	data, err := WriteGeometry(ls, NDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, NDR, nil)
	require.NoError(t, err)
	gotLS, ok := got.(*LineString)
	require.True(t, ok)
	require.Equal(t, 3, gotLS.Len())
	for i := 0; i < 3; i++ {
		assert.True(t, ls.PointN(i).Equal(gotLS.PointN(i)))
	}
}

func TestRoundTripPolygonWithHole(t *testing.T) {
	poly := NewPolygon(false, false)
	outer := NewLineString(false, false)
	for _, xy := range [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}} {
		require.NoError(t, outer.AddPoint(NewPoint(xy[0], xy[1])))
	}
	inner := NewLineString(false, false)
	for _, xy := range [][2]float64{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}} {
		require.NoError(t, inner.AddPoint(NewPoint(xy[0], xy[1])))
	}
	require.NoError(t, poly.AddRing(outer))
	require.NoError(t, poly.AddRing(inner))

	data, err := WriteGeometry(poly, XDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, XDR, nil)
	require.NoError(t, err)
	gotPoly, ok := got.(*Polygon)
	require.True(t, ok)
	require.Len(t, gotPoly.Rings, 2)
	assert.Len(t, gotPoly.ExteriorRing().Points, 5)
	assert.Len(t, gotPoly.InteriorRings()[0].Points, 5)
}

// TestMultiCurveMaterializesAsGeometryCollection mirrors spec.md §8.2 S2: a
// MultiCurve-coded record decodes to a plain GeometryCollection whose
// IsMultiCurve() predicate reports true, never a distinct stored tag.
func TestMultiCurveMaterializesAsGeometryCollection(t *testing.T) {
	gc := NewGeometryCollection(false, false)
	first := NewLineString(false, false)
	require.NoError(t, first.AddPoint(NewPoint(18.889800697319032, -35.036463112927535)))
	require.NoError(t, first.AddPoint(NewPoint(1, 1)))
	require.NoError(t, first.AddPoint(NewPoint(2, 2)))
	second := NewLineString(false, false)
	for i := 0; i < 9; i++ {
		require.NoError(t, second.AddPoint(NewPoint(float64(i), float64(i))))
	}
	require.NoError(t, second.AddPoint(NewPoint(-76.52909336488278, 44.2390383216843)))
	require.NoError(t, gc.Add(first))
	require.NoError(t, gc.Add(second))

	ext := AsMultiCurve(gc)
	data, err := WriteGeometry(ext, XDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, XDR, nil)
	require.NoError(t, err)
	gotGC, ok := got.(*GeometryCollection)
	require.True(t, ok)
	assert.Equal(t, TagGeometryCollection, gotGC.Tag())
	assert.True(t, gotGC.IsMultiCurve())
	require.Equal(t, 2, gotGC.NumGeometries())

	firstGot := gotGC.GeometryN(0).(*LineString)
	assert.True(t, firstGot.PointN(0).Equal(NewPoint(18.889800697319032, -35.036463112927535)))
	secondGot := gotGC.GeometryN(1).(*LineString)
	assert.True(t, secondGot.PointN(secondGot.Len()-1).Equal(NewPoint(-76.52909336488278, 44.2390383216843)))
}

// TestMultiCurveContainingCompoundCurve mirrors spec.md §8.2 S3.
func TestMultiCurveContainingCompoundCurve(t *testing.T) {
	shared := NewPoint(3451409.995, 5481806.744)

	firstCurve := NewLineString(false, false)
	require.NoError(t, firstCurve.AddPoint(NewPoint(0, 0)))
	require.NoError(t, firstCurve.AddPoint(NewPoint(1, 1)))
	require.NoError(t, firstCurve.AddPoint(shared))
	secondCurve := NewLineString(false, false)
	require.NoError(t, secondCurve.AddPoint(shared))
	require.NoError(t, secondCurve.AddPoint(NewPoint(9, 9)))

	cc := NewCompoundCurve(false, false)
	require.NoError(t, cc.AddCurve(firstCurve))
	require.NoError(t, cc.AddCurve(secondCurve))

	gc := NewGeometryCollection(false, false)
	require.NoError(t, gc.Add(cc))
	ext := AsMultiCurve(gc)

	data, err := WriteGeometry(ext, NDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, NDR, nil)
	require.NoError(t, err)
	gotGC := got.(*GeometryCollection)
	require.Equal(t, 1, gotGC.NumGeometries())
	gotCC := gotGC.GeometryN(0).(*CompoundCurve)
	require.Len(t, gotCC.Curves, 2)

	firstGot := gotCC.Curves[0].(*LineString)
	secondGot := gotCC.Curves[1].(*LineString)
	assert.True(t, firstGot.PointN(firstGot.Len()-1).Equal(shared))
	assert.True(t, secondGot.PointN(0).Equal(shared))
}

// TestFiniteFilterOnLineString mirrors spec.md §8.2 S4.
func TestFiniteFilterOnLineString(t *testing.T) {
	ls := NewLineString(false, false)
	ordinates := []float64{0, math.NaN(), 1, math.Inf(1), 2, math.Inf(-1), 3, math.NaN()}
	for _, v := range ordinates {
		require.NoError(t, ls.AddPoint(NewPoint(v, v)))
	}
	data, err := WriteGeometry(ls, NDR)
	require.NoError(t, err)

	t.Run("FINITE drops both NaN and Inf", func(t *testing.T) {
		got, err := ReadGeometry(data, NDR, &PointFiniteFilter{Type: Finite})
		require.NoError(t, err)
		gotLS := got.(*LineString)
		require.Equal(t, 4, gotLS.Len())
		for _, p := range gotLS.Points {
			assert.False(t, math.IsNaN(p.X) || math.IsInf(p.X, 0))
		}
	})

	t.Run("FINITE_AND_NAN retains NaN drops Inf", func(t *testing.T) {
		got, err := ReadGeometry(data, NDR, &PointFiniteFilter{Type: FiniteAndNaN})
		require.NoError(t, err)
		gotLS := got.(*LineString)
		require.Equal(t, 6, gotLS.Len())
	})

	t.Run("FINITE_AND_INFINITE retains Inf drops NaN", func(t *testing.T) {
		got, err := ReadGeometry(data, NDR, &PointFiniteFilter{Type: FiniteAndInfinite})
		require.NoError(t, err)
		gotLS := got.(*LineString)
		require.Equal(t, 6, gotLS.Len())
	})
}

// TestFiniteFilterEmptiesTopLevelPoint mirrors spec.md §8.2 S5.
func TestFiniteFilterEmptiesTopLevelPoint(t *testing.T) {
	p := NewPoint(math.NaN(), 1)
	data, err := WriteGeometry(p, NDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, NDR, &PointFiniteFilter{Type: Finite})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestFiniteFilterDropsEmptyRing extends S4/S5: a LineString
// left empty by filtering must itself disappear from its parent Polygon.
func TestFiniteFilterDropsEmptyRing(t *testing.T) {
	poly := NewPolygon(false, false)
	outer := NewLineString(false, false)
	for _, xy := range [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}} {
		require.NoError(t, outer.AddPoint(NewPoint(xy[0], xy[1])))
	}
	allNaN := NewLineString(false, false)
	for i := 0; i < 4; i++ {
		require.NoError(t, allNaN.AddPoint(NewPoint(math.NaN(), math.NaN())))
	}
	require.NoError(t, poly.AddRing(outer))
	require.NoError(t, poly.AddRing(allNaN))

	data, err := WriteGeometry(poly, XDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, XDR, &PointFiniteFilter{Type: Finite})
	require.NoError(t, err)
	gotPoly := got.(*Polygon)
	assert.Len(t, gotPoly.Rings, 1)
}

// TestCrossEndianEquivalence mirrors spec.md §8.2 S6.
func TestCrossEndianEquivalence(t *testing.T) {
	poly := NewPolygon(true, false)
	ring := NewLineString(true, false)
	for _, xyz := range [][3]float64{{0, 0, 1}, {4, 0, 2}, {4, 4, 3}, {0, 4, 4}, {0, 0, 1}} {
		require.NoError(t, ring.AddPoint(NewPointZ(xyz[0], xyz[1], xyz[2])))
	}
	require.NoError(t, poly.AddRing(ring))

	writtenBig, err := WriteGeometry(poly, XDR)
	require.NoError(t, err)
	writtenLittle, err := WriteGeometry(poly, NDR)
	require.NoError(t, err)

	viaLittle, err := ReadGeometry(writtenBig, NDR, nil)
	require.NoError(t, err)
	viaBig, err := ReadGeometry(writtenLittle, XDR, nil)
	require.NoError(t, err)

	reencodedA, err := WriteGeometry(viaLittle, XDR)
	require.NoError(t, err)
	reencodedB, err := WriteGeometry(viaBig, XDR)
	require.NoError(t, err)
	assert.Equal(t, reencodedA, reencodedB)

	gotA := viaLittle.(*Polygon)
	gotB := viaBig.(*Polygon)
	require.Len(t, gotA.Rings, 1)
	require.Len(t, gotB.Rings, 1)
	for i := range gotA.Rings[0].Points {
		assert.True(t, gotA.Rings[0].Points[i].Equal(gotB.Rings[0].Points[i]))
	}
}

func TestReadGeometryUnknownTypeCode(t *testing.T) {
	w := NewByteWriter(NDR)
	require.NoError(t, w.WriteByte(byte(NDR)))
	require.NoError(t, w.WriteUInt32(999))
	_, err := ReadGeometry(w.Bytes(), NDR, nil)
	require.Error(t, err)
	var target *UnknownTypeCodeError
	assert.ErrorAs(t, err, &target)
}

func TestReadGeometryTruncated(t *testing.T) {
	_, err := ReadGeometry([]byte{byte(NDR), 1, 0}, NDR, nil)
	require.Error(t, err)
	var target *TruncatedError
	assert.ErrorAs(t, err, &target)
}

func TestReadGeometryInvalidChildType(t *testing.T) {
	mp := NewMultiPoint(false, false)
	require.NoError(t, mp.AddPoint(NewPoint(1, 1)))
	data, err := WriteGeometry(mp, NDR)
	require.NoError(t, err)
	// Corrupt the child record's type code (the low byte of its little-endian
	// uint32 at offset 10) so it claims to be a LineString instead of a Point.
	data[10] = byte(baseCodeLineString)
	_, err = ReadGeometry(data, NDR, nil)
	require.Error(t, err)
	var target *InvalidChildTypeError
	assert.ErrorAs(t, err, &target)
}

func TestReadGeometryRecursionLimit(t *testing.T) {
	gr := NewGeometryReader(nil)
	gr.MaxDepth = 1

	inner := NewGeometryCollection(false, false)
	require.NoError(t, inner.Add(NewPoint(1, 1)))
	outer := NewGeometryCollection(false, false)
	require.NoError(t, outer.Add(inner))
	wrap := NewGeometryCollection(false, false)
	require.NoError(t, wrap.Add(outer))

	data, err := WriteGeometry(wrap, NDR)
	require.NoError(t, err)

	r := NewByteReader(data, NDR)
	_, err = gr.Read(r)
	require.Error(t, err)
	var target *TruncatedError
	assert.ErrorAs(t, err, &target)
}

func TestExtendedGeometryCollectionMultiSurface(t *testing.T) {
	gc := NewGeometryCollection(false, false)
	poly := NewPolygon(false, false)
	ring := NewLineString(false, false)
	for _, xy := range [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}} {
		require.NoError(t, ring.AddPoint(NewPoint(xy[0], xy[1])))
	}
	require.NoError(t, poly.AddRing(ring))
	require.NoError(t, gc.Add(poly))

	data, err := WriteGeometry(AsMultiSurface(gc), XDR)
	require.NoError(t, err)

	got, err := ReadGeometry(data, XDR, nil)
	require.NoError(t, err)
	gotGC := got.(*GeometryCollection)
	assert.True(t, gotGC.IsMultiSurface())
	assert.False(t, gotGC.IsMultiCurve())
}
