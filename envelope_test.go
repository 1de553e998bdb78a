package wkb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeOfPoint(t *testing.T) {
	env := EnvelopeOf(NewPoint(3, 4))
	require.NotNil(t, env)
	assert.Equal(t, 3.0, env.MinX)
	assert.Equal(t, 3.0, env.MaxX)
	assert.Equal(t, 4.0, env.MinY)
	assert.Equal(t, 4.0, env.MaxY)
}

func TestEnvelopeOfNilOrEmpty(t *testing.T) {
	assert.Nil(t, EnvelopeOf(nil))
	assert.Nil(t, EnvelopeOf(NewLineString(false, false)))
}

func TestEnvelopeOfLineString(t *testing.T) {
	ls := NewLineString(false, false)
	require.NoError(t, ls.AddPoint(NewPoint(-1, 5)))
	require.NoError(t, ls.AddPoint(NewPoint(9, -2)))

	env := EnvelopeOf(ls)
	require.NotNil(t, env)
	assert.Equal(t, -1.0, env.MinX)
	assert.Equal(t, 9.0, env.MaxX)
	assert.Equal(t, -2.0, env.MinY)
	assert.Equal(t, 5.0, env.MaxY)
}

func TestEnvelopeSkipsNaN(t *testing.T) {
	ls := NewLineString(false, false)
	require.NoError(t, ls.AddPoint(NewPoint(1, 1)))
	require.NoError(t, ls.AddPoint(NewPoint(math.NaN(), math.NaN())))
	require.NoError(t, ls.AddPoint(NewPoint(5, 5)))

	env := EnvelopeOf(ls)
	require.NotNil(t, env)
	assert.Equal(t, 1.0, env.MinX)
	assert.Equal(t, 5.0, env.MaxX)
}

func TestEnvelopeEqual(t *testing.T) {
	a := EnvelopeOf(NewPoint(1, 1))
	b := EnvelopeOf(NewPoint(1, 1))
	assert.True(t, a.Equal(b))

	c := EnvelopeOf(NewPoint(2, 2))
	assert.False(t, a.Equal(c))

	var nilEnv *Envelope
	assert.True(t, nilEnv.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestEnvelopeOfExtendedCollection(t *testing.T) {
	gc := NewGeometryCollection(false, false)
	ls := NewLineString(false, false)
	require.NoError(t, ls.AddPoint(NewPoint(0, 0)))
	require.NoError(t, ls.AddPoint(NewPoint(2, 2)))
	require.NoError(t, gc.Add(ls))

	env := EnvelopeOf(AsMultiCurve(gc))
	require.NotNil(t, env)
	assert.Equal(t, 0.0, env.MinX)
	assert.Equal(t, 2.0, env.MaxX)
}
