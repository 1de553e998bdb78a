package wkb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEqual(t *testing.T) {
	t.Run("plain points", func(t *testing.T) {
		a := NewPoint(1, 2)
		b := NewPoint(1, 2)
		assert.True(t, a.Equal(b))
	})

	t.Run("differing dims never equal", func(t *testing.T) {
		a := NewPoint(1, 2)
		b := NewPointZ(1, 2, 0)
		assert.False(t, a.Equal(b))
	})

	t.Run("NaN compares equal to itself", func(t *testing.T) {
		a := NewPoint(math.NaN(), 2)
		b := NewPoint(math.NaN(), 2)
		assert.True(t, a.Equal(b))
	})

	t.Run("zm points compare all four ordinates", func(t *testing.T) {
		a := NewPointZM(1, 2, 3, 4)
		b := NewPointZM(1, 2, 3, 5)
		assert.False(t, a.Equal(b))
	})
}

func TestPointIsEmptyAlwaysFalse(t *testing.T) {
	assert.False(t, NewPoint(0, 0).IsEmpty())
}
