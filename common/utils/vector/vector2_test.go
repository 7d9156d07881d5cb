package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Angle(t *testing.T) {
	examples := []struct {
		Name     string
		Vector   Vector2
		Expected float64
	}{
		{
			Name:     "Should point towards positive x",
			Vector:   MakeVector2(1, 0),
			Expected: 0,
		},
		{
			Name:     "Should point towards positive y",
			Vector:   MakeVector2(0, 1),
			Expected: math.Pi / 2,
		},
		{
			Name:     "Should point towards negative x",
			Vector:   MakeVector2(-1, 0),
			Expected: math.Pi,
		},
		{
			Name:     "Should point towards negative y",
			Vector:   MakeVector2(0, -1),
			Expected: 3 * math.Pi / 2,
		},
		{
			Name:     "Should be null for the null vector",
			Vector:   MakeNullVector2(),
			Expected: 0,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			assert.InDelta(t, example.Expected, example.Vector.Angle(), 0.000001)
		})
	}
}

func TestVector2SetAngle(t *testing.T) {
	v := MakeVector2(10, 0).SetAngle(math.Pi / 2)

	assert.InDelta(t, 0, v.GetX(), 0.000001)
	assert.InDelta(t, 10, v.GetY(), 0.000001)
	assert.InDelta(t, 10, v.Mag(), 0.000001)

	// SetAngle then Angle must round-trip
	for _, radians := range []float64{0, 1, math.Pi, 5} {
		assert.InDelta(t, radians, MakeVector2(3, 4).SetAngle(radians).Angle(), 0.000001)
	}
}

func TestVector2Arithmetic(t *testing.T) {
	a := MakeVector2(1, 2)
	b := MakeVector2(3, -4)

	assert.True(t, a.Add(b).Equals(MakeVector2(4, -2)))
	assert.True(t, a.Sub(b).Equals(MakeVector2(-2, 6)))
	assert.True(t, a.MultScalar(2).Equals(MakeVector2(2, 4)))
	assert.InDelta(t, 5, b.Mag(), 0.000001)
	assert.InDelta(t, 25, b.MagSq(), 0.000001)
	assert.InDelta(t, 1, b.Normalize().Mag(), 0.000001)
	assert.InDelta(t, -5, a.Dot(b), 0.000001)
	assert.InDelta(t, -10, a.Cross(b), 0.000001)

	// value receivers must not mutate the operands
	assert.True(t, a.Equals(MakeVector2(1, 2)))
	assert.True(t, b.Equals(MakeVector2(3, -4)))
}

func TestVector2MarshalJSON(t *testing.T) {
	json, err := MakeVector2(1.5, -2).MarshalJSON()

	assert.NoError(t, err)
	assert.Equal(t, "[1.5000,-2.0000]", string(json))
}
