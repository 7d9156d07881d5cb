package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircle2ContainsPoint(t *testing.T) {
	circle := MakeCircle2(MakeVector2(10, 10), 5)

	assert.True(t, circle.ContainsPoint(MakeVector2(10, 10)))
	assert.True(t, circle.ContainsPoint(MakeVector2(15, 10))) // on the boundary
	assert.False(t, circle.ContainsPoint(MakeVector2(15.001, 10)))
}

func TestCircle2OverlapsRect(t *testing.T) {
	rect := MakeRect2(MakeVector2(0, 0), MakeVector2(10, 10))

	examples := []struct {
		Name     string
		Circle   Circle2
		Expected bool
	}{
		{
			Name:     "Should overlap when the center is inside",
			Circle:   MakeCircle2(MakeVector2(5, 5), 1),
			Expected: true,
		},
		{
			Name:     "Should overlap across an edge",
			Circle:   MakeCircle2(MakeVector2(12, 5), 3),
			Expected: true,
		},
		{
			Name: "Should not overlap diagonally even when bounding boxes do",
			// closest corner is (10, 10), at distance ~4.24 > 4
			Circle:   MakeCircle2(MakeVector2(13, 13), 4),
			Expected: false,
		},
		{
			Name:     "Should overlap when touching a corner exactly",
			Circle:   MakeCircle2(MakeVector2(13, 14), 5),
			Expected: true,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			assert.Equal(t, example.Expected, example.Circle.OverlapsRect(rect))
		})
	}
}

func TestCircle2BoundingRect(t *testing.T) {
	rect := MakeCircle2(MakeVector2(3, 4), 2).BoundingRect()

	assert.True(t, rect.GetMin().Equals(MakeVector2(1, 2)))
	assert.True(t, rect.GetMax().Equals(MakeVector2(5, 6)))
}
