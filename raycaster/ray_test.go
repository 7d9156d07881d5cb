package raycaster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theblacknight/raycast2d/common/utils/vector"
)

type castCase struct {
	Name      string
	Options   RayOptions
	Obstacles func(r *Raycaster)
	Check     func(t *testing.T, ray *Ray, res Intersection, found bool)
}

func TestCast(t *testing.T) {
	examples := []castCase{
		{
			Name: "Should report the maximum reach on miss",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.False(t, res.Hit)
				assert.Equal(t, 100.0, res.Distance)
				assert.InDelta(t, 100.0, res.Point.GetX(), 1e-9)
				assert.InDelta(t, 0.0, res.Point.GetY(), 1e-9)
			},
		},
		{
			Name: "Should report nothing on miss when misses are ignored",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100, IgnoreNotIntersectedRays: true},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.False(t, found)
			},
		},
		{
			Name: "Should hit the near edge of an axis aligned square",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Obstacles: func(r *Raycaster) {
				r.Register(NewRectangle(vector.MakeVector2(15, -5), 10, 10), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.True(t, res.Hit)
				assert.InDelta(t, 15.0, res.Distance, 1e-9)
				assert.InDelta(t, 15.0, res.Point.GetX(), 1e-9)
				assert.InDelta(t, 0.0, res.Point.GetY(), 1e-9)
			},
		},
		{
			Name: "Should clip the reported point to the collision range",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100, CollisionRange: 10},
			Obstacles: func(r *Raycaster) {
				r.Register(NewLine(vector.MakeVector2(50, -10), vector.MakeVector2(50, 10)), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.True(t, res.Hit)
				assert.NotNil(t, res.Object)
				assert.Equal(t, 10.0, res.Distance)
				assert.InDelta(t, 10.0, res.Point.GetX(), 1e-9)
				assert.InDelta(t, 0.0, res.Point.GetY(), 1e-9)
			},
		},
		{
			Name: "Should not test objects beyond the detection range",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100, DetectionRange: 10},
			Obstacles: func(r *Raycaster) {
				r.Register(NewLine(vector.MakeVector2(50, -10), vector.MakeVector2(50, 10)), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.False(t, res.Hit)
				assert.Equal(t, 100.0, res.Distance)
				assert.Equal(t, 0, ray.Stats().TestedMappedObjects)
			},
		},
		{
			Name: "Should hit a circle on its near surface",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Obstacles: func(r *Raycaster) {
				r.Register(NewCircle(vector.MakeVector2(10, 0), 5), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.True(t, res.Hit)
				assert.InDelta(t, 5.0, res.Distance, 1e-9)
				assert.InDelta(t, 5.0, res.Point.GetX(), 1e-9)
				assert.InDelta(t, 0.0, res.Point.GetY(), 1e-9)
			},
		},
		{
			Name: "Should never hit a zero radius circle",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Obstacles: func(r *Raycaster) {
				r.Register(NewCircle(vector.MakeVector2(10, 0), 0), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.False(t, res.Hit)
			},
		},
		{
			Name: "Should not hit a circle behind the origin",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Obstacles: func(r *Raycaster) {
				r.Register(NewCircle(vector.MakeVector2(-10, 0), 5), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.False(t, res.Hit)
			},
		},
		{
			Name: "Should not hit a wall behind the origin",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Obstacles: func(r *Raycaster) {
				r.Register(NewLine(vector.MakeVector2(-5, -10), vector.MakeVector2(-5, 10)), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.False(t, res.Hit)
			},
		},
		{
			Name: "Should round the reported point when asked to",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100, Round: true},
			Obstacles: func(r *Raycaster) {
				r.Register(NewLine(vector.MakeVector2(15.3, -5), vector.MakeVector2(15.3, 5)), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.True(t, res.Hit)
				assert.True(t, res.Point.Equals(vector.MakeVector2(15, 0)))
			},
		},
		{
			Name: "Should report nothing when the range degenerates to zero",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: -5},
			Obstacles: func(r *Raycaster) {
				r.Register(NewLine(vector.MakeVector2(15, -5), vector.MakeVector2(15, 5)), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.False(t, found)
			},
		},
		{
			Name: "Should keep the nearest hit among several obstacles",

			Options: RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100},
			Obstacles: func(r *Raycaster) {
				r.Register(NewLine(vector.MakeVector2(40, -10), vector.MakeVector2(40, 10)), RegisterOptions{})
				r.Register(NewLine(vector.MakeVector2(20, -10), vector.MakeVector2(20, 10)), RegisterOptions{})
				r.Register(NewLine(vector.MakeVector2(60, -10), vector.MakeVector2(60, 10)), RegisterOptions{})
			},
			Check: func(t *testing.T, ray *Ray, res Intersection, found bool) {
				assert.True(t, found)
				assert.True(t, res.Hit)
				assert.InDelta(t, 20.0, res.Distance, 1e-9)
				assert.Equal(t, 3, ray.Stats().TestedMappedObjects)
				assert.Equal(t, 3, ray.Stats().HitMappedObjects)
			},
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			r := NewRaycaster()

			if example.Obstacles != nil {
				example.Obstacles(r)
			}

			ray := r.CreateRay(example.Options)
			res, found := r.Cast(ray)

			example.Check(t, ray, res, found)
		})
	}
}

func TestCastTieBreak(t *testing.T) {
	r := NewRaycaster()

	first, err := r.Register(NewRectangle(vector.MakeVector2(15, -5), 10, 10), RegisterOptions{})
	assert.NoError(t, err)

	second, err := r.Register(NewRectangle(vector.MakeVector2(15, -3), 10, 6), RegisterOptions{})
	assert.NoError(t, err)
	assert.NotEqual(t, first.Id(), second.Id())

	ray := r.CreateRay(RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100})

	// both near edges sit at x=15; the earliest registered object wins,
	// every time
	for i := 0; i < 10; i++ {
		res, found := r.Cast(ray)

		assert.True(t, found)
		assert.True(t, res.Hit)
		assert.Equal(t, first.Id(), res.Object.Id())
		assert.InDelta(t, 15.0, res.Distance, 1e-9)
	}
}

func TestCastKeepsHitsOnTheRaySegment(t *testing.T) {
	r := NewRaycaster()

	// one circle behind the origin, one past the range; the analytic circle
	// test works on the infinite line, both must still be misses
	r.Register(NewCircle(vector.MakeVector2(-10, 0), 5), RegisterOptions{})
	r.Register(NewCircle(vector.MakeVector2(103, 0), 2), RegisterOptions{})

	ray := NewRay(RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100})

	res, found := ray.Cast(r.MappedObjects())

	assert.True(t, found)
	assert.False(t, res.Hit)
	assert.Equal(t, 2, ray.Stats().TestedMappedObjects)
	assert.Equal(t, 0, ray.Stats().HitMappedObjects)
}

func TestNewRayClamps(t *testing.T) {
	examples := []struct {
		Name    string
		Options RayOptions
		Check   func(t *testing.T, ray *Ray)
	}{
		{
			Name:    "Should default a zero range to unlimited",
			Options: RayOptions{},
			Check: func(t *testing.T, ray *Ray) {
				assert.Equal(t, float64(UnlimitedRange), ray.Range())
			},
		},
		{
			Name:    "Should clamp a negative range to zero",
			Options: RayOptions{Range: -3},
			Check: func(t *testing.T, ray *Ray) {
				assert.Equal(t, 0.0, ray.Range())
			},
		},
		{
			Name:    "Should clamp a negative cone to zero",
			Options: RayOptions{Cone: -1},
			Check: func(t *testing.T, ray *Ray) {
				assert.Equal(t, 0.0, ray.Cone())
			},
		},
		{
			Name:    "Should clamp an oversized cone to the full circle",
			Options: RayOptions{Cone: 10},
			Check: func(t *testing.T, ray *Ray) {
				assert.Equal(t, 2*math.Pi, ray.Cone())
			},
		},
		{
			Name:    "Should clamp a negative collision range to zero",
			Options: RayOptions{CollisionRange: -2},
			Check: func(t *testing.T, ray *Ray) {
				assert.Equal(t, 0.0, ray.CollisionRange())
			},
		},
		{
			Name:    "Should clamp a negative detection range to zero",
			Options: RayOptions{DetectionRange: -2},
			Check: func(t *testing.T, ray *Ray) {
				assert.Equal(t, 0.0, ray.DetectionRange())
			},
		},
		{
			Name:    "Should normalize the base angle",
			Options: RayOptions{Angle: 3 * math.Pi},
			Check: func(t *testing.T, ray *Ray) {
				assert.InDelta(t, math.Pi, ray.Angle(), 1e-9)
			},
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			example.Check(t, NewRay(example.Options))
		})
	}
}
