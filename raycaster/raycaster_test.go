package raycaster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theblacknight/raycast2d/common/utils/vector"
)

type fakeSource struct{}

func (s fakeSource) ShapeKind() _shapekind {
	return _shapekind("points")
}

type mislabeledSource struct{}

func (s mislabeledSource) ShapeKind() _shapekind {
	return ShapeKind.Circle
}

func TestRegister(t *testing.T) {
	r := NewRaycaster()

	polygon, err := r.Register(NewPolygon([]vector.Vector2{
		vector.MakeVector2(0, 0),
		vector.MakeVector2(10, 0),
		vector.MakeVector2(10, 10),
		vector.MakeVector2(0, 10),
	}), RegisterOptions{})
	assert.NoError(t, err)
	assert.Equal(t, ShapeKind.Polygon, polygon.Kind())
	assert.Len(t, polygon.Points(), 4)
	assert.Len(t, polygon.Segments(), 4)
	assert.NotEmpty(t, polygon.Mesh())

	circle, err := r.Register(NewCircle(vector.MakeVector2(20, 20), 5), RegisterOptions{})
	assert.NoError(t, err)
	assert.True(t, circle.IsCircleApprox())
	assert.Len(t, circle.Segments(), 0)

	rectangle, err := r.Register(NewRectangle(vector.MakeVector2(30, 30), 4, 2), RegisterOptions{})
	assert.NoError(t, err)
	assert.Len(t, rectangle.Segments(), 4)
	assert.Len(t, rectangle.Mesh(), 2)

	line, err := r.Register(NewPolyline([]vector.Vector2{
		vector.MakeVector2(50, 0),
		vector.MakeVector2(55, 5),
		vector.MakeVector2(60, 0),
	}), RegisterOptions{})
	assert.NoError(t, err)
	assert.Len(t, line.Points(), 3)
	assert.Len(t, line.Segments(), 2)
	assert.Empty(t, line.Mesh())

	staticCount, dynamicCount, totalCount := r.Counts()
	assert.Equal(t, 4, staticCount)
	assert.Equal(t, 0, dynamicCount)
	assert.Equal(t, 4, totalCount)
}

func TestRegisterUnsupportedKind(t *testing.T) {
	r := NewRaycaster()

	obj, err := r.Register(fakeSource{}, RegisterOptions{})
	assert.Nil(t, obj)
	assert.EqualError(t, err, `raycaster: unsupported shape kind "points"`)

	obj, err = r.Register(mislabeledSource{}, RegisterOptions{})
	assert.Nil(t, obj)
	assert.IsType(t, UnsupportedShapeError{}, err)

	_, _, totalCount := r.Counts()
	assert.Equal(t, 0, totalCount)
}

func TestUnregister(t *testing.T) {
	r := NewRaycaster()

	near, _ := r.Register(NewLine(vector.MakeVector2(10, -10), vector.MakeVector2(10, 10)), RegisterOptions{})
	far, _ := r.Register(NewLine(vector.MakeVector2(20, -10), vector.MakeVector2(20, 10)), RegisterOptions{})

	ray := r.CreateRay(RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100})

	res, _ := r.Cast(ray)
	assert.Equal(t, near.Id(), res.Object.Id())

	r.Unregister(near)
	assert.False(t, near.IsActive())

	res, _ = r.Cast(ray)
	assert.True(t, res.Hit)
	assert.Equal(t, far.Id(), res.Object.Id())

	// removing twice is harmless
	r.Unregister(near)

	_, _, totalCount := r.Counts()
	assert.Equal(t, 1, totalCount)
}

func TestUpdateMapIdempotence(t *testing.T) {
	r := NewRaycaster()

	obj, _ := r.Register(NewPolygon([]vector.Vector2{
		vector.MakeVector2(1, 1),
		vector.MakeVector2(9, 2),
		vector.MakeVector2(7, 8),
		vector.MakeVector2(2, 7),
	}), RegisterOptions{})

	points := obj.Points()
	segments := obj.Segments()
	boundingBox := obj.BoundingBox()

	r.UpdateMap(obj)

	assert.Equal(t, points, obj.Points())
	assert.Equal(t, segments, obj.Segments())
	assert.Equal(t, boundingBox, obj.BoundingBox())
}

func TestSetDynamic(t *testing.T) {
	r := NewRaycaster()

	obj, _ := r.Register(NewCircle(vector.MakeVector2(10, 0), 5), RegisterOptions{})
	r.Register(NewCircle(vector.MakeVector2(20, 0), 5), RegisterOptions{Dynamic: true})

	staticBefore, dynamicBefore, _ := r.Counts()
	assert.Equal(t, 1, staticBefore)
	assert.Equal(t, 1, dynamicBefore)
	assert.False(t, obj.IsDynamic())

	staticCount, dynamicCount, totalCount := r.SetDynamic(obj, true)
	assert.Equal(t, 0, staticCount)
	assert.Equal(t, 2, dynamicCount)
	assert.Equal(t, 2, totalCount)
	assert.True(t, obj.IsDynamic())
	assert.True(t, r.DynamicRegistry().Has(obj))

	// setting the current value again changes nothing
	staticCount, dynamicCount, _ = r.SetDynamic(obj, true)
	assert.Equal(t, 0, staticCount)
	assert.Equal(t, 2, dynamicCount)

	staticCount, dynamicCount, _ = r.SetDynamic(obj, false)
	assert.Equal(t, staticBefore, staticCount)
	assert.Equal(t, dynamicBefore, dynamicCount)
	assert.False(t, obj.IsDynamic())
	assert.False(t, r.DynamicRegistry().Has(obj))
}

func TestRefreshDynamicMaps(t *testing.T) {
	r := NewRaycaster()

	source := NewCircle(vector.MakeVector2(10, 0), 2)
	r.Register(source, RegisterOptions{Dynamic: true})

	ray := r.CreateRay(RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100})

	res, _ := r.Cast(ray)
	assert.InDelta(t, 8.0, res.Distance, 1e-9)

	// moving the source alone leaves the derived map stale
	source.SetCenter(vector.MakeVector2(20, 0))

	res, _ = r.Cast(ray)
	assert.InDelta(t, 8.0, res.Distance, 1e-9)

	r.RefreshDynamicMaps()

	res, _ = r.Cast(ray)
	assert.InDelta(t, 18.0, res.Distance, 1e-9)
}

func TestStaticObjectNeedsExplicitUpdate(t *testing.T) {
	r := NewRaycaster()

	source := NewRectangle(vector.MakeVector2(15, -5), 10, 10)
	obj, _ := r.Register(source, RegisterOptions{})

	ray := r.CreateRay(RayOptions{Origin: vector.MakeVector2(0, 0), Angle: 0, Range: 100})

	res, _ := r.Cast(ray)
	assert.InDelta(t, 15.0, res.Distance, 1e-9)

	source.SetPosition(vector.MakeVector2(30, -5))

	// dynamic refresh does not touch static objects
	r.RefreshDynamicMaps()
	res, _ = r.Cast(ray)
	assert.InDelta(t, 15.0, res.Distance, 1e-9)

	r.UpdateMap(obj)
	res, _ = r.Cast(ray)
	assert.InDelta(t, 30.0, res.Distance, 1e-9)
}

func TestPointInsideObstacle(t *testing.T) {
	r := NewRaycaster()

	polygon, _ := r.Register(NewPolygon([]vector.Vector2{
		vector.MakeVector2(0, 0),
		vector.MakeVector2(10, 0),
		vector.MakeVector2(10, 10),
		vector.MakeVector2(0, 10),
	}), RegisterOptions{})

	circle, _ := r.Register(NewCircle(vector.MakeVector2(30, 0), 5), RegisterOptions{})

	r.Register(NewLine(vector.MakeVector2(50, -10), vector.MakeVector2(50, 10)), RegisterOptions{})

	examples := []struct {
		Name   string
		Point  vector.Vector2
		Inside bool
		Object *MappedObject
	}{
		{Name: "Should find a point inside the polygon", Point: vector.MakeVector2(5, 5), Inside: true, Object: polygon},
		{Name: "Should find a point inside the circle", Point: vector.MakeVector2(32, 2), Inside: true, Object: circle},
		{Name: "Should not match a point outside everything", Point: vector.MakeVector2(-5, -5), Inside: false},
		{Name: "Should not match a point on a polyline", Point: vector.MakeVector2(50, 0), Inside: false},
		{Name: "Should not match a point near the circle surface", Point: vector.MakeVector2(36, 0), Inside: false},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			obj, inside := r.PointInsideObstacle(example.Point)

			assert.Equal(t, example.Inside, inside)

			if example.Inside {
				assert.Equal(t, example.Object.Id(), obj.Id())
			} else {
				assert.Nil(t, obj)
			}
		})
	}
}

func TestPrefilterEquivalence(t *testing.T) {
	r := NewRaycaster()

	r.Register(NewCircle(vector.MakeVector2(40, 0), 5), RegisterOptions{})
	r.Register(NewRectangle(vector.MakeVector2(20, 20), 6, 6), RegisterOptions{})
	r.Register(NewLine(vector.MakeVector2(-30, -10), vector.MakeVector2(-30, 10)), RegisterOptions{})
	r.Register(NewPolygon([]vector.Vector2{
		vector.MakeVector2(0, -25),
		vector.MakeVector2(10, -25),
		vector.MakeVector2(5, -15),
	}), RegisterOptions{})
	r.Register(NewCircle(vector.MakeVector2(200, 200), 3), RegisterOptions{})

	ray := r.CreateRay(RayOptions{Range: 60})

	// the spatial index may only prune, never change a result
	for i := 0; i < 16; i++ {
		ray.SetAngle(float64(i) * math.Pi / 8)

		filtered, foundFiltered := r.Cast(ray)
		direct, foundDirect := ray.Cast(r.MappedObjects())

		assert.Equal(t, foundDirect, foundFiltered)
		assert.Equal(t, direct, filtered)
	}

	filteredCircle := r.CastCircle(ray, 16)
	directCircle := ray.CastCircle(r.MappedObjects(), 16)

	assert.Equal(t, directCircle, filteredCircle)
}
