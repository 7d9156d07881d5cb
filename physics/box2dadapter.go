package physics

import (
	"github.com/bytearena/box2d"
	uuid "github.com/satori/go.uuid"

	commontypes "github.com/theblacknight/raycast2d/common/types"
	"github.com/theblacknight/raycast2d/common/utils/trigo"
	"github.com/theblacknight/raycast2d/common/utils/vector"
	"github.com/theblacknight/raycast2d/raycaster"
)

type trackedBody struct {
	obj  *raycaster.MappedObject
	body *box2d.B2Body
}

// Box2DAdapter mirrors tracked mapped objects as static Box2D bodies, for
// hosts that keep a physical world next to the ray caster.
type Box2DAdapter struct {
	world  *box2d.B2World
	bodies map[uuid.UUID]trackedBody

	overlaps map[*raycaster.Ray]map[uuid.UUID]*raycaster.MappedObject
}

func NewBox2DAdapter() *Box2DAdapter {
	gravity := box2d.MakeB2Vec2(0.0, 0.0) // gravity 0: the scene is seen from the top
	world := box2d.MakeB2World(gravity)

	return &Box2DAdapter{
		world:    &world,
		bodies:   make(map[uuid.UUID]trackedBody),
		overlaps: make(map[*raycaster.Ray]map[uuid.UUID]*raycaster.MappedObject),
	}
}

func (adapter *Box2DAdapter) World() *box2d.B2World {
	return adapter.world
}

// Track mirrors the object in the physical world as a static occluding body.
// Tracking an object twice rebuilds its body from the current geometry.
func (adapter *Box2DAdapter) Track(obj *raycaster.MappedObject) {
	adapter.Release(obj)

	bodydef := box2d.MakeB2BodyDef()
	bodydef.Type = box2d.B2BodyType.B2_staticBody

	if obj.IsCircleApprox() {
		circle := obj.Circle()
		if circle.GetRadius() <= 0 {
			return
		}

		center := circle.GetCenter()
		bodydef.Position.Set(center.GetX(), center.GetY())

		body := adapter.world.CreateBody(&bodydef)

		shape := box2d.MakeB2CircleShape()
		shape.SetRadius(circle.GetRadius())

		fixturedef := box2d.MakeB2FixtureDef()
		fixturedef.Shape = &shape
		body.CreateFixtureFromDef(&fixturedef)

		body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
			commontypes.PhysicalBodyDescriptorType.Obstacle,
			obj.Id().String(),
		))

		adapter.bodies[obj.Id()] = trackedBody{obj: obj, body: body}

		return
	}

	points := obj.Points()
	if len(points) < 2 {
		return
	}

	body := adapter.world.CreateBody(&bodydef)

	vertices := make([]box2d.B2Vec2, len(points))
	for i := 0; i < len(points); i++ {
		vertices[i].Set(points[i].GetX(), points[i].GetY())
	}

	shape := box2d.MakeB2ChainShape()

	closed := obj.Kind() == raycaster.ShapeKind.Polygon || obj.Kind() == raycaster.ShapeKind.Rectangle
	if closed && len(vertices) >= 3 {
		shape.CreateLoop(vertices, len(vertices))
	} else {
		shape.CreateChain(vertices, len(vertices))
	}

	body.CreateFixture(&shape, 0.0)
	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Obstacle,
		obj.Id().String(),
	))

	adapter.bodies[obj.Id()] = trackedBody{obj: obj, body: body}
}

// Release destroys the object's mirrored body, if any. A later ProcessRay
// reports the end of any collision the object was part of.
func (adapter *Box2DAdapter) Release(obj *raycaster.MappedObject) {
	tracked, ok := adapter.bodies[obj.Id()]
	if !ok {
		return
	}

	adapter.world.DestroyBody(tracked.body)
	delete(adapter.bodies, obj.Id())
}

// TrackSensor adds a non occluding dynamic body; line of sight queries pass
// through sensors.
func (adapter *Box2DAdapter) TrackSensor(id string, position vector.Vector2, radius float64) *box2d.B2Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position.Set(position.GetX(), position.GetY())
	bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	bodydef.AllowSleep = false
	bodydef.FixedRotation = true

	body := adapter.world.CreateBody(&bodydef)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(radius)

	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = &shape
	fixturedef.IsSensor = true
	body.CreateFixtureFromDef(&fixturedef)

	body.SetUserData(commontypes.MakePhysicalBodyDescriptor(
		commontypes.PhysicalBodyDescriptorType.Sensor,
		id,
	))

	return body
}

// LineOfSight reports whether the straight segment between the two points
// crosses no tracked obstacle.
func (adapter *Box2DAdapter) LineOfSight(from vector.Vector2, to vector.Vector2) bool {
	if from.Equals(to) {
		return true
	}

	occulted := false

	adapter.world.RayCast(
		func(fixture *box2d.B2Fixture, point box2d.B2Vec2, normal box2d.B2Vec2, fraction float64) float64 {
			bodyDescriptor, ok := fixture.GetBody().GetUserData().(commontypes.PhysicalBodyDescriptor)
			if !ok {
				return 1.0 // continue the ray
			}

			if bodyDescriptor.Type == commontypes.PhysicalBodyDescriptorType.Obstacle {
				occulted = true
				return 0.0 // terminate the ray
			}

			return 1.0 // continue the ray
		},
		from.ToB2Vec2(),
		to.ToB2Vec2(),
	)

	return !occulted
}

// ProcessRay diffs which tracked objects stand inside the ray's sliced field
// of view and fires the ray's collide hooks on enter and leave. The fan
// comes from the last multi cast, so the ray must carry AutoSlice.
func (adapter *Box2DAdapter) ProcessRay(ray *raycaster.Ray) {
	slices := ray.Slices()

	previous := adapter.overlaps[ray]
	current := make(map[uuid.UUID]*raycaster.MappedObject, len(previous))

	for id, tracked := range adapter.bodies {
		position := tracked.obj.BoundingBox().Center()

		inside := false
		for _, slice := range slices {
			if trigo.PointIsInTriangle(position, slice.GetA(), slice.GetB(), slice.GetC()) {
				inside = true
				break
			}
		}

		if !inside {
			continue
		}

		current[id] = tracked.obj

		if _, wasInside := previous[id]; !wasInside {
			ray.EmitCollide(tracked.obj, position)
		}
	}

	for id, obj := range previous {
		if _, stillInside := current[id]; !stillInside {
			ray.EmitCollideEnd(obj)
		}
	}

	adapter.overlaps[ray] = current
}

// ForgetRay drops the overlap bookkeeping of a ray that is no longer
// processed.
func (adapter *Box2DAdapter) ForgetRay(ray *raycaster.Ray) {
	delete(adapter.overlaps, ray)
}
