package raycaster

import (
	"math"
	"time"

	"github.com/theblacknight/raycast2d/common/utils"
	"github.com/theblacknight/raycast2d/common/utils/number"
	"github.com/theblacknight/raycast2d/common/utils/trigo"
	"github.com/theblacknight/raycast2d/common/utils/vector"
)

// UnlimitedRange is the effective infinity for ray ranges. Kept finite so
// miss points and distance arithmetic stay well behaved.
const UnlimitedRange = 1e9

const (
	methodCast       = "cast"
	methodCastCone   = "castCone"
	methodCastCircle = "castCircle"
)

// Intersection is the result of one ray. Hit is false when the ray reached
// its maximum range without touching anything and still had to report a
// point.
type Intersection struct {
	Point    vector.Vector2
	Distance float64
	Angle    float64
	Object   *MappedObject
	Segment  vector.Segment2
	Hit      bool
}

// RayOptions configures a ray. Zero values mean: unlimited range, no
// collision clipping, no detection filter, single ray (no cone). Out of
// range values are clamped, never rejected.
type RayOptions struct {
	Origin                   vector.Vector2
	Angle                    float64
	Cone                     float64
	Range                    float64
	CollisionRange           float64
	DetectionRange           float64
	IgnoreNotIntersectedRays bool
	Round                    bool
	AutoSlice                bool
}

type Ray struct {
	origin vector.Vector2
	angle  float64
	cone   float64

	rayRange       float64
	collisionRange float64
	detectionRange float64

	ignoreNotIntersectedRays bool
	round                    bool
	autoSlice                bool

	onCollide    func(obj *MappedObject, point vector.Vector2)
	onCollideEnd func(obj *MappedObject)

	intersections []Intersection
	slices        []vector.Triangle2
	lastMethod    string
	stats         CastStats
}

func NewRay(opts RayOptions) *Ray {

	rayRange := opts.Range
	switch {
	case rayRange == 0:
		rayRange = UnlimitedRange
	case rayRange < 0:
		utils.DebugWith("raycaster", "negative range clamped to 0", utils.Context{"range": opts.Range})
		rayRange = 0
	}

	collisionRange := opts.CollisionRange
	if collisionRange < 0 {
		utils.DebugWith("raycaster", "negative collisionRange clamped to 0", utils.Context{"collisionRange": opts.CollisionRange})
		collisionRange = 0
	}

	detectionRange := opts.DetectionRange
	if detectionRange < 0 {
		utils.DebugWith("raycaster", "negative detectionRange clamped to 0", utils.Context{"detectionRange": opts.DetectionRange})
		detectionRange = 0
	}

	return &Ray{
		origin:                   opts.Origin,
		angle:                    trigo.NormalizeFullCircleAngle(opts.Angle),
		cone:                     clampConeAngle(opts.Cone),
		rayRange:                 rayRange,
		collisionRange:           collisionRange,
		detectionRange:           detectionRange,
		ignoreNotIntersectedRays: opts.IgnoreNotIntersectedRays,
		round:                    opts.Round,
		autoSlice:                opts.AutoSlice,
	}
}

func clampConeAngle(cone float64) float64 {
	if cone < 0 {
		utils.DebugWith("raycaster", "negative cone clamped to 0", utils.Context{"cone": cone})
		return 0
	}

	if cone > 2*math.Pi {
		utils.DebugWith("raycaster", "cone wider than full circle clamped to 2π", utils.Context{"cone": cone})
		return 2 * math.Pi
	}

	return cone
}

func (ray *Ray) Origin() vector.Vector2 {
	return ray.origin
}

func (ray *Ray) SetOrigin(origin vector.Vector2) {
	ray.origin = origin
}

func (ray *Ray) Angle() float64 {
	return ray.angle
}

func (ray *Ray) SetAngle(angle float64) {
	ray.angle = trigo.NormalizeFullCircleAngle(angle)
}

func (ray *Ray) Cone() float64 {
	return ray.cone
}

func (ray *Ray) SetCone(cone float64) {
	ray.cone = clampConeAngle(cone)
}

func (ray *Ray) Range() float64 {
	return ray.rayRange
}

func (ray *Ray) CollisionRange() float64 {
	return ray.collisionRange
}

func (ray *Ray) DetectionRange() float64 {
	return ray.detectionRange
}

// Stats describes the work done by the last Cast/CastCone/CastCircle.
func (ray *Ray) Stats() CastStats {
	return ray.stats
}

// Intersections returns the results of the last cast, in casting order.
func (ray *Ray) Intersections() []Intersection {
	return ray.intersections
}

func (ray *Ray) SetOnCollide(fn func(obj *MappedObject, point vector.Vector2)) {
	ray.onCollide = fn
}

func (ray *Ray) SetOnCollideEnd(fn func(obj *MappedObject)) {
	ray.onCollideEnd = fn
}

// EmitCollide is invoked by physics adapters when the ray starts touching an
// object; the core never calls it on its own.
func (ray *Ray) EmitCollide(obj *MappedObject, point vector.Vector2) {
	if ray.onCollide != nil {
		ray.onCollide(obj, point)
	}
}

func (ray *Ray) EmitCollideEnd(obj *MappedObject) {
	if ray.onCollideEnd != nil {
		ray.onCollideEnd(obj)
	}
}

// Cast tests the ray against the given targets and returns the nearest
// intersection. The second return value is false when there is nothing to
// report: degenerate ray, or a miss under IgnoreNotIntersectedRays.
func (ray *Ray) Cast(targets []*MappedObject) (Intersection, bool) {
	begin := time.Now()

	ray.stats = CastStats{Method: methodCast, Rays: 1}
	ray.lastMethod = methodCast
	ray.slices = nil

	res, found := ray.castSingle(targets, ray.angle)

	if found {
		ray.intersections = []Intersection{res}
	} else {
		ray.intersections = nil
	}

	ray.stats.Time = number.DiffMs(time.Now(), begin)

	return res, found
}

// castSingle runs one ray at the given angle against the targets, in the
// order given; equidistant hits go to the earliest target.
func (ray *Ray) castSingle(targets []*MappedObject, angle float64) (Intersection, bool) {
	if ray.rayRange <= 0 {
		return Intersection{}, false
	}

	direction := vector.MakeVector2(1, 0).SetAngle(angle)
	end := ray.origin.Add(direction.MultScalar(ray.rayRange))

	var detection vector.Circle2
	hasDetection := ray.detectionRange > 0
	if hasDetection {
		detection = vector.MakeCircle2(ray.origin, ray.detectionRange)
	}

	best := Intersection{}
	bestDistSq := math.MaxFloat64
	found := false

	for _, obj := range targets {
		if obj == nil || !obj.active {
			continue
		}

		if hasDetection && !detection.OverlapsRect(obj.boundingBox) {
			continue
		}

		ray.stats.TestedMappedObjects++

		hitObject := false

		if obj.circleApprox {
			circle := obj.circle
			if circle.GetRadius() <= 0 {
				continue
			}

			for _, point := range trigo.LineCircleIntersectionPoints(ray.origin, end, circle.GetCenter(), circle.GetRadius()) {
				// the intersection is on the infinite line; keep it only
				// when it falls on the ray segment
				along := point.Sub(ray.origin).Dot(direction)
				if along < 0 || along > ray.rayRange {
					continue
				}

				hitObject = true

				distSq := point.Sub(ray.origin).MagSq()
				if distSq < bestDistSq {
					bestDistSq = distSq
					best = Intersection{Point: point, Angle: angle, Object: obj, Hit: true}
					found = true
				}
			}
		} else {
			// cheap slab test before walking the segments; the bounding box
			// contains them all
			if !trigo.SegmentIntersectsRect(ray.origin, end, obj.boundingBox) {
				continue
			}

			for _, segment := range obj.segments {
				ray.stats.Segments++

				segA, segB := segment.Get()
				point, intersects, colinear, _ := trigo.IntersectionWithLineSegment(ray.origin, end, segA, segB)
				if !intersects || colinear {
					continue
				}

				hitObject = true

				distSq := point.Sub(ray.origin).MagSq()
				if distSq < bestDistSq {
					bestDistSq = distSq
					best = Intersection{Point: point, Angle: angle, Object: obj, Segment: segment, Hit: true}
					found = true
				}
			}
		}

		if hitObject {
			ray.stats.HitMappedObjects++
		}
	}

	if !found {
		if ray.ignoreNotIntersectedRays {
			return Intersection{}, false
		}

		// the ray reports its maximum reach even on miss
		miss := Intersection{Point: end, Distance: ray.rayRange, Angle: angle}
		if ray.round {
			miss.Point = roundPoint(miss.Point)
		}

		return miss, true
	}

	best.Distance = math.Sqrt(bestDistSq)

	// the ray sees farther than collisionRange but collides only up to it
	if ray.collisionRange > 0 && best.Distance > ray.collisionRange {
		best.Point = ray.origin.Add(direction.MultScalar(ray.collisionRange))
		best.Distance = ray.collisionRange
	}

	if ray.round {
		best.Point = roundPoint(best.Point)
	}

	return best, true
}

func roundPoint(p vector.Vector2) vector.Vector2 {
	return vector.MakeVector2(math.Round(p.GetX()), math.Round(p.GetY()))
}
