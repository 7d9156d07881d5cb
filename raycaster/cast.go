package raycaster

import (
	"math"
	"time"

	"github.com/theblacknight/raycast2d/common/utils"
	"github.com/theblacknight/raycast2d/common/utils/number"
	"github.com/theblacknight/raycast2d/common/utils/trigo"
)

// CastCone distributes rayCount rays evenly across coneAngle, centered on
// the ray's base angle, and returns the results in fan order. Rays that miss
// are omitted under IgnoreNotIntersectedRays; a zero cone collapses to a
// single ray.
func (ray *Ray) CastCone(targets []*MappedObject, coneAngle float64, rayCount int) []Intersection {
	begin := time.Now()

	coneAngle = clampConeAngle(coneAngle)
	rayCount = clampRayCount(rayCount)

	if coneAngle == 0 {
		rayCount = 1
	}

	ray.stats = CastStats{Method: methodCastCone, Rays: rayCount}
	ray.lastMethod = methodCastCone
	ray.intersections = make([]Intersection, 0, rayCount)

	for i := 0; i < rayCount; i++ {
		angle := ray.angle
		if rayCount > 1 {
			step := coneAngle / float64(rayCount-1)
			angle = ray.angle - coneAngle/2 + float64(i)*step
		}

		if res, found := ray.castSingle(targets, trigo.NormalizeFullCircleAngle(angle)); found {
			ray.intersections = append(ray.intersections, res)
		}
	}

	ray.finishMultiCast(begin)

	return ray.intersections
}

// CastCircle distributes rayCount rays over the full circle, starting at the
// ray's base angle. The angle 2π is the angle 0 again and is not cast twice.
func (ray *Ray) CastCircle(targets []*MappedObject, rayCount int) []Intersection {
	begin := time.Now()

	rayCount = clampRayCount(rayCount)

	ray.stats = CastStats{Method: methodCastCircle, Rays: rayCount}
	ray.lastMethod = methodCastCircle
	ray.intersections = make([]Intersection, 0, rayCount)

	step := 2 * math.Pi / float64(rayCount)

	for i := 0; i < rayCount; i++ {
		angle := trigo.NormalizeFullCircleAngle(ray.angle + float64(i)*step)

		if res, found := ray.castSingle(targets, angle); found {
			ray.intersections = append(ray.intersections, res)
		}
	}

	ray.finishMultiCast(begin)

	return ray.intersections
}

func (ray *Ray) finishMultiCast(begin time.Time) {
	if ray.autoSlice {
		ray.slices = ray.Slice()
	} else {
		ray.slices = nil
	}

	ray.stats.Time = number.DiffMs(time.Now(), begin)
}

func clampRayCount(rayCount int) int {
	if rayCount < 1 {
		utils.DebugWith("raycaster", "rayCount clamped to 1", utils.Context{"rayCount": rayCount})
		return 1
	}

	return rayCount
}
