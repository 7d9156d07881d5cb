package raycaster

import (
	polyclip "github.com/akavel/polyclip-go"

	"github.com/theblacknight/raycast2d/common/utils/vector"
)

// Slice fans triangles from the ray origin through consecutive intersection
// pairs of the last cast. Full circle casts close the fan, cones stay open.
// Yields nothing unless AutoSlice is configured and the last cast produced
// at least two intersections.
func (ray *Ray) Slice() []vector.Triangle2 {
	if !ray.autoSlice || len(ray.intersections) < 2 {
		return []vector.Triangle2{}
	}

	res := make([]vector.Triangle2, 0, len(ray.intersections))

	for i := 0; i+1 < len(ray.intersections); i++ {
		res = append(res, vector.MakeTriangle2(ray.origin, ray.intersections[i].Point, ray.intersections[i+1].Point))
	}

	if ray.lastMethod == methodCastCircle && len(ray.intersections) > 2 {
		res = append(res, vector.MakeTriangle2(
			ray.origin,
			ray.intersections[len(ray.intersections)-1].Point,
			ray.intersections[0].Point,
		))
	}

	return res
}

// Slices returns the triangles stored by the last cast under AutoSlice.
func (ray *Ray) Slices() []vector.Triangle2 {
	return ray.slices
}

// VisibilityPolygon returns the vertex list of the polygon described by the
// last cast: cones fan out from the origin, full circles close on
// themselves.
func (ray *Ray) VisibilityPolygon() []vector.Vector2 {
	if len(ray.intersections) == 0 {
		return nil
	}

	res := make([]vector.Vector2, 0, len(ray.intersections)+1)

	if ray.lastMethod != methodCastCircle {
		res = append(res, ray.origin)
	}

	for _, intersection := range ray.intersections {
		res = append(res, intersection.Point)
	}

	return res
}

// ClipPolygon intersects a polygon with an axis-aligned rectangle and
// returns the clipped contour, or nil when nothing remains.
func ClipPolygon(polygon []vector.Vector2, bounds vector.Rect2) []vector.Vector2 {
	if len(polygon) < 3 {
		return nil
	}

	subjectContour := make(polyclip.Contour, len(polygon))
	for i, p := range polygon {
		subjectContour[i] = polyclip.Point{X: p.GetX(), Y: p.GetY()}
	}

	corners := bounds.Corners()
	clippingContour := make(polyclip.Contour, len(corners))
	for i, p := range corners {
		clippingContour[i] = polyclip.Point{X: p.GetX(), Y: p.GetY()}
	}

	subject := polyclip.Polygon{subjectContour}
	clipping := polyclip.Polygon{clippingContour}

	result := subject.Construct(polyclip.INTERSECTION, clipping)
	if len(result) == 0 || len(result[0]) < 3 {
		return nil
	}

	res := make([]vector.Vector2, len(result[0]))
	for i, p := range result[0] {
		res[i] = vector.MakeVector2(p.X, p.Y)
	}

	return res
}
