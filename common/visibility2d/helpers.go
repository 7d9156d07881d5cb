package visibility2d

import (
	"math"
)

// endpointsFromSegments computes each wall's sweep metadata relative to the
// light source and returns the flattened endpoint list, ready to be sorted.
func endpointsFromSegments(pov Point, walls []*Segment) []*EndPoint {
	endpoints := make([]*EndPoint, 0, len(walls)*2)

	for _, wall := range walls {
		orientWall(pov, wall)
		endpoints = append(endpoints, wall.p1, wall.p2)
	}

	return endpoints
}

// orientWall stores the angle of both endpoints as seen from the light source
// and marks the endpoint that begins the wall in sweep order.
func orientWall(lightSource Point, wall *Segment) {
	dx := 0.5*(wall.p1.X+wall.p2.X) - lightSource.X
	dy := 0.5*(wall.p1.Y+wall.p2.Y) - lightSource.Y

	wall.d = (dx * dx) + (dy * dy)
	wall.p1.angle = math.Atan2(wall.p1.Y-lightSource.Y, wall.p1.X-lightSource.X)
	wall.p2.angle = math.Atan2(wall.p2.Y-lightSource.Y, wall.p2.X-lightSource.X)

	dAngle := wall.p2.angle - wall.p1.angle
	if dAngle <= -math.Pi {
		dAngle += 2 * math.Pi
	}
	if dAngle > math.Pi {
		dAngle -= 2 * math.Pi
	}

	wall.p1.beginsSegment = dAngle > 0
	wall.p2.beginsSegment = !wall.p1.beginsSegment
}

func lineIntersection(point1, point2, point3, point4 Point) Point {
	s := ((point4.X-point3.X)*(point1.Y-point3.Y) - (point4.Y-point3.Y)*(point1.X-point3.X)) /
		((point4.Y-point3.Y)*(point2.X-point1.X) - (point4.X-point3.X)*(point2.Y-point1.Y))

	return MakePoint(
		point1.X+s*(point2.X-point1.X),
		point1.Y+s*(point2.Y-point1.Y),
	)
}
