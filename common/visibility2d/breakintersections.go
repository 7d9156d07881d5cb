package visibility2d

import (
	"math"
)

const epsilon = 0.1

func pointDistanceSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func pointsEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func intersectLines(a1, a2, b1, b2 Point) (p Point, intersects bool) {
	var dbx = b2.X - b1.X
	var dby = b2.Y - b1.Y
	var dax = a2.X - a1.X
	var day = a2.Y - a1.Y

	var uB = dby*dax - dbx*day
	if uB != 0 {
		var ua = (dbx*(a1.Y-b1.Y) - dby*(a1.X-b1.X)) / uB
		return MakePoint(a1.X-ua*-dax, a1.Y-ua*-day), true
	}

	return Point{}, false
}

func isOnSegment(xi, yi, xj, yj, xk, yk float64) bool {
	return (xi <= xk || xj <= xk) && (xk <= xi || xk <= xj) &&
		(yi <= yk || yj <= yk) && (yk <= yi || yk <= yj)
}

func computeDirection(xi, yi, xj, yj, xk, yk float64) int {
	var a = (xk - xi) * (yj - yi)
	var b = (xj - xi) * (yk - yi)
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

func doLineSegmentsIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	var d1 = computeDirection(x3, y3, x4, y4, x1, y1)
	var d2 = computeDirection(x3, y3, x4, y4, x2, y2)
	var d3 = computeDirection(x1, y1, x2, y2, x3, y3)
	var d4 = computeDirection(x1, y1, x2, y2, x4, y4)
	return (((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))) ||
		(d1 == 0 && isOnSegment(x3, y3, x4, y4, x1, y1)) ||
		(d2 == 0 && isOnSegment(x3, y3, x4, y4, x2, y2)) ||
		(d3 == 0 && isOnSegment(x1, y1, x2, y2, x3, y3)) ||
		(d4 == 0 && isOnSegment(x1, y1, x2, y2, x4, y4))
}

// BreakIntersections splits crossing walls at their intersection points, so
// that the sweep never has to deal with two walls crossing each other.
func BreakIntersections(segments []*Segment) []*Segment {
	output := make([]*Segment, 0)

	for i := 0; i < len(segments); i++ {
		intersections := make([]Point, 0)

		for j := 0; j < len(segments); j++ {

			if i == j {
				continue
			}

			if doLineSegmentsIntersect(
				segments[i].p1.X, segments[i].p1.Y, segments[i].p2.X, segments[i].p2.Y,
				segments[j].p1.X, segments[j].p1.Y, segments[j].p2.X, segments[j].p2.Y,
			) {
				if intersectPoint, intersects := intersectLines(segments[i].p1.Point, segments[i].p2.Point, segments[j].p1.Point, segments[j].p2.Point); intersects {
					if pointsEqual(intersectPoint, segments[i].p1.Point) || pointsEqual(intersectPoint, segments[i].p2.Point) {
						continue
					}

					intersections = append(intersections, intersectPoint)
				}
			}
		}

		start := segments[i].p1.Point

		for len(intersections) > 0 {

			var endIndex = 0
			var endDis = pointDistanceSq(start, intersections[0])

			for j := 1; j < len(intersections); j++ {
				var dis = pointDistanceSq(start, intersections[j])
				if dis < endDis {
					endDis = dis
					endIndex = j
				}
			}

			output = append(output, NewSegment(
				start.X, start.Y,
				intersections[endIndex].X, intersections[endIndex].Y,
				segments[i].userdata,
			))
			start = intersections[endIndex]
			intersections = append(intersections[:endIndex], intersections[endIndex+1:]...)
		}

		output = append(output, NewSegment(
			start.X, start.Y,
			segments[i].p2.X, segments[i].p2.Y,
			segments[i].userdata,
		))
	}

	return output
}
