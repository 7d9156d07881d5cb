package visibility2d

import (
	"math"
	"sort"

	"github.com/theblacknight/raycast2d/common/utils/vector"
)

func getTrianglePoints(origin Point, angle1, angle2 float64, segment *Segment) [2]Point {

	cosAngle1 := math.Cos(angle1)
	sinAngle1 := math.Sin(angle1)

	cosAngle2 := math.Cos(angle2)
	sinAngle2 := math.Sin(angle2)

	p1 := origin
	p2 := MakePoint(origin.X+cosAngle1, origin.Y+sinAngle1)
	p3 := MakePoint(0, 0)
	p4 := MakePoint(0, 0)

	if segment != nil {
		p3.X = segment.p1.X
		p3.Y = segment.p1.Y
		p4.X = segment.p2.X
		p4.Y = segment.p2.Y
	} else {
		p3.X = origin.X + cosAngle1*200
		p3.Y = origin.Y + sinAngle1*200
		p4.X = origin.X + cosAngle2*200
		p4.Y = origin.Y + sinAngle2*200
	}

	pBegin := lineIntersection(p3, p4, p1, p2)

	p2.X = origin.X + cosAngle2
	p2.Y = origin.Y + sinAngle2

	pEnd := lineIntersection(p3, p4, p1, p2)

	return [2]Point{pBegin, pEnd}
}

// Visible is the part of a wall reached by light, along with the complete
// wall it was cut from.
type Visible struct {
	Visible  vector.Segment2
	Complete vector.Segment2
	Userdata interface{}
}

// CalculateVisibility runs an angular sweep around the origin and returns the
// visible parts of the given walls, ordered by angle. Walls must not cross
// each other; see BreakIntersections.
func CalculateVisibility(origin vector.Vector2, segments []*Segment) []Visible {
	openSegments := make([]*Segment, 0)
	output := make([]Visible, 0)
	beginAngle := 0.0

	pov := MakePoint(origin.GetX(), origin.GetY())

	endpoints := endpointsFromSegments(pov, segments)
	sort.Sort(ByEndpoint(endpoints))

	// Two passes over the sorted endpoints: the first leaves the open list in
	// its wrapped-around state, the second emits the visible parts.
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < len(endpoints); i++ {
			endpoint := endpoints[i]
			var openSegment *Segment
			if len(openSegments) > 0 {
				openSegment = openSegments[0]
			}
			rootchanged := false

			if endpoint.beginsSegment {
				index := 0
				var segment *Segment
				if len(openSegments) > 0 {
					segment = openSegments[index]
				}
				for segment != nil && segmentInFrontOf(endpoint.segment, segment, pov) {
					index++
					if index < len(openSegments) {
						segment = openSegments[index]
					} else {
						segment = nil
					}
				}

				if segment == nil {
					openSegments = append(openSegments, endpoint.segment)
					if len(openSegments) == 1 {
						rootchanged = true
					}
				} else {
					openSegments = append(openSegments, nil)
					copy(openSegments[index+1:], openSegments[index:])
					openSegments[index] = endpoint.segment
					if index == 0 {
						rootchanged = true
					}
				}
			} else {
				index := -1
				for j, seg := range openSegments {
					if seg == endpoint.segment {
						index = j
						break
					}
				}

				if index > -1 {
					copy(openSegments[index:], openSegments[index+1:])
					openSegments[len(openSegments)-1] = nil
					openSegments = openSegments[:len(openSegments)-1]
					if index == 0 {
						rootchanged = true
					}
				}
			}

			if rootchanged {
				if pass == 1 {
					if openSegment != nil {
						trianglePoints := getTrianglePoints(pov, beginAngle, endpoint.angle, openSegment)
						output = append(output, Visible{
							Visible: vector.MakeSegment2(
								vector.MakeVector2(trianglePoints[0].X, trianglePoints[0].Y),
								vector.MakeVector2(trianglePoints[1].X, trianglePoints[1].Y),
							),
							Complete: openSegment.Segment2(),
							Userdata: openSegment.userdata,
						})
					}
				}
				beginAngle = endpoint.angle
			}
		}
	}

	// remove visible segments whose length is shorter than a iota
	res := make([]Visible, 0)
	for _, visible := range output {
		if visible.Visible.LengthSq() > 0.001 {
			res = append(res, visible)
		}
	}

	return res
}
