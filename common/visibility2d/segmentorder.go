package visibility2d

func leftOf(segment *Segment, point Point) bool {
	cross := (segment.p2.X-segment.p1.X)*(point.Y-segment.p1.Y) -
		(segment.p2.Y-segment.p1.Y)*(point.X-segment.p1.X)
	return cross < 0
}

func pointBetween(pointA *EndPoint, pointB *EndPoint, f float64) Point {
	return Point{
		pointA.X*(1-f) + pointB.X*f,
		pointA.Y*(1-f) + pointB.Y*f,
	}
}

// segmentInFrontOf reports whether wall A hides wall B from the viewpoint.
// Walls may not cross, but they may share endpoints; the side tests sample a
// little inside each wall so shared corners do not tie.
func segmentInFrontOf(segmentA, segmentB *Segment, viewpoint Point) bool {
	aNear := leftOf(segmentB, pointBetween(segmentA.p1, segmentA.p2, 0.01))
	aFar := leftOf(segmentB, pointBetween(segmentA.p2, segmentA.p1, 0.01))
	viewSideOfB := leftOf(segmentB, viewpoint)

	bNear := leftOf(segmentA, pointBetween(segmentB.p1, segmentB.p2, 0.01))
	bFar := leftOf(segmentA, pointBetween(segmentB.p2, segmentB.p1, 0.01))
	viewSideOfA := leftOf(segmentA, viewpoint)

	if aNear == aFar && aFar != viewSideOfB {
		return true
	}

	if bNear == bFar && bFar == viewSideOfA {
		return true
	}

	if bNear == bFar && bFar != viewSideOfA {
		return false
	}

	if aNear == aFar && aFar == viewSideOfB {
		return false
	}

	return false
}
