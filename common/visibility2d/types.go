package visibility2d

import (
	"github.com/theblacknight/raycast2d/common/utils/vector"
)

type Point struct {
	X, Y float64
}

func MakePoint(x, y float64) Point {
	return Point{
		x, y,
	}
}

type EndPoint struct {
	Point
	beginsSegment bool
	segment       *Segment
	angle         float64
}

func NewEndPoint(x, y float64) *EndPoint {
	return &EndPoint{
		Point:         MakePoint(x, y),
		beginsSegment: false,
		segment:       nil,
		angle:         0,
	}
}

// ByEndpoint orders endpoints by angle; at equal angles, begin points come
// before end points so a wall starting where another stops leaves no gap.
type ByEndpoint []*EndPoint

func (coll ByEndpoint) Len() int      { return len(coll) }
func (coll ByEndpoint) Swap(i, j int) { coll[i], coll[j] = coll[j], coll[i] }
func (coll ByEndpoint) Less(i, j int) bool {
	a, b := coll[i], coll[j]
	if a.angle != b.angle {
		return a.angle < b.angle
	}

	return a.beginsSegment && !b.beginsSegment
}

type Segment struct {
	p1       *EndPoint
	p2       *EndPoint
	d        float64
	userdata interface{}
}

func NewSegment(x1, y1, x2, y2 float64, userdata interface{}) *Segment {

	p1 := NewEndPoint(x1, y1)
	p2 := NewEndPoint(x2, y2)
	segment := &Segment{
		p1:       p1,
		p2:       p2,
		d:        0,
		userdata: userdata,
	}

	p1.segment = segment
	p2.segment = segment

	return segment
}

func NewSegmentFromSegment2(seg vector.Segment2, userdata interface{}) *Segment {
	a, b := seg.Get()
	return NewSegment(a.GetX(), a.GetY(), b.GetX(), b.GetY(), userdata)
}

func (s Segment) Segment2() vector.Segment2 {
	return vector.MakeSegment2(
		vector.MakeVector2(s.p1.X, s.p1.Y),
		vector.MakeVector2(s.p2.X, s.p2.Y),
	)
}
