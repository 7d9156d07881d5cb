package vector

import "math"

// Rect2 is an axis-aligned rectangle held as normalized min/max corners.
type Rect2 struct {
	min Vector2
	max Vector2
}

func MakeRect2(a Vector2, b Vector2) Rect2 {
	return Rect2{
		min: MakeVector2(math.Min(a.GetX(), b.GetX()), math.Min(a.GetY(), b.GetY())),
		max: MakeVector2(math.Max(a.GetX(), b.GetX()), math.Max(a.GetY(), b.GetY())),
	}
}

func MakeRect2FromSize(pos Vector2, width float64, height float64) Rect2 {
	return MakeRect2(pos, pos.Add(MakeVector2(width, height)))
}

func MakeRect2FromPoints(points ...Vector2) Rect2 {
	if len(points) == 0 {
		return Rect2{}
	}

	res := MakeRect2(points[0], points[0])
	for _, p := range points[1:] {
		res = res.ExtendPoint(p)
	}

	return res
}

func (r Rect2) GetMin() Vector2 {
	return r.min
}

func (r Rect2) GetMax() Vector2 {
	return r.max
}

func (r Rect2) Width() float64 {
	return r.max.GetX() - r.min.GetX()
}

func (r Rect2) Height() float64 {
	return r.max.GetY() - r.min.GetY()
}

func (r Rect2) Center() Vector2 {
	return r.min.Add(r.max).MultScalar(0.5)
}

// ContainsPoint reports whether the point lies in the rectangle; edges count
// as inside.
func (r Rect2) ContainsPoint(p Vector2) bool {
	return p.GetX() >= r.min.GetX() && p.GetX() <= r.max.GetX() &&
		p.GetY() >= r.min.GetY() && p.GetY() <= r.max.GetY()
}

// ClosestPointTo clamps the given point onto the rectangle.
func (r Rect2) ClosestPointTo(p Vector2) Vector2 {
	return MakeVector2(
		math.Max(r.min.GetX(), math.Min(p.GetX(), r.max.GetX())),
		math.Max(r.min.GetY(), math.Min(p.GetY(), r.max.GetY())),
	)
}

func (r Rect2) Overlaps(other Rect2) bool {
	return r.min.GetX() <= other.max.GetX() && r.max.GetX() >= other.min.GetX() &&
		r.min.GetY() <= other.max.GetY() && r.max.GetY() >= other.min.GetY()
}

func (r Rect2) ExtendPoint(p Vector2) Rect2 {
	r.min = MakeVector2(math.Min(r.min.GetX(), p.GetX()), math.Min(r.min.GetY(), p.GetY()))
	r.max = MakeVector2(math.Max(r.max.GetX(), p.GetX()), math.Max(r.max.GetY(), p.GetY()))
	return r
}

func (r Rect2) Extend(other Rect2) Rect2 {
	return r.ExtendPoint(other.min).ExtendPoint(other.max)
}

// Corners returns the corners counterclockwise, starting at min.
func (r Rect2) Corners() [4]Vector2 {
	return [4]Vector2{
		r.min,
		MakeVector2(r.max.GetX(), r.min.GetY()),
		r.max,
		MakeVector2(r.min.GetX(), r.max.GetY()),
	}
}

// Edges returns the four sides counterclockwise, starting at min.
func (r Rect2) Edges() [4]Segment2 {
	corners := r.Corners()
	return [4]Segment2{
		MakeSegment2(corners[0], corners[1]),
		MakeSegment2(corners[1], corners[2]),
		MakeSegment2(corners[2], corners[3]),
		MakeSegment2(corners[3], corners[0]),
	}
}

func (r Rect2) String() string {
	return "<Rect2(" + r.min.String() + " => " + r.max.String() + ")>"
}
