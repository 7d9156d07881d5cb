package vector

import "github.com/theblacknight/raycast2d/common/utils/number"

type Circle2 struct {
	center Vector2
	radius float64
}

func MakeCircle2(center Vector2, radius float64) Circle2 {
	return Circle2{center, radius}
}

func (c Circle2) GetCenter() Vector2 {
	return c.center
}

func (c Circle2) GetRadius() float64 {
	return c.radius
}

// ContainsPoint reports whether the point lies in the disk; the boundary
// counts as inside.
func (c Circle2) ContainsPoint(p Vector2) bool {
	return p.Sub(c.center).MagSq() <= c.radius*c.radius
}

// OverlapsRect reports whether the disk and the rectangle share at least one
// point, by clamping the center onto the rectangle.
func (c Circle2) OverlapsRect(r Rect2) bool {
	closest := r.ClosestPointTo(c.center)
	return closest.Sub(c.center).MagSq() <= c.radius*c.radius
}

func (c Circle2) BoundingRect() Rect2 {
	return MakeRect2(
		c.center.SubScalar(c.radius),
		c.center.AddScalar(c.radius),
	)
}

func (c Circle2) String() string {
	return "<Circle2(" + c.center.String() + ", r=" + number.FloatToStr(c.radius, 5) + ")>"
}
