package raycaster

import (
	"github.com/theblacknight/raycast2d/common/utils/vector"
)

// Source is the geometry provider behind a mapped object. The registry
// re-reads it on every map update, so a source held by a dynamic object may
// move between ticks.
type Source interface {
	ShapeKind() _shapekind
}

// PolygonSource describes a closed simple polygon; the contour must not
// repeat the first point at the end.
type PolygonSource interface {
	Source
	PolygonPoints() []vector.Vector2
}

type CircleSource interface {
	Source
	Circle() vector.Circle2
}

type RectangleSource interface {
	Source
	Rectangle() vector.Rect2
}

// PolylineSource describes an open chain of points.
type PolylineSource interface {
	Source
	PolylinePoints() []vector.Vector2
}

// Polygon is a mutable closed contour.
type Polygon struct {
	points []vector.Vector2
}

func NewPolygon(points []vector.Vector2) *Polygon {
	return &Polygon{points: points}
}

func (p *Polygon) ShapeKind() _shapekind {
	return ShapeKind.Polygon
}

func (p *Polygon) PolygonPoints() []vector.Vector2 {
	return p.points
}

func (p *Polygon) SetPoints(points []vector.Vector2) {
	p.points = points
}

func (p *Polygon) Translate(translation vector.Vector2) {
	for i, point := range p.points {
		p.points[i] = point.Add(translation)
	}
}

// Circle is a mutable disk.
type Circle struct {
	center vector.Vector2
	radius float64
}

func NewCircle(center vector.Vector2, radius float64) *Circle {
	return &Circle{center: center, radius: radius}
}

func (c *Circle) ShapeKind() _shapekind {
	return ShapeKind.Circle
}

func (c *Circle) Circle() vector.Circle2 {
	return vector.MakeCircle2(c.center, c.radius)
}

func (c *Circle) SetCenter(center vector.Vector2) {
	c.center = center
}

func (c *Circle) SetRadius(radius float64) {
	c.radius = radius
}

func (c *Circle) Translate(translation vector.Vector2) {
	c.center = c.center.Add(translation)
}

// Rectangle is a mutable axis-aligned rectangle.
type Rectangle struct {
	pos    vector.Vector2
	width  float64
	height float64
}

func NewRectangle(pos vector.Vector2, width float64, height float64) *Rectangle {
	return &Rectangle{pos: pos, width: width, height: height}
}

func (r *Rectangle) ShapeKind() _shapekind {
	return ShapeKind.Rectangle
}

func (r *Rectangle) Rectangle() vector.Rect2 {
	return vector.MakeRect2FromSize(r.pos, r.width, r.height)
}

func (r *Rectangle) SetPosition(pos vector.Vector2) {
	r.pos = pos
}

func (r *Rectangle) SetSize(width float64, height float64) {
	r.width = width
	r.height = height
}

func (r *Rectangle) Translate(translation vector.Vector2) {
	r.pos = r.pos.Add(translation)
}

// Line is a mutable open polyline; a two point polyline is a plain segment.
type Line struct {
	points []vector.Vector2
}

func NewLine(a vector.Vector2, b vector.Vector2) *Line {
	return &Line{points: []vector.Vector2{a, b}}
}

func NewPolyline(points []vector.Vector2) *Line {
	return &Line{points: points}
}

func (l *Line) ShapeKind() _shapekind {
	return ShapeKind.Line
}

func (l *Line) PolylinePoints() []vector.Vector2 {
	return l.points
}

func (l *Line) SetPoints(points []vector.Vector2) {
	l.points = points
}

func (l *Line) Translate(translation vector.Vector2) {
	for i, point := range l.points {
		l.points[i] = point.Add(translation)
	}
}
