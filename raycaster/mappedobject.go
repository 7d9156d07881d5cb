package raycaster

import (
	"github.com/dhconnelly/rtreego"
	poly2tri "github.com/netgusto/poly2tri-go"
	uuid "github.com/satori/go.uuid"

	"github.com/theblacknight/raycast2d/common/utils"
	"github.com/theblacknight/raycast2d/common/utils/vector"
)

// MappedObject wraps one source shape as a uniform collection of testable
// points and segments. Derived caches (points, segments, mesh, bounding box)
// are always recomputed together by updateMap, never one without the others.
type MappedObject struct {
	id     uuid.UUID
	source Source
	kind   _shapekind

	active       bool
	dynamic      bool
	circleApprox bool

	circle      vector.Circle2
	points      []vector.Vector2
	segments    []vector.Segment2
	mesh        []vector.Triangle2
	boundingBox vector.Rect2

	rtreeRect *rtreego.Rect
}

func newMappedObject(source Source) *MappedObject {
	return &MappedObject{
		id:     uuid.NewV4(),
		source: source,
		kind:   source.ShapeKind(),
		active: true,
	}
}

func (obj *MappedObject) Id() uuid.UUID {
	return obj.id
}

func (obj *MappedObject) Kind() _shapekind {
	return obj.kind
}

func (obj *MappedObject) Source() Source {
	return obj.source
}

func (obj *MappedObject) IsActive() bool {
	return obj.active
}

func (obj *MappedObject) SetActive(active bool) {
	obj.active = active
}

func (obj *MappedObject) IsDynamic() bool {
	return obj.dynamic
}

// IsCircleApprox reports whether ray tests against this object take the
// analytic circle path instead of walking segments.
func (obj *MappedObject) IsCircleApprox() bool {
	return obj.circleApprox
}

func (obj *MappedObject) Circle() vector.Circle2 {
	return obj.circle
}

func (obj *MappedObject) Points() []vector.Vector2 {
	return obj.points
}

func (obj *MappedObject) Segments() []vector.Segment2 {
	return obj.segments
}

// Mesh returns the triangulated interior for polygon and rectangle kinds;
// empty for circles and polylines.
func (obj *MappedObject) Mesh() []vector.Triangle2 {
	return obj.mesh
}

func (obj *MappedObject) BoundingBox() vector.Rect2 {
	return obj.boundingBox
}

func (obj *MappedObject) Bounds() *rtreego.Rect {
	return obj.rtreeRect
}

// updateMap re-reads the source shape and recomputes every derived cache.
// Degenerate sources (no points, zero radius) yield empty caches and a zero
// area bounding box; they are universal misses, never errors.
func (obj *MappedObject) updateMap() *MappedObject {
	obj.circleApprox = false
	obj.circle = vector.Circle2{}
	obj.points = nil
	obj.segments = nil
	obj.mesh = nil
	obj.boundingBox = vector.Rect2{}

	switch obj.kind {
	case ShapeKind.Polygon:
		if source, ok := obj.source.(PolygonSource); ok {
			obj.derivePolygon(source.PolygonPoints(), true)
			obj.mesh = triangulateContour(obj.points)
		}

	case ShapeKind.Circle:
		if source, ok := obj.source.(CircleSource); ok {
			obj.circle = source.Circle()
			obj.circleApprox = true
			obj.points = []vector.Vector2{obj.circle.GetCenter()}
			obj.segments = []vector.Segment2{}
			obj.boundingBox = obj.circle.BoundingRect()
		}

	case ShapeKind.Rectangle:
		if source, ok := obj.source.(RectangleSource); ok {
			rect := source.Rectangle()
			corners := rect.Corners()
			obj.derivePolygon(corners[:], true)

			min := rect.GetMin()
			max := rect.GetMax()
			obj.mesh = []vector.Triangle2{
				vector.MakeTriangle2(min, vector.MakeVector2(max.GetX(), min.GetY()), max),
				vector.MakeTriangle2(min, max, vector.MakeVector2(min.GetX(), max.GetY())),
			}
		}

	case ShapeKind.Line:
		if source, ok := obj.source.(PolylineSource); ok {
			obj.derivePolygon(source.PolylinePoints(), false)
		}
	}

	obj.rtreeRect = rtreeRectFor(obj.boundingBox)

	return obj
}

// derivePolygon fills points, segments and the bounding box from an ordered
// contour; closed contours get a wrap-around segment.
func (obj *MappedObject) derivePolygon(points []vector.Vector2, closed bool) {
	obj.points = make([]vector.Vector2, len(points))
	copy(obj.points, points)

	obj.segments = make([]vector.Segment2, 0, len(points))

	for i := 0; i+1 < len(points); i++ {
		obj.segments = append(obj.segments, vector.MakeSegment2(points[i], points[i+1]))
	}

	if closed && len(points) > 1 {
		obj.segments = append(obj.segments, vector.MakeSegment2(points[len(points)-1], points[0]))
	}

	if len(points) > 0 {
		obj.boundingBox = vector.MakeRect2FromPoints(points...)
	}
}

// destroy clears the caches and deactivates the object, so that further
// casting calls ignore it.
func (obj *MappedObject) destroy() {
	obj.active = false
	obj.points = nil
	obj.segments = nil
	obj.mesh = nil
	obj.circleApprox = false
}

func triangulateContour(points []vector.Vector2) []vector.Triangle2 {
	if len(points) < 3 {
		return nil
	}

	contour := make([]*poly2tri.Point, 0, len(points))
	for _, point := range points {
		contour = append(contour, poly2tri.NewPoint(point.GetX(), point.GetY()))
	}

	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()

	triangles := swctx.GetTriangles()

	res := make([]vector.Triangle2, 0, len(triangles))
	for _, triangle := range triangles {
		res = append(res, vector.MakeTriangle2(
			vector.MakeVector2(triangle.Points[0].GetX(), triangle.Points[0].GetY()),
			vector.MakeVector2(triangle.Points[1].GetX(), triangle.Points[1].GetY()),
			vector.MakeVector2(triangle.Points[2].GetX(), triangle.Points[2].GetY()),
		))
	}

	return res
}

func rtreeRectFor(bb vector.Rect2) *rtreego.Rect {
	x, y := bb.GetMin().Get()
	width := bb.Width()
	height := bb.Height()

	// rtreego refuses empty extents; pad degenerate boxes the same way point
	// queries are padded
	if width <= 0 {
		x -= 0.005
		width = 0.01
	}
	if height <= 0 {
		y -= 0.005
		height = 0.01
	}

	rect, err := rtreego.NewRect([]float64{x, y}, []float64{width, height})
	utils.Check(err, "raycaster: could not build rtree rect")

	return rect
}
