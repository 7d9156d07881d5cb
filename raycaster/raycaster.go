package raycaster

import (
	"github.com/dhconnelly/rtreego"
	uuid "github.com/satori/go.uuid"

	"github.com/theblacknight/raycast2d/common/utils/trigo"
	"github.com/theblacknight/raycast2d/common/utils/vector"
	"github.com/theblacknight/raycast2d/common/visibility2d"
)

// Raycaster owns the registry of mapped objects and casts rays against it.
// It is not safe for concurrent use: callers must not mutate the registry
// while a cast is in progress.
type Raycaster struct {
	objects []*MappedObject
	byId    map[uuid.UUID]*MappedObject
	dynamic *DynamicRegistry

	rtree      *rtreego.Rtree
	rtreeDirty bool
}

func NewRaycaster() *Raycaster {
	return &Raycaster{
		objects: make([]*MappedObject, 0),
		byId:    make(map[uuid.UUID]*MappedObject),
		dynamic: NewDynamicRegistry(),
		rtree:   rtreego.NewTree(2, 25, 50),
	}
}

type RegisterOptions struct {
	Dynamic bool
}

// Register validates the source kind, derives the initial geometry and adds
// the object to the registry. Unsupported kinds abort with
// UnsupportedShapeError; no partial object is created.
func (r *Raycaster) Register(source Source, opts RegisterOptions) (*MappedObject, error) {
	if !sourceIsSupported(source) {
		return nil, UnsupportedShapeError{Kind: string(source.ShapeKind())}
	}

	obj := newMappedObject(source)
	obj.updateMap()

	r.objects = append(r.objects, obj)
	r.byId[obj.id] = obj

	if opts.Dynamic {
		r.dynamic.Add(obj)
	}

	r.rtreeDirty = true

	return obj, nil
}

func sourceIsSupported(source Source) bool {
	switch source.ShapeKind() {
	case ShapeKind.Polygon:
		_, ok := source.(PolygonSource)
		return ok
	case ShapeKind.Circle:
		_, ok := source.(CircleSource)
		return ok
	case ShapeKind.Rectangle:
		_, ok := source.(RectangleSource)
		return ok
	case ShapeKind.Line:
		_, ok := source.(PolylineSource)
		return ok
	}

	return false
}

// Unregister removes the object from the registry and from dynamic tracking,
// and invalidates it so further casts ignore it.
func (r *Raycaster) Unregister(obj *MappedObject) {
	if _, ok := r.byId[obj.id]; !ok {
		return
	}

	r.dynamic.Remove(obj)
	delete(r.byId, obj.id)

	for i, member := range r.objects {
		if member == obj {
			r.objects = append(r.objects[:i], r.objects[i+1:]...)
			break
		}
	}

	obj.destroy()
	r.rtreeDirty = true
}

// UpdateMap re-derives the object's geometry from its current source shape.
func (r *Raycaster) UpdateMap(obj *MappedObject) *MappedObject {
	obj.updateMap()
	r.rtreeDirty = true

	return obj
}

// SetDynamic toggles dynamic tracking for the object and returns the updated
// aggregate counts. Setting the flag to its current value is a no-op.
func (r *Raycaster) SetDynamic(obj *MappedObject, dynamic bool) (staticCount int, dynamicCount int, totalCount int) {
	if obj.dynamic != dynamic {
		if dynamic {
			r.dynamic.Add(obj)
		} else {
			r.dynamic.Remove(obj)
		}
	}

	return r.Counts()
}

// RefreshDynamicMaps re-derives the geometry of every dynamic object. Hosts
// call this once per scene tick, before casting.
func (r *Raycaster) RefreshDynamicMaps() {
	r.dynamic.RefreshAll()

	if r.dynamic.Len() > 0 {
		r.rtreeDirty = true
	}
}

func (r *Raycaster) Counts() (staticCount int, dynamicCount int, totalCount int) {
	dynamicCount = r.dynamic.Len()
	totalCount = len(r.objects)
	staticCount = totalCount - dynamicCount

	return staticCount, dynamicCount, totalCount
}

// MappedObjects returns the registered objects in registration order; the
// slice is shared, do not mutate it.
func (r *Raycaster) MappedObjects() []*MappedObject {
	return r.objects
}

func (r *Raycaster) DynamicRegistry() *DynamicRegistry {
	return r.dynamic
}

func (r *Raycaster) CreateRay(opts RayOptions) *Ray {
	return NewRay(opts)
}

// Cast runs the ray against the registered objects, prefiltered through the
// spatial index.
func (r *Raycaster) Cast(ray *Ray) (Intersection, bool) {
	if ray.rayRange >= UnlimitedRange {
		return ray.Cast(r.objects)
	}

	direction := vector.MakeVector2(1, 0).SetAngle(ray.angle)
	end := ray.origin.Add(direction.MultScalar(ray.rayRange))

	return ray.Cast(r.candidatesWithin(vector.MakeRect2FromPoints(ray.origin, end)))
}

// CastCone fans rayCount rays across the ray's cone.
func (r *Raycaster) CastCone(ray *Ray, rayCount int) []Intersection {
	return ray.CastCone(r.targetsAround(ray), ray.cone, rayCount)
}

// CastCircle fans rayCount rays over the full circle.
func (r *Raycaster) CastCircle(ray *Ray, rayCount int) []Intersection {
	return ray.CastCircle(r.targetsAround(ray), rayCount)
}

// targetsAround prefilters the registry with the square spanned by the ray's
// reach in every direction; a conservative superset for cones and circles.
func (r *Raycaster) targetsAround(ray *Ray) []*MappedObject {
	if ray.rayRange >= UnlimitedRange {
		return r.objects
	}

	region := vector.MakeRect2(
		ray.origin.SubScalar(ray.rayRange),
		ray.origin.AddScalar(ray.rayRange),
	)

	return r.candidatesWithin(region)
}

func (r *Raycaster) spatialIndex() *rtreego.Rtree {
	if r.rtreeDirty {
		spatials := make([]rtreego.Spatial, 0, len(r.objects))
		for _, obj := range r.objects {
			if obj.rtreeRect != nil {
				spatials = append(spatials, obj)
			}
		}

		r.rtree = rtreego.NewTree(2, 25, 50, spatials...)
		r.rtreeDirty = false
	}

	return r.rtree
}

// candidatesWithin returns the objects whose bounding boxes intersect the
// region, in registration order so that equidistant hits stay deterministic.
func (r *Raycaster) candidatesWithin(region vector.Rect2) []*MappedObject {
	matching := r.spatialIndex().SearchIntersect(rtreeRectFor(region))
	if len(matching) == 0 {
		return nil
	}

	member := make(map[uuid.UUID]bool, len(matching))
	for _, spatial := range matching {
		member[spatial.(*MappedObject).id] = true
	}

	res := make([]*MappedObject, 0, len(matching))
	for _, obj := range r.objects {
		if member[obj.id] {
			res = append(res, obj)
		}
	}

	return res
}

// PointInsideObstacle reports whether the point lies inside a registered
// obstacle, walking the triangulated meshes of the spatial index candidates.
// Polylines have no interior and never match.
func (r *Raycaster) PointInsideObstacle(point vector.Vector2) (*MappedObject, bool) {
	px, py := point.Get()

	bb, _ := rtreego.NewRect([]float64{px - 0.005, py - 0.005}, []float64{0.01, 0.01})
	matching := r.spatialIndex().SearchIntersect(bb)
	if len(matching) == 0 {
		return nil, false
	}

	member := make(map[uuid.UUID]bool, len(matching))
	for _, spatial := range matching {
		member[spatial.(*MappedObject).id] = true
	}

	for _, obj := range r.objects {
		if !member[obj.id] || !obj.active {
			continue
		}

		switch obj.kind {
		case ShapeKind.Circle:
			if obj.circle.ContainsPoint(point) {
				return obj, true
			}

		case ShapeKind.Polygon, ShapeKind.Rectangle:
			for _, triangle := range obj.mesh {
				if trigo.PointIsInTriangle(point, triangle.GetA(), triangle.GetB(), triangle.GetC()) {
					return obj, true
				}
			}
		}
	}

	return nil, false
}

// VisibleSegments computes the visible parts of every registered wall from
// the given position, by angular sweep. Circle approximated objects carry no
// segments and do not take part. Userdata on each result is the
// *MappedObject the wall belongs to.
func (r *Raycaster) VisibleSegments(origin vector.Vector2) []visibility2d.Visible {
	walls := make([]*visibility2d.Segment, 0)

	for _, obj := range r.objects {
		if !obj.active {
			continue
		}

		for _, segment := range obj.segments {
			walls = append(walls, visibility2d.NewSegmentFromSegment2(segment, obj))
		}
	}

	if len(walls) == 0 {
		return []visibility2d.Visible{}
	}

	walls = visibility2d.BreakIntersections(walls)

	return visibility2d.CalculateVisibility(origin, walls)
}
