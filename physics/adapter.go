package physics

import (
	"github.com/theblacknight/raycast2d/raycaster"
)

// Adapter mirrors mapped objects into a physics backend. Casting never
// depends on which backend is active; hosts drive the adapter explicitly,
// typically once per tick.
type Adapter interface {
	Track(obj *raycaster.MappedObject)
	Release(obj *raycaster.MappedObject)
	ProcessRay(ray *raycaster.Ray)
}
