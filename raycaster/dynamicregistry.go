package raycaster

import (
	uuid "github.com/satori/go.uuid"
)

// DynamicRegistry tracks the mapped objects whose geometry is re-derived on
// every refresh. Membership mirrors each object's dynamic flag: an object is
// in the registry iff the flag is true.
type DynamicRegistry struct {
	members map[uuid.UUID]*MappedObject
	order   []*MappedObject
}

func NewDynamicRegistry() *DynamicRegistry {
	return &DynamicRegistry{
		members: make(map[uuid.UUID]*MappedObject),
		order:   make([]*MappedObject, 0),
	}
}

func (registry *DynamicRegistry) Add(obj *MappedObject) {
	if _, ok := registry.members[obj.id]; ok {
		return
	}

	registry.members[obj.id] = obj
	registry.order = append(registry.order, obj)
	obj.dynamic = true
}

func (registry *DynamicRegistry) Remove(obj *MappedObject) {
	if _, ok := registry.members[obj.id]; !ok {
		return
	}

	delete(registry.members, obj.id)

	for i, member := range registry.order {
		if member == obj {
			registry.order = append(registry.order[:i], registry.order[i+1:]...)
			break
		}
	}

	obj.dynamic = false
}

func (registry *DynamicRegistry) Has(obj *MappedObject) bool {
	_, ok := registry.members[obj.id]
	return ok
}

func (registry *DynamicRegistry) Len() int {
	return len(registry.order)
}

// RefreshAll re-derives the geometry of every member, in insertion order.
func (registry *DynamicRegistry) RefreshAll() {
	for _, obj := range registry.order {
		obj.updateMap()
	}
}
