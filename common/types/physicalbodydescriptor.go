package types

// PhysicalBodyDescriptor is set as UserData on Box2D bodies so that ray cast
// and contact callbacks can tell obstacles and sensors apart
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   string
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Obstacle:
		return "Obstacle"
	case PhysicalBodyDescriptorType.Sensor:
		return "Sensor"
	}

	return "UnkownType"
}

var PhysicalBodyDescriptorType = struct {
	Obstacle _physicaltype
	Sensor   _physicaltype
}{
	Obstacle: _physicaltype("o"),
	Sensor:   _physicaltype("s"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}
