package raycaster

// UnsupportedShapeError is returned when a source exposes a shape kind the
// registry cannot interpret. Registration aborts; no mapped object is
// created.
type UnsupportedShapeError struct {
	Kind string
}

func (e UnsupportedShapeError) Error() string {
	return "raycaster: unsupported shape kind \"" + e.Kind + "\""
}
