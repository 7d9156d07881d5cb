package raycaster

type _shapekind string

func (k _shapekind) String() string {
	switch k {
	case ShapeKind.Polygon:
		return "Polygon"
	case ShapeKind.Circle:
		return "Circle"
	case ShapeKind.Rectangle:
		return "Rectangle"
	case ShapeKind.Line:
		return "Line"
	}

	return "UnknownShape"
}

// ShapeKind tags the source shape of a mapped object and determines how its
// points and segments are derived.
var ShapeKind = struct {
	Polygon   _shapekind
	Circle    _shapekind
	Rectangle _shapekind
	Line      _shapekind
}{
	Polygon:   _shapekind("polygon"),
	Circle:    _shapekind("circle"),
	Rectangle: _shapekind("rectangle"),
	Line:      _shapekind("line"),
}
