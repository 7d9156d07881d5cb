package main

import (
	structdoc "github.com/xtuc/go-structdoc"

	"github.com/theblacknight/raycast2d/common/types/scenecontainer"
	"github.com/theblacknight/raycast2d/raycaster"
)

var (
	sceneRuntimeTypes = map[string]string{
		"unknown":      "Object",
		"float64":      "Number",
		"int":          "Number",
		"string":       "String",
		"bool":         "Boolean",
		"ScenePoint":   "Array of float64 (x, y)",
		"SceneContour": "Array of points",
	}
)

func sceneNormalizeTypeName(t string) string {

	if t == "scenecontainer.ScenePoint" {

		return "ScenePoint"
	} else if t == "scenecontainer.SceneContour" {

		return "SceneContour"
	} else if t == "interface {}" {

		return "unknown"
	} else {

		return t
	}
}

func main() {
	generator := structdoc.MakeGenerator(sceneNormalizeTypeName, sceneRuntimeTypes)

	generator.GeneratorFor(scenecontainer.ScenePolygon{})
	generator.GeneratorFor(scenecontainer.SceneCircle{})
	generator.GeneratorFor(scenecontainer.SceneRectangle{})
	generator.GeneratorFor(scenecontainer.SceneLine{})

	generator.GeneratorFor(raycaster.CastStats{})
}
