package scenecontainer

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/theblacknight/raycast2d/common/utils/number"
	"github.com/theblacknight/raycast2d/common/utils/vector"
	"github.com/theblacknight/raycast2d/raycaster"
)

// SceneContainer is the JSON description of an obstacle layout, as produced
// by scene editors and consumed by hosts to populate a Raycaster.
type SceneContainer struct {
	Meta struct {
		Readme     string `json:"readme"`
		Kind       string `json:"kind"`
		Date       string `json:"date"`
		Repository string `json:"repository"`
	} `json:"meta"`
	Data struct {
		Polygons   []ScenePolygon   `json:"polygons"`
		Circles    []SceneCircle    `json:"circles"`
		Rectangles []SceneRectangle `json:"rectangles"`
		Lines      []SceneLine      `json:"lines"`
	} `json:"data"`
}

type ScenePoint struct {
	X float64
	Y float64
}

func (p *ScenePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{
		number.ToFixed(p.X, 5),
		number.ToFixed(p.Y, 5),
	})
}

func (p *ScenePoint) UnmarshalJSON(b []byte) error {
	var floats []float64
	if err := json.Unmarshal(b, &floats); err != nil {
		return err
	}

	if len(floats) < 2 {
		return errors.New("Point needs two coordinates")
	}

	p.X = floats[0]
	p.Y = floats[1]

	return nil
}

func (p ScenePoint) Vector2() vector.Vector2 {
	return vector.MakeVector2(p.X, p.Y)
}

type SceneContour struct {
	Points []ScenePoint
}

func (c *SceneContour) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Points)
}

func (c *SceneContour) UnmarshalJSON(b []byte) error {
	var points []ScenePoint
	if err := json.Unmarshal(b, &points); err != nil {
		return err
	}

	c.Points = points

	return nil
}

func (c SceneContour) Vectors() []vector.Vector2 {
	res := make([]vector.Vector2, len(c.Points))
	for i, point := range c.Points {
		res[i] = point.Vector2()
	}

	return res
}

type ScenePolygon struct {
	Id      string       `json:"id"`
	Polygon SceneContour `json:"polygon"`
	Dynamic bool         `json:"dynamic"`
}

type SceneCircle struct {
	Id      string     `json:"id"`
	Center  ScenePoint `json:"center"`
	Radius  float64    `json:"radius"`
	Dynamic bool       `json:"dynamic"`
}

type SceneRectangle struct {
	Id       string     `json:"id"`
	Position ScenePoint `json:"position"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Dynamic  bool       `json:"dynamic"`
}

type SceneLine struct {
	Id      string       `json:"id"`
	Line    SceneContour `json:"line"`
	Dynamic bool         `json:"dynamic"`
}

func ParseScene(data []byte) (*SceneContainer, error) {
	var scene SceneContainer

	if err := json.Unmarshal(data, &scene); err != nil {
		return nil, errors.Wrap(err, "Could not parse scene")
	}

	return &scene, nil
}

func LoadSceneFromFile(filename string) (*SceneContainer, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open scene file (%s)", filename)
	}

	return ParseScene(data)
}

// BuildRaycaster registers every scene obstacle, in document order, on a
// fresh Raycaster.
func (scene *SceneContainer) BuildRaycaster() (*raycaster.Raycaster, error) {
	r := raycaster.NewRaycaster()

	for _, polygon := range scene.Data.Polygons {
		_, err := r.Register(
			raycaster.NewPolygon(polygon.Polygon.Vectors()),
			raycaster.RegisterOptions{Dynamic: polygon.Dynamic},
		)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not register polygon (%s)", polygon.Id)
		}
	}

	for _, circle := range scene.Data.Circles {
		_, err := r.Register(
			raycaster.NewCircle(circle.Center.Vector2(), circle.Radius),
			raycaster.RegisterOptions{Dynamic: circle.Dynamic},
		)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not register circle (%s)", circle.Id)
		}
	}

	for _, rectangle := range scene.Data.Rectangles {
		_, err := r.Register(
			raycaster.NewRectangle(rectangle.Position.Vector2(), rectangle.Width, rectangle.Height),
			raycaster.RegisterOptions{Dynamic: rectangle.Dynamic},
		)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not register rectangle (%s)", rectangle.Id)
		}
	}

	for _, line := range scene.Data.Lines {
		_, err := r.Register(
			raycaster.NewPolyline(line.Line.Vectors()),
			raycaster.RegisterOptions{Dynamic: line.Dynamic},
		)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not register line (%s)", line.Id)
		}
	}

	return r, nil
}
