package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/bytearena/ecs"
	petname "github.com/dustinkirkland/golang-petname"
	uuid "github.com/satori/go.uuid"
	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/theblacknight/raycast2d/common/types/scenecontainer"
	"github.com/theblacknight/raycast2d/common/utils"
	"github.com/theblacknight/raycast2d/common/utils/number"
	"github.com/theblacknight/raycast2d/common/utils/vector"
	"github.com/theblacknight/raycast2d/physics"
	"github.com/theblacknight/raycast2d/raycaster"
)

const (
	moverSpeed   = 0.8
	observerSpin = 0.05
)

// Mover is the demo aspect of a wandering obstacle; it keeps the handle on
// both the shape source and its mapped object so the tick can move one and
// refresh the other.
type Mover struct {
	name     string
	source   *raycaster.Circle
	obj      *raycaster.MappedObject
	velocity vector.Vector2
}

type demoFrame struct {
	Tick    int                 `json:"tick"`
	Hits    int                 `json:"hits"`
	Sighted []string            `json:"sighted"`
	TookMs  float64             `json:"tookMs"`
	Stats   raycaster.CastStats `json:"stats"`
}

func demoAction(sceneFile string, tps int, duration int, rayCount int, fov float64, isDebug bool) {

	scene := defaultScene()

	if sceneFile != "" {
		loaded, err := scenecontainer.LoadSceneFromFile(sceneFile)
		if err != nil {
			utils.FailWith(bettererrors.
				NewFromString("Could not load the scene").
				With(bettererrors.NewFromErr(err)).
				SetContext("file", sceneFile))
		}

		scene = loaded
	}

	caster, err := scene.BuildRaycaster()
	if err != nil {
		utils.FailWith(bettererrors.
			NewFromString("Could not build the scene").
			With(bettererrors.NewFromErr(err)))
	}

	_, _, totalCount := caster.Counts()
	utils.Assert(totalCount > 0, "The scene holds no obstacles")

	manager := ecs.NewManager()
	moverComponent := manager.NewComponent()
	moversView := manager.CreateView(moverComponent)

	adapter := physics.NewBox2DAdapter()

	bounds := vector.MakeRect2(vector.MakeVector2(-1, -1), vector.MakeVector2(1, 1))
	names := make(map[uuid.UUID]string)

	for _, obj := range caster.MappedObjects() {
		bounds = bounds.Extend(obj.BoundingBox())
		adapter.Track(obj)

		if !obj.IsDynamic() {
			continue
		}

		source, ok := obj.Source().(*raycaster.Circle)
		if !ok {
			// only circles wander in the demo
			continue
		}

		mover := &Mover{
			name:     petname.Generate(2, "-"),
			source:   source,
			obj:      obj,
			velocity: vector.MakeRandomVector2().MultScalar(moverSpeed),
		}

		names[obj.Id()] = mover.name
		manager.NewEntity().AddComponent(moverComponent, mover)
	}

	origin := bounds.Center()
	if blocker, inside := caster.PointInsideObstacle(origin); inside {
		// step out of whatever occupies the center of the scene
		origin = blocker.BoundingBox().GetMax().AddScalar(1.0)
	}

	adapter.TrackSensor("observer", origin, 1.0)

	fullCircle := fov >= 360

	ray := caster.CreateRay(raycaster.RayOptions{
		Origin:    origin,
		Cone:      number.DegreeToRadian(fov),
		Range:     bounds.Width() + bounds.Height(),
		AutoSlice: true,
	})

	collides := 0
	collideEnds := 0

	ray.SetOnCollide(func(obj *raycaster.MappedObject, point vector.Vector2) {
		collides++

		if name, isMover := names[obj.Id()]; isMover {
			fmt.Print(chalk.Cyan)
			fmt.Println(name + " enters the field of view at " + point.String())
			fmt.Print(chalk.Reset)
		}
	})

	ray.SetOnCollideEnd(func(obj *raycaster.MappedObject) {
		collideEnds++

		if name, isMover := names[obj.Id()]; isMover {
			fmt.Print(chalk.Yellow)
			fmt.Println(name + " leaves the field of view")
			fmt.Print(chalk.Reset)
		}
	})

	frames := make(chan interface{})
	notify.Start("raycast:frame", frames)

	go func() {
		for {
			select {
			case payload := <-frames:
				frame, ok := payload.(demoFrame)
				if !ok {
					continue
				}

				if isDebug {
					utils.DebugWith("demo", "frame", utils.Context{
						"tick":    frame.Tick,
						"hits":    frame.Hits,
						"sighted": frame.Sighted,
						"tookMs":  frame.TookMs,
						"stats":   frame.Stats,
					})
				}
			}
		}
	}()

	stopticking := make(chan bool)

	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-hassigtermed
		stopticking <- true
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	totalTicks := tps * duration
	scans := 0
	hits := 0

loop:
	for tick := 0; tick < totalTicks; tick++ {
		select {
		case <-stopticking:
			break loop
		case <-ticker.C:
		}

		tickStart := time.Now()

		moveMovers(moversView, moverComponent, bounds)
		caster.RefreshDynamicMaps()

		// the physics bodies are rebuilt from the refreshed maps
		for _, qr := range moversView.Get() {
			mover := qr.Components[moverComponent].(*Mover)
			adapter.Track(mover.obj)
		}

		var intersections []raycaster.Intersection

		if fullCircle {
			intersections = caster.CastCircle(ray, rayCount)
		} else {
			// a narrow field of view sweeps the scene like a radar
			ray.SetAngle(ray.Angle() + observerSpin)
			intersections = caster.CastCone(ray, rayCount)
		}

		adapter.ProcessRay(ray)

		frame := demoFrame{Tick: tick, Stats: ray.Stats()}

		for _, intersection := range intersections {
			if intersection.Hit {
				frame.Hits++
			}
		}

		for _, qr := range moversView.Get() {
			mover := qr.Components[moverComponent].(*Mover)

			// aim at the near surface of the drone, not its center; the
			// drone body itself would occlude the sight line otherwise
			center := mover.source.Circle().GetCenter()
			probe := center
			if offset := center.Sub(origin); !offset.IsNull() {
				probe = center.Sub(offset.Normalize().MultScalar(mover.source.Circle().GetRadius() + 0.5))
			}

			if adapter.LineOfSight(origin, probe) {
				frame.Sighted = append(frame.Sighted, mover.name)
			}
		}

		frame.TookMs = number.DurationMs(time.Since(tickStart))

		notify.PostTimeout("raycast:frame", frame, time.Millisecond)

		scans++
		hits += frame.Hits
	}

	adapter.ForgetRay(ray)

	staticCount, dynamicCount, totalCount := caster.Counts()

	fmt.Print(chalk.Green)
	fmt.Println("=== Demo finished")
	fmt.Printf("objects: %d static, %d dynamic, %d total\n", staticCount, dynamicCount, totalCount)
	fmt.Printf("scans: %d; rays per scan: %d; hits: %d\n", scans, rayCount, hits)
	fmt.Printf("field of view events: %d in, %d out\n", collides, collideEnds)
	fmt.Print(chalk.Reset)
}

func moveMovers(view *ecs.View, component *ecs.Component, bounds vector.Rect2) {
	for _, qr := range view.Get() {
		mover := qr.Components[component].(*Mover)

		next := mover.source.Circle().GetCenter().Add(mover.velocity)

		if next.GetX() < bounds.GetMin().GetX() || next.GetX() > bounds.GetMax().GetX() {
			mover.velocity = vector.MakeVector2(-mover.velocity.GetX(), mover.velocity.GetY())
		}

		if next.GetY() < bounds.GetMin().GetY() || next.GetY() > bounds.GetMax().GetY() {
			mover.velocity = vector.MakeVector2(mover.velocity.GetX(), -mover.velocity.GetY())
		}

		mover.source.SetCenter(mover.source.Circle().GetCenter().Add(mover.velocity))
	}
}

func defaultScene() *scenecontainer.SceneContainer {
	scene := &scenecontainer.SceneContainer{}

	scene.Meta.Kind = "demo"
	scene.Meta.Readme = "Built-in demo scene; a walled room, two pillars, a wedge, a crate, a fence and two wandering drones"

	scene.Data.Polygons = []scenecontainer.ScenePolygon{
		{
			Id: "wedge",
			Polygon: scenecontainer.SceneContour{Points: []scenecontainer.ScenePoint{
				{X: -15, Y: -25},
				{X: -5, Y: -25},
				{X: -10, Y: -15},
			}},
		},
	}

	scene.Data.Circles = []scenecontainer.SceneCircle{
		{Id: "pillar-north", Center: scenecontainer.ScenePoint{X: 0, Y: 18}, Radius: 3},
		{Id: "pillar-south", Center: scenecontainer.ScenePoint{X: 0, Y: -18}, Radius: 3},
		{Id: "drone-1", Center: scenecontainer.ScenePoint{X: -20, Y: 10}, Radius: 2, Dynamic: true},
		{Id: "drone-2", Center: scenecontainer.ScenePoint{X: 20, Y: -10}, Radius: 2, Dynamic: true},
	}

	scene.Data.Rectangles = []scenecontainer.SceneRectangle{
		{Id: "crate", Position: scenecontainer.ScenePoint{X: 12, Y: 12}, Width: 6, Height: 4},
	}

	// the room is a closed polyline: walls occlude but the floor stays
	// walkable, so the observer can stand in the middle of it
	scene.Data.Lines = []scenecontainer.SceneLine{
		{Id: "room", Line: scenecontainer.SceneContour{Points: []scenecontainer.ScenePoint{
			{X: -40, Y: -40},
			{X: 40, Y: -40},
			{X: 40, Y: 40},
			{X: -40, Y: 40},
			{X: -40, Y: -40},
		}}},
		{Id: "fence", Line: scenecontainer.SceneContour{Points: []scenecontainer.ScenePoint{
			{X: -30, Y: 0},
			{X: -15, Y: 0},
		}}},
	}

	return scene
}
