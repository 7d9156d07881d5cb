package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/ttacon/chalk"

	"github.com/theblacknight/raycast2d/common/influxdb"
	"github.com/theblacknight/raycast2d/common/utils"
	"github.com/theblacknight/raycast2d/common/utils/vector"
	"github.com/theblacknight/raycast2d/raycaster"
)

const benchArenaHalf = 500.0

func benchAction(obstacleCount int, casts int, rayCount int) {

	caster := buildBenchScene(obstacleCount)

	client, err := influxdb.NewClient("raycast-bench")
	utils.Check(err, "Could not initialize the influxdb client")

	castCounter := influxdb.NewCounter()
	rayCounter := influxdb.NewCounter()

	client.Loop(func() {
		client.WriteAppMetric("raycast", map[string]interface{}{
			"casts": castCounter.GetAndReset(),
			"rays":  rayCounter.GetAndReset(),
		})
	})

	ray := caster.CreateRay(raycaster.RayOptions{
		Origin: vector.MakeNullVector2(),
		Range:  benchArenaHalf,
	})

	bar := pb.New(casts)
	bar.SetWidth(80)
	bar.Start()

	tested := 0
	hit := 0
	segments := 0
	castTime := 0.0

	started := time.Now()

	for i := 0; i < casts; i++ {
		ray.SetOrigin(randomBenchPoint())
		caster.CastCircle(ray, rayCount)

		stats := ray.Stats()
		tested += stats.TestedMappedObjects
		hit += stats.HitMappedObjects
		segments += stats.Segments
		castTime += stats.Time

		castCounter.Add(1)
		rayCounter.Add(stats.Rays)

		bar.Increment()
	}

	bar.Finish()

	elapsed := time.Since(started)
	client.TearDown()

	fmt.Print(chalk.Green)
	fmt.Println("=== Bench finished")
	fmt.Printf("%d scans of %d rays against %d obstacles in %s\n", casts, rayCount, obstacleCount, elapsed)
	fmt.Printf("objects tested: %d; objects hit: %d; segments walked: %d\n", tested, hit, segments)
	fmt.Printf("time in casts: %.1fms; mean scan: %.3fms\n", castTime, castTime/float64(casts))
	fmt.Print(chalk.Reset)
}

func buildBenchScene(obstacleCount int) *raycaster.Raycaster {
	caster := raycaster.NewRaycaster()

	for i := 0; i < obstacleCount; i++ {
		position := randomBenchPoint()

		var err error

		switch i % 3 {
		case 0:
			_, err = caster.Register(
				raycaster.NewCircle(position, 1.0+rand.Float64()*4.0),
				raycaster.RegisterOptions{},
			)
		case 1:
			_, err = caster.Register(
				raycaster.NewRectangle(position, 2.0+rand.Float64()*8.0, 2.0+rand.Float64()*8.0),
				raycaster.RegisterOptions{},
			)
		case 2:
			_, err = caster.Register(
				raycaster.NewLine(position, position.Add(vector.MakeRandomVector2().MultScalar(5.0+rand.Float64()*15.0))),
				raycaster.RegisterOptions{},
			)
		}

		utils.Check(err, "Could not register bench obstacle")
	}

	return caster
}

func randomBenchPoint() vector.Vector2 {
	return vector.MakeVector2(
		(rand.Float64()*2.0-1.0)*benchArenaHalf,
		(rand.Float64()*2.0-1.0)*benchArenaHalf,
	)
}
