package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	app := makeapp()
	app.Run(os.Args)
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "2d ray casting playground"
	app.Name = "raycast"

	app.Commands = []cli.Command{
		{
			Name:    "demo",
			Aliases: []string{"d"},
			Usage:   "Run a scene with moving obstacles and a scanning observer",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "scene", Value: "", Usage: "Scene file; a built-in scene is used when omitted"},
				cli.IntFlag{Name: "tps", Value: 10, Usage: "Number of ticks per second"},
				cli.IntFlag{Name: "duration", Value: 5, Usage: "Duration of the run, in seconds"},
				cli.IntFlag{Name: "rays", Value: 64, Usage: "Number of rays per scan"},
				cli.Float64Flag{Name: "fov", Value: 360, Usage: "Field of view of the observer, in degrees"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				sceneFile := c.String("scene")
				tps := c.Int("tps")
				duration := c.Int("duration")
				rayCount := c.Int("rays")
				fov := c.Float64("fov")
				isDebug := c.Bool("debug")
				demoAction(sceneFile, tps, duration, rayCount, fov, isDebug)
				return nil
			},
		},
		{
			Name:    "bench",
			Aliases: []string{"b"},
			Usage:   "Measure cast throughput on a randomized scene",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "obstacles", Value: 200, Usage: "Number of obstacles in the scene"},
				cli.IntFlag{Name: "casts", Value: 1000, Usage: "Number of full circle scans"},
				cli.IntFlag{Name: "rays", Value: 360, Usage: "Number of rays per scan"},
			},
			Action: func(c *cli.Context) error {
				obstacles := c.Int("obstacles")
				casts := c.Int("casts")
				rayCount := c.Int("rays")
				benchAction(obstacles, casts, rayCount)
				return nil
			},
		},
	}

	return app
}
