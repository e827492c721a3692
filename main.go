package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/guymor4/raytracer/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "progressive unbiased Monte Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	renderFlags := []cli.Flag{
		cli.IntFlag{Name: "width", Value: 512, Usage: "frame width"},
		cli.IntFlag{Name: "height", Value: 512, Usage: "frame height"},
		cli.IntFlag{Name: "spp", Value: 4, Usage: "samples per pixel"},
		cli.IntFlag{Name: "num-bounces", Value: 6, Usage: "maximum bounce count per path"},
		cli.IntFlag{Name: "rr-bounces", Value: 3, Usage: "bounce index at which Russian roulette starts"},
		cli.IntFlag{Name: "debug-depth", Value: 0, Usage: "BVH wireframe overlay depth"},
		cli.BoolFlag{Name: "debug", Usage: "enable the BVH wireframe overlay"},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene",
			Subcommands: []cli.Command{
				{
					Name:      "frame",
					Usage:     "render a single frame to a PNG file",
					ArgsUsage: "scene.json",
					Flags: append(renderFlags, cli.StringFlag{
						Name:  "out, o",
						Value: "frame.png",
						Usage: "output PNG path",
					}),
					Action: cmd.RenderFrame,
				},
				{
					Name:      "interactive",
					Usage:     "render an interactively updating view of the scene",
					ArgsUsage: "scene.json",
					Flags:     renderFlags,
					Action:    cmd.RenderInteractive,
				},
			},
		},
		{
			Name:      "inspect",
			Usage:     "load a scene manifest and print its stats",
			ArgsUsage: "scene.json",
			Action:    cmd.InspectScene,
		},
		{
			Name:   "list-devices",
			Usage:  "list available display devices",
			Action: cmd.ListDevices,
		},
	}

	if err := app.Run(os.Args); err != nil {
		cmd.Fatal(err)
	}
}
