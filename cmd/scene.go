package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/guymor4/raytracer/scene"
)

// InspectScene loads a manifest and prints its stats as a table.
func InspectScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene manifest argument")
	}

	sc, err := scene.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	displaySceneStats(sc.Stats())
	return nil
}

func displaySceneStats(stats scene.SceneStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Spheres", fmt.Sprintf("%d", stats.Spheres)})
	table.Append([]string{"Triangles", fmt.Sprintf("%d", stats.Triangles)})
	table.Append([]string{"Emissive primitives", fmt.Sprintf("%d", stats.EmissivePrimitives)})
	table.Append([]string{"Camera position", stats.CameraPosition})
	table.Append([]string{"Camera FOV", fmt.Sprintf("%.1f", stats.CameraFOV)})
	table.Render()

	logger.Noticef("scene information\n%s", buf.String())
}
