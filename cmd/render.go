package cmd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli"

	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/renderer"
	"github.com/guymor4/raytracer/scene"
	"github.com/guymor4/raytracer/types"
	"github.com/guymor4/raytracer/ui"
)

func optionsFromFlags(ctx *cli.Context) renderer.Options {
	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		NumBounces:      uint32(ctx.Int("num-bounces")),
		MinBouncesForRR: uint32(ctx.Int("rr-bounces")),
		BVHDebugDepth:   uint32(ctx.Int("debug-depth")),
		EnableDebug:     ctx.Bool("debug"),
	}
	return opts.Clamp()
}

// RenderFrame renders a single still frame and writes it to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene manifest argument")
	}

	sc, err := scene.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	opts := optionsFromFlags(ctx)
	device := gpu.NewHeadlessDevice(int(opts.FrameW), int(opts.FrameH))
	c := renderer.NewController(device, opts)
	c.LoadScene(sc)

	frame, err := c.Frame()
	if err != nil {
		return err
	}

	displayFrameStats(c.Stats())

	out := ctx.String("out")
	if err := writePNG(out, frame, int(opts.FrameW), int(opts.FrameH)); err != nil {
		return fmt.Errorf("writing %q: %w", out, err)
	}
	logger.Noticef("wrote frame to %s", out)
	return nil
}

// RenderInteractive opens a GLFW window and continuously re-renders the
// scene, accumulating samples progressively until the window is closed.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene manifest argument")
	}

	opts := optionsFromFlags(ctx)
	device, err := gpu.NewGLDevice(int(opts.FrameW), int(opts.FrameH), "raytracer")
	if err != nil {
		return err
	}

	windowed, ok := device.(interface{ Window() *glfw.Window })
	if !ok {
		return errors.New("interactive rendering requires a windowed device")
	}

	c := renderer.NewController(device, opts)

	scenePath := ctx.Args().First()
	loadScene := func(path string) error {
		sc, err := scene.Load(path)
		if err != nil {
			return err
		}
		c.LoadScene(sc)
		return nil
	}
	if err := loadScene(scenePath); err != nil {
		return err
	}

	window := windowed.Window()
	source := ui.NewKeyboardSource(window, scenePath, opts.SamplesPerPixel)
	return renderer.RunInteractive(window, c, source.Snapshot, loadScene)
}

func writePNG(path string, frame []types.Vec3, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := frame[y*width+x]
			img.Set(x, y, color.RGBA{
				R: uint8(p[0] * 255),
				G: uint8(p[1] * 255),
				B: uint8(p[2] * 255),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef(
		"frame %d: %s render time, %d intersection tests (%.1f/s)",
		stats.FrameIndex, stats.RenderTime, stats.IntersectionTests, stats.TestsPerSecond,
	)
}
