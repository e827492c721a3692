package cmd

import (
	"bytes"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli"
)

// ListDevices enumerates GLFW monitors and their framebuffer configs, the
// closest stand-in this module has for "GPU context" enumeration now that
// there is no OpenCL device layer (see DESIGN.md).
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	monitors := glfw.GetMonitors()

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("\nsystem provides %d display device(s):\n\n", len(monitors)))
	for idx, m := range monitors {
		mode := m.GetVideoMode()
		buf.WriteString(fmt.Sprintf("[Device %02d]\n  Name       %s\n  Mode       %dx%d @ %dHz\n  Color bits R%d G%d B%d\n\n",
			idx, m.GetName(), mode.Width, mode.Height, mode.RefreshRate, mode.RedBits, mode.GreenBits, mode.BlueBits))
	}

	logger.Notice(buf.String())
	return nil
}
