package cmd

import (
	"os"

	"github.com/urfave/cli"

	"github.com/guymor4/raytracer/log"
)

var logger = log.New("raytracer")

// setupLogging translates the app's stacked -v/-vv flags into a verbosity
// count and lets the log package decide what level that maps to.
func setupLogging(ctx *cli.Context) {
	verbosity := 0
	if ctx.GlobalBool("v") {
		verbosity = 1
	}
	if ctx.GlobalBool("vv") {
		verbosity = 2
	}
	log.SetVerbosity(verbosity)
}

// Fatal logs err and exits with a nonzero status, used by main to report
// command failures cli.App.Run itself only returns rather than acting on.
func Fatal(err error) {
	logger.Errorf("%v", err)
	os.Exit(1)
}
