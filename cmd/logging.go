package cmd

import (
	"github.com/df07/go-sky-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.Verbosity(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
