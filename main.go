package main

import (
	"os"

	"github.com/lseper/raytracer/cmd"
	"github.com/lseper/raytracer/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.0.1"
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
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a single frame of a scene document (.json or .zip, local path or
http/https URL). If the scene cannot be loaded a warning is logged and the
built-in default scene is rendered instead. Frame settings left at zero are
taken from the scene document.

The output format is selected by the extension of the output file (.ppm,
.png, .bmp, .tif). Use "-" to stream a PPM image to stdout.`,
			ArgsUsage: "[scene_file]",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: scene setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "max ray bounces (default: scene setting or 50)",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "number of tracers (default: number of cpus)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base random seed",
				},
				cli.StringFlag{
					Name:  "accel",
					Value: "bvh",
					Usage: "acceleration structure (bvh, list)",
				},
				cli.StringFlag{
					Name:  "scheduler",
					Value: "even",
					Usage: "sample scheduler (even, perfect)",
				},
				cli.BoolFlag{
					Name:  "quiet, q",
					Usage: "do not report scanline progress",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.ppm",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:  "create",
			Usage: "generate a scene document",
			Description: `
Generate one of the built-in scenes and write it to a .json document or a .zip
archive that can be supplied as an argument to the render command.`,
			ArgsUsage: "scene_file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "random",
					Usage: "scene kind (default, random, checker)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for scene generation",
				},
				cli.BoolFlag{
					Name:  "moving",
					Usage: "use moving spheres for the small diffuse spheres",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width; the height follows the scene aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
			},
			Action: cmd.CreateScene,
		},
		{
			Name:      "info",
			Usage:     "print scene information",
			ArgsUsage: "scene_file",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for the bvh split axis selection",
				},
			},
			Action: cmd.ShowSceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("raytracer").Error(err.Error())
		os.Exit(1)
	}
}
