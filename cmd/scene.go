package cmd

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/scene/compiler"
	"github.com/lseper/raytracer/scene/reader"
	"github.com/lseper/raytracer/scene/writer"
	"github.com/urfave/cli"
)

// Generate a scene document and write it to a .json or .zip file.
func CreateScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing output scene file argument")
	}

	settings, err := uintFlags(ctx, "width", "spp")
	if err != nil {
		return err
	}

	var sc *scene.Scene
	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	switch kind := ctx.String("kind"); kind {
	case "default":
		sc = scene.DefaultScene()
	case "random":
		sc = scene.RandomScene(rng, ctx.Bool("moving"), false)
	case "checker":
		sc = scene.RandomScene(rng, ctx.Bool("moving"), true)
	default:
		return fmt.Errorf("unknown scene kind %q", kind)
	}

	if settings[0] > 0 {
		sc.ImageWidth = int(settings[0])
		sc.ImageHeight = 0
	}
	if settings[1] > 0 {
		sc.SamplesPerPixel = int(settings[1])
	}

	if err = sc.Validate(); err != nil {
		return err
	}

	sceneFile := ctx.Args().First()
	if err = writer.WriteScene(sc, sceneFile); err != nil {
		return err
	}

	logger.Noticef("wrote %s scene with %d objects to %s", ctx.String("kind"), len(sc.Objects), sceneFile)
	return nil
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	bvh := compiler.BuildBVH(sc.Objects, rand.New(rand.NewSource(ctx.Int64("seed"))))

	logger.Noticef("scene information:\n%s\n%s\n", sc, sc.Camera)
	logger.Noticef("objects:\n%s", sc.Stats())
	logger.Noticef("bvh: %d nodes, depth %d", bvh.Count(), bvh.Depth())

	return nil
}
