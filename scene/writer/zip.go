package writer

import (
	"archive/zip"
	"os"
	"time"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
)

const (
	dataFile = "scene.json"
)

type zipSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

// Create a new zip scene writer
func newZipSceneWriter(sceneFile string) *zipSceneWriter {
	return &zipSceneWriter{
		logger:    log.New("zip writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition to zip file.
func (w *zipSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef("writing compressed scene to %s", w.sceneFile)
	start := time.Now()

	zipFile, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	// Create zip writer
	zw := zip.NewWriter(zipFile)

	// Write scene data
	cw, err := zw.Create(dataFile)
	if err != nil {
		zw.Close()
		return err
	}
	if err = encodeScene(cw, sc); err != nil {
		zw.Close()
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	w.logger.Infof("compressed scene in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}
