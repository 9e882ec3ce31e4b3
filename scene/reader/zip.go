package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
)

const (
	dataFile = "scene.json"
)

type zipSceneReader struct {
	logger log.Logger
}

// Create a new zip scene reader
func newZipSceneReader() *zipSceneReader {
	return &zipSceneReader{
		logger: log.New("zip reader"),
	}
}

// Read scene definition from zip file.
func (p *zipSceneReader) Read(sceneRes *resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing compressed scene from "%s"`, sceneRes.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(sceneRes)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var sc *scene.Scene
	for _, f := range zr.File {
		if f.Name != dataFile {
			p.logger.Warningf("unknown file %s in scene zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		sc, err = decodeScene(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("zipSceneReader: failed to load %s: %w", f.Name, err)
		}
	}

	if sc == nil {
		return nil, fmt.Errorf("zipSceneReader: archive does not contain %s", dataFile)
	}

	p.logger.Infof("loaded scene with %d objects in %d ms", len(sc.Objects), time.Since(start).Nanoseconds()/1000000)
	return sc, nil
}
