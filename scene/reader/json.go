package reader

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
)

type jsonSceneReader struct {
	logger log.Logger
}

func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json reader"),
	}
}

// Read scene definition from a JSON document.
func (p *jsonSceneReader) Read(sceneRes *resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	sc, err := decodeScene(sceneRes)
	if err != nil {
		return nil, fmt.Errorf("jsonSceneReader: failed to load %s: %w", sceneRes.Path(), err)
	}

	p.logger.Infof("loaded scene with %d objects in %d ms", len(sc.Objects), time.Since(start).Nanoseconds()/1000000)
	return sc, nil
}

func decodeScene(r io.Reader) (*scene.Scene, error) {
	sc := scene.NewScene()
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(sc); err != nil {
		return nil, err
	}
	return sc, nil
}
