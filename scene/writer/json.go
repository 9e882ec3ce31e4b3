package writer

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
)

type jsonSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

func newJSONSceneWriter(sceneFile string) *jsonSceneWriter {
	return &jsonSceneWriter{
		logger:    log.New("json writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition to a JSON file.
func (w *jsonSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef("writing scene to %s", w.sceneFile)
	start := time.Now()

	f, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = encodeScene(f, sc); err != nil {
		return err
	}

	w.logger.Infof("wrote scene in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}

func encodeScene(out io.Writer, sc *scene.Scene) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sc)
}
