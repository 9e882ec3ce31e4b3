package writer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lseper/raytracer/scene"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Scene) error
}

// Write scene to a file. The output format is selected by the file
// extension: .json for a plain document or .zip for a compressed archive.
func WriteScene(sc *scene.Scene, filename string) error {
	var writer Writer
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		writer = newJSONSceneWriter(filename)
	case ".zip":
		writer = newZipSceneWriter(filename)
	default:
		return fmt.Errorf("writer: unsupported scene file format %q", ext)
	}
	return writer.Write(sc)
}
