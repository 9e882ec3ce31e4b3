package writer

import (
	"archive/zip"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lseper/raytracer/scene"
)

func TestWriteJSONScene(t *testing.T) {
	sceneFile := filepath.Join(t.TempDir(), "scene.json")
	if err := WriteScene(scene.DefaultScene(), sceneFile); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(sceneFile)
	if err != nil {
		t.Fatal(err)
	}
	sc := scene.NewScene()
	if err = json.Unmarshal(data, sc); err != nil {
		t.Fatal(err)
	}
	if len(sc.Objects) != 1 {
		t.Fatalf("expected 1 object; got %d", len(sc.Objects))
	}
}

func TestWriteZipScene(t *testing.T) {
	sceneFile := filepath.Join(t.TempDir(), "scene.zip")
	if err := WriteScene(scene.DefaultScene(), sceneFile); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(sceneFile)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	if len(zr.File) != 1 || zr.File[0].Name != dataFile {
		t.Fatalf("expected archive to contain only %s", dataFile)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	expError := `writer: unsupported scene file format ".obj"`
	err := WriteScene(scene.DefaultScene(), filepath.Join(t.TempDir(), "scene.obj"))
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}
