package reader

import (
	"fmt"

	"github.com/lseper/raytracer/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*resource) (*scene.Scene, error)
}

// FallbackError is returned by LoadScene when the requested scene could not
// be read and the default scene was substituted in its place.
type FallbackError struct {
	Path string
	Err  error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("reader: could not load scene %q; using default scene: %s", e.Path, e.Err)
}

func (e *FallbackError) Unwrap() error {
	return e.Err
}

// Read scene from a local file or a http/https URL. The reader is selected
// based on the file extension: .json documents are decoded directly while
// .zip archives must contain a scene.json entry.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := openResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	// Select reader based on file extension
	var reader Reader
	switch res.Ext() {
	case ".json":
		reader = newJSONSceneReader()
	case ".zip":
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("reader: unsupported scene file format %q", res.Ext())
	}

	sc, err := reader.Read(res)
	if err != nil {
		return nil, err
	}
	if err = sc.Validate(); err != nil {
		return nil, fmt.Errorf("reader: invalid scene %q: %w", filename, err)
	}
	return sc, nil
}

// Load a scene like ReadScene but never fail to produce one. If the scene
// cannot be read, the built-in default scene is returned together with a
// *FallbackError describing the failure. Callers are expected to report the
// error as a warning and proceed with the returned scene.
func LoadScene(filename string) (*scene.Scene, error) {
	sc, err := ReadScene(filename)
	if err == nil {
		return sc, nil
	}

	sc = scene.DefaultScene()
	if vErr := sc.Validate(); vErr != nil {
		return nil, vErr
	}
	return sc, &FallbackError{Path: filename, Err: err}
}
