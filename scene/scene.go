package scene

import (
	"errors"
	"fmt"
)

// Default number of ray bounces when a scene does not specify one.
const DefaultMaxDepth = 50

var (
	ErrNoCamera          = errors.New("scene: no camera defined")
	ErrInvalidDimensions = errors.New("scene: image dimensions must be positive")
	ErrInvalidSamples    = errors.New("scene: samples per pixel must be positive")
)

// Scene is the renderable scene document: output settings, camera and the
// list of objects.
type Scene struct {
	AspectRatio     float32 `json:"aspect_ratio"`
	ImageWidth      int     `json:"image_width"`
	ImageHeight     int     `json:"image_height"`
	SamplesPerPixel int     `json:"samples_per_pixel"`
	MaxDepth        int     `json:"max_depth,omitempty"`

	Camera *Camera `json:"camera"`

	Objects []Object `json:"objects"`
}

func NewScene() *Scene {
	return &Scene{
		Objects: make([]Object, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a primitive to the scene.
func (s *Scene) AddPrimitive(prim Primitive) {
	s.Objects = append(s.Objects, NewPrimitiveObject(prim))
}

// Build a linear object list for the scene objects.
func (s *Scene) ObjectList() *ObjectList {
	return NewObjectList(s.Objects...)
}

// Check that the scene can be rendered and fill in defaults for optional
// settings. The camera projection is set up using the scene aspect ratio.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.ImageWidth <= 0 {
		return ErrInvalidDimensions
	}
	if s.ImageHeight <= 0 {
		if s.AspectRatio <= 0 {
			return ErrInvalidDimensions
		}
		s.ImageHeight = int(float32(s.ImageWidth) / s.AspectRatio)
		if s.ImageHeight < 1 {
			s.ImageHeight = 1
		}
	}
	if s.AspectRatio <= 0 {
		s.AspectRatio = float32(s.ImageWidth) / float32(s.ImageHeight)
	}
	if s.SamplesPerPixel <= 0 {
		return ErrInvalidSamples
	}
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultMaxDepth
	}

	s.Camera.SetupProjection(s.AspectRatio)
	return nil
}

func (s *Scene) String() string {
	return fmt.Sprintf("%dx%d (aspect %.3f), %d spp, max depth %d, %d objects",
		s.ImageWidth, s.ImageHeight, s.AspectRatio, s.SamplesPerPixel, s.MaxDepth, len(s.Objects))
}
