package scene

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/lseper/raytracer/types"
)

type TextureType uint8

const (
	SolidTexture TextureType = iota
	CheckerTexture
)

// Texture is a small value type that maps surface coordinates and hit
// points to a color.
type Texture struct {
	Type TextureType

	// Solid color or the even cells of a checker texture.
	Color types.Vec3

	// Odd cell color of a checker texture.
	Odd types.Vec3

	// Checker cell size.
	Scale float32
}

// Create a solid color texture.
func NewSolidColor(color types.Vec3) Texture {
	return Texture{Type: SolidTexture, Color: color}
}

// Create a 3D checker texture with cells of the given size.
func NewChecker(scale float32, even, odd types.Vec3) Texture {
	return Texture{Type: CheckerTexture, Color: even, Odd: odd, Scale: scale}
}

// Get texture color at the given surface coordinates and hit point.
func (t Texture) Value(u, v float32, p types.Vec3) types.Vec3 {
	switch t.Type {
	case CheckerTexture:
		invScale := 1.0 / t.Scale
		x := int(math.Floor(float64(invScale * p[0])))
		y := int(math.Floor(float64(invScale * p[1])))
		z := int(math.Floor(float64(invScale * p[2])))
		if (x+y+z)%2 == 0 {
			return t.Color
		}
		return t.Odd
	default:
		return t.Color
	}
}

type textureDoc struct {
	Type  string     `json:"type"`
	Color types.Vec3 `json:"color"`
	Odd   types.Vec3 `json:"odd"`
	Scale float32    `json:"scale,omitempty"`
}

func (t Texture) MarshalJSON() ([]byte, error) {
	doc := textureDoc{Color: t.Color}
	switch t.Type {
	case SolidTexture:
		doc.Type = "solid"
	case CheckerTexture:
		doc.Type = "checker"
		doc.Odd = t.Odd
		doc.Scale = t.Scale
	default:
		return nil, fmt.Errorf("scene: unknown texture type %d", t.Type)
	}
	return json.Marshal(doc)
}

func (t *Texture) UnmarshalJSON(data []byte) error {
	var doc textureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	switch doc.Type {
	case "solid", "":
		*t = NewSolidColor(doc.Color)
	case "checker":
		if doc.Scale <= 0 {
			return fmt.Errorf("scene: checker texture scale must be positive; got %f", doc.Scale)
		}
		*t = NewChecker(doc.Scale, doc.Color, doc.Odd)
	default:
		return fmt.Errorf("scene: unknown texture type %q", doc.Type)
	}
	return nil
}
