package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"

	"github.com/lseper/raytracer/types"
)

type MaterialType uint8

const (
	LambertianMaterial MaterialType = iota
	MetalMaterial
	DielectricMaterial
)

func (t MaterialType) String() string {
	switch t {
	case LambertianMaterial:
		return "lambertian"
	case MetalMaterial:
		return "metal"
	case DielectricMaterial:
		return "dielectric"
	}
	return "unknown"
}

// Defines a scene material. Materials are small value types that are copied
// into every primitive and hit record.
type Material struct {
	// The type of the material.
	Type MaterialType

	// Albedo texture (lambertian and metal materials).
	Albedo Texture

	// Reflection fuzziness in [0, 1) (metal materials only).
	Fuzz float32

	// Index of refraction (dielectric materials only).
	IOR float32
}

// Create a diffuse material with a solid color.
func NewLambertian(albedo types.Vec3) Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// Create a diffuse material whose albedo is looked up from a texture.
func NewTexturedLambertian(albedo Texture) Material {
	return Material{Type: LambertianMaterial, Albedo: albedo}
}

// Create a metal material. Fuzz values outside [0, 1) produce a perfect mirror.
func NewMetal(albedo types.Vec3, fuzz float32) Material {
	if fuzz < 0 || fuzz >= 1 {
		fuzz = 0
	}
	return Material{Type: MetalMaterial, Albedo: NewSolidColor(albedo), Fuzz: fuzz}
}

// Create a dielectric (glass-like) material.
func NewDielectric(ior float32) Material {
	return Material{Type: DielectricMaterial, Albedo: NewSolidColor(types.Vec3{1, 1, 1}), IOR: ior}
}

// Scatter an incoming ray at the hit point. It returns the attenuation color
// and the outgoing ray; ok is false if the material absorbed the ray.
// Scattered rays inherit the time of the incoming ray.
func (m Material) Scatter(rayIn types.Ray, rec *HitRecord, rng *rand.Rand) (attenuation types.Vec3, scattered types.Ray, ok bool) {
	switch m.Type {
	case LambertianMaterial:
		dir := rec.Normal.Add(types.RandomUnitVector(rng))
		if dir.NearZero() {
			dir = rec.Normal
		}
		return m.Albedo.Value(rec.U, rec.V, rec.Point), types.Ray{Origin: rec.Point, Dir: dir, Time: rayIn.Time}, true
	case MetalMaterial:
		reflected := types.Reflect(rayIn.Dir.Normalize(), rec.Normal)
		if m.Fuzz > 0 {
			reflected = reflected.Add(types.RandomInUnitSphere(rng).Mul(m.Fuzz))
		}
		scattered = types.Ray{Origin: rec.Point, Dir: reflected, Time: rayIn.Time}
		return m.Albedo.Value(rec.U, rec.V, rec.Point), scattered, reflected.Dot(rec.Normal) > 0
	case DielectricMaterial:
		etaRatio := m.IOR
		if rec.FrontFace {
			etaRatio = 1.0 / m.IOR
		}

		unitDir := rayIn.Dir.Normalize()
		cosTheta := float32(math.Min(float64(unitDir.Neg().Dot(rec.Normal)), 1.0))
		sinTheta := float32(math.Sqrt(float64(1.0 - cosTheta*cosTheta)))

		var dir types.Vec3
		if etaRatio*sinTheta > 1.0 || reflectance(cosTheta, etaRatio) > rng.Float32() {
			dir = types.Reflect(unitDir, rec.Normal)
		} else {
			dir = types.Refract(unitDir, rec.Normal, etaRatio)
		}
		return types.Vec3{1, 1, 1}, types.Ray{Origin: rec.Point, Dir: dir, Time: rayIn.Time}, true
	}

	return types.Vec3{}, types.Ray{}, false
}

// Schlick's approximation for the reflectance of a dielectric.
func reflectance(cosine, etaRatio float32) float32 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*float32(math.Pow(float64(1-cosine), 5))
}

type materialDoc struct {
	Type   string   `json:"type"`
	Albedo *Texture `json:"albedo,omitempty"`
	Fuzz   float32  `json:"fuzz,omitempty"`
	IOR    float32  `json:"ior,omitempty"`
}

func (m Material) MarshalJSON() ([]byte, error) {
	var doc materialDoc
	switch m.Type {
	case LambertianMaterial:
		doc = materialDoc{Type: "lambertian", Albedo: &m.Albedo}
	case MetalMaterial:
		doc = materialDoc{Type: "metal", Albedo: &m.Albedo, Fuzz: m.Fuzz}
	case DielectricMaterial:
		doc = materialDoc{Type: "dielectric", IOR: m.IOR}
	default:
		return nil, fmt.Errorf("scene: unknown material type %d", m.Type)
	}
	return json.Marshal(doc)
}

func (m *Material) UnmarshalJSON(data []byte) error {
	var doc materialDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	albedo := NewSolidColor(types.Vec3{0.5, 0.5, 0.5})
	if doc.Albedo != nil {
		albedo = *doc.Albedo
	}

	switch doc.Type {
	case "lambertian":
		*m = NewTexturedLambertian(albedo)
	case "metal":
		*m = NewMetal(albedo.Color, doc.Fuzz)
		m.Albedo = albedo
	case "dielectric":
		if doc.IOR <= 0 {
			return fmt.Errorf("scene: dielectric index of refraction must be positive; got %f", doc.IOR)
		}
		*m = NewDielectric(doc.IOR)
	default:
		return fmt.Errorf("scene: unknown material type %q", doc.Type)
	}
	return nil
}
