package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lseper/raytracer/types"
)

// The camera type controls the scene camera. Exported fields are persisted in
// the scene document; the remaining fields are derived by SetupProjection.
type Camera struct {
	Position types.Vec3 `json:"position"`
	LookAt   types.Vec3 `json:"look_at"`
	Up       types.Vec3 `json:"up"`

	// Orientation offsets (in radians) applied on top of the look-at
	// direction.
	Pitch float32 `json:"pitch,omitempty"`
	Yaw   float32 `json:"yaw,omitempty"`

	// Vertical field of view in degrees.
	FOV float32 `json:"fov"`

	// Lens aperture and focus distance control the defocus blur.
	Aperture  float32 `json:"aperture"`
	FocusDist float32 `json:"focus_dist"`

	ViewMat types.Mat4 `json:"-"`

	// Camera basis: u points right, v points up and w points backwards.
	u, v, w types.Vec3

	lowerLeft  types.Vec3
	horizontal types.Vec3
	vertical   types.Vec3
	lensRadius float32
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		ViewMat:   types.Ident4(),
		Position:  types.Vec3{0, 0, 0},
		LookAt:    types.Vec3{0, 0, -1},
		Up:        types.Vec3{0, 1, 0},
		FOV:       fov,
		FocusDist: 1,
	}
}

// Setup camera projection for the given aspect ratio (width / height).
func (c *Camera) SetupProjection(aspect float32) {
	c.Update()

	theta := float64(c.FOV) * math.Pi / 180.0
	viewportH := 2 * float32(math.Tan(theta/2))
	viewportW := aspect * viewportH

	focusDist := c.FocusDist
	if focusDist <= 0 {
		focusDist = c.LookAt.Sub(c.Position).Len()
	}

	c.horizontal = c.u.Mul(focusDist * viewportW)
	c.vertical = c.v.Mul(focusDist * viewportH)
	c.lowerLeft = c.Position.
		Sub(c.horizontal.Mul(0.5)).
		Sub(c.vertical.Mul(0.5)).
		Sub(c.w.Mul(focusDist))
	c.lensRadius = c.Aperture / 2
}

// Update camera orientation and basis vectors.
func (c *Camera) Update() {
	dir := c.LookAt.Sub(c.Position).Normalize()
	if c.Pitch != 0 || c.Yaw != 0 {
		pitchAxis := dir.Cross(c.Up)
		pitchQuat := types.QuatFromAxisAngle(pitchAxis, c.Pitch)
		yawQuat := types.QuatFromAxisAngle(c.Up, c.Yaw)

		orientQuat := pitchQuat.Mul(yawQuat).Normalize()
		dir = orientQuat.Rotate(dir)
	}

	c.ViewMat = types.LookAtV(c.Position, c.Position.Add(dir), c.Up)
	c.u = c.ViewMat.Row3(0)
	c.v = c.ViewMat.Row3(1)
	c.w = c.ViewMat.Row3(2)
}

// Generate a ray for the normalized viewport coordinates (s, t). s grows to
// the right and t grows upwards; (0, 0) is the lower-left corner. The ray
// origin is jittered over the lens disk and the ray time is random in [0, 1).
func (c *Camera) Ray(s, t float32, rng *rand.Rand) types.Ray {
	origin := c.Position
	if c.lensRadius > 0 {
		rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
		origin = origin.Add(c.u.Mul(rd[0])).Add(c.v.Mul(rd[1]))
	}

	target := c.lowerLeft.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t))
	return types.Ray{
		Origin: origin,
		Dir:    target.Sub(origin),
		Time:   rng.Float32(),
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nposition : (%3.3f, %3.3f, %3.3f)\nlook at  : (%3.3f, %3.3f, %3.3f)\nfov      : %3.1f\naperture : %3.3f\nfocus    : %3.3f",
		c.Position[0], c.Position[1], c.Position[2],
		c.LookAt[0], c.LookAt[1], c.LookAt[2],
		c.FOV, c.Aperture, c.FocusDist,
	)
}
