// Package scene holds the GL-free state of the demo: the quad geometry, the
// single moving sprite and the fixed camera.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FloatsPerVertex is the number of components in each quad vertex (x, y).
	FloatsPerVertex = 2
	// VertexCount is the number of vertices drawn per frame (two triangles).
	VertexCount = 6
)

// QuadVertices is the two-triangle quad uploaded once at startup.
var QuadVertices = []float32{
	// triangle 1
	-1.0, -1.0,
	1.0, -1.0,
	1.0, 1.0,
	// triangle 2
	-1.0, 1.0,
	1.0, 1.0,
	-1.0, -1.0,
}

// ClearColor is the RGBA background the framebuffer is cleared to each frame.
var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

// Sprite is the single square moved across the screen.
type Sprite struct {
	Position mgl32.Vec2 `yaml:"position"`
	Size     mgl32.Vec2 `yaml:"size"`
	Rotation float32    `yaml:"rotation"` // degrees, about the sprite center
	Velocity mgl32.Vec2 `yaml:"velocity"` // added to Position every frame
	Color    mgl32.Vec3 `yaml:"color"`
}

func DefaultSprite() Sprite {
	return Sprite{
		Position: mgl32.Vec2{200, 200},
		Size:     mgl32.Vec2{40, 40},
		Rotation: 0,
		Velocity: mgl32.Vec2{1, 1},
		Color:    mgl32.Vec3{1, 0, 0},
	}
}

// Model composes translate, rotate-about-center and scale into the model
// matrix for the sprite's current state.
func (s *Sprite) Model() mgl32.Mat4 {
	half := s.Size.Mul(0.5)

	model := mgl32.Translate3D(s.Position.X(), s.Position.Y(), 0)
	model = model.Mul4(mgl32.Translate3D(half.X(), half.Y(), 0))
	model = model.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Rotation)))
	model = model.Mul4(mgl32.Translate3D(-half.X(), -half.Y(), 0))
	model = model.Mul4(mgl32.Scale3D(s.Size.X(), s.Size.Y(), 1))
	return model
}

// Step advances the sprite by one frame. Position is unbounded.
func (s *Sprite) Step() {
	s.Position = s.Position.Add(s.Velocity)
}

// Projection returns the orthographic camera for a width x height screen with
// the origin at the top-left corner.
func Projection(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}
