package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func transform(m mgl32.Mat4, x, y float32) mgl32.Vec2 {
	v := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return mgl32.Vec2{v.X(), v.Y()}
}

func TestQuadVertices(t *testing.T) {
	if got, want := len(QuadVertices), VertexCount*FloatsPerVertex; got != want {
		t.Fatalf("len(QuadVertices) = %d, want %d", got, want)
	}
	for i, f := range QuadVertices {
		if f != -1 && f != 1 {
			t.Errorf("QuadVertices[%d] = %v, want -1 or 1", i, f)
		}
	}
}

func TestSpriteModel(t *testing.T) {
	tests := []struct {
		name     string
		sprite   Sprite
		in, want mgl32.Vec2
	}{
		{"default origin", DefaultSprite(), mgl32.Vec2{0, 0}, mgl32.Vec2{200, 200}},
		{"default top corner", DefaultSprite(), mgl32.Vec2{1, 1}, mgl32.Vec2{240, 240}},
		{"default bottom corner", DefaultSprite(), mgl32.Vec2{-1, -1}, mgl32.Vec2{160, 160}},
		{
			"rotated origin",
			Sprite{Position: mgl32.Vec2{200, 200}, Size: mgl32.Vec2{40, 40}, Rotation: 90},
			mgl32.Vec2{0, 0}, mgl32.Vec2{240, 200},
		},
		{
			"rotated center is fixed",
			Sprite{Position: mgl32.Vec2{200, 200}, Size: mgl32.Vec2{40, 40}, Rotation: 37},
			mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{220, 220},
		},
		{
			"non-uniform size",
			Sprite{Position: mgl32.Vec2{10, 20}, Size: mgl32.Vec2{4, 8}},
			mgl32.Vec2{1, 1}, mgl32.Vec2{14, 28},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transform(tt.sprite.Model(), tt.in.X(), tt.in.Y())
			if !got.ApproxEqualThreshold(tt.want, epsilon) {
				t.Errorf("Model() * %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpriteStep(t *testing.T) {
	s := DefaultSprite()
	for i := 0; i < 3; i++ {
		s.Step()
	}
	if want := (mgl32.Vec2{203, 203}); s.Position != want {
		t.Errorf("Position after 3 steps = %v, want %v", s.Position, want)
	}

	// no clamping far off screen
	s.Velocity = mgl32.Vec2{1000, -1000}
	s.Step()
	if want := (mgl32.Vec2{1203, -797}); s.Position != want {
		t.Errorf("Position = %v, want %v", s.Position, want)
	}
}

func TestStepMovesModel(t *testing.T) {
	s := DefaultSprite()
	before := transform(s.Model(), 0, 0)
	s.Step()
	after := transform(s.Model(), 0, 0)
	if d := after.Sub(before); !d.ApproxEqualThreshold(s.Velocity, epsilon) {
		t.Errorf("model moved by %v, want %v", d, s.Velocity)
	}
}

func TestProjection(t *testing.T) {
	p := Projection(1366, 768)
	tests := []struct {
		name     string
		in, want mgl32.Vec2
	}{
		{"top-left", mgl32.Vec2{0, 0}, mgl32.Vec2{-1, 1}},
		{"bottom-right", mgl32.Vec2{1366, 768}, mgl32.Vec2{1, -1}},
		{"center", mgl32.Vec2{683, 384}, mgl32.Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transform(p, tt.in.X(), tt.in.Y())
			if !got.ApproxEqualThreshold(tt.want, epsilon) {
				t.Errorf("Projection * %v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
