package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goquad/graphics"
	"github.com/richinsley/goquad/scene"
	shader "github.com/richinsley/goquad/shader"
)

// gl.Init must only run once per process.
var glInitOnce sync.Once

type Renderer struct {
	context       graphics.Context
	quadVAO       uint32
	quadVBO       uint32
	program       uint32
	modelLoc      int32
	sprite        *scene.Sprite
	statsInterval float64
}

func NewRenderer(ctx graphics.Context, statsInterval float64) (*Renderer, error) {
	r := &Renderer{
		context:       ctx,
		statsInterval: statsInterval,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return r, nil
}

// InitScene uploads the quad, builds the shader program and sets the
// uniforms that stay constant for the lifetime of the program.
func (r *Renderer) InitScene(sprite *scene.Sprite, projection mgl32.Mat4) error {
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(scene.QuadVertices)*4, gl.Ptr(scene.QuadVertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.VertexAttribPointer(0, scene.FloatsPerVertex, gl.FLOAT, false, scene.FloatsPerVertex*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	var err error
	r.program, err = newProgram(shader.GetVertexShader(), shader.GetFragmentShader())
	if err != nil {
		return fmt.Errorf("failed to create quad program: %w", err)
	}

	gl.UseProgram(r.program)
	projectionLoc := r.uniformLocation(shader.UniformProjection)
	gl.UniformMatrix4fv(projectionLoc, 1, false, &projection[0])

	colorLoc := r.uniformLocation(shader.UniformColor)
	gl.Uniform3f(colorLoc, sprite.Color.X(), sprite.Color.Y(), sprite.Color.Z())

	r.modelLoc = r.uniformLocation(shader.UniformModel)
	r.sprite = sprite
	return nil
}

func (r *Renderer) uniformLocation(name string) int32 {
	loc := gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	if loc < 0 {
		log.Printf("Warning: uniform %q not found in program", name)
	}
	return loc
}

// RenderFrame draws the sprite at its current position, then advances it.
func (r *Renderer) RenderFrame() {
	gl.ClearColor(scene.ClearColor[0], scene.ClearColor[1], scene.ClearColor[2], scene.ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	model := r.sprite.Model()
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	r.sprite.Step()

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, scene.VertexCount)
}

// Run renders until the window is closed.
func (r *Renderer) Run() {
	stats := newFrameStats(r.statsInterval, r.context.Time())
	var frameCount int64

	for !r.context.ShouldClose() {
		r.RenderFrame()
		r.context.EndFrame()
		frameCount++

		if fps, ok := stats.tick(r.context.Time()); ok {
			log.Printf("frame %d: %.1f fps, sprite at %v", frameCount, fps, r.sprite.Position)
		}
	}
}
