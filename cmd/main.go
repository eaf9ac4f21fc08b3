package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	glfwcontext "github.com/richinsley/goquad/glfwcontext"
	options "github.com/richinsley/goquad/options"
	renderer "github.com/richinsley/goquad/renderer"
	scene "github.com/richinsley/goquad/scene"
)

func runQuad(opts *options.QuadOptions) {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	defer ctx.Shutdown()

	r, err := renderer.NewRenderer(ctx, *opts.Stats)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	sprite := opts.Sprite
	projection := scene.Projection(float32(*opts.Width), float32(*opts.Height))
	if err := r.InitScene(&sprite, projection); err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}

	log.Println("Starting render loop...")
	r.Run()
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Error parsing options: %v", err)
	}

	if *opts.Help {
		fmt.Println("Moving quad demo")
		flag.PrintDefaults()
		return
	}

	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	log.Printf("Opening %dx%d window %q", *opts.Width, *opts.Height, *opts.Title)
	runQuad(opts)
}
