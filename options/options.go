package options

import (
	"flag"
	"fmt"
	"os"

	"github.com/richinsley/goquad/scene"
	"gopkg.in/yaml.v3"
)

type QuadOptions struct {
	ConfigFile *string
	Help       *bool
	Width      *int
	Height     *int
	Title      *string
	VSync      *bool
	Stats      *float64 // seconds between frame statistics log lines, 0 disables
	Sprite     scene.Sprite
}

// fileOptions is the YAML layout accepted by -config.
type fileOptions struct {
	Width  *int          `yaml:"width"`
	Height *int          `yaml:"height"`
	Title  *string       `yaml:"title"`
	VSync  *bool         `yaml:"vsync"`
	Stats  *float64      `yaml:"stats"`
	Sprite *scene.Sprite `yaml:"sprite"`
}

// Register binds the options to fs with their default values.
func Register(fs *flag.FlagSet) *QuadOptions {
	return &QuadOptions{
		ConfigFile: fs.String("config", "", "Path to a YAML file overriding the defaults"),
		Help:       fs.Bool("help", false, "Show help message"),
		Width:      fs.Int("width", 1366, "Width of the window"),
		Height:     fs.Int("height", 768, "Height of the window"),
		Title:      fs.String("title", "Game", "Window title"),
		VSync:      fs.Bool("vsync", false, "Wait for vertical sync when swapping buffers"),
		Stats:      fs.Float64("stats", 0, "Seconds between frame statistics log lines (0 disables)"),
		Sprite:     scene.DefaultSprite(),
	}
}

// Parse parses args into fs and applies -config, if given. Flags set on the
// command line take precedence over values from the file.
func Parse(fs *flag.FlagSet, args []string) (*QuadOptions, error) {
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *opts.ConfigFile == "" {
		return opts, nil
	}

	data, err := os.ReadFile(*opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := opts.merge(data, set); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", *opts.ConfigFile, err)
	}
	return opts, nil
}

func (o *QuadOptions) merge(data []byte, set map[string]bool) error {
	// Sprite fields missing from the file keep their current values.
	sprite := o.Sprite
	file := fileOptions{Sprite: &sprite}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.Width != nil && !set["width"] {
		*o.Width = *file.Width
	}
	if file.Height != nil && !set["height"] {
		*o.Height = *file.Height
	}
	if file.Title != nil && !set["title"] {
		*o.Title = *file.Title
	}
	if file.VSync != nil && !set["vsync"] {
		*o.VSync = *file.VSync
	}
	if file.Stats != nil && !set["stats"] {
		*o.Stats = *file.Stats
	}
	if file.Sprite != nil {
		o.Sprite = *file.Sprite
	}
	return nil
}

// Validate rejects settings the window or renderer cannot use.
func (o *QuadOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if o.Sprite.Size.X() <= 0 || o.Sprite.Size.Y() <= 0 {
		return fmt.Errorf("invalid sprite size %v", o.Sprite.Size)
	}
	if *o.Stats < 0 {
		return fmt.Errorf("stats interval must not be negative")
	}
	return nil
}
