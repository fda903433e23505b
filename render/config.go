package render

// config.go reduces NewConfig's API footprint using functional options,
// the same pattern the engine package uses for its own Config/Attr.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every render-time setting the driver needs.
type Config struct {
	Width, Height int
	Samples       int
	Threads       int
	Scene         string
	Output        string
	MeshFolder    string
}

// configDefaults provides reasonable defaults so a render runs even if no
// configuration attributes are set.
var configDefaults = Config{
	Width:      400,
	Height:     300,
	Samples:    16,
	Threads:    0, // 0 means hardware parallelism; resolved by NewDriver.
	Scene:      "spheres",
	Output:     "out.png",
	MeshFolder: "",
}

// Attr defines an optional configuration attribute.
//
//	cfg := render.NewConfig(
//	    render.Size(800, 450),
//	    render.SamplesPerPixel(64),
//	    render.Output("render.png"),
//	)
type Attr func(*Config)

// NewConfig builds a Config from configDefaults, applying each attr in order.
func NewConfig(attrs ...Attr) Config {
	cfg := configDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}
	return cfg
}

// Size sets the output image dimensions in pixels.
func Size(w, h int) Attr {
	return func(c *Config) {
		if w > 0 {
			c.Width = w
		}
		if h > 0 {
			c.Height = h
		}
	}
}

// SamplesPerPixel sets the Monte-Carlo sample count per pixel.
func SamplesPerPixel(n int) Attr {
	return func(c *Config) {
		if n > 0 {
			c.Samples = n
		}
	}
}

// Threads sets the worker-pool size; 0 means hardware parallelism.
func Threads(n int) Attr {
	return func(c *Config) {
		if n >= 0 {
			c.Threads = n
		}
	}
}

// Scene selects one of the fixed scene constructors by name.
func Scene(name string) Attr {
	return func(c *Config) { c.Scene = name }
}

// Output sets the destination PNG path.
func Output(path string) Attr {
	return func(c *Config) { c.Output = path }
}

// MeshFolder sets the directory OBJ lookups resolve against.
func MeshFolder(dir string) Attr {
	return func(c *Config) { c.MeshFolder = dir }
}

// fileConfig mirrors Config's fields for YAML decoding; zero/absent keys
// are left as the Go zero value and do not override configDefaults.
type fileConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Samples    int    `yaml:"samples"`
	Threads    int    `yaml:"threads"`
	Scene      string `yaml:"scene"`
	Output     string `yaml:"output"`
	MeshFolder string `yaml:"meshFolder"`
}

// LoadConfig reads a YAML config file at path and layers it over
// configDefaults; any key absent from the file keeps its default.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("render: load config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("render: parse config %s: %w", path, err)
	}

	cfg := configDefaults
	if fc.Width > 0 {
		cfg.Width = fc.Width
	}
	if fc.Height > 0 {
		cfg.Height = fc.Height
	}
	if fc.Samples > 0 {
		cfg.Samples = fc.Samples
	}
	if fc.Threads > 0 {
		cfg.Threads = fc.Threads
	}
	if fc.Scene != "" {
		cfg.Scene = fc.Scene
	}
	if fc.Output != "" {
		cfg.Output = fc.Output
	}
	if fc.MeshFolder != "" {
		cfg.MeshFolder = fc.MeshFolder
	}
	return cfg, nil
}
