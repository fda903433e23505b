// Command tracer renders one of a fixed set of scenes to a PNG file.
//
//	tracer -scene spheres -width 800 -height 450 -samples 64 -o render.png
//	tracer -config render.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gazed/tracer/camera"
	"github.com/gazed/tracer/imageio"
	"github.com/gazed/tracer/render"
	"github.com/gazed/tracer/scenebuild"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tracer", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (flags below override it where set)")
	width := fs.Int("width", 0, "image width in pixels")
	height := fs.Int("height", 0, "image height in pixels")
	samples := fs.Int("samples", 0, "samples per pixel")
	threads := fs.Int("threads", 0, "worker-pool size (0 = hardware parallelism)")
	scene := fs.String("scene", "", `scene to render: "spheres" or "instanced"`)
	output := fs.String("o", "", "output PNG path")
	instances := fs.Int("instances", 500, `instance count for the "instanced" scene`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := render.NewConfig()
	if *configPath != "" {
		loaded, err := render.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("tracer: %w", err)
		}
		cfg = loaded
	}
	cfg = render.NewConfig(configOverrides(cfg, *width, *height, *samples, *threads, *scene, *output)...)

	if meshFolder := os.Getenv("MESH_FOLDER"); meshFolder != "" {
		cfg.MeshFolder = meshFolder
	}

	root, cam, err := buildScene(cfg.Scene, *instances)
	if err != nil {
		return fmt.Errorf("tracer: %w", err)
	}

	img := render.NewImage(cfg.Width, cfg.Height)
	driver := render.NewDriver(cfg.Threads, cfg.Samples)
	driver.Render(img, cam, root)

	if err := imageio.WritePNG(cfg.Output, img); err != nil {
		return fmt.Errorf("tracer: %w", err)
	}
	slog.Info("wrote image", "path", cfg.Output)
	return nil
}

// configOverrides builds the Attr list that layers nonzero flag values over
// an already-resolved Config (from defaults or a loaded file).
func configOverrides(cfg render.Config, width, height, samples, threads int, scene, output string) []render.Attr {
	return []render.Attr{
		render.Size(orDefault(width, cfg.Width), orDefault(height, cfg.Height)),
		render.SamplesPerPixel(orDefault(samples, cfg.Samples)),
		render.Threads(orDefault(threads, cfg.Threads)),
		render.Scene(orDefaultStr(scene, cfg.Scene)),
		render.Output(orDefaultStr(output, cfg.Output)),
		render.MeshFolder(cfg.MeshFolder),
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func orDefaultStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// buildScene dispatches to one of scenebuild's fixed constructors by name.
func buildScene(name string, instances int) (render.Root, *camera.Camera, error) {
	switch name {
	case "instanced":
		root, cam, err := scenebuild.InstancedGrid(instances)
		return root, cam, err
	case "spheres", "":
		root, cam, err := scenebuild.Spheres()
		return root, cam, err
	default:
		return nil, nil, fmt.Errorf("unknown scene %q", name)
	}
}
