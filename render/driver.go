package render

import (
	"log/slog"
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/gazed/tracer/camera"
	"github.com/gazed/tracer/geom"
)

// workerState is one worker's per-pixel scratch: its own RNG source,
// cache-line padded on both sides so adjacent workers' states never share a
// cache line under the pool's concurrent pixel writes.
type workerState struct {
	_   cpu.CacheLinePad
	src *geom.Source
	_   cpu.CacheLinePad
}

// Stats accumulates render counters, mirroring eg/rt.go's sampleCalls and
// traceCalls fields but updated atomically per worker and logged once via
// slog rather than a final log.Printf.
type Stats struct {
	Samples    int64
	Traces     int64
	ElapsedSec float64
}

// Driver owns the worker pool and drives one render pass over an image.
type Driver struct {
	Threads int
	Samples int

	pool *Pool
}

// NewDriver returns a driver with threads worker slots (0 means hardware
// parallelism) and samples Monte-Carlo samples per pixel.
func NewDriver(threads, samples int) *Driver {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if samples <= 0 {
		samples = 1
	}
	return &Driver{Threads: threads, Samples: samples, pool: NewPool(threads)}
}

// Render partitions width*height pixels across the worker pool in an
// interleaved strided assignment (worker i takes pixels i, i+N, i+2N, ...),
// samples each samplesPerPixel times with jittered rays from cam, gamma
// corrects by square root per channel, and writes into img at
// [col][height-row-1]. Logs the render statistics at Info level and returns
// them.
func (d *Driver) Render(img *Image, cam *camera.Camera, root Root) Stats {
	start := time.Now()

	workers := make([]workerState, d.Threads)
	for i := range workers {
		workers[i].src = geom.NewSource()
		workers[i].src.Reseed(defaultWorkerSeed)
	}

	var samplesMu sync.Mutex
	var samples, traces int64
	total := img.Width * img.Height
	width, height := img.Width, img.Height

	d.pool.Start()
	defer d.pool.Stop()

	d.pool.RunThreads(func(workerID int) {
		st := &workers[workerID]
		var localSamples, localTraces int64

		for idx := workerID; idx < total; idx += d.Threads {
			col := idx % width
			sampleRow := idx / width

			acc := geom.Vec3{}
			for s := 0; s < d.Samples; s++ {
				u := (float32(col) + st.src.Float()) / float32(width)
				v := (float32(sampleRow) + st.src.Float()) / float32(height)

				ray, err := cam.GetRay(u, v)
				if err != nil {
					continue
				}
				localSamples++
				acc = acc.Add(colorCounting(ray, root, st.src, &localTraces))
			}

			avg := acc.Scale(1 / float32(d.Samples))
			img.Set(col, height-sampleRow-1, gammaCorrect(avg))
		}

		samplesMu.Lock()
		samples += localSamples
		traces += localTraces
		samplesMu.Unlock()
	})

	stats := Stats{Samples: samples, Traces: traces, ElapsedSec: time.Since(start).Seconds()}
	slog.Info("render complete",
		"samples", stats.Samples,
		"traces", stats.Traces,
		"seconds", stats.ElapsedSec,
		"width", width, "height", height, "threads", d.Threads)
	return stats
}

// defaultWorkerSeed is the seed every worker's RNG stream starts from. All
// workers share it, so a pixel's samples depend on which worker renders it.
const defaultWorkerSeed = 42

// gammaCorrect applies sqrt per channel, the integrator's gamma correction
// step, and clamps to [0, 1].
func gammaCorrect(c geom.Vec3) Color {
	return Color{R: sqrtClamp(c.X), G: sqrtClamp(c.Y), B: sqrtClamp(c.Z)}
}

// sqrtClamp applies gamma-2 correction (sqrt) and clamps to [0, 1]; a
// negative input (never expected from the integrator, but cheap to guard)
// clamps to 0 rather than producing NaN.
func sqrtClamp(x float32) float32 {
	if x <= 0 {
		return 0
	}
	r := float32(math.Sqrt(float64(x)))
	if r > 1 {
		return 1
	}
	return r
}
