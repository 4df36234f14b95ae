package scene

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// ScatterKind identifies a decorative scatter asset class.
type ScatterKind int

const (
	// ScatterGrass is a grass tuft instance on the lawn.
	ScatterGrass ScatterKind = iota

	// ScatterCobble is a cobblestone instance on the garden path.
	ScatterCobble
)

// ScatterInstance is the placement of one decorative instance. The external
// renderer owns the meshes; the scene only produces positions, rotations,
// and scales.
type ScatterInstance struct {
	Kind     ScatterKind `json:"kind"`
	Position [3]float32  `json:"position"`
	Rotation float32     `json:"rotation"` // about the vertical axis, radians
	Scale    float32     `json:"scale"`
}

// ScatterPatch describes one circular region to fill with instances of a
// single kind.
type ScatterPatch struct {
	Kind     ScatterKind
	Count    int
	Center   [3]float32
	Radius   float32
	MinScale float32
	MaxScale float32
}

// generateScatter fills all patches with deterministically placed instances.
// Each patch derives its own rand source from the session seed, so patches
// can be filled in parallel on the worker pool while the overall layout stays
// reproducible for a given seed regardless of scheduling order. A WaitGroup
// provides the completion barrier, matching how per-frame pool work is
// synchronized elsewhere; pool.Wait blocks until workers idle-exit, which is
// unsuitable here.
func generateScatter(seed int64, patches []ScatterPatch, workers int) []ScatterInstance {
	if workers < 1 {
		workers = 1
	}

	total := 0
	offsets := make([]int, len(patches))
	for i, p := range patches {
		offsets[i] = total
		if p.Count > 0 {
			total += p.Count
		}
	}
	out := make([]ScatterInstance, total)

	pool := worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)

	var wg sync.WaitGroup
	for i, p := range patches {
		if p.Count <= 0 {
			continue
		}

		wg.Add(1)
		patch := p
		dst := out[offsets[i] : offsets[i]+p.Count]
		patchSeed := seed + int64(i)*1_000_003
		id := i
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				fillPatch(dst, patch, patchSeed)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out
}

// fillPatch places instances uniformly over the patch disc with randomized
// rotation and scale.
func fillPatch(dst []ScatterInstance, p ScatterPatch, seed int64) {
	rng := rand.New(rand.NewSource(seed))

	minScale := p.MinScale
	maxScale := p.MaxScale
	if minScale <= 0 {
		minScale = 1
	}
	if maxScale < minScale {
		maxScale = minScale
	}

	for i := range dst {
		// sqrt on the radial draw keeps density uniform over the disc area.
		r := float64(p.Radius) * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi

		dst[i] = ScatterInstance{
			Kind: p.Kind,
			Position: [3]float32{
				p.Center[0] + float32(r*math.Cos(theta)),
				p.Center[1],
				p.Center[2] + float32(r*math.Sin(theta)),
			},
			Rotation: float32(rng.Float64() * 2 * math.Pi),
			Scale:    minScale + float32(rng.Float64())*(maxScale-minScale),
		}
	}
}
