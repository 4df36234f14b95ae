package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/homestead3d/homestead-go/engine/profiler"
	"github.com/homestead3d/homestead-go/engine/scene"
)

// engine implements the Engine interface.
// Coordinates the fixed-rate tick loop that drives scene animation.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate     time.Duration
	tickCallback func(deltaTime float32)

	mu     sync.Mutex
	scenes map[int]scene.Scene
}

// Engine is the main entry point for the animation engine.
// It orchestrates the tick loop and scene registry.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// Registered scenes are advanced and the tick callback is called at this rate.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers the function called after every engine tick,
	// once all active scenes have been advanced. Use this to publish frame
	// state or drive side effects off the simulation.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddScene registers a scene at the given order key.
	// Scenes are advanced in ascending key order each tick.
	//
	// Parameters:
	//   - key: the order key (lower advances first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given order key.
	//
	// Parameters:
	//   - key: the order key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given order key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the order key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by order key.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the engine tick loop (blocks until Quit is called).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Initializes the tick rate channel and profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, scenes)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		scenes:           make(map[int]scene.Scene),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		tickRate:         time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()
	e.handle()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleTick()
	go e.handleQuit()
}

// handleTick runs the fixed-rate tick loop in its own goroutine.
// Advances active scenes in ascending key order, fires the tick callback,
// and listens for dynamic rate changes via tickRateChannel. Recovers from
// panics to avoid crashing the process and signals quit on recovery.
// Exits when the quit channel is closed.
func (e *engine) handleTick() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("tick goroutine recovered from panic")
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.advanceScenes(dt)

			e.mu.Lock()
			callback := e.tickCallback
			e.mu.Unlock()
			if callback != nil {
				callback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.tickRate = newRate
		}
	}
}

// advanceScenes advances all active scenes in ascending key order.
func (e *engine) advanceScenes(deltaTime float32) {
	e.mu.Lock()
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	ordered := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, e.scenes[k])
	}
	e.mu.Unlock()

	for _, s := range ordered {
		if s.Active() {
			s.Advance(deltaTime)
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	// Divide in float space so fractional rates (e.g. 0.5 ticks/sec) yield a
	// long interval instead of a zero divisor.
	newRate := time.Duration(float64(time.Second) / tps)

	e.mu.Lock()
	running := e.running
	e.mu.Unlock()

	if running {
		// Send to channel for immediate update in running tick loop
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.tickRate = newRate
	}
}

// SetTickCallback registers the function called after each engine tick.
// Safe to call while the engine is running; the new callback takes effect on
// the next tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
