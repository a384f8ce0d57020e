package animation

import (
	"context"
	"image"
	"sync"
	"time"

	"slideshow/internal/media"
)

// Config contains playback timing values.
type Config struct {
	// MinFrameDelay floors per-frame delays so broken files cannot spin.
	MinFrameDelay time.Duration
}

// DefaultConfig returns the playback defaults.
func DefaultConfig() Config {
	return Config{MinFrameDelay: 20 * time.Millisecond}
}

// Engine plays decoded media frames into a render callback.
type Engine struct {
	mu          sync.Mutex
	config      Config
	updateFrame func(image.Image)
	cancel      context.CancelFunc
	done        chan struct{}
}

// New creates a new animation engine.
func New(config Config, updateFrame func(image.Image)) *Engine {
	if config.MinFrameDelay <= 0 {
		config.MinFrameDelay = DefaultConfig().MinFrameDelay
	}
	return &Engine{
		config:      config,
		updateFrame: updateFrame,
	}
}

// Play shows the first frame and, for animations, keeps cycling frames until
// ctx is cancelled, the loop count runs out or another Play/Stop call
// supersedes it.
func (engine *Engine) Play(ctx context.Context, item *media.Media) {
	engine.mu.Lock()
	engine.stopLocked()
	engine.mu.Unlock()

	if item == nil || len(item.Frames) == 0 {
		return
	}
	engine.updateFrame(item.First())
	if !item.Animated() {
		return
	}

	engine.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		engine.run(runCtx, item)
	}()
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopLocked()
}

// Wait blocks until the current playback goroutine exits on its own.
func (engine *Engine) Wait() {
	engine.mu.Lock()
	done := engine.done
	engine.mu.Unlock()
	if done != nil {
		<-done
	}
}

// stopLocked cancels playback and waits for the goroutine so a stale frame
// can never land after the next Play has drawn its first one.
func (engine *Engine) stopLocked() {
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	if engine.done != nil {
		<-engine.done
		engine.done = nil
	}
}

func (engine *Engine) run(ctx context.Context, item *media.Media) {
	plays := item.LoopCount + 1
	if item.LoopCount < 0 {
		plays = 1
	}

	for played := 0; item.LoopCount == 0 || played < plays; played++ {
		for i := range item.Frames {
			if ctx.Err() != nil {
				return
			}
			if played > 0 || i > 0 {
				engine.updateFrame(item.Frames[i])
			}
			if !sleepWithContext(ctx, engine.frameDelay(item, i)) {
				return
			}
		}
	}
}

func (engine *Engine) frameDelay(item *media.Media, index int) time.Duration {
	delay := media.DefaultFrameDelay
	if index < len(item.Delays) {
		delay = item.Delays[index]
	}
	if delay < engine.config.MinFrameDelay {
		return engine.config.MinFrameDelay
	}
	return delay
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
