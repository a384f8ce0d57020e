package animation

import (
	"context"
	"image"
	"sync"
	"testing"
	"time"

	"slideshow/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frameRecorder struct {
	mu     sync.Mutex
	frames []image.Image
}

func (recorder *frameRecorder) record(frame image.Image) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.frames = append(recorder.frames, frame)
}

func (recorder *frameRecorder) count() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return len(recorder.frames)
}

func frames(count int) []image.Image {
	out := make([]image.Image, count)
	for i := range out {
		out[i] = image.NewRGBA(image.Rect(0, 0, i+1, 1))
	}
	return out
}

func animated(count, loopCount int) *media.Media {
	delays := make([]time.Duration, count)
	for i := range delays {
		delays[i] = time.Millisecond
	}
	return &media.Media{Frames: frames(count), Delays: delays, LoopCount: loopCount}
}

func TestPlayStillShowsSingleFrame(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(DefaultConfig(), recorder.record)
	still := &media.Media{Frames: frames(1)}

	engine.Play(context.Background(), still)
	engine.Wait()

	require.Equal(t, 1, recorder.count())
	assert.Same(t, still.Frames[0], recorder.frames[0])
}

func TestPlayOnceShowsEachFrame(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{MinFrameDelay: time.Millisecond}, recorder.record)
	item := animated(3, -1)

	engine.Play(context.Background(), item)
	engine.Wait()

	require.Equal(t, 3, recorder.count())
	for i, frame := range item.Frames {
		assert.Same(t, frame, recorder.frames[i])
	}
}

func TestPlayRespectsLoopCount(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{MinFrameDelay: time.Millisecond}, recorder.record)

	engine.Play(context.Background(), animated(2, 2))
	engine.Wait()

	assert.Equal(t, 6, recorder.count())
}

func TestStopEndsInfiniteLoop(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{MinFrameDelay: time.Millisecond}, recorder.record)

	engine.Play(context.Background(), animated(2, 0))
	require.Eventually(t, func() bool { return recorder.count() > 4 }, time.Second, time.Millisecond)

	engine.Stop()
	stopped := recorder.count()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, recorder.count())
}

func TestPlaySupersedesPrevious(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{MinFrameDelay: time.Millisecond}, recorder.record)
	first := animated(2, 0)
	second := &media.Media{Frames: frames(1)}

	engine.Play(context.Background(), first)
	engine.Play(context.Background(), second)
	settled := recorder.count()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, settled, recorder.count())
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Same(t, second.Frames[0], recorder.frames[len(recorder.frames)-1])
}

func TestContextCancelStopsPlayback(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{MinFrameDelay: time.Millisecond}, recorder.record)
	ctx, cancel := context.WithCancel(context.Background())

	engine.Play(ctx, animated(2, 0))
	cancel()
	engine.Wait()
}

func TestPlayNilMedia(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(Config{}, recorder.record)
	engine.Play(context.Background(), nil)
	engine.Wait()
	assert.Zero(t, recorder.count())
}
