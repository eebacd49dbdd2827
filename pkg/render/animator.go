package render

import (
	"context"
	"math"
	"time"
)

// Sink consumes one completed frame per tick. Implementations decide
// where the grid ends up: a terminal, a buffer, a file. The frame is
// fully populated before Emit is called and never touched afterwards.
type Sink interface {
	Emit(*Frame) error
}

// Animator is the frame driver: it maps ticks to spin angles, renders
// each frame through the pipeline, and emits it to a sink at a fixed
// interval. It keeps no state across ticks beyond the tick counter.
type Animator struct {
	renderer *Renderer
	rate     float32 // radians per tick
	distance float32 // camera offset down the view axis
}

// NewAnimator creates an animator spinning at rate radians per tick with
// the mesh pushed distance units away from the camera.
func NewAnimator(renderer *Renderer, rate, distance float32) *Animator {
	return &Animator{
		renderer: renderer,
		rate:     rate,
		distance: distance,
	}
}

// AngleAt returns the spin angle for a tick, reduced modulo 2π so that
// arbitrarily large tick counts stay exact. The reduction happens in
// float64 before narrowing; tick*rate only loses integer precision past
// 2^53, far beyond any realistic run.
func (a *Animator) AngleAt(tick uint64) float32 {
	return float32(math.Mod(float64(tick)*float64(a.rate), 2*math.Pi))
}

// FrameAt renders the frame for a single tick.
func (a *Animator) FrameAt(tick uint64) *Frame {
	return a.renderer.Render(SpinTransform(a.AngleAt(tick), a.distance))
}

// Run emits frames to the sink every interval until the context is
// cancelled or, when frames is non-zero, that many frames have been
// emitted. The loop is single-threaded: each tick renders and emits
// completely before the pacing sleep.
func (a *Animator) Run(ctx context.Context, sink Sink, interval time.Duration, frames uint64) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for tick := uint64(0); ; tick++ {
		if err := sink.Emit(a.FrameAt(tick)); err != nil {
			return err
		}
		if frames != 0 && tick+1 >= frames {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
