package simulation

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// Result summarises a headless run.
type Result struct {
	Frames      int
	Respawns    int
	Kills       int
	EnemiesLeft int
	Finished    bool
	Quit        bool
}

// Runner steps a world from a script without a window. With a positive tick
// rate it is paced by a ticker, otherwise it runs as fast as it can.
type Runner struct {
	ecs       *ecs.ECS
	script    Script
	tickRate  int
	maxFrames int
	stopChan  chan struct{}
}

// NewRunner creates a runner that stops after maxFrames ticks, or at the end
// of the script when maxFrames is zero.
func NewRunner(e *ecs.ECS, script Script, tickRate, maxFrames int) *Runner {
	return &Runner{
		ecs:       e,
		script:    script,
		tickRate:  tickRate,
		maxFrames: maxFrames,
		stopChan:  make(chan struct{}),
	}
}

// Run steps the world until it stops running, the frame limit is reached, ctx
// is done or Stop is called.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	limit := r.maxFrames
	if limit <= 0 {
		limit = len(r.script)
	}

	var tick <-chan time.Time
	if r.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	log.Debug("runner started", "tps", r.tickRate, "frames", limit)

	for i := 0; i < limit && Running(r.ecs); i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.result(), ctx.Err()
			case <-r.stopChan:
				return r.result(), nil
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return r.result(), ctx.Err()
			case <-r.stopChan:
				return r.result(), nil
			default:
			}
		}
		Step(r.ecs, r.script.At(i))
	}

	res := r.result()
	log.Debug("runner stopped", "frames", res.Frames, "finished", res.Finished)
	return res, nil
}

// Stop ends Run before its next tick. It must be called at most once.
func (r *Runner) Stop() {
	close(r.stopChan)
}

func (r *Runner) result() Result {
	state := State(r.ecs)
	return Result{
		Frames:      state.Frame,
		Respawns:    state.Respawns,
		Kills:       state.Kills,
		EnemiesLeft: len(Roster(r.ecs).Enemies),
		Finished:    state.Finished,
		Quit:        state.Quit,
	}
}
