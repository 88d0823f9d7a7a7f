package core

import "context"

// Simulation is the part of a game the headless loop drives.
type Simulation interface {
	Step(in InputFrame) StepResult
	Render(r Renderer)
}

// Result summarizes a finished loop.
type Result struct {
	Outcome       Outcome
	Score         int
	Frames        int
	ElapsedMillis int64
}

// LoopOptions tune RunLoop.
type LoopOptions struct {
	// MaxFrames stops the loop after this many frames (0 = unlimited).
	// The outcome is OutcomeNone when the limit is hit.
	MaxFrames int
	// OnStep is called after every frame with its result.
	OnStep func(frame int, res StepResult)
}

// RunLoop drives sim one frame at a time: poll input, step, render, pace.
// It returns when the game reports an outcome, the frame limit is reached,
// or ctx is cancelled (reported as OutcomeQuit).
func RunLoop(ctx context.Context, sim Simulation, src InputSource, r Renderer, pacer Pacer, opts LoopOptions) (Result, error) {
	if pacer == nil {
		pacer = NoPacer{}
	}

	var res Result
	for {
		if err := ctx.Err(); err != nil {
			res.Outcome = OutcomeQuit
			return res, nil
		}

		step := sim.Step(src.Poll())
		res.Frames++
		res.Score = step.State.Score
		res.ElapsedMillis = step.State.ElapsedMillis

		if r != nil {
			sim.Render(r)
		}
		if opts.OnStep != nil {
			opts.OnStep(res.Frames, step)
		}

		if step.State.GameOver {
			res.Outcome = step.State.Outcome
			return res, nil
		}
		if opts.MaxFrames > 0 && res.Frames >= opts.MaxFrames {
			return res, nil
		}

		if err := pacer.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				res.Outcome = OutcomeQuit
				return res, nil
			}
			return res, err
		}
	}
}
