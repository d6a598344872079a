// Package game drives the simulation: it owns the frame loop, decides when
// to stop and hands every generation to a renderer.
package game

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sheikhrachel/lifer/model"
	"github.com/sheikhrachel/lifer/render"
	"github.com/sheikhrachel/lifer/utils"
)

// StopReason says why a run ended
type StopReason string

const (
	StopCancelled   StopReason = "cancelled"
	StopLifespan    StopReason = "lifespan elapsed"
	StopGenerations StopReason = "generation limit reached"
	StopStagnation  StopReason = "stagnation detected"
)

// Options controls the frame loop
type Options struct {
	Lifespan            time.Duration // 0 runs until cancelled
	FrameRate           time.Duration
	MaxGenerations      int // 0 for no limit
	Workers             int
	StagnationThreshold int
	AutoRestart         bool
}

// OptionsFromConfig picks the loop settings out of the game configuration
func OptionsFromConfig(c utils.Config) Options {
	return Options{
		Lifespan:            c.Lifespan,
		FrameRate:           c.FrameRate,
		MaxGenerations:      c.MaxGenerations,
		Workers:             c.Workers,
		StagnationThreshold: c.StagnationThreshold,
		AutoRestart:         c.AutoRestart,
	}
}

// Seeder builds a fresh grid when the game restarts
type Seeder func() (*model.Grid, error)

// Result summarizes a finished run
type Result struct {
	Generations int
	Population  int
	Restarts    int
	Reason      StopReason
}

// Game runs a grid through successive generations
type Game struct {
	grid     *model.Grid
	renderer render.Renderer
	seeder   Seeder
	opts     Options
	logger   *zap.Logger
	history  *model.History
	stats    *utils.Stats
}

// New creates a game. seeder may be nil when AutoRestart is off.
func New(grid *model.Grid, renderer render.Renderer, seeder Seeder, opts Options, logger *zap.Logger) (*Game, error) {
	if grid == nil || renderer == nil {
		return nil, errors.New("[game.New] grid and renderer are required")
	}
	if opts.AutoRestart && seeder == nil {
		return nil, errors.New("[game.New] auto restart needs a seeder")
	}
	if opts.StagnationThreshold <= 0 {
		opts.StagnationThreshold = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		grid:     grid,
		renderer: renderer,
		seeder:   seeder,
		opts:     opts,
		logger:   logger,
		history:  model.NewHistory(0),
		stats:    utils.NewStats(),
	}, nil
}

// Grid returns the current generation
func (g *Game) Grid() *model.Grid {
	return g.grid
}

// Stats returns the running statistics
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Run draws the initial generation and keeps stepping until ctx is done,
// the lifespan elapses, the generation limit is hit or the grid stagnates
func (g *Game) Run(ctx context.Context) (Result, error) {
	if g.opts.Lifespan > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Lifespan)
		defer cancel()
	}

	var (
		res           Result
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	if err := g.draw(0); err != nil {
		return res, err
	}
	g.history.Observe(g.grid)

	ticker := time.NewTicker(max(g.opts.FrameRate, time.Millisecond))
	defer ticker.Stop()

	for {
		if g.opts.MaxGenerations > 0 && res.Generations >= g.opts.MaxGenerations {
			return g.finish(res, StopGenerations), nil
		}

		select {
		case <-ctx.Done():
			reason := StopCancelled
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				reason = StopLifespan
			}
			return g.finish(res, reason), nil
		case <-ticker.C:
		}

		g.grid.StepParallel(g.opts.Workers)
		res.Generations++

		frameStart := time.Now()
		g.stats.Update(res.Generations, g.grid.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if err := g.draw(res.Generations); err != nil {
			return res, err
		}

		if !g.history.Observe(g.grid) {
			stagnantCount = 0
			continue
		}
		stagnantCount++
		g.logger.Debug("repeated generation", zap.Int("generation", res.Generations), zap.Int("stagnant", stagnantCount))
		if stagnantCount < g.opts.StagnationThreshold {
			continue
		}
		if !g.opts.AutoRestart {
			return g.finish(res, StopStagnation), nil
		}
		if err := g.restart(res.Generations); err != nil {
			return res, err
		}
		res.Restarts++
		stagnantCount = 0
	}
}

func (g *Game) draw(generation int) error {
	if err := g.renderer.Draw(render.FrameOf(g.grid, generation)); err != nil {
		return errors.Wrapf(err, "[Game.Run] failed to draw generation %d", generation)
	}
	return nil
}

func (g *Game) restart(generation int) error {
	grid, err := g.seeder()
	if err != nil {
		return errors.Wrap(err, "[Game.Run] failed to reseed grid")
	}
	if grid.Width() != g.grid.Width() || grid.Height() != g.grid.Height() {
		return errors.Errorf("[Game.Run] reseeded grid is %dx%d, want %dx%d",
			grid.Width(), grid.Height(), g.grid.Width(), g.grid.Height())
	}
	g.logger.Info("restarting stagnant grid",
		zap.Int("generation", generation),
		zap.Int("population", g.grid.Population()),
		zap.Int("new_population", grid.Population()))
	g.grid = grid
	g.history.Reset()
	g.history.Observe(g.grid)
	return nil
}

func (g *Game) finish(res Result, reason StopReason) Result {
	res.Reason = reason
	res.Population = g.grid.Population()
	g.logger.Info("simulation stopped",
		zap.String("reason", string(reason)),
		zap.Int("restarts", res.Restarts),
		g.stats.Field())
	return res
}
