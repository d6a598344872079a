package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/lifer/game"
	"github.com/sheikhrachel/lifer/model"
	"github.com/sheikhrachel/lifer/render"
	"github.com/sheikhrachel/lifer/utils"
)

// resolveSeed picks a clock-based seed when none was configured
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func newSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// newSeeder returns a function producing the configured starting grid. All
// grids it builds share one random source, so restarts differ from each other.
func newSeeder(config utils.Config, seed int64) game.Seeder {
	rng := newSource(seed)
	return func() (*model.Grid, error) {
		return model.Seed(config.Pattern, config.Width, config.Height, rng)
	}
}

// newRenderer builds the configured renderer. The screen is also returned
// when it is in use so the caller can watch it for key presses.
func newRenderer(config utils.Config) (render.Renderer, *render.Screen, error) {
	live, dead := []rune(config.LiveGlyph)[0], []rune(config.DeadGlyph)[0]

	if config.Renderer == utils.RendererText {
		return render.NewText(os.Stdout, live, dead, isTerminal(os.Stdout)), nil, nil
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	screen, err := render.NewScreen(ts, live, dead)
	if err != nil {
		return nil, nil, err
	}
	return screen, screen, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// printSummary shows the final stats once the terminal is restored
func printSummary(res game.Result, stats *utils.Stats) {
	fmt.Printf("🏁 Stopped: %s\n", res.Reason)
	fmt.Printf("Final stats: %d generations in %.1f seconds, %d living cells\n",
		res.Generations, time.Since(stats.StartTime).Seconds(), res.Population)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d restarts\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, res.Restarts)
}
