package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/lifer/game"
	"github.com/sheikhrachel/lifer/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Application error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	config, err := utils.LoadConfig(args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := utils.NewLogger(config.Log, config.Renderer == utils.RendererText)
	defer func() { _ = logger.Sync() }()

	seed := resolveSeed(config.Seed)
	seeder := newSeeder(config, seed)
	grid, err := seeder()
	if err != nil {
		return err
	}
	logger.Info("grid seeded",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.String("pattern", config.Pattern),
		zap.Int64("seed", seed),
		zap.Int("population", grid.Population()))

	renderer, screen, err := newRenderer(config)
	if err != nil {
		return err
	}

	g, err := game.New(grid, renderer, seeder, game.OptionsFromConfig(config), logger)
	if err != nil {
		_ = renderer.Close()
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		res    game.Result
		eg, gctx = errgroup.WithContext(ctx)
	)
	eg.Go(func() error {
		defer cancel()
		var runErr error
		res, runErr = g.Run(gctx)
		if err := renderer.Close(); err != nil && runErr == nil {
			runErr = err
		}
		return runErr
	})
	if screen != nil {
		eg.Go(func() error {
			screen.Watch(gctx, cancel)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	printSummary(res, g.Stats())
	return nil
}
