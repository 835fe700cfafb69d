package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sheikhrachel/go-torus-life/model"
	"github.com/sheikhrachel/go-torus-life/utils"
)

const (
	stopExtinct     = "extinction"
	stopMaxGen      = "maximum generations reached"
	stopCycle       = "cycle detected"
	stopInterrupted = "interrupted"
)

// initializeGame builds the randomized starting grid
func initializeGame(config utils.Config) (*model.Grid, error) {
	var opts []model.Option
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}
	grid, err := model.NewGrid(config.Width, config.Height, opts...)
	if err != nil {
		return nil, err
	}
	grid.Randomize()
	return grid, nil
}

// cycleDetector remembers the hashes of the last few generations
type cycleDetector struct {
	window  int
	history []string
}

// seen records hash and reports whether it was already in the window
func (c *cycleDetector) seen(hash string) bool {
	repeated := false
	for _, h := range c.history {
		if h == hash {
			repeated = true
			break
		}
	}
	c.history = append(c.history, hash)
	if len(c.history) > c.window {
		c.history = c.history[1:]
	}
	return repeated
}

// checkStopConditions determines if the simulation should end before the next tick
func checkStopConditions(grid *model.Grid, config utils.Config, cycles *cycleDetector) (bool, string) {
	if !grid.IsAlive() {
		return true, stopExtinct
	}
	if config.MaxGenerations > 0 && grid.Generation() >= config.MaxGenerations {
		return true, stopMaxGen
	}
	if cycles != nil && cycles.seen(grid.Hash()) {
		return true, stopCycle
	}
	return false, ""
}

// pause waits for d or until ctx is done
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// runSimulation renders generation 0, then clears, advances and renders until a stop condition holds
func runSimulation(ctx context.Context, config utils.Config, out io.Writer, stats *utils.Stats) (string, error) {
	grid, err := initializeGame(config)
	if err != nil {
		return "", err
	}
	renderer := model.NewTerminalRenderer(out)

	var cycles *cycleDetector
	if config.StopOnCycle {
		cycles = &cycleDetector{window: config.CycleWindow}
	}

	stats.SetPopulation(grid.CountLivingCells())
	if err = renderer.Display(grid); err != nil {
		return "", err
	}

	for {
		if stop, reason := checkStopConditions(grid, config, cycles); stop {
			return reason, nil
		}
		if err = renderer.Clear(); err != nil {
			return "", err
		}

		tickStart := time.Now()
		grid.Advance()
		stats.Observe(grid.CountLivingCells(), time.Since(tickStart))

		if err = renderer.Display(grid); err != nil {
			return "", err
		}
		if pause(ctx, time.Duration(config.FrameRate)) != nil {
			return stopInterrupted, nil
		}
	}
}

// displayFinalStats prints the summary once the loop ends
func displayFinalStats(out io.Writer, reason string, stats *utils.Stats) {
	fmt.Fprintf(out, "Stopped: %s\n", reason)
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
}
