package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus-life/utils"
)

const defaultConfigFile = "config.json"

func main() {
	configFile := configFileFromArgs(os.Args[1:])

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("config: %v", err)
		}
		log.Printf("using default configuration (%s not found)", configFile)
		config = utils.DefaultConfig()
	}
	flag.String("config", configFile, "path to a JSON config file")
	config.BindFlags(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(sigCtx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stats := utils.NewStats()

	eg.Go(func() error {
		defer cancel()
		reason, err := runSimulation(ctx, config, os.Stdout, stats)
		if err != nil {
			return err
		}
		displayFinalStats(os.Stdout, reason, stats)
		return nil
	})

	if config.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           metricsMux(stats),
			ReadHeaderTimeout: 5 * time.Second,
		}
		eg.Go(func() error {
			log.Printf("metrics endpoint listening on %s/metrics", config.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err = eg.Wait(); err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
}

func metricsMux(stats *utils.Stats) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", stats.Handler())
	return mux
}

// configFileFromArgs finds -config ahead of the full flag parse so that the
// remaining flags override values loaded from the file.
func configFileFromArgs(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return defaultConfigFile
}
