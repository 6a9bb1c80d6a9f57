package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/config"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/console"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/fleet"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/rand"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/simulation"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/pkg/logger"
)

var (
	// Version is injected at build time
	Version = "dev"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file (optional - will search in configs/ and root directory)")
	flag.Parse()

	// Load configuration with fallback logic
	cfg, loadedFrom, err := config.LoadWithFallback(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create logger
	log, err := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting airport simulation",
		logger.String("version", Version),
		logger.String("config_path", loadedFrom),
		logger.String("fuel_policy", cfg.Simulation.FuelPolicy),
	)

	// Already checked by Validate
	policy, _ := fleet.ParseFuelPolicy(cfg.Simulation.FuelPolicy)

	f := fleet.Standard(rand.New())
	f.StatusChangeChance = cfg.Simulation.StatusChangeChance
	f.FuelPolicy = policy
	simulationService := simulation.NewService(f, log)

	keyboard, err := console.OpenKeyboard(os.Stdin)
	if err != nil {
		log.Error("Failed to open keyboard", logger.Error(err))
		fmt.Fprintf(os.Stderr, "Error opening keyboard: %v\n", err)
		os.Exit(1)
	}

	renderer := console.NewRenderer(keyboard.Output(os.Stdout), cfg.Console.ClearScreen)
	interval := time.Duration(cfg.Simulation.TickIntervalMs) * time.Millisecond
	driver := console.NewDriver(simulationService, renderer, keyboard.Keys(), interval, log)

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Leaving the loop ends the whole program
		defer cancel()
		return driver.Run(ctx)
	})
	if cfg.Simulation.ReportIntervalSecs > 0 {
		g.Go(func() error {
			return simulationService.Report(ctx, time.Duration(cfg.Simulation.ReportIntervalSecs)*time.Second)
		})
	}
	runErr := g.Wait()

	if err := keyboard.Close(); err != nil {
		log.Error("Failed to restore terminal", logger.Error(err))
	}
	if runErr != nil {
		log.Error("Simulation stopped with error", logger.Error(runErr))
		fmt.Fprintf(os.Stderr, "Simulation error: %v\n", runErr)
		os.Exit(1)
	}

	log.Info("Simulation stopped", logger.Int("ticks", simulationService.Ticks()))
}
