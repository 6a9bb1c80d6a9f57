package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/internal/fleet"
	"github.com/BlessingsBlessedChongo/AirportSimulationSystem/pkg/logger"
)

// Config represents the main application configuration structure
// containing all configuration sections
type Config struct {
	Simulation SimulationConfig `toml:"simulation"` // Tick loop and fleet behaviour
	Logging    LoggingConfig    `toml:"logging"`    // Application logging settings
	Console    ConsoleConfig    `toml:"console"`    // Terminal rendering settings
}

// SimulationConfig contains settings for the tick loop
type SimulationConfig struct {
	TickIntervalMs     int     `toml:"tick_interval_ms"`     // Wall-clock time between ticks in milliseconds
	StatusChangeChance float64 `toml:"status_change_chance"` // Probability that an airplane advances status on a tick (0-1]
	FuelPolicy         string  `toml:"fuel_policy"`          // What an empty tank means: "ground" or "ignore"
	ReportIntervalSecs int     `toml:"report_interval_secs"` // How often to log a fleet summary (0 = never)
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level      string `toml:"level"`       // Log level: "debug", "info", "warn", or "error"
	Format     string `toml:"format"`      // Log format: "json" (structured) or "console" (human-readable)
	File       string `toml:"file"`        // Log file path; empty logs to stderr, which shares the terminal with the table
	MaxSizeMB  int    `toml:"max_size_mb"` // Rotate the log file after this many megabytes
	MaxBackups int    `toml:"max_backups"` // Number of rotated log files to keep
}

// ConsoleConfig contains terminal rendering settings
type ConsoleConfig struct {
	ClearScreen bool `toml:"clear_screen"` // Clear the terminal before redrawing the table
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickIntervalMs:     1000,
			StatusChangeChance: fleet.DefaultStatusChangeChance,
			FuelPolicy:         fleet.FuelPolicyGround.String(),
			ReportIntervalSecs: 30,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			File:       "airsim.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Console: ConsoleConfig{
			ClearScreen: true,
		},
	}
}

// Load loads the configuration from the specified file path. Values not
// present in the file keep their defaults.
func Load(path string) (*Config, error) {
	config := Default()

	// Check if the file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read the config file
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// LoadWithFallback loads the configuration by checking multiple locations
// in order of preference. If none exists the defaults are returned; an
// explicitly requested path that is missing is an error.
func LoadWithFallback(preferredPath string) (*Config, string, error) {
	if preferredPath != "" {
		config, err := Load(preferredPath)
		if err != nil {
			return nil, "", err
		}
		return config, preferredPath, nil
	}

	searchPaths := []string{
		"configs/config.toml",
		"config.toml",
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			config, err := Load(path)
			if err != nil {
				return nil, "", fmt.Errorf("failed to load config from %s: %w", path, err)
			}
			return config, path, nil
		}
	}

	return Default(), "", nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate simulation config
	if c.Simulation.TickIntervalMs <= 0 {
		return fmt.Errorf("invalid tick_interval_ms: %d (must be > 0)", c.Simulation.TickIntervalMs)
	}
	if c.Simulation.StatusChangeChance <= 0 || c.Simulation.StatusChangeChance > 1 {
		return fmt.Errorf("invalid status_change_chance: %f (must be in (0, 1])", c.Simulation.StatusChangeChance)
	}
	if c.Simulation.ReportIntervalSecs < 0 {
		return fmt.Errorf("invalid report_interval_secs: %d (must be >= 0)", c.Simulation.ReportIntervalSecs)
	}
	if _, err := fleet.ParseFuelPolicy(c.Simulation.FuelPolicy); err != nil {
		return fmt.Errorf("invalid fuel_policy: %w", err)
	}

	// Validate logging config
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	} else if err := logger.CheckLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	} else if err := logger.CheckFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("invalid max_size_mb: %d", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxBackups < 0 {
		return fmt.Errorf("invalid max_backups: %d", c.Logging.MaxBackups)
	}

	return nil
}
