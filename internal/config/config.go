package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/stopwatch/internal/domain/timer"
	"github.com/oshokin/stopwatch/internal/logger"
)

// Config holds the settings shared by the stopwatch commands.
type Config struct {
	// LogFile is where the interactive widget writes its log. Empty discards logs.
	LogFile string `yaml:"log_file"`
	// LogLevel is the minimum level written to the log.
	LogLevel string `yaml:"log_level"`
	// CountdownDefault pre-fills the countdown input field.
	CountdownDefault string `yaml:"countdown_default"`
	// Exclusive refuses to start while another stopwatch process is running.
	Exclusive bool `yaml:"exclusive"`
	// Chime configures the completion sound.
	Chime ChimeConfig `yaml:"chime"`
	// Theme configures widget colors.
	Theme ThemeConfig `yaml:"theme"`
}

// ChimeConfig configures the sound played when a countdown finishes.
type ChimeConfig struct {
	// Enabled turns the chime on.
	Enabled bool `yaml:"enabled"`
	// Volume is the chime loudness from 0 to 1.
	Volume float64 `yaml:"volume"`
	// SampleRate is the speaker sample rate in Hz.
	SampleRate int `yaml:"sample_rate"`
}

// ThemeConfig holds lipgloss color strings (ANSI numbers or hex).
type ThemeConfig struct {
	Accent string `yaml:"accent"`
	Alert  string `yaml:"alert"`
	Muted  string `yaml:"muted"`
}

const (
	// DefaultConfigFilename is the default settings file.
	DefaultConfigFilename = "stopwatch-settings.yaml"

	// DefaultLogFilename is the default log file of the interactive widget.
	DefaultLogFilename = "stopwatch.log"

	// DefaultChimeVolume is the default chime loudness.
	DefaultChimeVolume = 0.6

	// DefaultSampleRate is the default speaker sample rate.
	DefaultSampleRate = 48000

	// DefaultFilePermissions is the permission of files written by Save.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errBadVolume is returned for a chime volume outside 0..1.
	errBadVolume = errors.New("chime volume must be between 0 and 1")
	// errBadSampleRate is returned for a non-positive sample rate.
	errBadSampleRate = errors.New("chime sample rate must be positive")
	// errBadLogLevel is returned for an unknown log level.
	errBadLogLevel = errors.New("unknown log level")
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogFile:  DefaultLogFilename,
		LogLevel: "info",
		Chime: ChimeConfig{
			Enabled:    true,
			Volume:     DefaultChimeVolume,
			SampleRate: DefaultSampleRate,
		},
		Theme: DefaultTheme(),
	}
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Accent: "63",
		Alert:  "196",
		Muted:  "241",
	}
}

// Load reads settings from path on top of the defaults and validates them.
// An empty path means DefaultConfigFilename; a missing default file yields defaults.
func Load(path string) (*Config, error) {
	explicit := path != "" && path != DefaultConfigFilename
	if path == "" {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return cfg, nil
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in empty optional fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errBadLogLevel, cfg.LogLevel)
	}

	if cfg.Chime.Volume < 0 || cfg.Chime.Volume > 1 {
		return fmt.Errorf("%w: %v", errBadVolume, cfg.Chime.Volume)
	}

	if cfg.Chime.SampleRate < 0 {
		return fmt.Errorf("%w: %d", errBadSampleRate, cfg.Chime.SampleRate)
	}

	if cfg.Chime.SampleRate == 0 {
		cfg.Chime.SampleRate = DefaultSampleRate
	}

	if cfg.CountdownDefault != "" {
		if _, err := timer.ParseCountdown(cfg.CountdownDefault); err != nil {
			return fmt.Errorf("countdown_default: %w", err)
		}
	}

	defaults := DefaultTheme()
	if cfg.Theme.Accent == "" {
		cfg.Theme.Accent = defaults.Accent
	}

	if cfg.Theme.Alert == "" {
		cfg.Theme.Alert = defaults.Alert
	}

	if cfg.Theme.Muted == "" {
		cfg.Theme.Muted = defaults.Muted
	}

	return nil
}
