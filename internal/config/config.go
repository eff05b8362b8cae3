package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vortex/docx-compare/internal/redline"
)

// Config holds application configuration loaded from environment variables
// plus an optional redline-styles override file.
type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxUploadSizeMB int64

	RedlineStyles redline.Styles
}

// Load reads configuration from environment variables with sensible
// defaults, then applies a YAML redline-styles override if
// REDLINE_STYLES_FILE points at a readable file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            envInt("PORT", 8080),
		ReadTimeout:     envDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxUploadSizeMB: int64(envInt("MAX_UPLOAD_SIZE_MB", 50)),
	}

	if path := os.Getenv("REDLINE_STYLES_FILE"); path != "" {
		styles, err := LoadRedlineStylesFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: load redline styles: %w", err)
		}
		cfg.RedlineStyles = styles
	}

	return cfg, nil
}

// redlineStylesFile mirrors spec §6's redline_styles override document, the
// same three colors internal/redline.Styles carries.
type redlineStylesFile struct {
	DeletionColor  string `yaml:"deletion_color"`
	InsertionColor string `yaml:"insertion_color"`
	MoveColor      string `yaml:"move_color"`
}

// LoadRedlineStylesFile reads a YAML redline-styles override document, the
// same one Load reads from REDLINE_STYLES_FILE and the CLI's compare
// --styles flag loads directly. Only the CLI applies the colors to a
// compare; the HTTP handlers do not read Config.RedlineStyles.
func LoadRedlineStylesFile(path string) (redline.Styles, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return redline.Styles{}, err
	}
	var parsed redlineStylesFile
	if err := yaml.Unmarshal(blob, &parsed); err != nil {
		return redline.Styles{}, err
	}
	return redline.Styles{
		DeletionColor:  parsed.DeletionColor,
		InsertionColor: parsed.InsertionColor,
		MoveColor:      parsed.MoveColor,
	}, nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
