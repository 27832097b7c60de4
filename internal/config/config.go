// Package config holds runtime settings for the service and CLI.
package config

import (
	"os"
	"strconv"

	"github.com/datadash/lowerthird/internal/apperr"
	"github.com/datadash/lowerthird/internal/system"
)

// Config carries everything the render engine and HTTP server need. Zero
// values are filled in by Load.
type Config struct {
	// OutputDir is where finished MP4 files land.
	OutputDir string
	// ListenAddr is the HTTP bind address.
	ListenAddr string
	// Encoder is the H.264 encoder name passed to ffmpeg.
	Encoder string
	// Quality is encoder dependent: bitrate units, CQ or CRF.
	Quality int
	// ProfilePath optionally points to a YAML animation profile that
	// overrides the built-in timing.
	ProfilePath string
	// Workers caps the render worker pool; 0 means auto-size.
	Workers int
}

// Load builds a Config from the environment, probing the host for the best
// encoder when none is forced.
func Load() (*Config, error) {
	cfg := &Config{
		OutputDir:   envOr("OUTPUT_DIR", "outputs"),
		ListenAddr:  envOr("LISTEN_ADDR", ":5000"),
		Encoder:     os.Getenv("VIDEO_ENCODER"),
		ProfilePath: os.Getenv("ANIMATION_PROFILE"),
	}

	if cfg.Encoder == "" {
		cfg.Encoder = system.DetectH264Encoder()
	}

	cfg.Quality = system.DefaultQuality(cfg.Encoder)
	if v := os.Getenv("VIDEO_QUALITY"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q <= 0 {
			return nil, apperr.New(apperr.CodeConfiguration, "VIDEO_QUALITY must be a positive integer")
		}
		cfg.Quality = q
	}

	if v := os.Getenv("RENDER_WORKERS"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w < 0 {
			return nil, apperr.New(apperr.CodeConfiguration, "RENDER_WORKERS must be a non-negative integer")
		}
		cfg.Workers = w
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
