package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("VIDEO_ENCODER", "libx264")
	t.Setenv("VIDEO_QUALITY", "")
	t.Setenv("RENDER_WORKERS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "outputs" {
		t.Errorf("OutputDir = %q, want outputs", cfg.OutputDir)
	}
	if cfg.ListenAddr != ":5000" {
		t.Errorf("ListenAddr = %q, want :5000", cfg.ListenAddr)
	}
	if cfg.Quality != 23 {
		t.Errorf("Quality = %d, want 23 for libx264", cfg.Quality)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/clips")
	t.Setenv("VIDEO_ENCODER", "h264_nvenc")
	t.Setenv("VIDEO_QUALITY", "19")
	t.Setenv("RENDER_WORKERS", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/clips" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Encoder != "h264_nvenc" {
		t.Errorf("Encoder = %q", cfg.Encoder)
	}
	if cfg.Quality != 19 {
		t.Errorf("Quality = %d, want 19", cfg.Quality)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestLoadRejectsBadQuality(t *testing.T) {
	t.Setenv("VIDEO_ENCODER", "libx264")
	t.Setenv("VIDEO_QUALITY", "fast")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric VIDEO_QUALITY")
	}
}
