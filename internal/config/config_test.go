// ABOUTME: Tests for environment configuration
// ABOUTME: Verifies defaults, overrides, and malformed value handling
package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Speed != 1.0 {
		t.Errorf("expected default speed 1.0, got %f", cfg.Speed)
	}
	if cfg.ChunkSize != 2048 {
		t.Errorf("expected default chunk size 2048, got %d", cfg.ChunkSize)
	}
	if cfg.CarryPhase {
		t.Error("expected carry phase disabled by default")
	}
	if cfg.Port != 8937 {
		t.Errorf("expected default port 8937, got %d", cfg.Port)
	}
	if cfg.LogFile != "pulseplay.log" {
		t.Errorf("expected default log file, got %s", cfg.LogFile)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PULSEPLAY_FILE", "/music/test.wav")
	t.Setenv("PULSEPLAY_SPEED", "2.5")
	t.Setenv("PULSEPLAY_CHUNK_SIZE", "4096")
	t.Setenv("PULSEPLAY_CARRY_PHASE", "true")
	t.Setenv("PULSEPLAY_PORT", "9000")

	cfg := Load()

	if cfg.File != "/music/test.wav" {
		t.Errorf("expected file override, got %s", cfg.File)
	}
	if cfg.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", cfg.Speed)
	}
	if cfg.ChunkSize != 4096 {
		t.Errorf("expected chunk size 4096, got %d", cfg.ChunkSize)
	}
	if !cfg.CarryPhase {
		t.Error("expected carry phase enabled")
	}
	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("PULSEPLAY_SPEED", "fast")
	t.Setenv("PULSEPLAY_CHUNK_SIZE", "lots")
	t.Setenv("PULSEPLAY_CARRY_PHASE", "maybe")

	cfg := Load()

	if cfg.Speed != 1.0 {
		t.Errorf("expected malformed speed to fall back to 1.0, got %f", cfg.Speed)
	}
	if cfg.ChunkSize != 2048 {
		t.Errorf("expected malformed chunk size to fall back to 2048, got %d", cfg.ChunkSize)
	}
	if cfg.CarryPhase {
		t.Error("expected malformed bool to fall back to false")
	}
}
