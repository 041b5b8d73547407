// ABOUTME: Environment configuration loading
// ABOUTME: Reads PULSEPLAY_* variables with .env support and sane defaults
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration, loaded from environment variables.
type Config struct {
	File       string  // WAV file to play
	Speed      float64 // playback speed multiplier
	ChunkSize  int     // samples per chunk
	CarryPhase bool    // carry decimation phase across chunk boundaries
	Port       int     // control server port
	Name       string  // advertised player name
	LogFile    string  // log file path
}

// Load reads configuration from a .env file (if present) and the
// environment, with sane defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		File:       envStr("PULSEPLAY_FILE", ""),
		Speed:      envFloat("PULSEPLAY_SPEED", 1.0),
		ChunkSize:  envInt("PULSEPLAY_CHUNK_SIZE", 2048),
		CarryPhase: envBool("PULSEPLAY_CARRY_PHASE", false),
		Port:       envInt("PULSEPLAY_PORT", 8937),
		Name:       envStr("PULSEPLAY_NAME", ""),
		LogFile:    envStr("PULSEPLAY_LOG_FILE", "pulseplay.log"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
