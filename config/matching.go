package config

import (
	"os"
	"strconv"
)

// MatchingConfig collects every tunable of the matching and
// verification pipeline so weights and thresholds live in one place
// instead of scattered conditionals.
type MatchingConfig struct {
	// Signal weights, normalized to sum to 1 at load time.
	LocationWeight    float64
	DateWeight        float64
	ColorWeight       float64
	DescriptionWeight float64

	// Candidates scoring below MinScore are never surfaced.
	MinScore int

	// Reports whose event date is older than this are rejected at intake.
	ReportWindowDays int

	// Verification acceptance threshold (accuracy percentage).
	PassThreshold int

	// Max grading attempts per match before further attempts are
	// rejected. 0 means unbounded.
	MaxAttempts int
}

func LoadMatchingConfig() *MatchingConfig {
	cfg := &MatchingConfig{
		LocationWeight:    envFloat("MATCH_WEIGHT_LOCATION", 0.25),
		DateWeight:        envFloat("MATCH_WEIGHT_DATE", 0.15),
		ColorWeight:       envFloat("MATCH_WEIGHT_COLOR", 0.20),
		DescriptionWeight: envFloat("MATCH_WEIGHT_DESCRIPTION", 0.40),
		MinScore:          envInt("MATCH_MIN_SCORE", 40),
		ReportWindowDays:  envInt("REPORT_WINDOW_DAYS", 30),
		PassThreshold:     envInt("VERIFY_PASS_THRESHOLD", 60),
		MaxAttempts:       envInt("VERIFY_MAX_ATTEMPTS", 5),
	}

	total := cfg.LocationWeight + cfg.DateWeight + cfg.ColorWeight + cfg.DescriptionWeight
	if total > 0 {
		cfg.LocationWeight /= total
		cfg.DateWeight /= total
		cfg.ColorWeight /= total
		cfg.DescriptionWeight /= total
	}

	return cfg
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
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
