package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Exercise.validate(); err != nil {
		return fmt.Errorf("exercise: %w", err)
	}

	if c.Sweeper.Interval < time.Second {
		return fmt.Errorf("sweeper.interval must be at least 1s (got %v)", c.Sweeper.Interval)
	}

	return nil
}

func (e *ExerciseConfig) validate() error {
	if e.SessionTTL < time.Minute {
		return fmt.Errorf("session_ttl must be at least 1m (got %v)", e.SessionTTL)
	}
	if e.DistractorCount < 0 || e.DistractorCount > 10 {
		return fmt.Errorf("distractor_count must be between 0 and 10 (got %d)", e.DistractorCount)
	}
	if e.AbandonedRetention < 0 {
		return fmt.Errorf("abandoned_retention must be >= 0 (got %v)", e.AbandonedRetention)
	}
	return nil
}
