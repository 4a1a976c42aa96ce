package config

import (
	"fmt"
	"time"
)

// ServerConfig holds configuration for the local demo site
type ServerConfig struct {
	Port string
	// FeedbackDelay is how long the "Sending Feedback" modal stays open
	FeedbackDelay time.Duration
}

// LoadServerConfig loads demo site configuration from environment variables
func LoadServerConfig(getenv func(string) string) (ServerConfig, error) {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	config := ServerConfig{
		Port:          port,
		FeedbackDelay: 2 * time.Second,
	}

	if raw := getenv("FEEDBACK_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil {
			return config, fmt.Errorf("FEEDBACK_DELAY is not a duration: %w", err)
		}
		if delay < 0 {
			return config, fmt.Errorf("FEEDBACK_DELAY must not be negative")
		}
		config.FeedbackDelay = delay
	}

	return config, nil
}
