package config

import "strings"

// LogConfig selects the logger backend and its threshold
type LogConfig struct {
	// Structured routes output through the structured backend instead of plain console lines
	Structured bool
	Level      string
}

// LoadLogConfig loads logger configuration from environment variables.
// USE_WINSTON=true enables the structured backend; LOG_LEVEL sets its minimum level.
func LoadLogConfig(getenv func(string) string) LogConfig {
	level := strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL")))
	if level == "" {
		level = "info"
	}

	return LogConfig{
		Structured: getenv("USE_WINSTON") == "true",
		Level:      level,
	}
}
