package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envFrom builds a getenv func backed by a map
func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadBrowserConfig_Defaults(t *testing.T) {
	cfg, err := LoadBrowserConfig(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, BrowserChromium, cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, time.Duration(0), cfg.SlowMo)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.ScreenshotDir)
}

func TestLoadBrowserConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *BrowserConfig)
	}{
		{
			name: "trailing slash trimmed from base URL",
			env:  map[string]string{"BASE_URL": "http://localhost:8080/"},
			check: func(t *testing.T, cfg *BrowserConfig) {
				assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
			},
		},
		{
			name:    "relative base URL rejected",
			env:     map[string]string{"BASE_URL": "localhost:8080"},
			wantErr: true,
		},
		{
			name: "headed mode",
			env:  map[string]string{"HEADLESS": "false"},
			check: func(t *testing.T, cfg *BrowserConfig) {
				assert.False(t, cfg.Headless)
			},
		},
		{
			name: "firefox selected case-insensitively",
			env:  map[string]string{"BROWSER": "Firefox"},
			check: func(t *testing.T, cfg *BrowserConfig) {
				assert.Equal(t, BrowserFirefox, cfg.Browser)
			},
		},
		{
			name:    "unknown browser",
			env:     map[string]string{"BROWSER": "netscape"},
			wantErr: true,
		},
		{
			name: "slow mo in milliseconds",
			env:  map[string]string{"SLOW_MO": "250"},
			check: func(t *testing.T, cfg *BrowserConfig) {
				assert.Equal(t, 250*time.Millisecond, cfg.SlowMo)
			},
		},
		{
			name:    "negative slow mo",
			env:     map[string]string{"SLOW_MO": "-1"},
			wantErr: true,
		},
		{
			name: "custom timeout",
			env:  map[string]string{"DEFAULT_TIMEOUT": "30s"},
			check: func(t *testing.T, cfg *BrowserConfig) {
				assert.Equal(t, 30*time.Second, cfg.Timeout)
			},
		},
		{
			name:    "zero timeout",
			env:     map[string]string{"DEFAULT_TIMEOUT": "0s"},
			wantErr: true,
		},
		{
			name:    "garbage timeout",
			env:     map[string]string{"DEFAULT_TIMEOUT": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadBrowserConfig(envFrom(tt.env))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadLogConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want LogConfig
	}{
		{
			name: "defaults to console at info",
			env:  nil,
			want: LogConfig{Structured: false, Level: "info"},
		},
		{
			name: "structured backend enabled",
			env:  map[string]string{"USE_WINSTON": "true", "LOG_LEVEL": "DEBUG"},
			want: LogConfig{Structured: true, Level: "debug"},
		},
		{
			name: "only the exact value true enables structured output",
			env:  map[string]string{"USE_WINSTON": "yes"},
			want: LogConfig{Structured: false, Level: "info"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoadLogConfig(envFrom(tt.env)))
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	cfg, err := LoadServerConfig(envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.FeedbackDelay)

	cfg, err = LoadServerConfig(envFrom(map[string]string{"PORT": "9090", "FEEDBACK_DELAY": "150ms"}))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 150*time.Millisecond, cfg.FeedbackDelay)

	_, err = LoadServerConfig(envFrom(map[string]string{"FEEDBACK_DELAY": "-1s"}))
	assert.Error(t, err)

	_, err = LoadServerConfig(envFrom(map[string]string{"FEEDBACK_DELAY": "later"}))
	assert.Error(t, err)
}
