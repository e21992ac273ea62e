// Package config assembles the CRM client configuration from environment
// variables, command-line flags, and an optional JSON file. The three sources
// are merged in that order of precedence and validated as a whole; callers
// receive an explicit *ClientConfig value rather than reading ambient state.
package config

import "time"

// defaultNotificationDuration is applied when no toast duration is configured.
const defaultNotificationDuration = 3 * time.Second

// defaultRefreshInterval is applied when no background refresh interval is
// configured.
const defaultRefreshInterval = time.Minute

// ClientConfig is the top-level configuration container for the CRM client.
// It is populated by merging values from environment variables (prefix CRM_),
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type ClientConfig struct {
	// API holds connection settings for the CRM server API.
	API API `envPrefix:"API_"`

	// UI holds terminal UI behaviour settings.
	UI UI `envPrefix:"UI_"`

	// App holds application-level presentation settings.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CRM_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds network settings for the outbound API client.
type API struct {
	// BaseURL is the CRM server base URL (e.g. "https://crm.example.com").
	// A bare host:port is accepted and normalised to an http URL.
	// Env: CRM_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound API calls.
	// Zero disables the client-side timeout.
	// Env: CRM_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// UI holds terminal UI behaviour settings.
type UI struct {
	// NotificationDuration is how long a toast notification stays on screen
	// before auto-dismissing. Defaults to 3s.
	// Env: CRM_UI_NOTIFICATION_DURATION
	NotificationDuration time.Duration `env:"NOTIFICATION_DURATION"`

	// SidebarCollapsed starts the client with the navigation sidebar
	// collapsed.
	// Env: CRM_UI_SIDEBAR_COLLAPSED
	SidebarCollapsed bool `env:"SIDEBAR_COLLAPSED"`

	// RefreshInterval is how often the contact list is refreshed in the
	// background. Defaults to 1m.
	// Env: CRM_UI_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// App holds application-level presentation settings.
type App struct {
	// Locale selects the locale used for currency and number formatting
	// (e.g. "en", "de"). Defaults to "en".
	// Env: CRM_APP_LOCALE
	Locale string `env:"LOCALE"`
}

// Load builds the client configuration by merging environment variables,
// command-line flags, and an optional JSON config file, applies defaults, and
// validates the result.
func Load() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.UI.NotificationDuration <= 0 {
		cfg.UI.NotificationDuration = defaultNotificationDuration
	}
	if cfg.UI.RefreshInterval <= 0 {
		cfg.UI.RefreshInterval = defaultRefreshInterval
	}
	if cfg.App.Locale == "" {
		cfg.App.Locale = "en"
	}
}

// validate checks that the merged configuration satisfies the invariants the
// client depends on at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.API.BaseURL == "" {
		return ErrInvalidAPIConfigs
	}
	if cfg.API.RequestTimeout < 0 {
		return ErrInvalidAPIConfigs
	}
	return nil
}
