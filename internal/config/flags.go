package config

import (
	"flag"
	"time"
)

// parseFlagsFn is swapped out in tests to avoid touching the process-wide
// flag set.
var parseFlagsFn = ParseFlags

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL (e.g. https://crm.example.com or localhost:8080)
//	-c/-config json file path with configs
//	-request-timeout API request timeout (e.g. "30s", "1m")
//	-notification-duration toast display duration (e.g. "3s")
//	-refresh-interval background contact refresh interval (e.g. "1m")
//	-sidebar-collapsed start with the sidebar collapsed
//	-locale locale for currency and number formatting
func ParseFlags() *ClientConfig {
	var baseURL string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var notificationDuration time.Duration
	var refreshInterval time.Duration
	var sidebarCollapsed bool
	var locale string

	flag.StringVar(&baseURL, "a", "", "CRM server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&notificationDuration, "notification-duration", 0, "Toast display duration (e.g., 3s)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background contact refresh interval (e.g., 1m)")
	flag.BoolVar(&sidebarCollapsed, "sidebar-collapsed", false, "Start with the sidebar collapsed")
	flag.StringVar(&locale, "locale", "", "Locale for currency formatting")

	flag.Parse()

	return &ClientConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		UI: UI{
			NotificationDuration: notificationDuration,
			SidebarCollapsed:     sidebarCollapsed,
			RefreshInterval:      refreshInterval,
		},
		App: App{
			Locale: locale,
		},
		JSONFilePath: jsonConfigPath,
	}
}
