package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// clientJSONConfig mirrors [ClientConfig] with JSON tags and string-friendly
// duration fields for file-based configuration.
type clientJSONConfig struct {
	API struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	UI struct {
		NotificationDuration Duration `json:"notification_duration"`
		SidebarCollapsed     bool     `json:"sidebar_collapsed"`
		RefreshInterval      Duration `json:"refresh_interval"`
	} `json:"ui,omitempty"`

	App struct {
		Locale string `json:"locale"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*ClientConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg clientJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &ClientConfig{
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		UI: UI{
			NotificationDuration: time.Duration(jsonCfg.UI.NotificationDuration),
			SidebarCollapsed:     jsonCfg.UI.SidebarCollapsed,
			RefreshInterval:      time.Duration(jsonCfg.UI.RefreshInterval),
		},
		App: App{
			Locale: jsonCfg.App.Locale,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
