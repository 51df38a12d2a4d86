package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file.
type StructuredJSONConfig struct {
	App struct {
		ServiceName string `json:"service_name"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		PathPrefix      string   `json:"path_prefix"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Upstream struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxRedirects   *int     `json:"max_redirects,omitempty"`
	} `json:"upstream,omitempty"`

	Port string `json:"port,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ServiceName: jsonCfg.App.ServiceName,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			PathPrefix:      jsonCfg.Server.PathPrefix,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Upstream: Upstream{
			BaseURL:        jsonCfg.Upstream.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Upstream.RequestTimeout),
			MaxRedirects:   jsonCfg.Upstream.MaxRedirects,
		},
		Port: jsonCfg.Port,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
