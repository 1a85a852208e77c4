package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Backend struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Identity struct {
		APIKey      string   `json:"api_key"`
		AuthURL     string   `json:"auth_url"`
		TokenURL    string   `json:"token_url"`
		Persistence string   `json:"persistence"`
		TokenSkew   Duration `json:"token_skew"`
	} `json:"identity,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SessionRefreshInterval Duration `json:"session_refresh_interval"`
	} `json:"workers,omitempty"`
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
		Backend: Backend{
			BaseURL:        jsonCfg.Backend.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Identity: Identity{
			APIKey:      jsonCfg.Identity.APIKey,
			AuthURL:     jsonCfg.Identity.AuthURL,
			TokenURL:    jsonCfg.Identity.TokenURL,
			Persistence: jsonCfg.Identity.Persistence,
			TokenSkew:   time.Duration(jsonCfg.Identity.TokenSkew),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			SessionRefreshInterval: time.Duration(jsonCfg.Workers.SessionRefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
