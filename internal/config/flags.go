package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-backend-url recipe platform API root URL
//	-request-timeout API request timeout (e.g., "15s", "1m")
//	-identity-api-key identity provider project key
//	-identity-auth-url identity provider account endpoint base URL
//	-identity-token-url identity provider refresh-grant base URL
//	-persistence identity refresh token persistence mode ("local"/"none")
//	-d local cache database path
//	-refresh-interval backend session refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var backendURL string
	var requestTimeout time.Duration
	var identityAPIKey string
	var identityAuthURL string
	var identityTokenURL string
	var persistence string
	var cacheDSN string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&backendURL, "backend-url", "", "Recipe platform API root URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 15s, 1m)")
	flag.StringVar(&identityAPIKey, "identity-api-key", "", "Identity provider project key")
	flag.StringVar(&identityAuthURL, "identity-auth-url", "", "Identity provider account endpoint base URL")
	flag.StringVar(&identityTokenURL, "identity-token-url", "", "Identity provider refresh-grant base URL")
	flag.StringVar(&persistence, "persistence", "", "Identity refresh token persistence mode (local/none)")
	flag.StringVar(&cacheDSN, "d", "", "Local cache database path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Backend session refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			BaseURL:        backendURL,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			APIKey:      identityAPIKey,
			AuthURL:     identityAuthURL,
			TokenURL:    identityTokenURL,
			Persistence: persistence,
		},
		Storage: Storage{
			DB: DB{
				DSN: cacheDSN,
			},
		},
		Workers: Workers{
			SessionRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
