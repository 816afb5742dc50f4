package config

import "os"

// parseEnv overlays Config fields from environment variables. Empty
// variables leave the current value untouched.
//
// Recognized variables: ADDRESS, DATABASE_DSN, MASTER_PASSPHRASE,
// ENVIRONMENT.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("MASTER_PASSPHRASE"); v != "" {
		config.MasterPassphrase = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		config.Environment = v
	}
}
