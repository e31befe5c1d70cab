// internal/config/models.go
// Package config provides configuration loading, validation, and data models.
package config

import "time"

// Config is the resolved connection and local-store configuration for one
// CLI invocation.
type Config struct {
	// URL is the Nexus base URL, e.g. https://nexus.example.com/nexus
	URL string `validate:"required,url"`
	// Repository is the default repository used by artifact-oriented commands
	Repository string
	// Username and Password are sent as HTTP basic auth on every request
	Username string `validate:"required"`
	Password string `validate:"required"`
	// SSLVerify toggles TLS certificate verification
	SSLVerify bool
	// SettingsDir is the root of the local settings store
	SettingsDir string `validate:"required"`
	// Timeout bounds each HTTP exchange
	Timeout time.Duration `validate:"gt=0"`
	// LogFile, when set, receives JSON log entries
	LogFile string
	// Source is the config file that was read, empty when none was found
	Source string
}

// LoadOptions carries the command-line inputs that take precedence over the
// config file and environment.
type LoadOptions struct {
	// ConfigFile overrides the default ~/.nexus_cli location
	ConfigFile string
	// Overrides are key=value pairs from --overrides
	Overrides map[string]string
	// SSLVerify is applied when non-nil
	SSLVerify *bool
	// HomeDir overrides os.UserHomeDir, used by tests
	HomeDir string
}
