// Path: internal/config/constants.go
package config

import "time"

const (
	// DefaultConfigFileName lives in the user's home directory, YAML encoded.
	DefaultConfigFileName = ".nexus_cli"
	// DefaultSettingsDirName holds persisted settings documents, one file per kind.
	DefaultSettingsDirName = ".nexus"
	// EnvPrefix prefixes environment overrides, e.g. NEXUS_URL.
	EnvPrefix = "NEXUS"

	DefaultTimeout = 30 * time.Second
)

// Keys accepted in the config file, the environment and --overrides.
const (
	KeyURL         = "url"
	KeyRepository  = "repository"
	KeyUsername    = "username"
	KeyPassword    = "password"
	KeySSLVerify   = "ssl_verify"
	KeySettingsDir = "settings_dir"
	KeyTimeout     = "timeout"
	KeyLogFile     = "log_file"
)

// overridableKeys are the keys --overrides may set.
var overridableKeys = []string{KeyURL, KeyRepository, KeyUsername, KeyPassword}
