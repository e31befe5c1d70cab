// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// ErrInvalidConfig wraps every configuration failure so the CLI can pick a
// dedicated exit code.
var ErrInvalidConfig = errors.New("invalid configuration")

// ParseOverrides parses "key=value,key=value" into a map. Only url,
// repository, username and password are accepted.
func ParseOverrides(value string) (map[string]string, error) {
	overrides := make(map[string]string)
	if strings.TrimSpace(value) == "" {
		return overrides, nil
	}
	for _, raw := range strings.Split(value, ",") {
		pair := strings.TrimSpace(raw)
		if pair == "" {
			continue
		}
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: override '%s' is not key=value", ErrInvalidConfig, pair)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if !slices.Contains(overridableKeys, key) {
			return nil, fmt.Errorf("%w: unknown override '%s' (allowed: %s)", ErrInvalidConfig, key, strings.Join(overridableKeys, ", "))
		}
		overrides[key] = strings.TrimSpace(val)
	}
	return overrides, nil
}

// Load resolves configuration from, in increasing precedence: defaults, the
// YAML config file, NEXUS_* environment variables, and LoadOptions.
func Load(opts LoadOptions) (*Config, error) {
	home := opts.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve home directory: %v", ErrInvalidConfig, err)
		}
	}

	v := viper.New()
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(home, DefaultConfigFileName)
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeySSLVerify, true)
	v.SetDefault(KeySettingsDir, filepath.Join(home, DefaultSettingsDirName))
	v.SetDefault(KeyTimeout, DefaultTimeout)

	source := configFile
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to read config %s: %v", ErrInvalidConfig, configFile, err)
		}
		source = ""
	}

	for key, val := range opts.Overrides {
		v.Set(key, val)
	}
	if opts.SSLVerify != nil {
		v.Set(KeySSLVerify, *opts.SSLVerify)
	}

	cfg := &Config{
		URL:         strings.TrimSuffix(v.GetString(KeyURL), "/"),
		Repository:  v.GetString(KeyRepository),
		Username:    v.GetString(KeyUsername),
		Password:    v.GetString(KeyPassword),
		SSLVerify:   v.GetBool(KeySSLVerify),
		SettingsDir: v.GetString(KeySettingsDir),
		Timeout:     v.GetDuration(KeyTimeout),
		LogFile:     v.GetString(KeyLogFile),
		Source:      source,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}
