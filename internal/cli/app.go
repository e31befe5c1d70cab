// Package cli implements the nexus-cli command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/config"
	"github.com/anmicius0/nexus-cli/internal/settings"
	"github.com/anmicius0/nexus-cli/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

const (
	flagConfig    = "config"
	flagOverrides = "overrides"
	flagSSLVerify = "ssl-verify"
	flagVerbose   = "verbose"
	flagOutput    = "output"
	flagLogFile   = "log-file"
)

// ExitConfig is the exit status for configuration errors.
const ExitConfig = 110

// App carries everything a command needs. Tests substitute the streams, the
// filesystem and the home directory.
type App struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Stdin   io.Reader
	FS      afero.Fs
	HomeDir string

	// flags holds the persistent flags bound on the root command.
	flags *viper.Viper
	// password reads a secret without echo; nil means the terminal.
	password func(prompt string) (string, error)

	cfg       *config.Config
	transport *client.HTTPClient
}

// NewApp returns an App wired to the process streams and the OS filesystem.
func NewApp() *App {
	return &App{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		FS:     afero.NewOsFs(),
		flags:  viper.New(),
	}
}

// Config resolves configuration once per invocation.
func (a *App) Config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	overrides, err := config.ParseOverrides(a.flags.GetString(flagOverrides))
	if err != nil {
		return nil, err
	}
	opts := config.LoadOptions{
		ConfigFile: a.flags.GetString(flagConfig),
		Overrides:  overrides,
		HomeDir:    a.HomeDir,
	}
	if a.flags.IsSet(flagSSLVerify) {
		verify := a.flags.GetBool(flagSSLVerify)
		opts.SSLVerify = &verify
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	if cfg.LogFile != "" && a.flags.GetString(flagLogFile) == "" {
		a.flags.Set(flagLogFile, cfg.LogFile)
		if err := a.initLogging(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Transport returns the HTTP transport for the configured server.
func (a *App) Transport() (client.Transport, error) {
	if a.transport != nil {
		return a.transport, nil
	}
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	a.transport = client.NewHTTPClient(client.HTTPConfig{
		BaseURL:   cfg.URL,
		Username:  cfg.Username,
		Password:  cfg.Password,
		SSLVerify: cfg.SSLVerify,
		Timeout:   cfg.Timeout,
	})
	return a.transport, nil
}

// Session returns the base operation set. The edition is not resolved, so
// only base-edition services are reachable.
func (a *App) Session() (*client.Session, error) {
	t, err := a.Transport()
	if err != nil {
		return nil, err
	}
	return client.NewSession(t, client.EditionBase), nil
}

// Pro connects, resolves the edition and returns the extended operation set.
func (a *App) Pro(ctx context.Context) (*client.ProClient, error) {
	t, err := a.Transport()
	if err != nil {
		return nil, err
	}
	session, err := client.Connect(ctx, t)
	if err != nil {
		return nil, err
	}
	return session.Pro()
}

// Synchronizer returns the settings synchronizer for kind.
func (a *App) Synchronizer(kind settings.Kind) (*settings.Synchronizer, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}
	t, err := a.Transport()
	if err != nil {
		return nil, err
	}
	return settings.NewSynchronizer(kind, t, settings.NewStore(a.FS, cfg.SettingsDir)), nil
}

// Close releases the transport.
func (a *App) Close() {
	if a.transport != nil {
		_ = a.transport.Close()
		a.transport = nil
	}
}

func (a *App) output() string {
	return a.flags.GetString(flagOutput)
}

// initLogging configures the global logger from flags and config. A config
// error is not fatal here; the command reports it.
func (a *App) initLogging() error {
	opts := utils.Options{
		Verbose: a.flags.GetBool(flagVerbose),
		File:    a.flags.GetString(flagLogFile),
		Console: a.Stderr,
	}
	return utils.Init(opts)
}

// ExitCode maps an error onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, config.ErrInvalidConfig) {
		return ExitConfig
	}
	var apiErr *client.Error
	if errors.As(err, &apiErr) {
		return apiErr.ExitCode()
	}
	return 1
}

func (a *App) printErr(err error) {
	fmt.Fprintf(a.Stderr, "Error: %v\n", err)
}
