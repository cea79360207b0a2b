package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/pagekit/internal/config"
	"github.com/alexisbeaulieu97/pagekit/internal/logger"
)

const envPrefix = "PAGEKIT"

// AppContext bundles the settings and services shared by every command.
type AppContext struct {
	Settings *viper.Viper
	Logger   *logger.Logger

	logFile *os.File
}

func newAppContext() *AppContext {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &AppContext{Settings: v}
}

// bindFlags makes each persistent flag resolvable through viper, so an unset
// flag falls back to its PAGEKIT_* environment variable.
func (a *AppContext) bindFlags(cmd *cobra.Command) error {
	for _, name := range []string{"config", "log-level", "log-file", "verbose"} {
		if err := a.Settings.BindPFlag(name, cmd.PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// setupLogger builds the logger from the resolved settings. quiet discards
// output when no log file is configured.
func (a *AppContext) setupLogger(stderr io.Writer, quiet bool) error {
	level := a.Settings.GetString("log-level")
	if a.Settings.GetBool("verbose") {
		level = "debug"
	}

	writer := stderr
	human := true
	if path := a.Settings.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		writer = f
		human = false
	} else if quiet {
		a.Logger = logger.Discard()
		return nil
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: writer})
	if err != nil {
		return err
	}
	a.Logger = log
	return nil
}

// PageConfig loads the page config named by --config, or the embedded default.
func (a *AppContext) PageConfig() (*config.Config, error) {
	path := a.Settings.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	a.Logger.WithFields(map[string]any{
		"config": path,
		"tabs":   len(cfg.Tabs),
		"faq":    len(cfg.FAQ),
	}).Debug("page config loaded")
	return cfg, nil
}

func (a *AppContext) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
