// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cli implements the ggdraw command-line interface.
//
// # Commands
//
//   - render: draw a TOML scene file to PNG and/or SVG
//   - demo: draw the reference picture
//   - formats: list the registered output formats
//
// # Configuration
//
// Flags can also be set through GGDRAW_* environment variables (for
// example GGDRAW_FORMAT=svg) or a config file passed with --config.
// Flags given on the command line win over both.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogpu/graphics"
)

const (
	appName   = "ggdraw"
	envPrefix = "GGDRAW"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config *viper.Viper
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
			Prefix:          appName,
		}),
		config: v,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "ggdraw draws vector scenes to PNG and SVG",
		Long:         `ggdraw renders TOML scene descriptions with the graphics library, writing raster PNG images and SVG documents.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			graphics.SetLogger(slog.New(c.Logger))

			if configFile != "" {
				c.config.SetConfigFile(configFile)
				if err := c.config.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
				c.Logger.Debug("config loaded", "file", c.config.ConfigFileUsed())
			}
			return c.bindFlags(cmd.Flags())
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (toml, yaml or json)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.formatsCommand())

	return root
}

// bindFlags makes every flag of the running command readable through the
// config, so GGDRAW_* variables and config file keys fill unset flags.
func (c *CLI) bindFlags(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" || f.Name == "config" || f.Name == "verbose" {
			return
		}
		if bindErr := c.config.BindPFlag(f.Name, f); bindErr != nil && err == nil {
			err = bindErr
		}
	})
	return err
}

// formats returns the output formats, accepting comma separated lists from
// flags, the environment and config files alike.
func (c *CLI) formats() []string {
	var out []string
	for _, item := range c.config.GetStringSlice("format") {
		for _, f := range strings.Split(item, ",") {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}
