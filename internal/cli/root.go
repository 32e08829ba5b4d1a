// Package cli implements floractl, the command-line companion to the
// landing page server.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidContent is returned by commands that found content violations.
var ErrInvalidContent = errors.New("content failed validation")

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "floractl",
		Short: "Inspect, validate and render FloraFlow page content",
		Long: `floractl works with the content behind the FloraFlow landing page.

It reads the seven page documents from the CMS (or from a local JSON/YAML
fixture), prints the content schema, validates documents against the rule
table and renders the page to a static HTML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (YAML)")
	flags.String("fixture", "", "read content from a JSON or YAML file instead of the CMS")
	flags.String("project", "", "CMS project id")
	flags.String("dataset", "", "CMS dataset")
	flags.String("token", "", "CMS read token")
	flags.StringP("output", "o", "text", "output format (text, json, yaml)")
	flags.Bool("debug", false, "enable debug logging")

	for key, flag := range map[string]string{
		"config":  "config",
		"fixture": "fixture",
		"project": "project_id",
		"dataset": "dataset",
		"token":   "token",
		"output":  "output",
		"debug":   "debug",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newSchemaCommand(v),
		newFetchCommand(v),
		newValidateCommand(v),
		newRenderCommand(v),
		newVersionCommand(v),
	)
	return root
}

// Execute runs floractl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("FLORAFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("project_id", "pqgampq3")
	v.SetDefault("dataset", "production")
	v.SetDefault("api_version", "2024-01-01")
	v.SetDefault("use_cdn", true)
	v.SetDefault("timeout", "10s")
	v.SetDefault("site.title", "Landing Page POC")
	v.SetDefault("site.description", "Simple landing page that will be powered by Sanity CMS")
	v.SetDefault("site.copyright_year", "2025")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	switch v.GetString("output") {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", v.GetString("output"))
	}
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) *slog.Logger {
	level := slog.LevelWarn
	if v.GetBool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
