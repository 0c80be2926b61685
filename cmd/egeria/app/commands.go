// Package app provides the commands of the egeria command line client.
package app

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/egeria-client-go/internal/config"
	"github.com/stacklok/egeria-client-go/internal/versions"
)

// keyConfig holds the --config flag and EGERIA_CONFIG
const keyConfig = "config"

// NewRootCmd creates a new root command for the egeria client. Each call returns an
// independent command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := config.NewViper()
	_ = v.BindEnv(keyConfig)

	rootCmd := &cobra.Command{
		Use:               "egeria",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Query an Egeria open metadata platform",
		Long: `egeria calls the view services of an Egeria view server and renders the
results as JSON, DICT, LIST, MD, FORM, REPORT or MERMAID output.

Connection settings come from the configuration file (--config), EGERIA_ environment
variables such as EGERIA_PLATFORM_URL, and the flags below, in increasing priority.`,
		Run: func(cmd *cobra.Command, _ []string) {
			// If no subcommand is provided, print help
			if err := cmd.Help(); err != nil {
				slog.Error("Error displaying help", "error", err)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "Path to configuration file (YAML format)")
	flags.String("platform-url", "", "OMAG server platform URL")
	flags.String("server", "", "View server name")
	flags.String("user", "", "User ID")
	flags.String("timeout", "", "Timeout for each call (e.g., 30s)")
	flags.String("format", "", "Output format (JSON, DICT, LIST, MD, FORM, REPORT, MERMAID)")
	flags.String("format-set", "", "Format set to use instead of the one named after the type")
	flags.String("catalog", "", "YAML or HuJSON file of format sets merged over the defaults")

	bindings := map[string]string{
		keyConfig:             keyConfig,
		config.KeyPlatformURL: "platform-url",
		config.KeyServerName:  "server",
		config.KeyUserID:      "user",
		config.KeyTimeout:     "timeout",
		config.KeyFormat:      "format",
		config.KeyFormatSet:   "format-set",
		config.KeyCatalogFile: "catalog",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
		}
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newFindCmd(v))
	rootCmd.AddCommand(newGetCmd(v))
	rootCmd.AddCommand(newPingCmd(v))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versions.GetVersionInfo()
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to retrieve format flag: %w", err)
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format version info as JSON: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			_, err = fmt.Fprintf(out, "egeria %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Platform)
			return err
		},
	}
	// shadows the persistent output format flag; version only knows json
	versionCmd.Flags().String("format", "", "Output format (json)")
	return versionCmd
}

// loadConfig reads the configuration file named by --config or EGERIA_CONFIG, then
// applies environment variables and flags
func loadConfig(v *viper.Viper) (*config.Config, error) {
	opts := []config.Option{config.WithViper(v)}
	if path := v.GetString(keyConfig); path != "" {
		opts = append(opts, config.WithConfigPath(path))
	}
	return config.LoadConfig(opts...)
}
