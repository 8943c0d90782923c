/*
	Copyright 2026 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	exploreCmd "github.com/mpapenbr/pitstop-explorer-go/pkg/cmd/explore"
	exportCmd "github.com/mpapenbr/pitstop-explorer-go/pkg/cmd/export"
	renderCmd "github.com/mpapenbr/pitstop-explorer-go/pkg/cmd/render"
	"github.com/mpapenbr/pitstop-explorer-go/pkg/config"
	"github.com/mpapenbr/pitstop-explorer-go/version"
)

const envPrefix = "PSX"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "psx",
	Short:        "Linked views on Formula 1 pit stop data",
	Long:         ``,
	Version:      version.FullVersion,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.psx.yml)")

	rootCmd.PersistentFlags().StringVarP(&config.DataFile, "data", "d", "",
		"CSV file with pit stop records")
	rootCmd.PersistentFlags().StringVar(&config.AliasFile, "alias-file", "",
		"YAML file replacing the constructor alias table")
	rootCmd.PersistentFlags().BoolVar(&config.StrictTrackClear, "strict-track-clear", false,
		"clear the selected constructor on every track change")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", "text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter, "log-filter", "",
		"zapfilter rules, e.g. 'info+:* debug:coordinator'")
	rootCmd.PersistentFlags().BoolVar(&config.EnableTelemetry, "enable-telemetry", false,
		"enables telemetry")
	rootCmd.PersistentFlags().StringVar(&config.TelemetryEndpoint, "telemetry-endpoint", "",
		"OTLP gRPC endpoint for telemetry data (default: write to stderr)")

	// add commands here
	rootCmd.AddCommand(renderCmd.NewRenderCmd())
	rootCmd.AddCommand(exploreCmd.NewExploreCmd())
	rootCmd.AddCommand(exportCmd.NewExportCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".psx" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".psx")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to PSX_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
