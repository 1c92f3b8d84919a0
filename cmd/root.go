/*
Copyright 2026 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/bollywood-analytics/internal/blend"
	"github.com/ademuri/bollywood-analytics/internal/config"
	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bollywood-analytics",
	Short: "Explores Bollywood songs by popularity and audio features",
	Long: `Reads a catalog of Bollywood songs with Spotify-style audio features and
reports artist popularity, theme trends and feature profiles. Songs can be
combined into named blends that are saved between runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return currentConfig().Validate()
	},
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
	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.bollywood-analytics.yaml)")

	var dataPath string
	rootCmd.PersistentFlags().StringVarP(
		&dataPath, "data", "d", config.DefaultDataPath, "Path to the song dataset CSV")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	var blendsPath string
	rootCmd.PersistentFlags().StringVarP(
		&blendsPath, "blends", "b", config.DefaultBlendsPath, "Path to the saved blends JSON document")
	viper.BindPFlag("blends", rootCmd.PersistentFlags().Lookup("blends"))

	var logLevel string
	rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	var themeOffset int
	rootCmd.PersistentFlags().IntVar(&themeOffset, "theme_offset", config.DefaultThemeOffset, "Index of the first theme/genre column in the dataset")
	viper.BindPFlag("theme_offset", rootCmd.PersistentFlags().Lookup("theme_offset"))
}

// initConfig reads in .env, config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Error loading .env:", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".bollywood-analytics" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".bollywood-analytics")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		os.Exit(1)
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})

	setupLogging(currentConfig())
}

func setupLogging(cfg config.Config) {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func currentConfig() config.Config {
	return config.FromViper(viper.GetViper())
}

func loadCatalog(cfg config.Config) (*dataset.Table, *dataset.ExplodedTable, error) {
	return dataset.Load(cfg.DataPath, dataset.Options{ThemeOffset: cfg.ThemeOffset})
}

func openBlends(cfg config.Config) (*blend.Store, error) {
	s, err := blend.Open(cfg.BlendsPath)
	if err != nil {
		return nil, fmt.Errorf("opening blends: %w", err)
	}
	return s, nil
}
