// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the book-pipeline CLI. It runs single
// pipeline stages standalone against the current working directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/book-pipeline/internal/pdf"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the book-pipeline CLI.
var rootCmd = &cobra.Command{
	Use:   "book-pipeline",
	Short: "Run document build pipeline stages",
	Long: `book-pipeline runs the stages of a document build pipeline. Each stage
is a subcommand that reads the previous stage's output under build/<type>/
and writes its own artifact next to it.

The pdf stage typesets build/<type>/index.html into build/<type>/book.pdf
with prince-books.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./book-pipeline.yaml or ~/.config/book-pipeline/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	viper.SetDefault("pdf.binary", pdf.DefaultBinary)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("book-pipeline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "book-pipeline"))
		}
	}

	viper.SetEnvPrefix("BOOK_PIPELINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !stageReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(exitCodeFor(err))
	}
}
