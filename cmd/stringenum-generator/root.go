package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stringenum-generator/internal/gen"
	"stringenum-generator/internal/mapping"
	"stringenum-generator/internal/plan"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stringenum-generator",
	Short: "Generate string codecs for Go enums",
	Long: `stringenum-generator generates String, Parse and text/JSON/YAML
adapters for Go enums.

Enums are either a named integer or string type with typed constants, or a
sealed interface whose variants are the types implementing it. Variant
strings come from directives:

  const (
  	//enum:string="grass"
  	//enum:alias="leaf"
  	Grass Type = iota
  )

or from the labels of stringenum.yaml.

Usage:
  stringenum-generator gen --type=Type          # write type_stringenum.go
  stringenum-generator check ./...              # report problems, write nothing
  stringenum-generator watch                    # regenerate on change`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		logger = l
		plan.SetLogger(l)
		gen.SetLogger(l)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", mapping.DefaultFileName,
		"declaration file; the default is only read when present")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

// newLogger builds the console logger of the CLI.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true

	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}
