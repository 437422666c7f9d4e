package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gobend/internal/config"
	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/version"
)

var (
	cfgFile   string
	debug     bool
	unitsFlag string
	support   string

	appConfig config.Config
	logger    *zap.SugaredLogger
	eng       *engine.Engine
)

var rootCmd = &cobra.Command{
	Use:   "gobend",
	Short: "Beam bending calculator",
	Long: `gobend - Go Beam Bending Calculator

A CLI tool that computes the bending response of a single-span beam:
  - Section properties (I, S, A) for rectangular, circular, hollow
    and I-beam cross-sections
  - Peak bending moment for point, distributed and end-moment loads
  - Peak bending stress and elastic deflection
  - Simply supported and cantilever spans
  - Metric and imperial input

Results come from closed-form elastic beam theory and are not suitable
for safety-critical use or structural certification.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if appConfig, err = config.Load(cfgFile); err != nil {
			return err
		}
		if logger, err = newLogger(debug); err != nil {
			return err
		}
		catalog, err := appConfig.Catalog()
		if err != nil {
			return err
		}
		eng = engine.New(catalog)
		logger.Debugw("configuration loaded", "units", appConfig.Units, "support", appConfig.Support, "materials", len(catalog.List()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobend v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Bending Calculator                              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section properties for six cross-section families")
		fmt.Println("    • Bending moment, stress and deflection of a single span")
		fmt.Println("    • Case files (JSON/YAML), spreadsheet batches and an HTTP API")
		fmt.Println("    • Moment and deflection diagrams, PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gobend --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// newLogger returns a development logger with --debug, production otherwise
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		// keep stdout for reports
		cfg.OutputPaths = []string{"stderr"}
		l, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return l.Sugar(), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./gobend.yaml, or $GOBEND_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging")
	rootCmd.PersistentFlags().StringVarP(&unitsFlag, "units", "u", "", "Unit system of all inputs: metric or imperial (default from config)")
	rootCmd.PersistentFlags().StringVar(&support, "support", "", "Support condition: simply_supported or cantilever (default from config)")
}

// unitSystem returns the --units flag, falling back to the configured system
func unitSystem() string {
	if unitsFlag != "" {
		return unitsFlag
	}
	return appConfig.Units
}

// supportCondition returns the --support flag, falling back to the configured support
func supportCondition() string {
	if support != "" {
		return support
	}
	return appConfig.Support
}
