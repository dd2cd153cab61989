package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ethanolivertroy/debcrates/internal/config"
	"github.com/ethanolivertroy/debcrates/internal/log"
	"github.com/ethanolivertroy/debcrates/internal/models"
	"github.com/ethanolivertroy/debcrates/internal/reporter"
	"github.com/ethanolivertroy/debcrates/internal/scanner"
)

// Exit codes
const (
	exitUsage = 1
	exitFatal = 2
)

var (
	flagOutput        string
	flagFormat        string
	flagConfig        string
	flagIndexFile     string
	flagStatusFile    string
	flagVerbose       bool
	flagInstalledOnly bool
)

// errFatal marks every failure other than bad command line usage
var errFatal = errors.New("fatal")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "debcrates [search-term]",
	Short: "List Rust crates packaged by Debian and whether they are installed",
	Long: `debcrates reads the description of every librust-* package known to APT,
works out which upstream crate (and crate feature) each package provides,
and prints them sorted by crate name and version together with their dpkg
installation status.

An optional search term keeps only crates whose name contains it
(case-sensitive).

Examples:
  # Every packaged crate
  debcrates

  # Crates with "serde" in their name
  debcrates serde

  # Only what is installed, as JSON
  debcrates --installed-only --format json

  # Work from captured tool output
  apt-cache show 'librust-*' > index.txt; dpkg -l > status.txt
  debcrates --index-file index.txt --status-file status.txt`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInventory,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errFatal) {
			os.Exit(exitFatal)
		}
		os.Exit(exitUsage)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: terminal, table, json (default: terminal)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file (default: $XDG_CONFIG_HOME/debcrates/config.toml)")
	rootCmd.Flags().StringVar(&flagIndexFile, "index-file", "", "Read package descriptions from this file instead of running apt-cache")
	rootCmd.Flags().StringVar(&flagStatusFile, "status-file", "", "Read the package listing from this file instead of running dpkg")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.Flags().BoolVar(&flagInstalledOnly, "installed-only", false, "Only list installed packages")
}

func runInventory(cmd *cobra.Command, args []string) error {
	log.SetVerbose(flagVerbose)
	fs := afero.NewOsFs()

	cfg, err := buildConfig(fs, args)
	if err != nil {
		return fmt.Errorf("%w: invalid configuration: %w", errFatal, err)
	}
	log.SetVerbose(cfg.Verbose)

	// Create scanner
	s, err := scanner.New(cfg, fs)
	if err != nil {
		return fmt.Errorf("%w: failed to initialize scanner: %w", errFatal, err)
	}

	// Run scan
	entries, err := s.Scan(context.Background())
	if err != nil {
		return fmt.Errorf("%w: scan failed: %w", errFatal, err)
	}

	// Generate report
	rep := reporter.Get(cfg.OutputFormat)
	output, err := rep.Report(entries)
	if err != nil {
		return fmt.Errorf("%w: failed to generate report: %w", errFatal, err)
	}

	// Write output
	if cfg.OutputFile != "" {
		if err := afero.WriteFile(fs, cfg.OutputFile, output, 0644); err != nil {
			return fmt.Errorf("%w: failed to write output file: %w", errFatal, err)
		}
		log.Infof("report written to %s", cfg.OutputFile)
		return nil
	}

	if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("%w: failed to write report: %w", errFatal, err)
	}
	return nil
}

// buildConfig layers defaults, the config file and command line flags
func buildConfig(fs afero.Fs, args []string) (*models.Config, error) {
	cfg := models.DefaultConfig()

	path, explicit := flagConfig, true
	if path == "" {
		path, explicit = config.DefaultPath(), false
	}
	if err := config.Load(fs, path, explicit, cfg); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.SearchTerm = args[0]
	}
	if flagFormat != "" {
		cfg.OutputFormat = flagFormat
	}
	cfg.OutputFile = flagOutput
	cfg.IndexFile = flagIndexFile
	cfg.StatusFile = flagStatusFile
	cfg.InstalledOnly = flagInstalledOnly
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
