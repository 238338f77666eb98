package main

import (
	"fmt"
	"image/jpeg"
	"path/filepath"

	"github.com/spf13/cobra"

	"tiffconv/logger"
)

type Config struct {
	InputDir  string
	OutputDir string
	Version   string
	Quality   int
}

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// DefaultOutputName is the subdirectory created under the input folder
// when no output folder is given.
const DefaultOutputName = "jpeg_copies"

// ErrVersionRequested signals that --version was handled and the program
// should exit cleanly without converting anything.
var ErrVersionRequested = fmt.Errorf("version requested")

func ParseConfig(args []string, console *logger.Console) (*Config, error) {
	cfg := &Config{
		Version: Version,
	}

	var (
		showVersion bool
		positional  []string
	)

	cmd := &cobra.Command{
		Use:           "tiffconv [flags] <input_folder>",
		Short:         "Convert TIFF files in a folder to high-quality JPEG copies",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			positional = args
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", "",
		"Output folder (default: <input_folder>/"+DefaultOutputName+")")
	cmd.Flags().IntVarP(&cfg.Quality, "quality", "q", 95,
		"JPEG quality (1-100, higher is better)")
	cmd.Flags().BoolVar(&showVersion, "version", false,
		"Show version information")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}

	if showVersion {
		versionInfo := fmt.Sprintf(
			"Version: %s\nBuild date: %s\nGit commit: %s",
			cfg.Version, BuildDate, GitCommit,
		)
		console.Box("tiffconv version information", versionInfo)
		return nil, ErrVersionRequested
	}

	if len(positional) == 0 {
		console.Info("Usage: tiffconv [flags] <input_folder>")
		console.Log("%s", cmd.Flags().FlagUsages())
		return nil, fmt.Errorf("no input folder specified")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.InputDir = positional[0]
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(cfg.InputDir, DefaultOutputName)
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return fmt.Errorf("error: quality must be in range 1-100")
	}
	return nil
}

func (cfg *Config) EncodingOptions() *jpeg.Options {
	return &jpeg.Options{Quality: cfg.Quality}
}
