package main

import (
	"errors"
	"os"

	"tiffconv/logger"
)

func main() {
	console := logger.NewConsole(logger.DefaultOptions())

	cfg, err := ParseConfig(os.Args[1:], console)
	if err != nil {
		if errors.Is(err, ErrVersionRequested) {
			return
		}
		os.Stderr.WriteString("Configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	processor := NewProcessor(cfg, console)

	stats, err := processor.ConvertDirectory(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		console.Error("Conversion error: %v", err)
		os.Exit(1)
	}

	if stats.Failed == 0 {
		console.Success("All processing completed successfully")
	}
}
