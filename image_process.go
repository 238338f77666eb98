package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/tiff"

	"tiffconv/logger"
)

// tiffExtensions is the set of recognized source suffixes. Matching is
// exact, so mixed-case names like .Tif are skipped.
var tiffExtensions = map[string]bool{
	".tif":  true,
	".tiff": true,
	".TIF":  true,
	".TIFF": true,
}

type Processor struct {
	Options *jpeg.Options
	Console *logger.Console
}

// BatchStats accumulates per-file outcomes over one run.
type BatchStats struct {
	OutputDir  string
	TotalFiles int
	Converted  int
	Failed     int
}

func NewProcessor(cfg *Config, console *logger.Console) *Processor {
	return &Processor{
		Options: cfg.EncodingOptions(),
		Console: console,
	}
}

// ConvertDirectory converts every TIFF file directly inside inputDir into a
// JPEG copy under outputDir. Source files are never modified. An error is
// returned only for whole-run failures (unusable input folder, output folder
// cannot be created); individual file failures are counted in the stats and
// do not stop the batch.
func (p *Processor) ConvertDirectory(inputDir, outputDir string) (*BatchStats, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("input folder %q does not exist", inputDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %q is not a directory", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output folder: %w", err)
	}

	files, err := p.collectFiles(inputDir)
	if err != nil {
		return nil, fmt.Errorf("file collection error: %w", err)
	}

	stats := &BatchStats{OutputDir: outputDir, TotalFiles: len(files)}

	if len(files) == 0 {
		p.Console.Warn("No TIFF files found in %q", inputDir)
		return stats, nil
	}

	p.Console.Info("Found %d TIFF files", len(files))
	p.Console.Info("Converting to JPEG with quality %d", p.Options.Quality)
	p.Console.Info("Output folder: %s", outputDir)
	p.Console.Rule()

	timer := p.Console.StartTimer("Batch conversion")

	produced := make(map[string]string, len(files))

	for i, name := range files {
		srcPath := filepath.Join(inputDir, name)
		dstName := strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
		dstPath := filepath.Join(outputDir, dstName)

		if prev, ok := produced[dstName]; ok {
			p.Console.Warn("%s overwrites the output of %s (both produce %s)", name, prev, dstName)
		}

		if err := p.convertFile(srcPath, dstPath); err != nil {
			stats.Failed++
			p.Console.Error("[%d/%d] Error converting %s: %v", i+1, len(files), name, err)
			continue
		}

		produced[dstName] = name
		stats.Converted++
		p.Console.Success("[%d/%d] %s → %s", i+1, len(files), name, dstName)
	}

	duration := timer.End()

	p.Console.Rule()
	p.displayResults(stats, duration)

	return stats, nil
}

// collectFiles lists the names of TIFF files directly inside dirPath, in
// lexical order. Subdirectories are not entered.
func (p *Processor) collectFiles(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if tiffExtensions[filepath.Ext(entry.Name())] {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// convertFile decodes one TIFF and writes the JPEG copy. The encode goes to
// a temporary file in the destination directory which is renamed into place
// only on success, so a failed conversion leaves no truncated output behind.
func (p *Processor) convertFile(srcPath, dstPath string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return fmt.Errorf("error decoding TIFF: %w", err)
	}

	img = flattenForJPEG(img)

	tempFile, err := os.CreateTemp(filepath.Dir(dstPath), "*.jpg")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tempPath := tempFile.Name()

	if err := jpeg.Encode(tempFile, img, p.Options); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return fmt.Errorf("error encoding JPEG: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("error writing JPEG: %w", err)
	}

	if err := os.Rename(tempPath, dstPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("error renaming file: %w", err)
	}

	return nil
}

// flattenForJPEG returns an image the JPEG encoder can represent without a
// transparency channel. Opaque grayscale and RGB-family images pass through
// unchanged; everything else, including palette images with transparent
// entries and images with partial alpha, is composited onto a white
// background (result = src*alpha + white*(1-alpha)).
func flattenForJPEG(img image.Image) image.Image {
	if op, ok := img.(interface{ Opaque() bool }); ok && op.Opaque() {
		switch img.(type) {
		case *image.Gray, *image.Gray16, *image.RGBA, *image.RGBA64,
			*image.NRGBA, *image.NRGBA64, *image.YCbCr:
			return img
		}
	}

	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Over)
	return flat
}

func (p *Processor) displayResults(stats *BatchStats, duration time.Duration) {
	table := p.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("TIFF files found", fmt.Sprintf("%d", stats.TotalFiles))
	table.AddRow("Converted", fmt.Sprintf("%d", stats.Converted))
	table.AddRow("Errors", fmt.Sprintf("%d", stats.Failed))
	table.AddRow("JPEG quality", fmt.Sprintf("%d", p.Options.Quality))
	table.AddRow("Duration", duration.Round(time.Millisecond).String())

	p.Console.Info("Conversion complete!")
	table.Print()

	p.Console.Success("Successfully converted: %d files", stats.Converted)
	if stats.Failed > 0 {
		p.Console.Error("Errors encountered: %d files", stats.Failed)
	}
	p.Console.Info("Output location: %s", stats.OutputDir)
	p.Console.Info("Original TIFF files remain untouched")
}
