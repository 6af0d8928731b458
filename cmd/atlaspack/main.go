// atlaspack packs images into a texture atlas: a single PNG sheet plus
// a JSON manifest mapping frame names to pixel rectangles.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/acolley/splore/internal/config"
	"github.com/acolley/splore/internal/logger"
	"github.com/acolley/splore/pkg/atlas"
)

var flagInitConfig = flag.Bool("init-config", false, "Write the effective configuration to atlaspack.yaml and exit")

func main() {
	flag.Usage = printUsage

	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagInitConfig {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to write atlaspack.yaml", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("wrote atlaspack.yaml")
		return
	}

	inputs := config.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "No input images given")
		printUsage()
		os.Exit(2)
	}
	if cfg.Output.Path == "" {
		fmt.Fprintln(os.Stderr, "No output path given (use -o)")
		printUsage()
		os.Exit(2)
	}

	if err := run(cfg, inputs); err != nil {
		logger.Error("packing failed", zap.Error(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`atlaspack - texture atlas packer

Usage:
  atlaspack [options] <image file> ...

Options:
  -o, -output <path>   Output base path, writes <path>.png and <path>.json (required)
  -b, -border <n>      Transparent padding in pixels around each frame (default 0)
  -t, -trim            Trim transparent edges from source images
  -magenta-key         Treat magenta pixels as transparent
  -max-width <n>       Maximum atlas width in pixels (default 1024)
  -max-height <n>      Maximum atlas height in pixels (default 1024)
  -config <path>       Path to config file (default ./atlaspack.yaml)
  -init-config         Write the effective configuration to atlaspack.yaml and exit
  -debug               Enable debug logging
  -quiet               Only log errors

Examples:
  atlaspack -o assets/atlas sprites/hero.png sprites/tree.png
  atlaspack -t -b 2 -o build/ui icon_save.png icon_load.png
  atlaspack -max-width 2048 -max-height 2048 -o sheet frame_0.png frame_1.png`)
}

// run loads the inputs, packs them in argument order and writes the
// atlas pair.
func run(cfg *config.Config, inputs []string) error {
	sources, err := atlas.LoadSources(inputs)
	if err != nil {
		return err
	}
	logger.Info("loaded sources", zap.Int("count", len(sources)))

	packer, err := atlas.NewPacker(cfg.PackerConfig())
	if err != nil {
		return err
	}

	for _, src := range sources {
		if cfg.Atlas.MagentaKey {
			atlas.ApplyMagentaKey(src.Image)
		}
		frame, err := packer.Pack(src.Name, src.Image)
		if err != nil {
			return err
		}
		logger.Debug("packed frame",
			zap.String("name", frame.Name),
			zap.Stringer("rect", frame.Rect),
			zap.Bool("trimmed", frame.Trimmed))
	}

	sheet, err := packer.Export()
	if err != nil {
		return err
	}

	if err := writeOutputs(sheet, cfg.Output.Path); err != nil {
		return err
	}

	bounds := sheet.Image.Bounds()
	logger.Info("atlas written",
		zap.String("png", cfg.Output.Path+".png"),
		zap.String("manifest", cfg.Output.Path+".json"),
		zap.Int("frames", len(sheet.Frames)),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Float64("utilization", packer.Utilization()))
	return nil
}

// writeOutputs writes <base>.png and <base>.json. Both files are
// encoded in memory first, and the PNG is removed again if the
// manifest write fails, so a failed run never leaves half the pair
// behind.
func writeOutputs(sheet *atlas.Atlas, base string) error {
	var pngBuf, jsonBuf bytes.Buffer
	if err := sheet.EncodePNG(&pngBuf); err != nil {
		return err
	}
	if err := sheet.Manifest().Encode(&jsonBuf); err != nil {
		return err
	}

	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	pngPath := base + ".png"
	jsonPath := base + ".json"

	if err := os.WriteFile(pngPath, pngBuf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", pngPath, err)
	}
	if err := os.WriteFile(jsonPath, jsonBuf.Bytes(), 0644); err != nil {
		os.Remove(pngPath)
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}
	return nil
}
