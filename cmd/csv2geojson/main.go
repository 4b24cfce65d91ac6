package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/parkdata/geoconvert/internal/config"
	"github.com/parkdata/geoconvert/internal/geo"
	"github.com/parkdata/geoconvert/internal/logger"
	"github.com/parkdata/geoconvert/internal/pipeline"
	"github.com/parkdata/geoconvert/internal/schema"
	"github.com/parkdata/geoconvert/internal/source"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to optional configuration file"`
	Output     string `short:"o" long:"out"     description:"Output file path. Derived from the input name if empty"`
	Strict     bool   `short:"s" long:"strict"  description:"Abort on the first invalid row instead of skipping it"`
	Compact    bool   `short:"m" long:"compact" description:"Emit minified GeoJSON"`

	Args struct {
		Input string `positional-arg-name:"input.csv" description:"CSV file with location records"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if opts.Args.Input == "" {
		log.Error().Msg("No CSV file specified")
		os.Exit(2)
	}

	cfg, err := config.LoadOptional(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", opts.ConfigFile).Msg("Failed to load configuration")
	}

	src, err := source.OpenCSV(opts.Args.Input)
	if err != nil {
		log.Fatal().Err(err).Str("input", opts.Args.Input).Msg("Failed to read input")
	}

	res, err := pipeline.Convert(src, schema.CSVLocations{}, pipeline.Options{
		Strict: opts.Strict || cfg.Strict,
	})
	if err != nil {
		log.Fatal().Err(err).Str("input", opts.Args.Input).Msg("Conversion failed")
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = strings.TrimSuffix(opts.Args.Input, filepath.Ext(opts.Args.Input)) + ".geojson"
		if cfg.OutputDir != "" {
			outPath = filepath.Join(cfg.OutputDir, filepath.Base(outPath))
		}
	}

	wopts := geo.WriteOptions{Compact: opts.Compact || cfg.Compact}
	if err := pipeline.WriteCollection(outPath, res.Collection, wopts); err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("Failed to write output")
	}

	log.Info().
		Int("features", res.Converted).
		Int("skipped", len(res.Skipped)).
		Str("path", outPath).
		Msg("Conversion finished")
}
