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

	ConfigFile string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to optional configuration file"`
	SourcesDir string `short:"d" long:"sources-dir" env:"SOURCES_DIR" description:"Directory holding the reference tables" default:"sources"`
	Output     string `short:"o" long:"out"         description:"Output file path. Derived from the workbook name if empty"`
	Strict     bool   `short:"s" long:"strict"      description:"Abort on the first invalid row instead of skipping it"`
	Compact    bool   `short:"m" long:"compact"     description:"Emit minified GeoJSON"`

	Args struct {
		SourceUID  string `positional-arg-name:"source-uid"  description:"Basename of the workbook"`
		EntityType string `positional-arg-name:"entity-type" description:"parking-sites or parking-spots"`
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

	if opts.Args.SourceUID == "" {
		log.Error().Msg("No source uid specified")
		os.Exit(2)
	}
	if opts.Args.EntityType == "" {
		log.Error().Msg("No entity type specified, e.g. parking-sites or parking-spots")
		os.Exit(2)
	}

	entity, err := schema.ParseEntityType(opts.Args.EntityType)
	if err != nil {
		log.Error().Err(err).Msg("Invalid entity type")
		os.Exit(2)
	}

	cfg, err := config.LoadOptional(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", opts.ConfigFile).Msg("Failed to load configuration")
	}

	workbook := filepath.Join(opts.SourcesDir, string(entity), opts.Args.SourceUID+".xlsx")

	src, err := source.OpenXLSX(workbook)
	if err != nil {
		log.Fatal().Err(err).Str("workbook", workbook).Msg("Failed to read workbook")
	}

	res, err := pipeline.Convert(src, entity.Schema(cfg.Overrides(string(entity))), pipeline.Options{
		Strict: opts.Strict || cfg.Strict,
	})
	if err != nil {
		log.Fatal().Err(err).Str("workbook", workbook).Msg("Conversion failed")
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = strings.TrimSuffix(workbook, filepath.Ext(workbook)) + ".geojson"
		if cfg.OutputDir != "" {
			outPath = filepath.Join(cfg.OutputDir, filepath.Base(outPath))
		}
	}

	wopts := geo.WriteOptions{Compact: opts.Compact || cfg.Compact}
	if err := pipeline.WriteCollection(outPath, res.Collection, wopts); err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("Failed to write output")
	}

	log.Info().
		Str("entity", string(entity)).
		Int("features", res.Converted).
		Int("skipped", len(res.Skipped)).
		Str("path", outPath).
		Msg("Conversion finished")
}
