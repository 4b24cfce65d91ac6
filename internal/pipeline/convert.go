package pipeline

import (
	"errors"
	"fmt"

	"github.com/parkdata/geoconvert/internal/geo"

	"github.com/rs/zerolog/log"
)

// Options control a single conversion run.
type Options struct {
	// Strict aborts on the first rejected row. The default is to skip the
	// row, log it and keep going, as the reference tables routinely contain
	// a few broken entries.
	Strict bool
}

// Result reports what a conversion run produced.
type Result struct {
	Collection geo.FeatureCollection
	Skipped    []*RowError
	Converted  int
}

// Convert runs every row from src through schema and assembles the resulting
// features into one FeatureCollection. Feature order matches row order; a
// source with zero data rows yields a valid empty collection.
func Convert(src RowSource, schema Schema, opts Options) (*Result, error) {
	if err := schema.Validate(src.Columns()); err != nil {
		return nil, err
	}

	res := &Result{Collection: geo.NewFeatureCollection()}

	for _, row := range src.Rows() {
		rec, err := schema.Normalize(row)
		if err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				rowErr = &RowError{Row: row.Num, Err: err}
			}

			if opts.Strict {
				return nil, rowErr
			}

			log.Warn().
				Int("row", rowErr.Row).
				Str("column", rowErr.Column).
				Str("schema", schema.Name()).
				Err(rowErr.Err).
				Msg("Skipping invalid row")
			res.Skipped = append(res.Skipped, rowErr)
			continue
		}

		res.Collection.Features = append(
			res.Collection.Features,
			geo.NewPointFeature(rec.Lon, rec.Lat, rec.Properties),
		)
		res.Converted++
	}

	return res, nil
}

// WriteCollection emits the collection to path via the geo writer,
// classifying failures as ErrWriteFailure.
func WriteCollection(path string, fc geo.FeatureCollection, opts geo.WriteOptions) error {
	if err := geo.Save(path, fc, opts); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}
