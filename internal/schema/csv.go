package schema

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

// CSVLocations is the fixed schema of the location CSV export: uid plus
// lat/lon are mandatory, everything else is optional.
type CSVLocations struct{}

func (CSVLocations) Name() string { return "csv-locations" }

// Validate requires the uid and coordinate columns in the header.
func (CSVLocations) Validate(columns []string) error {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[strings.TrimSpace(c)] = true
	}

	for _, c := range []string{"uid", "lat", "lon"} {
		if !have[c] {
			return fmt.Errorf("%w: column %q missing from header", pipeline.ErrSchemaMismatch, c)
		}
	}

	return nil
}

// Normalize maps one CSV row to a record. Blank optional columns are
// omitted from the properties to keep the output concise.
func (CSVLocations) Normalize(row pipeline.Row) (*pipeline.Record, error) {
	uid := strings.TrimSpace(row.Fields["uid"])
	if uid == "" {
		return nil, &pipeline.RowError{Row: row.Num, Column: "uid", Err: errors.New("missing uid")}
	}

	lat, err := coord(row.Num, "lat", row.Fields["lat"])
	if err != nil {
		return nil, err
	}
	lon, err := coord(row.Num, "lon", row.Fields["lon"])
	if err != nil {
		return nil, err
	}

	props := map[string]interface{}{"uid": uid}

	for _, col := range []string{"address", "type"} {
		if v := strings.TrimSpace(row.Fields[col]); v != "" {
			props[col] = v
		}
	}

	// Dimension columns are whole centimeters; anything else is dropped.
	for _, col := range []string{"max_height", "max_width", "max_depth"} {
		v := strings.TrimSpace(row.Fields[col])
		if v == "" {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			props[col] = n
		}
	}

	if v := strings.TrimSpace(row.Fields["park_and_ride_type"]); v != "" {
		props["park_and_ride_type"] = []string{v}
	}

	if v := strings.TrimSpace(row.Fields["DHID"]); v != "" {
		props["external_identifiers"] = map[string]interface{}{
			"type":  "DHID",
			"value": v,
		}
	}

	return &pipeline.Record{Lat: lat, Lon: lon, Properties: props}, nil
}
