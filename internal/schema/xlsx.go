package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

// EntityType selects which reference-table schema applies to a workbook.
type EntityType string

const (
	ParkingSites EntityType = "parking-sites"
	ParkingSpots EntityType = "parking-spots"
)

// ParseEntityType validates a CLI argument against the known entity types.
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case ParkingSites, ParkingSpots:
		return EntityType(s), nil
	}
	return "", fmt.Errorf("unknown entity type %q, want %q or %q", s, ParkingSites, ParkingSpots)
}

// Schema returns the field-mapping schema for the entity type. Overrides
// extend the built-in header row for sheets that add or rename columns.
func (t EntityType) Schema(overrides map[string]string) pipeline.Schema {
	if t == ParkingSpots {
		return NewSpotTable(overrides)
	}
	return NewSiteTable(overrides)
}

// xlsxTable holds what the two reference-table schemas share: the translated
// header row and the identifier/coordinate handling. Sheet headers are
// German, canonical field names become the GeoJSON property keys.
type xlsxTable struct {
	now       func() time.Time
	headerRow map[string]string // sheet header -> canonical field
	name      string
}

func (t *xlsxTable) Name() string { return t.name }

// Validate requires headers mapping to uid, lat and lon.
func (t *xlsxTable) Validate(columns []string) error {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		if field, ok := t.headerRow[strings.TrimSpace(c)]; ok {
			have[field] = true
		}
	}

	for _, field := range []string{"uid", "lat", "lon"} {
		if !have[field] {
			return fmt.Errorf("%w: %s: no column maps to %q", pipeline.ErrSchemaMismatch, t.name, field)
		}
	}

	return nil
}

// fields translates a raw row into canonical field names, dropping blank
// cells and headers the schema does not know.
func (t *xlsxTable) fields(row pipeline.Row) map[string]string {
	out := make(map[string]string, len(row.Fields))
	for header, field := range t.headerRow {
		if v, ok := row.Fields[header]; ok {
			if v = strings.TrimSpace(v); v != "" {
				out[field] = v
			}
		}
	}
	return out
}

// base extracts the fields every entity type shares. The returned record
// carries uid and name; type-specific rules add the rest.
func (t *xlsxTable) base(row pipeline.Row, f map[string]string) (*pipeline.Record, error) {
	uid := f["uid"]
	if uid == "" {
		return nil, &pipeline.RowError{Row: row.Num, Column: "ID", Err: errors.New("missing identifier")}
	}

	lat, err := coord(row.Num, "Breitengrad", f["lat"])
	if err != nil {
		return nil, err
	}
	lon, err := coord(row.Num, "Längengrad", f["lon"])
	if err != nil {
		return nil, err
	}

	props := map[string]interface{}{"uid": uid}
	if name := f["name"]; name != "" {
		props["name"] = name
	}

	return &pipeline.Record{Lat: lat, Lon: lon, Properties: props}, nil
}

// stamp records when the static data was read from the table.
func (t *xlsxTable) stamp() string {
	return t.now().UTC().Format(time.RFC3339)
}

// mergeHeaderRow copies the built-in header row and applies overrides.
func mergeHeaderRow(base, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// purposeMapping translates the German usage column to ParkAPI purposes.
var purposeMapping = map[string]string{
	"Auto":    "CAR",
	"Fahrrad": "BIKE",
}
