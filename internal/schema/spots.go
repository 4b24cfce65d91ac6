package schema

import (
	"time"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

// spotHeaderRow is the header row of the parking-spots reference table.
func spotHeaderRow() map[string]string {
	return map[string]string{
		"ID":                          "uid",
		"Name":                        "name",
		"Widmung":                     "type",
		"Längengrad":                  "lon",
		"Breitengrad":                 "lat",
		"Zweck der Anlage":            "purpose",
		"Maximale Parkdauer":          "max_stay",
		"24/7 geöffnet?":              "opening_hours_is_24_7",
		"Öffnungszeiten Mo-Fr Beginn": "opening_hours_weekday_begin",
		"Öffnungszeiten Mo-Fr Ende":   "opening_hours_weekday_end",
		"Öffnungszeiten Sa Beginn":    "opening_hours_saturday_begin",
		"Öffnungszeiten Sa Ende":      "opening_hours_saturday_end",
		"Öffnungszeiten So Beginn":    "opening_hours_sunday_begin",
		"Öffnungszeiten So Ende":      "opening_hours_sunday_end",
	}
}

// restrictedToMapping translates the Widmung column to spot restrictions.
// Spots without a known dedication are unrestricted.
var restrictedToMapping = map[string]string{
	"Ladesäule": "CHARGING",
	"Familie":   "FAMILY",
	"Handicap":  "DISABLED",
}

// SpotTable maps parking-spot reference rows to features.
type SpotTable struct {
	xlsxTable
}

// NewSpotTable returns the parking-spots schema.
func NewSpotTable(overrides map[string]string) *SpotTable {
	return &SpotTable{xlsxTable{
		name:      string(ParkingSpots),
		headerRow: mergeHeaderRow(spotHeaderRow(), overrides),
		now:       time.Now,
	}}
}

func (t *SpotTable) Normalize(row pipeline.Row) (*pipeline.Record, error) {
	f := t.fields(row)

	rec, err := t.base(row, f)
	if err != nil {
		return nil, err
	}
	props := rec.Properties

	if n, ok := intCell(f["max_stay"]); ok {
		props["max_stay"] = n
	}

	if purpose, ok := purposeMapping[f["purpose"]]; ok {
		props["purpose"] = purpose
	}

	restricted := map[string]interface{}{}
	if kind, ok := restrictedToMapping[f["type"]]; ok {
		restricted["type"] = kind
	}
	if hours := buildOpeningHours(f); hours != "" {
		restricted["hours"] = hours
	}
	if len(restricted) > 0 {
		props["restricted_to"] = []interface{}{restricted}
	}

	props["has_realtime_data"] = true
	props["static_data_updated_at"] = t.stamp()

	return rec, nil
}
