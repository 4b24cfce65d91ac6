package schema

import (
	"time"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

// siteHeaderRow is the header row of the parking-sites reference table.
func siteHeaderRow() map[string]string {
	return map[string]string{
		"ID":                           "uid",
		"Name":                         "name",
		"Art der Anlage":               "type",
		"Längengrad":                   "lon",
		"Breitengrad":                  "lat",
		"Adresse mit PLZ und Stadt":    "address",
		"Betreiber Name":               "operator_name",
		"Anzahl Stellplätze":           "capacity",
		"Anzahl Ladeplätze":            "capacity_charging",
		"Anzahl Behindertenparkplätze": "capacity_disabled",
		"Maximale Parkdauer":           "max_stay",
		"Einfahrtshöhe (cm)":           "max_height",
		"Zweck der Anlage":             "purpose",
		"Überwacht?":                   "supervision_type",
		"Webseite":                     "public_url",
		"Park&Ride":                    "park_and_ride_type",
		"24/7 geöffnet?":               "opening_hours_is_24_7",
		"Öffnungszeiten Mo-Fr Beginn":  "opening_hours_weekday_begin",
		"Öffnungszeiten Mo-Fr Ende":    "opening_hours_weekday_end",
		"Öffnungszeiten Sa Beginn":     "opening_hours_saturday_begin",
		"Öffnungszeiten Sa Ende":       "opening_hours_saturday_end",
		"Öffnungszeiten So Beginn":     "opening_hours_sunday_begin",
		"Öffnungszeiten So Ende":       "opening_hours_sunday_end",
	}
}

// siteTypeMapping translates the German facility kind. Unknown or blank
// kinds fall back to an open parking ground.
var siteTypeMapping = map[string]string{
	"Parkplatz":      "OFF_STREET_PARKING_GROUND",
	"Parkhaus":       "CAR_PARK",
	"Tiefgarage":     "UNDERGROUND",
	"Am Straßenrand": "ON_STREET",
}

const defaultSiteType = "OFF_STREET_PARKING_GROUND"

// SiteTable maps parking-site reference rows to features.
type SiteTable struct {
	xlsxTable
}

// NewSiteTable returns the parking-sites schema.
func NewSiteTable(overrides map[string]string) *SiteTable {
	return &SiteTable{xlsxTable{
		name:      string(ParkingSites),
		headerRow: mergeHeaderRow(siteHeaderRow(), overrides),
		now:       time.Now,
	}}
}

func (t *SiteTable) Normalize(row pipeline.Row) (*pipeline.Record, error) {
	f := t.fields(row)

	rec, err := t.base(row, f)
	if err != nil {
		return nil, err
	}
	props := rec.Properties

	for _, field := range []string{"address", "operator_name", "public_url"} {
		if v := f[field]; v != "" {
			props[field] = v
		}
	}

	for _, field := range []string{"capacity", "capacity_charging", "capacity_disabled", "max_stay", "max_height"} {
		if n, ok := intCell(f[field]); ok {
			props[field] = n
		}
	}

	siteType := defaultSiteType
	if mapped, ok := siteTypeMapping[f["type"]]; ok {
		siteType = mapped
	}
	props["type"] = siteType

	if purpose, ok := purposeMapping[f["purpose"]]; ok {
		props["purpose"] = purpose
	}

	if v := f["supervision_type"]; v != "" {
		if isTrue(v) {
			props["supervision_type"] = "YES"
		} else {
			props["supervision_type"] = "NO"
		}
	}

	if v := f["park_and_ride_type"]; v != "" {
		props["park_and_ride_type"] = []string{v}
	}

	if hours := buildOpeningHours(f); hours != "" {
		props["opening_hours"] = hours
	}

	props["static_data_updated_at"] = t.stamp()

	return rec, nil
}
