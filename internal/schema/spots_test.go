package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

func TestSpotTableValidate(t *testing.T) {
	s := NewSpotTable(nil)

	if err := s.Validate([]string{"ID", "Name", "Widmung", "Längengrad", "Breitengrad"}); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	// A workbook without the spot identifier column is unusable.
	err := s.Validate([]string{"Name", "Widmung", "Längengrad", "Breitengrad"})
	if !errors.Is(err, pipeline.ErrSchemaMismatch) {
		t.Fatalf("Validate() without ID = %v; want ErrSchemaMismatch", err)
	}
}

func TestSpotTableNormalize(t *testing.T) {
	s := NewSpotTable(nil)
	s.now = testClock

	rec, err := s.Normalize(pipeline.Row{Num: 1, Fields: map[string]string{
		"ID":                 "spot-7",
		"Name":               "Stellplatz 7",
		"Widmung":            "Ladesäule",
		"Längengrad":         "9.18",
		"Breitengrad":        "48.78",
		"Zweck der Anlage":   "Auto",
		"Maximale Parkdauer": "60",
		"24/7 geöffnet?":     "WAHR",
	}})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	p := rec.Properties
	if p["uid"] != "spot-7" || p["name"] != "Stellplatz 7" {
		t.Errorf("identity properties = %#v", p)
	}
	if p["max_stay"] != 60 || p["purpose"] != "CAR" {
		t.Errorf("max_stay = %#v, purpose = %#v; want 60, CAR", p["max_stay"], p["purpose"])
	}
	if p["has_realtime_data"] != true {
		t.Errorf("has_realtime_data = %#v; want true", p["has_realtime_data"])
	}
	if p["static_data_updated_at"] != "2025-07-01T12:00:00Z" {
		t.Errorf("static_data_updated_at = %#v", p["static_data_updated_at"])
	}

	want := []interface{}{map[string]interface{}{"type": "CHARGING", "hours": "24/7"}}
	if !reflect.DeepEqual(p["restricted_to"], want) {
		t.Errorf("restricted_to = %#v; want %#v", p["restricted_to"], want)
	}
}

func TestSpotTableRestrictions(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
		want   interface{}
	}{
		{
			"disabled spot with hours",
			map[string]string{
				"Widmung":                     "Handicap",
				"Öffnungszeiten Mo-Fr Beginn": "08:00",
				"Öffnungszeiten Mo-Fr Ende":   "18:00",
			},
			[]interface{}{map[string]interface{}{"type": "DISABLED", "hours": "Mo-Fr 08:00-18:00"}},
		},
		{
			"family spot without hours",
			map[string]string{"Widmung": "Familie"},
			[]interface{}{map[string]interface{}{"type": "FAMILY"}},
		},
		{
			"unknown dedication keeps only hours",
			map[string]string{"Widmung": "Kurzparker", "24/7 geöffnet?": "ja"},
			[]interface{}{map[string]interface{}{"hours": "24/7"}},
		},
		{
			"unrestricted spot omits the key",
			map[string]string{},
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSpotTable(nil)
			s.now = testClock

			fields := map[string]string{"ID": "spot-1", "Längengrad": "9", "Breitengrad": "48"}
			for k, v := range tc.fields {
				fields[k] = v
			}

			rec, err := s.Normalize(pipeline.Row{Num: 1, Fields: fields})
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}

			got, ok := rec.Properties["restricted_to"]
			if tc.want == nil {
				if ok {
					t.Fatalf("restricted_to = %#v; want absent", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("restricted_to = %#v; want %#v", got, tc.want)
			}
		})
	}
}

func TestSpotTableInvalidGeometry(t *testing.T) {
	s := NewSpotTable(nil)

	_, err := s.Normalize(pipeline.Row{Num: 2, Fields: map[string]string{
		"ID":          "spot-9",
		"Längengrad":  "9.18",
		"Breitengrad": "",
	}})
	if !errors.Is(err, pipeline.ErrInvalidGeometry) {
		t.Fatalf("Normalize() error = %v; want ErrInvalidGeometry", err)
	}

	var rowErr *pipeline.RowError
	if !errors.As(err, &rowErr) || rowErr.Column != "Breitengrad" {
		t.Errorf("error = %v; want *RowError naming Breitengrad", err)
	}
}

func TestParseEntityType(t *testing.T) {
	cases := []struct {
		input string
		want  EntityType
		ok    bool
	}{
		{"parking-sites", ParkingSites, true},
		{"parking-spots", ParkingSpots, true},
		{"parking-lots", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseEntityType(tc.input)
			if tc.ok && (err != nil || got != tc.want) {
				t.Fatalf("ParseEntityType(%q) = %v, %v; want %v", tc.input, got, err, tc.want)
			}
			if !tc.ok && err == nil {
				t.Fatalf("ParseEntityType(%q) accepted; want error", tc.input)
			}
		})
	}
}
