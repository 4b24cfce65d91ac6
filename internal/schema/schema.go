// Package schema defines the field-mapping rules for each supported input:
// the fixed location-CSV layout and the two Excel reference-table layouts.
package schema

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/parkdata/geoconvert/internal/pipeline"
)

// coord parses one coordinate cell. Blank or non-numeric values reject the
// row with ErrInvalidGeometry.
func coord(rowNum int, column, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &pipeline.RowError{
			Row:    rowNum,
			Column: column,
			Err:    fmt.Errorf("%w: coordinate missing", pipeline.ErrInvalidGeometry),
		}
	}

	// German sheets occasionally store coordinates with a decimal comma.
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &pipeline.RowError{
			Row:    rowNum,
			Column: column,
			Err:    fmt.Errorf("%w: %q is not a decimal number", pipeline.ErrInvalidGeometry, raw),
		}
	}

	return v, nil
}

// intCell rounds a numeric cell to the nearest integer. Spreadsheets export
// whole numbers as "120.0", sometimes with a decimal comma.
func intCell(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}

	return int(math.Round(v)), true
}

// isTrue reports whether a cell holds an affirmative value. The reference
// tables mix German and English spellings.
func isTrue(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "wahr", "ja", "yes", "x", "1":
		return true
	}
	return false
}

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)

// clockTime normalizes a cell to HH:MM. Handles "8:00", "08:00:00" and raw
// Excel time serials (fraction of a day).
func clockTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if m := clockRe.FindStringSubmatch(raw); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h > 24 || min > 59 {
			return ""
		}
		return fmt.Sprintf("%02d:%02d", h, min)
	}

	if frac, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64); err == nil && frac >= 0 && frac < 1 {
		total := int(math.Round(frac * 24 * 60))
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	}

	return ""
}

// buildOpeningHours folds the per-day begin/end fields into an OSM
// opening_hours string, or "24/7" when the table says so.
func buildOpeningHours(f map[string]string) string {
	if isTrue(f["opening_hours_is_24_7"]) {
		return "24/7"
	}

	days := []struct{ osm, key string }{
		{"Mo-Fr", "weekday"},
		{"Sa", "saturday"},
		{"Su", "sunday"},
	}

	var parts []string
	for _, d := range days {
		begin := clockTime(f["opening_hours_"+d.key+"_begin"])
		end := clockTime(f["opening_hours_"+d.key+"_end"])
		if begin == "" || end == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s-%s", d.osm, begin, end))
	}

	// A 00:00-00:00 span means open around the clock, not closed.
	return strings.ReplaceAll(strings.Join(parts, "; "), "00:00-00:00", "00:00-24:00")
}
