// Package pipeline implements the shared row-to-GeoJSON conversion: rows from
// a tabular source are normalized against a field schema, mapped to Point
// features and assembled into a FeatureCollection in source order.
package pipeline

// Row is one record from a tabular source, keyed by column name.
// Values are raw cell text, not yet typed.
type Row struct {
	Fields map[string]string
	Num    int // 1-based data row number, header row not counted
}

// RowSource produces the ordered rows of one input file. Implementations
// read the file eagerly and release the handle before returning, so neither
// method can fail.
type RowSource interface {
	// Columns returns the header names in source order.
	Columns() []string
	// Rows returns all data rows in source order.
	Rows() []Row
}

// Record holds the typed fields extracted from one valid row.
type Record struct {
	Properties map[string]interface{}
	Lat        float64
	Lon        float64
}

// Schema owns the field-mapping rules of one input kind. It is selected once
// at startup; the driver never branches on the concrete type.
type Schema interface {
	// Name identifies the schema in logs and errors.
	Name() string
	// Validate checks that the required columns are present,
	// returning ErrSchemaMismatch otherwise.
	Validate(columns []string) error
	// Normalize coerces one row into a typed record. Rejections are
	// reported as *RowError. Pure, no side effects.
	Normalize(row Row) (*Record, error)
}
