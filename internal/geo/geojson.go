// Package geo holds the GeoJSON document types and the file emission logic.
package geo

// FeatureCollection is the root GeoJSON document produced by the converters.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection returns an empty collection. Features starts non-nil
// so a header-only input still marshals as "features": [].
func NewFeatureCollection() FeatureCollection {
	return FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}

// Feature pairs one geometry with its properties mapping.
type Feature struct {
	Properties map[string]interface{} `json:"properties"`
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
}

// Geometry represents the geometry of a feature.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// NewPointFeature builds a Point feature. GeoJSON wants longitude first.
func NewPointFeature(lon, lat float64, props map[string]interface{}) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   Geometry{Type: "Point", Coordinates: []float64{lon, lat}},
		Properties: props,
	}
}
