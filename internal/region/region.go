package region

import (
	"fmt"
	"sort"
	"strings"

	"agro-weather/internal/types"
)

// Bounds is an inclusive rectangular bounding box in decimal degrees.
type Bounds struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
}

// Region is a named rectangular geographic restriction. A nil Bounds means
// no regional restriction; absolute coordinate validity is still enforced.
type Region struct {
	Name   string
	Bounds *Bounds
}

// predefined regions selectable at startup.
var predefined = map[string]Bounds{
	"indonesia":       {LatMin: -11.0, LatMax: 6.0, LonMin: 95.0, LonMax: 141.0},
	"south_east_asia": {LatMin: -10.0, LatMax: 28.0, LonMin: 90.0, LonMax: 141.0},
	"australia":       {LatMin: -44.0, LatMax: -10.0, LonMin: 112.0, LonMax: 154.0},
	"india":           {LatMin: 6.0, LatMax: 37.0, LonMin: 68.0, LonMax: 98.0},
}

// Parse resolves a region selector to a Region. The selector is
// case-insensitive and spaces are treated as underscores; "none" or the
// empty string disables the regional restriction.
func Parse(name string) (*Region, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if key == "" || key == "none" {
		return &Region{Name: "none"}, nil
	}

	bounds, ok := predefined[key]
	if !ok {
		return nil, fmt.Errorf("unknown predefined region %q (available: %s, or none)", name, strings.Join(Names(), ", "))
	}
	return &Region{Name: key, Bounds: &bounds}, nil
}

// Names returns the predefined region names in sorted order.
func Names() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationError reports a coordinate rejected by Validate.
type ValidationError struct {
	Coords types.Coords
	Region string
	Bounds *Bounds
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Bounds != nil {
		return fmt.Sprintf(
			"coordinates (%.4f, %.4f) are outside region %s (lat %.1f..%.1f, lon %.1f..%.1f)",
			e.Coords.Latitude, e.Coords.Longitude,
			e.Region,
			e.Bounds.LatMin, e.Bounds.LatMax, e.Bounds.LonMin, e.Bounds.LonMax,
		)
	}
	return fmt.Sprintf("coordinates (%.4f, %.4f) are invalid: %s", e.Coords.Latitude, e.Coords.Longitude, e.Reason)
}

// Validate checks a coordinate against absolute latitude/longitude validity
// and, when a bounding box is configured, against the region bounds. Bounds
// are inclusive on both edges.
func (r *Region) Validate(c types.Coords) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return &ValidationError{Coords: c, Region: r.Name, Reason: "latitude must be between -90 and 90"}
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return &ValidationError{Coords: c, Region: r.Name, Reason: "longitude must be between -180 and 180"}
	}

	if r.Bounds == nil {
		return nil
	}

	b := r.Bounds
	if c.Latitude < b.LatMin || c.Latitude > b.LatMax ||
		c.Longitude < b.LonMin || c.Longitude > b.LonMax {
		return &ValidationError{Coords: c, Region: r.Name, Bounds: b}
	}
	return nil
}
