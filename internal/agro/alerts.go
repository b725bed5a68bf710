package agro

import "fmt"

// Crop types and growth stages the alert engine knows. Anything else yields
// an empty advisory list, not an error. "general" has no crop-specific rules;
// it still receives the condition alerts.
var (
	knownCrops  = map[string]bool{"general": true, "rice": true, "corn": true, "vegetables": true}
	knownStages = map[string]bool{"planting": true, "vegetative": true, "flowering": true, "harvesting": true}
)

// observations are the scalar inputs the rule table is evaluated against.
// Nil means the value was not reported; rules over missing values never fire.
type observations struct {
	temperature     *float64 // °C
	humidity        *float64 // %
	precipitation   *float64 // mm
	windGusts       *float64 // km/h
	surfaceMoisture *float64 // m³/m³, topmost soil layer
	drySpellDays    *float64 // leading forecast days with <1mm precipitation
}

func (o observations) value(f fieldKind) (float64, bool) {
	var p *float64
	switch f {
	case fieldTemperature:
		p = o.temperature
	case fieldHumidity:
		p = o.humidity
	case fieldPrecipitation:
		p = o.precipitation
	case fieldWindGusts:
		p = o.windGusts
	case fieldSurfaceMoisture:
		p = o.surfaceMoisture
	case fieldDrySpellDays:
		p = o.drySpellDays
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

type fieldKind int

const (
	fieldTemperature fieldKind = iota
	fieldHumidity
	fieldPrecipitation
	fieldWindGusts
	fieldSurfaceMoisture
	fieldDrySpellDays
)

type comparison int

const (
	cmpAbove   comparison = iota // v > lo
	cmpBelow                     // v < lo
	cmpAtLeast                   // v >= lo
	cmpWithin                    // lo <= v <= hi
)

func (c comparison) holds(v, lo, hi float64) bool {
	switch c {
	case cmpAbove:
		return v > lo
	case cmpBelow:
		return v < lo
	case cmpAtLeast:
		return v >= lo
	case cmpWithin:
		return v >= lo && v <= hi
	}
	return false
}

type ruleKind int

const (
	ruleAlert ruleKind = iota
	ruleRecommendation
)

// rule is one row of the static advisory table. Empty crop/stage match any
// known crop/stage.
type rule struct {
	crop    string
	stage   string
	field   fieldKind
	compare comparison
	lo, hi  float64

	kind     ruleKind
	name     string
	severity string // alerts only
	// message is a plain string, or a fmt format with a single float verb
	// when valueInMessage is set.
	message        string
	valueInMessage bool
	action         string   // recommendations only
	advice         []string // alerts only
}

// ruleTable is evaluated in order; triggered advisories keep table order.
// Condition rules apply to every known crop, crop rules only on exact match.
var ruleTable = []rule{
	{
		field: fieldTemperature, compare: cmpAbove, lo: 35,
		kind: ruleAlert, name: "heat_stress", severity: "high",
		message: "High temperature alert: %.1f°C. Risk of heat stress for crops.", valueInMessage: true,
		advice: []string{"Increase irrigation frequency", "Provide shade if possible", "Monitor plants for wilting"},
	},
	{
		field: fieldTemperature, compare: cmpBelow, lo: 15,
		kind: ruleAlert, name: "cold_stress", severity: "medium",
		message: "Low temperature alert: %.1f°C. Potential cold stress for tropical crops.", valueInMessage: true,
		advice: []string{"Consider protective covering", "Delay planting if in planning stage"},
	},
	{
		field: fieldPrecipitation, compare: cmpAbove, lo: 20,
		kind: ruleAlert, name: "heavy_rain", severity: "medium",
		message: "Heavy rainfall detected: %.1fmm. Risk of waterlogging.", valueInMessage: true,
		advice: []string{"Ensure proper drainage", "Delay field operations", "Monitor for fungal diseases"},
	},
	{
		field: fieldSurfaceMoisture, compare: cmpBelow, lo: 0.1,
		kind: ruleAlert, name: "drought_stress", severity: "high",
		message: "Low soil moisture: %.3f m³/m³. Irrigation needed.", valueInMessage: true,
		advice: []string{"Immediate irrigation required", "Check irrigation system", "Consider mulching"},
	},
	{
		field: fieldSurfaceMoisture, compare: cmpAbove, lo: 0.4,
		kind: ruleAlert, name: "waterlogged", severity: "medium",
		message: "High soil moisture: %.3f m³/m³. Risk of waterlogging.", valueInMessage: true,
		advice: []string{"Improve drainage", "Avoid heavy machinery", "Monitor for root diseases"},
	},
	{
		field: fieldWindGusts, compare: cmpAbove, lo: 50,
		kind: ruleAlert, name: "strong_wind", severity: "high",
		message: "Strong wind gusts: %.1f km/h. Risk of crop damage.", valueInMessage: true,
		advice: []string{"Secure tall crops", "Delay spraying operations", "Check for physical damage"},
	},
	{
		field: fieldDrySpellDays, compare: cmpAtLeast, lo: 5,
		kind: ruleAlert, name: "dry_spell", severity: "medium",
		message: "Extended dry period forecast: %.0f days without significant rain.", valueInMessage: true,
		advice: []string{"Plan irrigation schedule", "Check water reserves", "Consider drought-resistant practices"},
	},

	{
		crop: "rice", stage: "flowering",
		field: fieldTemperature, compare: cmpBelow, lo: 8,
		kind: ruleAlert, name: "frost_warning", severity: "high",
		message: "Frost warning: %.1f°C during flowering. Risk of spikelet sterility in rice.", valueInMessage: true,
		advice: []string{"Maintain standing water to buffer temperature", "Delay draining paddies"},
	},
	{
		crop: "rice", stage: "planting",
		field: fieldTemperature, compare: cmpWithin, lo: 20, hi: 35,
		kind: ruleRecommendation, name: "optimal_conditions",
		message: "Temperature conditions are optimal for rice planting.",
		action:  "Proceed with planting operations",
	},
	{
		crop: "rice", stage: "flowering",
		field: fieldTemperature, compare: cmpAbove, lo: 35,
		kind: ruleRecommendation, name: "heat_stress_prevention",
		message: "High temperatures during flowering can reduce yield.",
		action:  "Maintain adequate water levels and consider evening irrigation",
	},
	{
		crop: "corn", stage: "vegetative",
		field: fieldHumidity, compare: cmpAbove, lo: 80,
		kind: ruleRecommendation, name: "disease_prevention",
		message: "High humidity increases risk of fungal diseases in corn.",
		action:  "Monitor for leaf blight and ensure good air circulation",
	},
	{
		crop: "vegetables",
		field: fieldTemperature, compare: cmpAbove, lo: 30,
		kind: ruleRecommendation, name: "heat_protection",
		message: "High temperatures can stress vegetable crops.",
		action:  "Consider shade cloth and increase watering frequency",
	},
}

// evaluateRules runs the static rule table against the observations and
// collects triggered advisories in table order. Unknown crop or growth stage
// short-circuits to empty results.
func evaluateRules(obs observations, crop, stage string) ([]Alert, []Recommendation) {
	if !knownCrops[crop] || !knownStages[stage] {
		return nil, nil
	}

	var alerts []Alert
	var recs []Recommendation
	for _, r := range ruleTable {
		if r.crop != "" && r.crop != crop {
			continue
		}
		if r.stage != "" && r.stage != stage {
			continue
		}
		v, ok := obs.value(r.field)
		if !ok || !r.compare.holds(v, r.lo, r.hi) {
			continue
		}

		msg := r.message
		if r.valueInMessage {
			msg = fmt.Sprintf(r.message, v)
		}
		switch r.kind {
		case ruleAlert:
			alerts = append(alerts, Alert{
				Type:            r.name,
				Severity:        r.severity,
				Message:         msg,
				Recommendations: r.advice,
			})
		case ruleRecommendation:
			recs = append(recs, Recommendation{
				Type:    r.name,
				Message: msg,
				Action:  r.action,
			})
		}
	}
	return alerts, recs
}

// observe extracts rule inputs from a current-weather result and a daily
// forecast.
func observe(current *CurrentWeather, forecast *Forecast) observations {
	obs := observations{
		temperature:   current.Weather.Temperature,
		humidity:      current.Weather.Humidity,
		precipitation: current.Weather.Precipitation,
		windGusts:     current.Weather.WindGusts,
	}
	if current.Soil != nil {
		obs.surfaceMoisture = current.Soil.Moisture.Layer0To1
	}

	// Count leading forecast days with under 1mm of rain; a missing value
	// counts as dry.
	dry := 0.0
	for _, day := range forecast.Daily {
		if day.Precipitation != nil && *day.Precipitation >= 1 {
			break
		}
		dry++
	}
	obs.drySpellDays = &dry

	return obs
}
