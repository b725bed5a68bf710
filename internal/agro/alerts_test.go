package agro

import (
	"strings"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestEvaluateRules_ConditionAlerts(t *testing.T) {
	tests := []struct {
		name       string
		obs        observations
		wantTypes  []string
		wantAbsent []string
	}{
		{
			name:      "heat stress above 35",
			obs:       observations{temperature: f(36.5)},
			wantTypes: []string{"heat_stress"},
		},
		{
			name:       "no heat stress at exactly 35",
			obs:        observations{temperature: f(35)},
			wantAbsent: []string{"heat_stress"},
		},
		{
			name:      "cold stress below 15",
			obs:       observations{temperature: f(12)},
			wantTypes: []string{"cold_stress"},
		},
		{
			name:      "heavy rain above 20mm",
			obs:       observations{precipitation: f(25)},
			wantTypes: []string{"heavy_rain"},
		},
		{
			name:      "drought stress below 0.1",
			obs:       observations{surfaceMoisture: f(0.05)},
			wantTypes: []string{"drought_stress"},
		},
		{
			name:      "waterlogged above 0.4",
			obs:       observations{surfaceMoisture: f(0.45)},
			wantTypes: []string{"waterlogged"},
		},
		{
			name:       "moderate moisture triggers neither",
			obs:        observations{surfaceMoisture: f(0.25)},
			wantAbsent: []string{"drought_stress", "waterlogged"},
		},
		{
			name:      "strong wind above 50",
			obs:       observations{windGusts: f(65)},
			wantTypes: []string{"strong_wind"},
		},
		{
			name:      "dry spell at 5 days",
			obs:       observations{drySpellDays: f(5)},
			wantTypes: []string{"dry_spell"},
		},
		{
			name:       "no dry spell at 4 days",
			obs:        observations{drySpellDays: f(4)},
			wantAbsent: []string{"dry_spell"},
		},
		{
			name:       "missing values fire nothing",
			obs:        observations{},
			wantAbsent: []string{"heat_stress", "cold_stress", "heavy_rain", "drought_stress", "waterlogged", "strong_wind", "dry_spell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, _ := evaluateRules(tt.obs, "rice", "vegetative")

			got := map[string]bool{}
			for _, a := range alerts {
				got[a.Type] = true
			}
			for _, want := range tt.wantTypes {
				if !got[want] {
					t.Errorf("alerts %v missing type %q", alerts, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if got[absent] {
					t.Errorf("alerts %v unexpectedly contain type %q", alerts, absent)
				}
			}
		})
	}
}

func TestEvaluateRules_FrostWarning(t *testing.T) {
	alerts, _ := evaluateRules(observations{temperature: f(5)}, "rice", "flowering")

	found := false
	for _, a := range alerts {
		if a.Type == "frost_warning" {
			found = true
			if a.Severity != "high" {
				t.Errorf("frost_warning severity = %q, want high", a.Severity)
			}
			if !strings.Contains(a.Message, "5.0") {
				t.Errorf("frost_warning message %q does not carry the observed value", a.Message)
			}
		}
	}
	if !found {
		t.Fatalf("alerts %v missing frost_warning at 5°C for rice flowering", alerts)
	}

	alerts, _ = evaluateRules(observations{temperature: f(25)}, "rice", "flowering")
	for _, a := range alerts {
		if a.Type == "frost_warning" {
			t.Fatalf("unexpected frost_warning at 25°C: %v", a)
		}
	}
}

func TestEvaluateRules_CropRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		obs      observations
		crop     string
		stage    string
		wantType string
	}{
		{"rice planting optimal", observations{temperature: f(28)}, "rice", "planting", "optimal_conditions"},
		{"rice flowering heat", observations{temperature: f(37)}, "rice", "flowering", "heat_stress_prevention"},
		{"corn vegetative humidity", observations{humidity: f(85)}, "corn", "vegetative", "disease_prevention"},
		{"vegetables heat any stage", observations{temperature: f(32)}, "vegetables", "harvesting", "heat_protection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, recs := evaluateRules(tt.obs, tt.crop, tt.stage)
			found := false
			for _, r := range recs {
				if r.Type == tt.wantType {
					found = true
					if r.Action == "" {
						t.Errorf("%s recommendation has no action", r.Type)
					}
				}
			}
			if !found {
				t.Errorf("recommendations %v missing type %q", recs, tt.wantType)
			}
		})
	}
}

func TestEvaluateRules_CropScoping(t *testing.T) {
	// Corn humidity rule must not fire for rice.
	_, recs := evaluateRules(observations{humidity: f(90)}, "rice", "vegetative")
	for _, r := range recs {
		if r.Type == "disease_prevention" {
			t.Errorf("corn rule fired for rice: %v", r)
		}
	}

	// Rice planting rule must not fire at another stage.
	_, recs = evaluateRules(observations{temperature: f(28)}, "rice", "harvesting")
	for _, r := range recs {
		if r.Type == "optimal_conditions" {
			t.Errorf("planting rule fired for harvesting: %v", r)
		}
	}
}

func TestEvaluateRules_GeneralCrop(t *testing.T) {
	alerts, recs := evaluateRules(observations{temperature: f(40)}, "general", "vegetative")

	if len(alerts) != 1 || alerts[0].Type != "heat_stress" {
		t.Errorf("alerts = %v, want a single heat_stress alert", alerts)
	}
	if len(recs) != 0 {
		t.Errorf("recommendations = %v, want none for general crop", recs)
	}
}

func TestEvaluateRules_UnknownCropOrStage(t *testing.T) {
	tests := []struct {
		name  string
		crop  string
		stage string
	}{
		{"unknown crop", "banana", "vegetative"},
		{"unknown stage", "rice", "dormant"},
		{"both unknown", "banana", "dormant"},
		{"empty", "", ""},
	}

	// Observations that would trigger several rules for a known combination.
	obs := observations{temperature: f(40), precipitation: f(30), windGusts: f(80)}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, recs := evaluateRules(obs, tt.crop, tt.stage)
			if len(alerts) != 0 || len(recs) != 0 {
				t.Errorf("evaluateRules(%q, %q) = %v, %v; want empty", tt.crop, tt.stage, alerts, recs)
			}
		})
	}
}

func TestEvaluateRules_TableOrder(t *testing.T) {
	obs := observations{
		temperature:     f(40), // heat_stress first
		precipitation:   f(30), // then heavy_rain
		surfaceMoisture: f(0.5),
		windGusts:       f(70),
	}
	alerts, _ := evaluateRules(obs, "corn", "vegetative")

	want := []string{"heat_stress", "heavy_rain", "waterlogged", "strong_wind"}
	if len(alerts) != len(want) {
		t.Fatalf("got %d alerts %v, want %d", len(alerts), alerts, len(want))
	}
	for i, a := range alerts {
		if a.Type != want[i] {
			t.Errorf("alerts[%d].Type = %q, want %q", i, a.Type, want[i])
		}
	}
}

func TestObserve_DrySpellCounting(t *testing.T) {
	tests := []struct {
		name   string
		precip []*float64
		want   float64
	}{
		{"all dry", []*float64{f(0), f(0.5), f(0), f(0.2), f(0)}, 5},
		{"rain on day three", []*float64{f(0), f(0.5), f(3), f(0), f(0)}, 2},
		{"rain first day", []*float64{f(10), f(0)}, 0},
		{"missing value counts dry", []*float64{f(0), nil, f(0)}, 3},
		{"empty forecast", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := &Forecast{}
			for _, p := range tt.precip {
				forecast.Daily = append(forecast.Daily, DailyForecast{Precipitation: p})
			}
			current := &CurrentWeather{}

			obs := observe(current, forecast)
			if obs.drySpellDays == nil || *obs.drySpellDays != tt.want {
				t.Errorf("drySpellDays = %v, want %v", obs.drySpellDays, tt.want)
			}
		})
	}
}

func TestObserve_UsesSurfaceMoisture(t *testing.T) {
	current := &CurrentWeather{
		Weather: CurrentConditions{Temperature: f(30)},
		Soil: &SoilSnapshot{
			Moisture: SoilMoisture{Layer0To1: f(0.08), Layer1To3: f(0.3)},
		},
	}
	obs := observe(current, &Forecast{})

	if obs.surfaceMoisture == nil || *obs.surfaceMoisture != 0.08 {
		t.Errorf("surfaceMoisture = %v, want 0.08", obs.surfaceMoisture)
	}
	if obs.temperature == nil || *obs.temperature != 30 {
		t.Errorf("temperature = %v, want 30", obs.temperature)
	}
}
