package agro

import "agro-weather/internal/region"

// Location identifies the point a result describes. Timezone and elevation
// come from the upstream response; the timezone falls back to a local tzf
// lookup when the upstream omits it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Elevation float64 `json:"elevation"`
}

// CurrentWeather is the get_current_weather result.
type CurrentWeather struct {
	Location    Location          `json:"location"`
	CurrentTime string            `json:"current_time"`
	Weather     CurrentConditions `json:"weather"`
	Soil        *SoilSnapshot     `json:"soil,omitempty"`
}

// CurrentConditions holds the current surface weather reading. Nil values
// mean the upstream did not report the variable.
type CurrentConditions struct {
	Temperature         *float64 `json:"temperature"`
	Humidity            *float64 `json:"humidity"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	Precipitation       *float64 `json:"precipitation"`
	WeatherCode         *int     `json:"weather_code"`
	CloudCover          *float64 `json:"cloud_cover"`
	Pressure            *float64 `json:"pressure"`
	WindSpeed           *float64 `json:"wind_speed"`
	WindDirection       *float64 `json:"wind_direction"`
	WindGusts           *float64 `json:"wind_gusts"`
}

// SoilSnapshot is a soil temperature/moisture profile at one instant.
type SoilSnapshot struct {
	Temperature SoilTemperature `json:"temperature"`
	Moisture    SoilMoisture    `json:"moisture"`
}

// SoilTemperature is soil temperature by depth, in °C.
type SoilTemperature struct {
	Surface *float64 `json:"surface"`
	Depth6  *float64 `json:"6cm"`
	Depth18 *float64 `json:"18cm"`
	Depth54 *float64 `json:"54cm"`
}

// SoilMoisture is volumetric soil moisture by depth layer, in m³/m³.
type SoilMoisture struct {
	Layer0To1   *float64 `json:"0_1cm"`
	Layer1To3   *float64 `json:"1_3cm"`
	Layer3To9   *float64 `json:"3_9cm"`
	Layer9To27  *float64 `json:"9_27cm"`
	Layer27To81 *float64 `json:"27_81cm,omitempty"`
}

// Forecast is the get_weather_forecast result.
type Forecast struct {
	Location     Location         `json:"location"`
	ForecastDays int              `json:"forecast_days"`
	Daily        []DailyForecast  `json:"daily_forecast"`
	Hourly       []HourlyForecast `json:"hourly_forecast,omitempty"`
}

// DailyForecast is one day of the daily forecast series.
type DailyForecast struct {
	Date                     string   `json:"date"`
	TemperatureMax           *float64 `json:"temperature_max"`
	TemperatureMin           *float64 `json:"temperature_min"`
	Precipitation            *float64 `json:"precipitation"`
	PrecipitationProbability *float64 `json:"precipitation_probability"`
	WindSpeedMax             *float64 `json:"wind_speed_max"`
	WeatherCode              *int     `json:"weather_code"`
	Sunrise                  string   `json:"sunrise"`
	Sunset                   string   `json:"sunset"`
}

// HourlyForecast is one hour of the hourly forecast series.
type HourlyForecast struct {
	Time               string   `json:"time"`
	Temperature        *float64 `json:"temperature"`
	Humidity           *float64 `json:"humidity"`
	Precipitation      *float64 `json:"precipitation"`
	WindSpeed          *float64 `json:"wind_speed"`
	SoilTemperature    *float64 `json:"soil_temperature"`
	SoilMoisture       *float64 `json:"soil_moisture"`
	Evapotranspiration *float64 `json:"evapotranspiration"`
	Et0Fao             *float64 `json:"et0_fao"`
}

// SoilConditions is the get_soil_conditions result.
type SoilConditions struct {
	Location     Location        `json:"location"`
	ForecastDays int             `json:"forecast_days"`
	Conditions   []SoilCondition `json:"soil_conditions"`
}

// SoilCondition is the soil profile for one hour of the soil forecast.
type SoilCondition struct {
	Time        string          `json:"time"`
	Temperature SoilTemperature `json:"temperature"`
	Moisture    SoilMoisture    `json:"moisture"`
}

// Evapotranspiration is the get_evapotranspiration_data result.
type Evapotranspiration struct {
	Location     Location   `json:"location"`
	ForecastDays int        `json:"forecast_days"`
	Daily        []DailyET  `json:"daily_et"`
	Hourly       []HourlyET `json:"hourly_et"`
}

// DailyET is the daily FAO reference evapotranspiration.
type DailyET struct {
	Date   string   `json:"date"`
	Et0Fao *float64 `json:"et0_fao"`
}

// HourlyET is one hour of evapotranspiration data with the driver variables.
type HourlyET struct {
	Time               string   `json:"time"`
	Evapotranspiration *float64 `json:"evapotranspiration"`
	Et0Fao             *float64 `json:"et0_fao"`
	Vpd                *float64 `json:"vpd"`
	Temperature        *float64 `json:"temperature"`
	Humidity           *float64 `json:"humidity"`
	WindSpeed          *float64 `json:"wind_speed"`
	SolarRadiation     *float64 `json:"solar_radiation"`
}

// HistoricalWeather is the get_historical_weather result.
type HistoricalWeather struct {
	Location Location        `json:"location"`
	Period   Period          `json:"period"`
	Days     []HistoricalDay `json:"historical_data"`
}

// Period is the requested historical date range.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// HistoricalDay is one day of archived weather.
type HistoricalDay struct {
	Date            string   `json:"date"`
	TemperatureMax  *float64 `json:"temperature_max"`
	TemperatureMin  *float64 `json:"temperature_min"`
	TemperatureMean *float64 `json:"temperature_mean"`
	Precipitation   *float64 `json:"precipitation"`
	WindSpeedMax    *float64 `json:"wind_speed_max"`
	WindDirection   *float64 `json:"wind_direction"`
}

// AlertReport is the get_agricultural_alerts result.
type AlertReport struct {
	Location        AlertLocation    `json:"location"`
	CropInfo        CropInfo         `json:"crop_info"`
	Alerts          []Alert          `json:"alerts"`
	Recommendations []Recommendation `json:"recommendations"`
	AnalysisTime    string           `json:"analysis_time"`
}

// AlertLocation is the coordinate an alert report was generated for.
type AlertLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CropInfo echoes the crop parameters of an alert request.
type CropInfo struct {
	Type        string `json:"type"`
	GrowthStage string `json:"growth_stage"`
}

// Alert is a triggered weather-condition advisory.
type Alert struct {
	Type            string   `json:"type"`
	Severity        string   `json:"severity"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

// Recommendation is a crop- and stage-specific advisory.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// RegionInfo is the get_supported_region result.
type RegionInfo struct {
	RegionName  string         `json:"region_name"`
	BoundingBox *region.Bounds `json:"bounding_box"`
}
