package openmeteo

// API docs: https://open-meteo.com/en/docs
// Numeric series carry nulls for values the model does not provide, so every
// data field decodes into a pointer.

// Response is the common shape of forecast and archive endpoint responses.
// Only the blocks requested via Params are populated.
type Response struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Elevation float64       `json:"elevation"`
	Current   *CurrentBlock `json:"current,omitempty"`
	Hourly    *SeriesBlock  `json:"hourly,omitempty"`
	Daily     *SeriesBlock  `json:"daily,omitempty"`
}

// CurrentBlock holds the single most recent reading for each requested
// current-weather variable.
type CurrentBlock struct {
	Time                string   `json:"time"`
	Temperature2M       *float64 `json:"temperature_2m,omitempty"`
	RelativeHumidity2M  *float64 `json:"relative_humidity_2m,omitempty"`
	ApparentTemperature *float64 `json:"apparent_temperature,omitempty"`
	Precipitation       *float64 `json:"precipitation,omitempty"`
	WeatherCode         *int     `json:"weather_code,omitempty"`
	CloudCover          *float64 `json:"cloud_cover,omitempty"`
	PressureMsl         *float64 `json:"pressure_msl,omitempty"`
	WindSpeed10M        *float64 `json:"wind_speed_10m,omitempty"`
	WindDirection10M    *float64 `json:"wind_direction_10m,omitempty"`
	WindGusts10M        *float64 `json:"wind_gusts_10m,omitempty"`

	SoilTemperature0Cm  *float64 `json:"soil_temperature_0cm,omitempty"`
	SoilTemperature6Cm  *float64 `json:"soil_temperature_6cm,omitempty"`
	SoilTemperature18Cm *float64 `json:"soil_temperature_18cm,omitempty"`
	SoilTemperature54Cm *float64 `json:"soil_temperature_54cm,omitempty"`
	SoilMoisture0To1Cm  *float64 `json:"soil_moisture_0_to_1cm,omitempty"`
	SoilMoisture1To3Cm  *float64 `json:"soil_moisture_1_to_3cm,omitempty"`
	SoilMoisture3To9Cm  *float64 `json:"soil_moisture_3_to_9cm,omitempty"`
	SoilMoisture9To27Cm *float64 `json:"soil_moisture_9_to_27cm,omitempty"`
}

// SeriesBlock holds parallel arrays indexed by Time. The same struct covers
// hourly and daily blocks; unrequested series stay nil.
type SeriesBlock struct {
	Time []string `json:"time"`

	// Hourly variables.
	Temperature2M            []*float64 `json:"temperature_2m,omitempty"`
	RelativeHumidity2M       []*float64 `json:"relative_humidity_2m,omitempty"`
	Precipitation            []*float64 `json:"precipitation,omitempty"`
	WeatherCode              []*int     `json:"weather_code,omitempty"`
	WindSpeed10M             []*float64 `json:"wind_speed_10m,omitempty"`
	Evapotranspiration       []*float64 `json:"evapotranspiration,omitempty"`
	Et0FaoEvapotranspiration []*float64 `json:"et0_fao_evapotranspiration,omitempty"`
	VapourPressureDeficit    []*float64 `json:"vapour_pressure_deficit,omitempty"`
	ShortwaveRadiation       []*float64 `json:"shortwave_radiation,omitempty"`

	SoilTemperature0Cm   []*float64 `json:"soil_temperature_0cm,omitempty"`
	SoilTemperature6Cm   []*float64 `json:"soil_temperature_6cm,omitempty"`
	SoilTemperature18Cm  []*float64 `json:"soil_temperature_18cm,omitempty"`
	SoilTemperature54Cm  []*float64 `json:"soil_temperature_54cm,omitempty"`
	SoilMoisture0To1Cm   []*float64 `json:"soil_moisture_0_to_1cm,omitempty"`
	SoilMoisture1To3Cm   []*float64 `json:"soil_moisture_1_to_3cm,omitempty"`
	SoilMoisture3To9Cm   []*float64 `json:"soil_moisture_3_to_9cm,omitempty"`
	SoilMoisture9To27Cm  []*float64 `json:"soil_moisture_9_to_27cm,omitempty"`
	SoilMoisture27To81Cm []*float64 `json:"soil_moisture_27_to_81cm,omitempty"`

	// Daily variables.
	Temperature2MMax            []*float64 `json:"temperature_2m_max,omitempty"`
	Temperature2MMin            []*float64 `json:"temperature_2m_min,omitempty"`
	Temperature2MMean           []*float64 `json:"temperature_2m_mean,omitempty"`
	PrecipitationSum            []*float64 `json:"precipitation_sum,omitempty"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max,omitempty"`
	WindSpeed10MMax             []*float64 `json:"wind_speed_10m_max,omitempty"`
	WindGusts10MMax             []*float64 `json:"wind_gusts_10m_max,omitempty"`
	WindDirection10MDominant    []*float64 `json:"wind_direction_10m_dominant,omitempty"`
	Sunrise                     []string   `json:"sunrise,omitempty"`
	Sunset                      []string   `json:"sunset,omitempty"`
}
