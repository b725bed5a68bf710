package agro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"agro-weather/internal/config"
	"agro-weather/internal/observability"
	"agro-weather/internal/providers/openmeteo"
	"agro-weather/internal/region"
	"agro-weather/internal/timezone"
	"agro-weather/internal/types"
)

// Open-Meteo variable lists per tool, matching the documented output shapes.
var (
	currentVars = []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature",
		"precipitation", "weather_code", "cloud_cover", "pressure_msl",
		"wind_speed_10m", "wind_direction_10m", "wind_gusts_10m",
	}
	currentSoilVars = []string{
		"soil_temperature_0cm", "soil_temperature_6cm",
		"soil_temperature_18cm", "soil_temperature_54cm",
		"soil_moisture_0_to_1cm", "soil_moisture_1_to_3cm",
		"soil_moisture_3_to_9cm", "soil_moisture_9_to_27cm",
	}
	forecastDailyVars = []string{
		"temperature_2m_max", "temperature_2m_min", "precipitation_sum",
		"precipitation_probability_max", "wind_speed_10m_max",
		"wind_gusts_10m_max", "weather_code", "sunrise", "sunset",
	}
	forecastHourlyVars = []string{
		"temperature_2m", "relative_humidity_2m", "precipitation",
		"weather_code", "wind_speed_10m", "soil_temperature_0cm",
		"soil_moisture_0_to_1cm", "evapotranspiration", "et0_fao_evapotranspiration",
	}
	soilHourlyVars = []string{
		"soil_temperature_0cm", "soil_temperature_6cm",
		"soil_temperature_18cm", "soil_temperature_54cm",
		"soil_moisture_0_to_1cm", "soil_moisture_1_to_3cm",
		"soil_moisture_3_to_9cm", "soil_moisture_9_to_27cm",
		"soil_moisture_27_to_81cm",
	}
	etHourlyVars = []string{
		"evapotranspiration", "et0_fao_evapotranspiration",
		"vapour_pressure_deficit", "temperature_2m",
		"relative_humidity_2m", "wind_speed_10m",
		"shortwave_radiation",
	}
	etDailyVars         = []string{"et0_fao_evapotranspiration"}
	historicalDailyVars = []string{
		"temperature_2m_max", "temperature_2m_min", "temperature_2m_mean",
		"precipitation_sum", "wind_speed_10m_max", "wind_direction_10m_dominant",
	}
)

// Tool parameter defaults and bounds.
const (
	DefaultForecastDays = 5
	DefaultSoilDays     = 3
	DefaultETDays       = 7

	maxForecastDays = 7
	maxSoilDays     = 3
	maxETDays       = 7
)

// WeatherProvider fetches raw data from the Open-Meteo endpoints.
type WeatherProvider interface {
	Forecast(ctx context.Context, p openmeteo.Params) (*openmeteo.Response, error)
	Archive(ctx context.Context, p openmeteo.Params) (*openmeteo.Response, error)
}

// TimezoneResolver resolves coordinates to IANA timezone names.
type TimezoneResolver interface {
	Resolve(latitude, longitude float64) (string, error)
}

// Service exposes the agricultural weather tools. Implementations are
// stateless across invocations; every fetching operation validates the
// coordinate against the configured region first.
type Service interface {
	CurrentWeather(ctx context.Context, coords types.Coords, includeSoil bool) (*CurrentWeather, error)
	WeatherForecast(ctx context.Context, coords types.Coords, days int, includeHourly bool) (*Forecast, error)
	SoilConditions(ctx context.Context, coords types.Coords, forecastDays int) (*SoilConditions, error)
	EvapotranspirationData(ctx context.Context, coords types.Coords, days int) (*Evapotranspiration, error)
	HistoricalWeather(ctx context.Context, coords types.Coords, dates types.DateRange) (*HistoricalWeather, error)
	AgriculturalAlerts(ctx context.Context, coords types.Coords, cropType, growthStage string) (*AlertReport, error)
	SupportedRegion() RegionInfo
}

type agroService struct {
	provider WeatherProvider
	tz       TimezoneResolver
	region   *region.Region
	logger   *slog.Logger
}

// NewService creates the service with a real Open-Meteo client and the tzf
// timezone resolver.
func NewService(cfg *config.Config, reg *region.Region, metrics *observability.Metrics, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	client := openmeteo.NewClient(cfg.Upstream.ForecastURL, cfg.Upstream.ArchiveURL, cfg.Upstream.Timeout, metrics, logger)
	return NewServiceWithProviders(client, tzSvc, reg, logger), nil
}

// NewServiceWithProviders creates the service with custom providers.
// This is useful for testing with mocks.
func NewServiceWithProviders(provider WeatherProvider, tz TimezoneResolver, reg *region.Region, logger *slog.Logger) Service {
	return &agroService{
		provider: provider,
		tz:       tz,
		region:   reg,
		logger:   logger.With("component", "agro-service"),
	}
}

func (s *agroService) CurrentWeather(ctx context.Context, coords types.Coords, includeSoil bool) (*CurrentWeather, error) {
	if err := s.region.Validate(coords); err != nil {
		return nil, err
	}

	vars := currentVars
	if includeSoil {
		vars = append(append([]string{}, currentVars...), currentSoilVars...)
	}

	resp, err := s.provider.Forecast(ctx, openmeteo.Params{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Current:   vars,
	})
	if err != nil {
		s.logger.Error("failed to get current weather", "error", err)
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}
	if resp.Current == nil {
		return nil, &openmeteo.MalformedResponseError{Endpoint: "forecast", Err: errors.New("missing current block")}
	}

	cur := resp.Current
	result := &CurrentWeather{
		Location:    s.location(coords, resp),
		CurrentTime: cur.Time,
		Weather: CurrentConditions{
			Temperature:         cur.Temperature2M,
			Humidity:            cur.RelativeHumidity2M,
			ApparentTemperature: cur.ApparentTemperature,
			Precipitation:       cur.Precipitation,
			WeatherCode:         cur.WeatherCode,
			CloudCover:          cur.CloudCover,
			Pressure:            cur.PressureMsl,
			WindSpeed:           cur.WindSpeed10M,
			WindDirection:       cur.WindDirection10M,
			WindGusts:           cur.WindGusts10M,
		},
	}

	if includeSoil {
		result.Soil = &SoilSnapshot{
			Temperature: SoilTemperature{
				Surface: cur.SoilTemperature0Cm,
				Depth6:  cur.SoilTemperature6Cm,
				Depth18: cur.SoilTemperature18Cm,
				Depth54: cur.SoilTemperature54Cm,
			},
			Moisture: SoilMoisture{
				Layer0To1:  cur.SoilMoisture0To1Cm,
				Layer1To3:  cur.SoilMoisture1To3Cm,
				Layer3To9:  cur.SoilMoisture3To9Cm,
				Layer9To27: cur.SoilMoisture9To27Cm,
			},
		}
	}

	return result, nil
}

func (s *agroService) WeatherForecast(ctx context.Context, coords types.Coords, days int, includeHourly bool) (*Forecast, error) {
	if err := s.region.Validate(coords); err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultForecastDays
	}
	if days < 1 || days > maxForecastDays {
		return nil, &RequestError{Param: "days", Reason: fmt.Sprintf("must be between 1 and %d", maxForecastDays)}
	}

	params := openmeteo.Params{
		Latitude:     coords.Latitude,
		Longitude:    coords.Longitude,
		Daily:        forecastDailyVars,
		ForecastDays: days,
	}
	if includeHourly {
		params.Hourly = forecastHourlyVars
	}

	resp, err := s.provider.Forecast(ctx, params)
	if err != nil {
		s.logger.Error("failed to get forecast", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}
	if resp.Daily == nil {
		return nil, &openmeteo.MalformedResponseError{Endpoint: "forecast", Err: errors.New("missing daily block")}
	}

	result := &Forecast{
		Location:     s.location(coords, resp),
		ForecastDays: days,
		Daily:        mapDailyForecast(resp.Daily),
	}
	if includeHourly && resp.Hourly != nil {
		result.Hourly = mapHourlyForecast(resp.Hourly)
	}
	return result, nil
}

func (s *agroService) SoilConditions(ctx context.Context, coords types.Coords, forecastDays int) (*SoilConditions, error) {
	if err := s.region.Validate(coords); err != nil {
		return nil, err
	}
	if forecastDays == 0 {
		forecastDays = DefaultSoilDays
	}
	if forecastDays < 1 || forecastDays > maxSoilDays {
		return nil, &RequestError{Param: "forecast_days", Reason: fmt.Sprintf("must be between 1 and %d", maxSoilDays)}
	}

	resp, err := s.provider.Forecast(ctx, openmeteo.Params{
		Latitude:     coords.Latitude,
		Longitude:    coords.Longitude,
		Hourly:       soilHourlyVars,
		ForecastDays: forecastDays,
	})
	if err != nil {
		s.logger.Error("failed to get soil conditions", "error", err)
		return nil, fmt.Errorf("failed to get soil conditions: %w", err)
	}
	if resp.Hourly == nil {
		return nil, &openmeteo.MalformedResponseError{Endpoint: "forecast", Err: errors.New("missing hourly block")}
	}

	h := resp.Hourly
	conditions := make([]SoilCondition, 0, len(h.Time))
	for i := range h.Time {
		conditions = append(conditions, SoilCondition{
			Time: h.Time[i],
			Temperature: SoilTemperature{
				Surface: at(h.SoilTemperature0Cm, i),
				Depth6:  at(h.SoilTemperature6Cm, i),
				Depth18: at(h.SoilTemperature18Cm, i),
				Depth54: at(h.SoilTemperature54Cm, i),
			},
			Moisture: SoilMoisture{
				Layer0To1:   at(h.SoilMoisture0To1Cm, i),
				Layer1To3:   at(h.SoilMoisture1To3Cm, i),
				Layer3To9:   at(h.SoilMoisture3To9Cm, i),
				Layer9To27:  at(h.SoilMoisture9To27Cm, i),
				Layer27To81: at(h.SoilMoisture27To81Cm, i),
			},
		})
	}

	return &SoilConditions{
		Location:     s.location(coords, resp),
		ForecastDays: forecastDays,
		Conditions:   conditions,
	}, nil
}

func (s *agroService) EvapotranspirationData(ctx context.Context, coords types.Coords, days int) (*Evapotranspiration, error) {
	if err := s.region.Validate(coords); err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultETDays
	}
	if days < 1 || days > maxETDays {
		return nil, &RequestError{Param: "days", Reason: fmt.Sprintf("must be between 1 and %d", maxETDays)}
	}

	resp, err := s.provider.Forecast(ctx, openmeteo.Params{
		Latitude:     coords.Latitude,
		Longitude:    coords.Longitude,
		Hourly:       etHourlyVars,
		Daily:        etDailyVars,
		ForecastDays: days,
	})
	if err != nil {
		s.logger.Error("failed to get evapotranspiration data", "error", err)
		return nil, fmt.Errorf("failed to get evapotranspiration data: %w", err)
	}

	result := &Evapotranspiration{
		Location:     s.location(coords, resp),
		ForecastDays: days,
		Daily:        []DailyET{},
		Hourly:       []HourlyET{},
	}

	if d := resp.Daily; d != nil {
		for i := range d.Time {
			result.Daily = append(result.Daily, DailyET{
				Date:   d.Time[i],
				Et0Fao: at(d.Et0FaoEvapotranspiration, i),
			})
		}
	}
	if h := resp.Hourly; h != nil {
		for i := range h.Time {
			result.Hourly = append(result.Hourly, HourlyET{
				Time:               h.Time[i],
				Evapotranspiration: at(h.Evapotranspiration, i),
				Et0Fao:             at(h.Et0FaoEvapotranspiration, i),
				Vpd:                at(h.VapourPressureDeficit, i),
				Temperature:        at(h.Temperature2M, i),
				Humidity:           at(h.RelativeHumidity2M, i),
				WindSpeed:          at(h.WindSpeed10M, i),
				SolarRadiation:     at(h.ShortwaveRadiation, i),
			})
		}
	}

	return result, nil
}

func (s *agroService) HistoricalWeather(ctx context.Context, coords types.Coords, dates types.DateRange) (*HistoricalWeather, error) {
	if err := s.region.Validate(coords); err != nil {
		return nil, err
	}

	resp, err := s.provider.Archive(ctx, openmeteo.Params{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Daily:     historicalDailyVars,
		Models:    []string{"era5"},
		StartDate: dates.Start,
		EndDate:   dates.End,
	})
	if err != nil {
		s.logger.Error("failed to get historical weather", "error", err)
		return nil, fmt.Errorf("failed to get historical weather: %w", err)
	}
	if resp.Daily == nil {
		return nil, &openmeteo.MalformedResponseError{Endpoint: "archive", Err: errors.New("missing daily block")}
	}

	d := resp.Daily
	daysData := make([]HistoricalDay, 0, len(d.Time))
	for i := range d.Time {
		daysData = append(daysData, HistoricalDay{
			Date:            d.Time[i],
			TemperatureMax:  at(d.Temperature2MMax, i),
			TemperatureMin:  at(d.Temperature2MMin, i),
			TemperatureMean: at(d.Temperature2MMean, i),
			Precipitation:   at(d.PrecipitationSum, i),
			WindSpeedMax:    at(d.WindSpeed10MMax, i),
			WindDirection:   at(d.WindDirection10MDominant, i),
		})
	}

	return &HistoricalWeather{
		Location: s.location(coords, resp),
		Period:   Period{StartDate: dates.Start, EndDate: dates.End},
		Days:     daysData,
	}, nil
}

func (s *agroService) AgriculturalAlerts(ctx context.Context, coords types.Coords, cropType, growthStage string) (*AlertReport, error) {
	if err := s.region.Validate(coords); err != nil {
		return nil, err
	}

	current, err := s.CurrentWeather(ctx, coords, true)
	if err != nil {
		return nil, err
	}
	forecast, err := s.WeatherForecast(ctx, coords, maxForecastDays, false)
	if err != nil {
		return nil, err
	}

	alerts, recommendations := evaluateRules(observe(current, forecast), cropType, growthStage)

	s.logger.Debug("generated agricultural alerts",
		"crop", cropType,
		"growth_stage", growthStage,
		"alerts", len(alerts),
		"recommendations", len(recommendations),
	)

	return &AlertReport{
		Location:        AlertLocation{Latitude: coords.Latitude, Longitude: coords.Longitude},
		CropInfo:        CropInfo{Type: cropType, GrowthStage: growthStage},
		Alerts:          alerts,
		Recommendations: recommendations,
		AnalysisTime:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *agroService) SupportedRegion() RegionInfo {
	return RegionInfo{
		RegionName:  s.region.Name,
		BoundingBox: s.region.Bounds,
	}
}

// location builds the result location block, falling back to a local
// timezone lookup when the upstream response has no timezone.
func (s *agroService) location(coords types.Coords, resp *openmeteo.Response) Location {
	tz := resp.Timezone
	if tz == "" && s.tz != nil {
		if name, err := s.tz.Resolve(coords.Latitude, coords.Longitude); err == nil {
			tz = name
		}
	}
	return Location{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Timezone:  tz,
		Elevation: resp.Elevation,
	}
}

func mapDailyForecast(d *openmeteo.SeriesBlock) []DailyForecast {
	daily := make([]DailyForecast, 0, len(d.Time))
	for i := range d.Time {
		daily = append(daily, DailyForecast{
			Date:                     d.Time[i],
			TemperatureMax:           at(d.Temperature2MMax, i),
			TemperatureMin:           at(d.Temperature2MMin, i),
			Precipitation:            at(d.PrecipitationSum, i),
			PrecipitationProbability: at(d.PrecipitationProbabilityMax, i),
			WindSpeedMax:             at(d.WindSpeed10MMax, i),
			WeatherCode:              atInt(d.WeatherCode, i),
			Sunrise:                  atStr(d.Sunrise, i),
			Sunset:                   atStr(d.Sunset, i),
		})
	}
	return daily
}

func mapHourlyForecast(h *openmeteo.SeriesBlock) []HourlyForecast {
	hourly := make([]HourlyForecast, 0, len(h.Time))
	for i := range h.Time {
		hourly = append(hourly, HourlyForecast{
			Time:               h.Time[i],
			Temperature:        at(h.Temperature2M, i),
			Humidity:           at(h.RelativeHumidity2M, i),
			Precipitation:      at(h.Precipitation, i),
			WindSpeed:          at(h.WindSpeed10M, i),
			SoilTemperature:    at(h.SoilTemperature0Cm, i),
			SoilMoisture:       at(h.SoilMoisture0To1Cm, i),
			Evapotranspiration: at(h.Evapotranspiration, i),
			Et0Fao:             at(h.Et0FaoEvapotranspiration, i),
		})
	}
	return hourly
}

// at guards against series shorter than the time axis.
func at(series []*float64, i int) *float64 {
	if i < len(series) {
		return series[i]
	}
	return nil
}

func atInt(series []*int, i int) *int {
	if i < len(series) {
		return series[i]
	}
	return nil
}

func atStr(series []string, i int) string {
	if i < len(series) {
		return series[i]
	}
	return ""
}
