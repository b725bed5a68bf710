package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"agro-weather/internal/agro"
	"agro-weather/internal/config"
	"agro-weather/internal/observability"
	"agro-weather/internal/providers/openmeteo"
	"agro-weather/internal/region"
	"agro-weather/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAgroService struct {
	err error

	lastIncludeSoil   bool
	lastIncludeHourly bool
	lastDays          int
	lastDates         types.DateRange
	lastCrop          string
	lastStage         string
}

func (m *mockAgroService) CurrentWeather(ctx context.Context, coords types.Coords, includeSoil bool) (*agro.CurrentWeather, error) {
	m.lastIncludeSoil = includeSoil
	if m.err != nil {
		return nil, m.err
	}
	temp := 29.5
	return &agro.CurrentWeather{
		Location: agro.Location{Latitude: coords.Latitude, Longitude: coords.Longitude, Timezone: "Asia/Jakarta"},
		Weather:  agro.CurrentConditions{Temperature: &temp},
	}, nil
}

func (m *mockAgroService) WeatherForecast(ctx context.Context, coords types.Coords, days int, includeHourly bool) (*agro.Forecast, error) {
	m.lastDays = days
	m.lastIncludeHourly = includeHourly
	if m.err != nil {
		return nil, m.err
	}
	return &agro.Forecast{ForecastDays: days}, nil
}

func (m *mockAgroService) SoilConditions(ctx context.Context, coords types.Coords, forecastDays int) (*agro.SoilConditions, error) {
	m.lastDays = forecastDays
	if m.err != nil {
		return nil, m.err
	}
	return &agro.SoilConditions{ForecastDays: forecastDays}, nil
}

func (m *mockAgroService) EvapotranspirationData(ctx context.Context, coords types.Coords, days int) (*agro.Evapotranspiration, error) {
	m.lastDays = days
	if m.err != nil {
		return nil, m.err
	}
	return &agro.Evapotranspiration{ForecastDays: days}, nil
}

func (m *mockAgroService) HistoricalWeather(ctx context.Context, coords types.Coords, dates types.DateRange) (*agro.HistoricalWeather, error) {
	m.lastDates = dates
	if m.err != nil {
		return nil, m.err
	}
	return &agro.HistoricalWeather{Period: agro.Period{StartDate: dates.Start, EndDate: dates.End}}, nil
}

func (m *mockAgroService) AgriculturalAlerts(ctx context.Context, coords types.Coords, cropType, growthStage string) (*agro.AlertReport, error) {
	m.lastCrop = cropType
	m.lastStage = growthStage
	if m.err != nil {
		return nil, m.err
	}
	return &agro.AlertReport{CropInfo: agro.CropInfo{Type: cropType, GrowthStage: growthStage}}, nil
}

func (m *mockAgroService) SupportedRegion() agro.RegionInfo {
	return agro.RegionInfo{RegionName: "indonesia", BoundingBox: &region.Bounds{LatMin: -11, LatMax: 6, LonMin: 95, LonMax: 141}}
}

func newTestApp(svc agro.Service) *App {
	cfg := &config.Config{}
	cfg.Server.GinMode = "test"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApp(cfg, logger, observability.NewMetricsForTesting(), svc)
}

func doRequest(t *testing.T, app *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandlePing(t *testing.T) {
	app := newTestApp(&mockAgroService{})
	w := doRequest(t, app, "/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestHandleCurrentWeather_Success(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/current?latitude=-6.2&longitude=106.8")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.lastIncludeSoil, "include_soil_data should default to true")

	var result agro.CurrentWeather
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, -6.2, result.Location.Latitude)
	require.NotNil(t, result.Weather.Temperature)
	assert.Equal(t, 29.5, *result.Weather.Temperature)
}

func TestHandleCurrentWeather_SoilToggle(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/current?latitude=-6.2&longitude=106.8&include_soil_data=false")

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, svc.lastIncludeSoil)
}

func TestHandleCurrentWeather_ZeroCoordinateIsValid(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/current?latitude=0&longitude=0")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleCurrentWeather_MissingCoordinate(t *testing.T) {
	app := newTestApp(&mockAgroService{})

	w := doRequest(t, app, "/v1/weather/current?latitude=-6.2")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, agro.KindValidation, body.Error.Kind)
	assert.NotEmpty(t, body.Error.Message)
}

func TestHandleCurrentWeather_RegionRejection(t *testing.T) {
	svc := &mockAgroService{err: &region.ValidationError{
		Coords: types.NewCoords(-33.9, 151.2),
		Region: "indonesia",
		Bounds: &region.Bounds{LatMin: -11, LatMax: 6, LonMin: 95, LonMax: 141},
	}}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/current?latitude=-33.9&longitude=151.2")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, agro.KindValidation, body.Error.Kind)
	assert.Contains(t, body.Error.Message, "indonesia")
}

func TestHandleCurrentWeather_UpstreamError(t *testing.T) {
	svc := &mockAgroService{err: &openmeteo.UpstreamError{Endpoint: "forecast", StatusCode: 503}}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/current?latitude=-6.2&longitude=106.8")

	require.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, agro.KindUpstream, body.Error.Kind)
}

func TestHandleWeatherForecast_PassesParams(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/forecast?latitude=-6.2&longitude=106.8&days=3&include_hourly=false")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.lastDays)
	assert.False(t, svc.lastIncludeHourly)
}

func TestHandleWeatherForecast_DaysOutOfRange(t *testing.T) {
	svc := &mockAgroService{err: &agro.RequestError{Param: "days", Reason: "must be between 1 and 7"}}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/forecast?latitude=-6.2&longitude=106.8&days=9")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, agro.KindValidation, body.Error.Kind)
	assert.Contains(t, body.Error.Message, "days")
}

func TestHandleSoilConditions_DefaultsToZeroDays(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/soil?latitude=-6.2&longitude=106.8")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.lastDays, "missing forecast_days should reach the service as zero")
}

func TestHandleHistoricalWeather(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/historical?latitude=-6.2&longitude=106.8&start_date=2025-01-01&end_date=2025-01-31")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-01-01", svc.lastDates.Start)
	assert.Equal(t, "2025-01-31", svc.lastDates.End)
}

func TestHandleHistoricalWeather_BadDates(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing end date", "/v1/weather/historical?latitude=-6.2&longitude=106.8&start_date=2025-01-01"},
		{"bad format", "/v1/weather/historical?latitude=-6.2&longitude=106.8&start_date=01-01-2025&end_date=2025-01-31"},
		{"reversed range", "/v1/weather/historical?latitude=-6.2&longitude=106.8&start_date=2025-02-01&end_date=2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&mockAgroService{})
			w := doRequest(t, app, tt.path)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, agro.KindValidation, decodeError(t, w).Error.Kind)
		})
	}
}

func TestHandleAgriculturalAlerts_Defaults(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/alerts?latitude=-6.2&longitude=106.8")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "general", svc.lastCrop)
	assert.Equal(t, "vegetative", svc.lastStage)
}

func TestHandleAgriculturalAlerts_ExplicitCrop(t *testing.T) {
	svc := &mockAgroService{}
	app := newTestApp(svc)

	w := doRequest(t, app, "/v1/weather/alerts?latitude=-6.2&longitude=106.8&crop_type=rice&growth_stage=flowering")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rice", svc.lastCrop)
	assert.Equal(t, "flowering", svc.lastStage)
}

func TestHandleSupportedRegion(t *testing.T) {
	app := newTestApp(&mockAgroService{})

	w := doRequest(t, app, "/v1/region")

	require.Equal(t, http.StatusOK, w.Code)
	var info agro.RegionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "indonesia", info.RegionName)
	require.NotNil(t, info.BoundingBox)
	assert.Equal(t, -11.0, info.BoundingBox.LatMin)
}

func TestHandleMetricsEndpoint(t *testing.T) {
	app := newTestApp(&mockAgroService{})

	w := doRequest(t, app, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
}
