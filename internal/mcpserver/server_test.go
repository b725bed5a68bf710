package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"agro-weather/internal/agro"
	"agro-weather/internal/observability"
	"agro-weather/internal/providers/openmeteo"
	"agro-weather/internal/region"
	"agro-weather/internal/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	err error

	lastIncludeSoil bool
	lastDays        int
	lastCrop        string
	lastStage       string
}

func (m *mockService) CurrentWeather(ctx context.Context, coords types.Coords, includeSoil bool) (*agro.CurrentWeather, error) {
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

func (m *mockService) WeatherForecast(ctx context.Context, coords types.Coords, days int, includeHourly bool) (*agro.Forecast, error) {
	m.lastDays = days
	if m.err != nil {
		return nil, m.err
	}
	return &agro.Forecast{ForecastDays: days}, nil
}

func (m *mockService) SoilConditions(ctx context.Context, coords types.Coords, forecastDays int) (*agro.SoilConditions, error) {
	m.lastDays = forecastDays
	if m.err != nil {
		return nil, m.err
	}
	return &agro.SoilConditions{ForecastDays: forecastDays}, nil
}

func (m *mockService) EvapotranspirationData(ctx context.Context, coords types.Coords, days int) (*agro.Evapotranspiration, error) {
	m.lastDays = days
	if m.err != nil {
		return nil, m.err
	}
	return &agro.Evapotranspiration{ForecastDays: days}, nil
}

func (m *mockService) HistoricalWeather(ctx context.Context, coords types.Coords, dates types.DateRange) (*agro.HistoricalWeather, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &agro.HistoricalWeather{Period: agro.Period{StartDate: dates.Start, EndDate: dates.End}}, nil
}

func (m *mockService) AgriculturalAlerts(ctx context.Context, coords types.Coords, cropType, growthStage string) (*agro.AlertReport, error) {
	m.lastCrop = cropType
	m.lastStage = growthStage
	if m.err != nil {
		return nil, m.err
	}
	return &agro.AlertReport{CropInfo: agro.CropInfo{Type: cropType, GrowthStage: growthStage}}, nil
}

func (m *mockService) SupportedRegion() agro.RegionInfo {
	return agro.RegionInfo{RegionName: "indonesia", BoundingBox: &region.Bounds{LatMin: -11, LatMax: 6, LonMin: 95, LonMax: 141}}
}

func newTestServer(svc agro.Service) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(svc, observability.NewMetricsForTesting(), logger)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is not text: %T", res.Content[0])
	return text.Text
}

func TestHandleCurrentWeather(t *testing.T) {
	svc := &mockService{}
	s := newTestServer(svc)

	res, err := s.handleCurrentWeather(context.Background(), callRequest(map[string]any{
		"latitude":  -6.2,
		"longitude": 106.8,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.True(t, svc.lastIncludeSoil, "include_soil_data should default to true")

	var result agro.CurrentWeather
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
	assert.Equal(t, -6.2, result.Location.Latitude)
	require.NotNil(t, result.Weather.Temperature)
	assert.Equal(t, 29.5, *result.Weather.Temperature)
}

func TestHandleCurrentWeather_MissingLatitude(t *testing.T) {
	s := newTestServer(&mockService{})

	res, err := s.handleCurrentWeather(context.Background(), callRequest(map[string]any{
		"longitude": 106.8,
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)

	var body struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, agro.KindValidation, body.Error.Kind)
	assert.Contains(t, body.Error.Message, "latitude")
}

func TestHandleCurrentWeather_UpstreamError(t *testing.T) {
	svc := &mockService{err: &openmeteo.UpstreamError{Endpoint: "forecast", StatusCode: 503}}
	s := newTestServer(svc)

	res, err := s.handleCurrentWeather(context.Background(), callRequest(map[string]any{
		"latitude":  -6.2,
		"longitude": 106.8,
	}))
	require.NoError(t, err, "service errors must become error results, not protocol errors")
	require.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), agro.KindUpstream)
}

func TestHandleWeatherForecast_Defaults(t *testing.T) {
	svc := &mockService{}
	s := newTestServer(svc)

	res, err := s.handleWeatherForecast(context.Background(), callRequest(map[string]any{
		"latitude":  -6.2,
		"longitude": 106.8,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, agro.DefaultForecastDays, svc.lastDays)
}

func TestHandleSoilConditions_PassesDays(t *testing.T) {
	svc := &mockService{}
	s := newTestServer(svc)

	res, err := s.handleSoilConditions(context.Background(), callRequest(map[string]any{
		"latitude":      -6.2,
		"longitude":     106.8,
		"forecast_days": 2,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, 2, svc.lastDays)
}

func TestHandleHistoricalWeather_BadDateRange(t *testing.T) {
	s := newTestServer(&mockService{})

	res, err := s.handleHistoricalWeather(context.Background(), callRequest(map[string]any{
		"latitude":   -6.2,
		"longitude":  106.8,
		"start_date": "2025-02-01",
		"end_date":   "2025-01-01",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), agro.KindValidation)
}

func TestHandleAgriculturalAlerts_Defaults(t *testing.T) {
	svc := &mockService{}
	s := newTestServer(svc)

	res, err := s.handleAgriculturalAlerts(context.Background(), callRequest(map[string]any{
		"latitude":  -6.2,
		"longitude": 106.8,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "general", svc.lastCrop)
	assert.Equal(t, "vegetative", svc.lastStage)
}

func TestHandleSupportedRegion(t *testing.T) {
	s := newTestServer(&mockService{})

	res, err := s.handleSupportedRegion(context.Background(), callRequest(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var info agro.RegionInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Equal(t, "indonesia", info.RegionName)
	require.NotNil(t, info.BoundingBox)
	assert.Equal(t, 141.0, info.BoundingBox.LonMax)
}
