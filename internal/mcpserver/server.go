// Package mcpserver exposes the agricultural weather tools over the Model
// Context Protocol, on stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"agro-weather/internal/agro"
	"agro-weather/internal/observability"
	"agro-weather/internal/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps an MCP stdio server around the agro service.
type Server struct {
	svc     agro.Service
	metrics *observability.Metrics
	logger  *slog.Logger
	mcp     *server.MCPServer
}

// New creates the MCP server and registers all weather tools.
func New(svc agro.Service, metrics *observability.Metrics, logger *slog.Logger) *Server {
	s := &Server{
		svc:     svc,
		metrics: metrics,
		logger:  logger.With("component", "mcp-server"),
	}

	s.mcp = server.NewMCPServer(
		"agro-weather",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	s.registerTools()

	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	coordOpts := func(opts ...mcp.ToolOption) []mcp.ToolOption {
		base := []mcp.ToolOption{
			mcp.WithNumber("latitude",
				mcp.Required(),
				mcp.Description("Latitude in decimal degrees"),
				mcp.Min(-90), mcp.Max(90),
			),
			mcp.WithNumber("longitude",
				mcp.Required(),
				mcp.Description("Longitude in decimal degrees"),
				mcp.Min(-180), mcp.Max(180),
			),
		}
		return append(base, opts...)
	}

	s.mcp.AddTool(mcp.NewTool("get_current_weather",
		coordOpts(
			mcp.WithDescription("Get current weather conditions for a location, including agricultural soil data"),
			mcp.WithBoolean("include_soil_data",
				mcp.Description("Include soil temperature and moisture data"),
				mcp.DefaultBool(true),
			),
		)...,
	), s.handleCurrentWeather)

	s.mcp.AddTool(mcp.NewTool("get_weather_forecast",
		coordOpts(
			mcp.WithDescription("Get weather forecast for up to 7 days"),
			mcp.WithNumber("days",
				mcp.Description("Number of forecast days"),
				mcp.DefaultNumber(agro.DefaultForecastDays),
				mcp.Min(1), mcp.Max(7),
			),
			mcp.WithBoolean("include_hourly",
				mcp.Description("Include hourly forecast data"),
				mcp.DefaultBool(true),
			),
		)...,
	), s.handleWeatherForecast)

	s.mcp.AddTool(mcp.NewTool("get_soil_conditions",
		coordOpts(
			mcp.WithDescription("Get hourly soil temperature and moisture profile for up to 3 days"),
			mcp.WithNumber("forecast_days",
				mcp.Description("Number of forecast days"),
				mcp.DefaultNumber(agro.DefaultSoilDays),
				mcp.Min(1), mcp.Max(3),
			),
		)...,
	), s.handleSoilConditions)

	s.mcp.AddTool(mcp.NewTool("get_evapotranspiration_data",
		coordOpts(
			mcp.WithDescription("Get evapotranspiration data for irrigation planning"),
			mcp.WithNumber("days",
				mcp.Description("Number of forecast days"),
				mcp.DefaultNumber(agro.DefaultETDays),
				mcp.Min(1), mcp.Max(7),
			),
		)...,
	), s.handleEvapotranspiration)

	s.mcp.AddTool(mcp.NewTool("get_historical_weather",
		coordOpts(
			mcp.WithDescription("Get historical daily weather data for a date range"),
			mcp.WithString("start_date",
				mcp.Required(),
				mcp.Description("Start date in YYYY-MM-DD format"),
			),
			mcp.WithString("end_date",
				mcp.Required(),
				mcp.Description("End date in YYYY-MM-DD format"),
			),
		)...,
	), s.handleHistoricalWeather)

	s.mcp.AddTool(mcp.NewTool("get_agricultural_alerts",
		coordOpts(
			mcp.WithDescription("Get weather-based agricultural alerts and crop recommendations"),
			mcp.WithString("crop_type",
				mcp.Description("Crop type"),
				mcp.Enum("general", "rice", "corn", "vegetables"),
				mcp.DefaultString("general"),
			),
			mcp.WithString("growth_stage",
				mcp.Description("Crop growth stage"),
				mcp.Enum("planting", "vegetative", "flowering", "harvesting"),
				mcp.DefaultString("vegetative"),
			),
		)...,
	), s.handleAgriculturalAlerts)

	s.mcp.AddTool(mcp.NewTool("get_supported_region",
		mcp.WithDescription("Get the geographic region this server is restricted to"),
	), s.handleSupportedRegion)
}

// requireCoords extracts the mandatory coordinate arguments.
func requireCoords(req mcp.CallToolRequest) (types.Coords, error) {
	lat, err := req.RequireFloat("latitude")
	if err != nil {
		return types.Coords{}, &agro.RequestError{Param: "latitude", Reason: err.Error()}
	}
	lon, err := req.RequireFloat("longitude")
	if err != nil {
		return types.Coords{}, &agro.RequestError{Param: "longitude", Reason: err.Error()}
	}
	return types.NewCoords(lat, lon), nil
}

// toolResult marshals a successful result as indented JSON text.
func (s *Server) toolResult(tool string, v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s result: %w", tool, err)
	}
	s.metrics.ToolInvocations.WithLabelValues(tool, "success").Inc()
	return mcp.NewToolResultText(string(data)), nil
}

// toolError reports a failed invocation in the same payload shape the HTTP
// surface uses.
func (s *Server) toolError(tool string, err error) (*mcp.CallToolResult, error) {
	kind := agro.ErrorKind(err)
	if kind == agro.KindInternal {
		s.logger.Error("tool failed", "tool", tool, "error", err)
	}
	s.metrics.ToolInvocations.WithLabelValues(tool, "error").Inc()

	payload, merr := json.Marshal(map[string]any{
		"error": map[string]string{"kind": kind, "message": err.Error()},
	})
	if merr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultError(string(payload)), nil
}

func (s *Server) handleCurrentWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_current_weather"

	coords, err := requireCoords(req)
	if err != nil {
		return s.toolError(tool, err)
	}
	includeSoil := req.GetBool("include_soil_data", true)

	result, err := s.svc.CurrentWeather(ctx, coords, includeSoil)
	if err != nil {
		return s.toolError(tool, err)
	}
	return s.toolResult(tool, result)
}

func (s *Server) handleWeatherForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_weather_forecast"

	coords, err := requireCoords(req)
	if err != nil {
		return s.toolError(tool, err)
	}
	days := req.GetInt("days", agro.DefaultForecastDays)
	includeHourly := req.GetBool("include_hourly", true)

	result, err := s.svc.WeatherForecast(ctx, coords, days, includeHourly)
	if err != nil {
		return s.toolError(tool, err)
	}
	return s.toolResult(tool, result)
}

func (s *Server) handleSoilConditions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_soil_conditions"

	coords, err := requireCoords(req)
	if err != nil {
		return s.toolError(tool, err)
	}
	days := req.GetInt("forecast_days", agro.DefaultSoilDays)

	result, err := s.svc.SoilConditions(ctx, coords, days)
	if err != nil {
		return s.toolError(tool, err)
	}
	return s.toolResult(tool, result)
}

func (s *Server) handleEvapotranspiration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_evapotranspiration_data"

	coords, err := requireCoords(req)
	if err != nil {
		return s.toolError(tool, err)
	}
	days := req.GetInt("days", agro.DefaultETDays)

	result, err := s.svc.EvapotranspirationData(ctx, coords, days)
	if err != nil {
		return s.toolError(tool, err)
	}
	return s.toolResult(tool, result)
}

func (s *Server) handleHistoricalWeather(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_historical_weather"

	coords, err := requireCoords(req)
	if err != nil {
		return s.toolError(tool, err)
	}
	start, err := req.RequireString("start_date")
	if err != nil {
		return s.toolError(tool, &agro.RequestError{Param: "start_date", Reason: err.Error()})
	}
	end, err := req.RequireString("end_date")
	if err != nil {
		return s.toolError(tool, &agro.RequestError{Param: "end_date", Reason: err.Error()})
	}
	dates, err := types.NewDateRange(start, end)
	if err != nil {
		return s.toolError(tool, &agro.RequestError{Param: "date range", Reason: err.Error()})
	}

	result, err := s.svc.HistoricalWeather(ctx, coords, dates)
	if err != nil {
		return s.toolError(tool, err)
	}
	return s.toolResult(tool, result)
}

func (s *Server) handleAgriculturalAlerts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	const tool = "get_agricultural_alerts"

	coords, err := requireCoords(req)
	if err != nil {
		return s.toolError(tool, err)
	}
	cropType := req.GetString("crop_type", "general")
	growthStage := req.GetString("growth_stage", "vegetative")

	result, err := s.svc.AgriculturalAlerts(ctx, coords, cropType, growthStage)
	if err != nil {
		return s.toolError(tool, err)
	}
	return s.toolResult(tool, result)
}

func (s *Server) handleSupportedRegion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.toolResult("get_supported_region", s.svc.SupportedRegion())
}
