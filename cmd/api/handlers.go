package main

import (
	"net/http"

	"agro-weather/internal/agro"
	"agro-weather/internal/types"

	"github.com/gin-gonic/gin"
)

// coordsQuery carries the coordinate every weather endpoint requires.
// Pointers distinguish a missing parameter from a legitimate zero (the
// equator and the prime meridian are valid coordinates).
type coordsQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
}

func (q coordsQuery) coords() types.Coords {
	return types.NewCoords(*q.Latitude, *q.Longitude)
}

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error classification and message.
type ErrorDetail struct {
	Kind    string `json:"kind" example:"validation"`
	Message string `json:"message"`
}

// writeError maps a service error to an HTTP status using the error
// taxonomy and records the failed invocation.
func (app *App) writeError(c *gin.Context, tool string, err error) {
	kind := agro.ErrorKind(err)

	var status int
	switch kind {
	case agro.KindValidation:
		status = http.StatusBadRequest
	case agro.KindUpstream, agro.KindMalformedResponse:
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= 500 {
		app.logger.Error("tool failed", "tool", tool, "kind", kind, "error", err)
	}
	app.metrics.ToolInvocations.WithLabelValues(tool, "error").Inc()
	c.JSON(status, ErrorBody{Error: ErrorDetail{Kind: kind, Message: err.Error()}})
}

// writeBindingError reports a malformed query string in the same payload
// shape as service validation errors.
func (app *App) writeBindingError(c *gin.Context, tool string, err error) {
	app.metrics.ToolInvocations.WithLabelValues(tool, "error").Inc()
	c.JSON(http.StatusBadRequest, ErrorBody{Error: ErrorDetail{Kind: agro.KindValidation, Message: err.Error()}})
}

func (app *App) writeResult(c *gin.Context, tool string, result any) {
	app.metrics.ToolInvocations.WithLabelValues(tool, "success").Inc()
	c.JSON(http.StatusOK, result)
}

type currentWeatherQuery struct {
	coordsQuery
	IncludeSoilData *bool `form:"include_soil_data"`
}

// handleCurrentWeather godoc
// @Summary Current weather and soil snapshot
// @Description Current conditions for a coordinate, optionally with the soil temperature and moisture profile
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param include_soil_data query boolean false "Include soil data (default true)"
// @Success 200 {object} agro.CurrentWeather
// @Failure 400 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /v1/weather/current [get]
func (app *App) handleCurrentWeather(c *gin.Context) {
	const tool = "get_current_weather"

	var q currentWeatherQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.writeBindingError(c, tool, err)
		return
	}
	includeSoil := q.IncludeSoilData == nil || *q.IncludeSoilData

	result, err := app.agroService.CurrentWeather(c.Request.Context(), q.coords(), includeSoil)
	if err != nil {
		app.writeError(c, tool, err)
		return
	}
	app.writeResult(c, tool, result)
}

type forecastQuery struct {
	coordsQuery
	Days          int   `form:"days"`
	IncludeHourly *bool `form:"include_hourly"`
}

// handleWeatherForecast godoc
// @Summary Weather forecast
// @Description Daily forecast for up to 7 days, optionally with hourly series
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param days query integer false "Forecast days, 1-7 (default 5)"
// @Param include_hourly query boolean false "Include hourly series (default true)"
// @Success 200 {object} agro.Forecast
// @Failure 400 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /v1/weather/forecast [get]
func (app *App) handleWeatherForecast(c *gin.Context) {
	const tool = "get_weather_forecast"

	var q forecastQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.writeBindingError(c, tool, err)
		return
	}
	includeHourly := q.IncludeHourly == nil || *q.IncludeHourly

	result, err := app.agroService.WeatherForecast(c.Request.Context(), q.coords(), q.Days, includeHourly)
	if err != nil {
		app.writeError(c, tool, err)
		return
	}
	app.writeResult(c, tool, result)
}

type soilQuery struct {
	coordsQuery
	ForecastDays int `form:"forecast_days"`
}

// handleSoilConditions godoc
// @Summary Soil conditions forecast
// @Description Hourly soil temperature and moisture profile for up to 3 days
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param forecast_days query integer false "Forecast days, 1-3 (default 3)"
// @Success 200 {object} agro.SoilConditions
// @Failure 400 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /v1/weather/soil [get]
func (app *App) handleSoilConditions(c *gin.Context) {
	const tool = "get_soil_conditions"

	var q soilQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.writeBindingError(c, tool, err)
		return
	}

	result, err := app.agroService.SoilConditions(c.Request.Context(), q.coords(), q.ForecastDays)
	if err != nil {
		app.writeError(c, tool, err)
		return
	}
	app.writeResult(c, tool, result)
}

type etQuery struct {
	coordsQuery
	Days int `form:"days"`
}

// handleEvapotranspiration godoc
// @Summary Evapotranspiration data
// @Description Daily ET0 and hourly evapotranspiration with driver variables for up to 7 days
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param days query integer false "Forecast days, 1-7 (default 7)"
// @Success 200 {object} agro.Evapotranspiration
// @Failure 400 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /v1/weather/evapotranspiration [get]
func (app *App) handleEvapotranspiration(c *gin.Context) {
	const tool = "get_evapotranspiration_data"

	var q etQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.writeBindingError(c, tool, err)
		return
	}

	result, err := app.agroService.EvapotranspirationData(c.Request.Context(), q.coords(), q.Days)
	if err != nil {
		app.writeError(c, tool, err)
		return
	}
	app.writeResult(c, tool, result)
}

type historicalQuery struct {
	coordsQuery
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// handleHistoricalWeather godoc
// @Summary Historical weather
// @Description Daily archived weather (ERA5) for a date range
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param start_date query string true "Start date, YYYY-MM-DD"
// @Param end_date query string true "End date, YYYY-MM-DD"
// @Success 200 {object} agro.HistoricalWeather
// @Failure 400 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /v1/weather/historical [get]
func (app *App) handleHistoricalWeather(c *gin.Context) {
	const tool = "get_historical_weather"

	var q historicalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.writeBindingError(c, tool, err)
		return
	}
	dates, err := types.NewDateRange(q.StartDate, q.EndDate)
	if err != nil {
		app.writeBindingError(c, tool, err)
		return
	}

	result, err := app.agroService.HistoricalWeather(c.Request.Context(), q.coords(), dates)
	if err != nil {
		app.writeError(c, tool, err)
		return
	}
	app.writeResult(c, tool, result)
}

type alertsQuery struct {
	coordsQuery
	CropType    string `form:"crop_type"`
	GrowthStage string `form:"growth_stage"`
}

// handleAgriculturalAlerts godoc
// @Summary Agricultural alerts
// @Description Weather-condition alerts and crop-specific recommendations from current conditions and the 7-day forecast
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Param crop_type query string false "Crop type: general, rice, corn, vegetables (default general)"
// @Param growth_stage query string false "Growth stage: planting, vegetative, flowering, harvesting (default vegetative)"
// @Success 200 {object} agro.AlertReport
// @Failure 400 {object} ErrorBody
// @Failure 502 {object} ErrorBody
// @Router /v1/weather/alerts [get]
func (app *App) handleAgriculturalAlerts(c *gin.Context) {
	const tool = "get_agricultural_alerts"

	var q alertsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.writeBindingError(c, tool, err)
		return
	}
	if q.CropType == "" {
		q.CropType = "general"
	}
	if q.GrowthStage == "" {
		q.GrowthStage = "vegetative"
	}

	result, err := app.agroService.AgriculturalAlerts(c.Request.Context(), q.coords(), q.CropType, q.GrowthStage)
	if err != nil {
		app.writeError(c, tool, err)
		return
	}
	app.writeResult(c, tool, result)
}

// handleSupportedRegion godoc
// @Summary Supported region
// @Description Active geographic restriction and its bounding box
// @Tags region
// @Produce json
// @Success 200 {object} agro.RegionInfo
// @Router /v1/region [get]
func (app *App) handleSupportedRegion(c *gin.Context) {
	app.writeResult(c, "get_supported_region", app.agroService.SupportedRegion())
}
