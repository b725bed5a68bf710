package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Weather tool endpoints
	v1 := app.router.Group("/v1")
	{
		v1.GET("/weather/current", app.handleCurrentWeather)
		v1.GET("/weather/forecast", app.handleWeatherForecast)
		v1.GET("/weather/soil", app.handleSoilConditions)
		v1.GET("/weather/evapotranspiration", app.handleEvapotranspiration)
		v1.GET("/weather/historical", app.handleHistoricalWeather)
		v1.GET("/weather/alerts", app.handleAgriculturalAlerts)
		v1.GET("/region", app.handleSupportedRegion)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
