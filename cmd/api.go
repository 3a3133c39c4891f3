package cmd

import (
	"context"
	"time"
	"viagem/infra"
	_midlleware "viagem/infra/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))
	e.Use(_midlleware.RequestID)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/transfer-estimate", container.HandlerTransfer.EstimateTransfer)
	e.GET("/transport-options", container.HandlerTransfer.TransportOptions)
	e.GET("/flight-time/local", container.HandlerFlightTime.LocalTime)
	e.GET("/flight-time/convert", container.HandlerFlightTime.ConvertTime)
	e.GET("/flight-info", container.HandlerFlightInfo.GetFlightInfo)
	e.GET("/places", container.HandlerPlaces.SearchPlaces)
	e.GET("/geocode", container.HandlerGeocoding.Geocode)

	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}
