package infra

import (
	"strings"

	"viagem/internal/flightinfo"
	"viagem/internal/flighttime"
	"viagem/internal/geocoding"
	"viagem/internal/places"
	"viagem/internal/transfer"
	cache "viagem/pkg"
	"viagem/pkg/logger"
	"viagem/pkg/nominatim"
)

type ContainerDI struct {
	Config            Config
	Logger            *logger.ZapLogger
	NominatimClient   *nominatim.Client
	ServiceTransfer   *transfer.Service
	HandlerTransfer   *transfer.Handler
	ServiceFlightTime *flighttime.Service
	HandlerFlightTime *flighttime.Handler
	ServiceFlightInfo *flightinfo.Service
	HandlerFlightInfo *flightinfo.Handler
	ServicePlaces     *places.Service
	HandlerPlaces     *places.Handler
	ServiceGeocoding  *geocoding.Service
	HandlerGeocoding  *geocoding.Handler
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.buildPkg()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) buildPkg() {
	c.Logger = logger.NewLogger(c.Config.Environment)
	c.NominatimClient = nominatim.NewClient(c.Config.NominatimURL, c.Config.NominatimUserAgent, c.Config.NominatimLanguage)
	cache.InitRedis()
}

func (c *ContainerDI) buildService() {
	classifier := transfer.DefaultRegionClassifier()
	if c.Config.EuropeCities != "" {
		classifier = transfer.NewRegionClassifier(strings.Split(c.Config.EuropeCities, ","))
	}

	c.ServiceTransfer = transfer.NewTransferService(c.NominatimClient, classifier, c.Logger)
	c.ServiceFlightTime = flighttime.NewFlightTimeService()
	c.ServiceFlightInfo = flightinfo.NewFlightInfoService(c.Config.FlightAPIURL, c.Config.FlightAPIKey, c.Logger)
	c.ServicePlaces = places.NewPlacesService(c.Config.GooglePlacesKey, c.Logger)
	c.ServiceGeocoding = geocoding.NewGeocodingService(c.NominatimClient)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerTransfer = transfer.NewTransferHandler(c.ServiceTransfer)
	c.HandlerFlightTime = flighttime.NewFlightTimeHandler(c.ServiceFlightTime)
	c.HandlerFlightInfo = flightinfo.NewFlightInfoHandler(c.ServiceFlightInfo)
	c.HandlerPlaces = places.NewPlacesHandler(c.ServicePlaces, c.Config.GooglePlacesKey != "")
	c.HandlerGeocoding = geocoding.NewGeocodingHandler(c.ServiceGeocoding)
}
