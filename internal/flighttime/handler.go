package flighttime

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"viagem/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewFlightTimeHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// LocalTime godoc
// @Summary Formatar horário local de um aeroporto.
// @Description Formata um horário de relógio com o rótulo GMT do aeroporto na data informada.
// @Tags FlightTime
// @Produce json
// @Param data query string true "Data ISO 8601 (AAAA-MM-DD)"
// @Param horario query string true "Horário HH:MM"
// @Param aeroporto query string true "Código IATA"
// @Success 200 {object} LocalTimeResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Router /flight-time/local [get]
func (h *Handler) LocalTime(c echo.Context) error {
	date := c.QueryParam("data")
	if !validation.IsValidISODate(date) {
		return c.JSON(http.StatusBadRequest, "data inválida, use o formato AAAA-MM-DD")
	}
	hour, minute, err := validation.ParseHourMinute(c.QueryParam("horario"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, h.InterfaceService.LocalTime(date, hour, minute, c.QueryParam("aeroporto")))
}

// ConvertTime godoc
// @Summary Converter horário entre fusos de dois aeroportos.
// @Description Converte um horário de relógio do fuso do aeroporto de origem para o do destino.
// @Tags FlightTime
// @Produce json
// @Param data query string true "Data ISO 8601 (AAAA-MM-DD)"
// @Param horario query string true "Horário HH:MM"
// @Param origem query string true "IATA de origem"
// @Param destino query string true "IATA de destino"
// @Success 200 {object} LocalTimeResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Router /flight-time/convert [get]
func (h *Handler) ConvertTime(c echo.Context) error {
	date := c.QueryParam("data")
	if !validation.IsValidISODate(date) {
		return c.JSON(http.StatusBadRequest, "data inválida, use o formato AAAA-MM-DD")
	}
	hour, minute, err := validation.ParseHourMinute(c.QueryParam("horario"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result := h.InterfaceService.Convert(date, hour, minute, c.QueryParam("origem"), c.QueryParam("destino"))
	return c.JSON(http.StatusOK, result)
}
