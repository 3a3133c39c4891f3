package flightinfo

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewFlightInfoHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// GetFlightInfo godoc
// @Summary Consultar horário de partida de um voo.
// @Description Consulta a API de voos configurada; sem API, deriva horários determinísticos do código.
// @Tags FlightInfo
// @Produce json
// @Param code query string true "Código do voo (ex: AZ672)"
// @Param date query string true "Data do voo, ISO 8601"
// @Success 200 {object} FlightInfoResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 404 {string} string "Não Encontrado"
// @Router /flight-info [get]
func (h *Handler) GetFlightInfo(c echo.Context) error {
	code := c.QueryParam("code")
	date := c.QueryParam("date")
	if code == "" || date == "" {
		return c.JSON(http.StatusBadRequest, "informe code e date")
	}

	result, err := h.InterfaceService.GetFlightInfo(c.Request().Context(), code, date)
	if err != nil {
		return c.JSON(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
