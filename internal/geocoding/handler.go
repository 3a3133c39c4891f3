package geocoding

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"viagem/pkg/nominatim"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewGeocodingHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// Geocode godoc
// @Summary Geocodificar um endereço de texto livre.
// @Description Consulta o serviço de geocodificação e devolve o primeiro candidato.
// @Tags Geocoding
// @Produce json
// @Param q query string true "Endereço (mínimo 3 caracteres)"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {string} string "Consulta ausente ou muito curta"
// @Failure 404 {string} string "Sem resultados"
// @Failure 502 {string} string "Falha na geocodificação"
// @Router /geocode [get]
func (h *Handler) Geocode(c echo.Context) error {
	result, err := h.InterfaceService.Geocode(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, nominatim.ErrQueryTooShort) {
			return c.JSON(http.StatusBadRequest, "consulta ausente ou muito curta")
		}
		return c.JSON(http.StatusBadGateway, "falha na geocodificação")
	}
	if result == nil {
		return c.JSON(http.StatusNotFound, "sem resultados")
	}

	return c.JSON(http.StatusOK, result)
}
