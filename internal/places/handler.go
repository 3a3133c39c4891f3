package places

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
	APIKeyConfigured bool
}

func NewPlacesHandler(InterfaceService InterfaceService, apiKeyConfigured bool) *Handler {
	return &Handler{InterfaceService: InterfaceService, APIKeyConfigured: apiKeyConfigured}
}

// SearchPlaces godoc
// @Summary Buscar atividades ou restaurantes em uma cidade.
// @Description Busca via Google Places, com listas de consulta padrão por tipo quando não há palavra-chave.
// @Tags Places
// @Produce json
// @Param city query string true "Cidade"
// @Param type query string false "Tipo: atividade (padrão) ou restaurante"
// @Param q query string false "Palavra-chave livre"
// @Success 200 {object} PlacesResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 501 {string} string "Chave de API não configurada"
// @Router /places [get]
func (h *Handler) SearchPlaces(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return c.JSON(http.StatusBadRequest, "informe a cidade")
	}
	if !h.APIKeyConfigured {
		return c.JSON(http.StatusNotImplemented, "GOOGLE_PLACES_KEY não configurada")
	}

	searchType := strings.TrimSpace(c.QueryParam("type"))
	if searchType == "" {
		searchType = "atividade"
	}

	result, err := h.InterfaceService.SearchPlaces(c.Request().Context(), city, searchType, strings.TrimSpace(c.QueryParam("q")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
