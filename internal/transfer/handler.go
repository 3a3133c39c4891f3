package transfer

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"viagem/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewTransferHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// EstimateTransfer godoc
// @Summary Estimar deslocamento até o aeroporto.
// @Description Resolve as coordenadas da origem (endereço, geocodificação ou centro da cidade),
// @Description calcula a distância até o aeroporto e sugere o horário de saída.
// @Description
// @Description Campos esperados no body:
// @Description - endereco: "Hotel X (41.9,12.5)" (Endereço de origem, coordenadas embutidas opcionais)
// @Description - cidade: "Roma" (Cidade da acomodação)
// @Description - aeroporto: "FCO" (Código IATA do aeroporto de partida)
// @Description - data_voo: "2024-06-10" (Data do voo, ISO 8601)
// @Description - horario_voo: "08:00" (Horário local do voo, opcional)
// @Tags Transfer
// @Accept json
// @Produce json
// @Success 200 {object} EstimateResponse "Estimativa de deslocamento"
// @Failure 400 {string} string "Requisição Inválida"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /transfer-estimate [post]
func (h *Handler) EstimateTransfer(c echo.Context) error {
	var request EstimateRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if !validation.IsValidISODate(request.DataVoo) {
		return c.JSON(http.StatusBadRequest, "data do voo inválida, use o formato AAAA-MM-DD")
	}

	result, err := h.InterfaceService.EstimateTransfer(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// TransportOptions godoc
// @Summary Opções de transporte para uma distância conhecida.
// @Description Monta as quatro opções (Táxi, App, Translado, Transporte público) para a distância informada.
// @Tags Transfer
// @Produce json
// @Param distancia_km query number true "Distância em km"
// @Param cidade query string false "Cidade, para classificação de preços"
// @Success 200 {object} TransportOptionsResponse
// @Failure 400 {string} string "Requisição Inválida"
// @Router /transport-options [get]
func (h *Handler) TransportOptions(c echo.Context) error {
	distance, err := validation.ParseStringToFloat(c.QueryParam("distancia_km"))
	if err != nil || distance < 0 {
		return c.JSON(http.StatusBadRequest, "distância inválida")
	}

	return c.JSON(http.StatusOK, h.InterfaceService.TransportOptions(distance, c.QueryParam("cidade")))
}
