package transfer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viagem/pkg/logger"
)

func performEstimate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transfer-estimate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTransferHandler(newTestService(&fakeGeocoder{}))
	require.NoError(t, h.EstimateTransfer(c))
	return rec
}

func TestEstimateTransferHandler(t *testing.T) {
	body := `{"endereco":"Hotel X (41.9,12.5)","cidade":"Roma","aeroporto":"FCO","data_voo":"2024-06-10","horario_voo":"14:30"}`

	rec := performEstimate(t, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "distancia_km")
	assert.Contains(t, rec.Body.String(), "hora_saida_sugerida")
}

func TestEstimateTransferHandlerMissingAirport(t *testing.T) {
	rec := performEstimate(t, `{"cidade":"Roma","data_voo":"2024-06-10"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimateTransferHandlerBadDate(t *testing.T) {
	rec := performEstimate(t, `{"aeroporto":"FCO","data_voo":"10/06/2024"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransportOptionsHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transport-options?distancia_km=24.2&cidade=Roma", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTransferHandler(NewTransferService(&fakeGeocoder{}, nil, logger.NewLogger("development")))
	require.NoError(t, h.TransportOptions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Táxi")
}

func TestTransportOptionsHandlerInvalidDistance(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transport-options?distancia_km=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTransferHandler(newTestService(&fakeGeocoder{}))
	require.NoError(t, h.TransportOptions(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
