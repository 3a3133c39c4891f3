package geocoding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viagem/pkg/nominatim"
)

type fakeGeocoder struct {
	result *nominatim.Result
	err    error
}

func (f *fakeGeocoder) Search(_ context.Context, _ string) (*nominatim.Result, error) {
	return f.result, f.err
}

func performGeocode(t *testing.T, geocoder Geocoder, query string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/geocode?q="+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewGeocodingHandler(NewGeocodingService(geocoder))
	require.NoError(t, h.Geocode(c))
	return rec
}

func TestGeocodeSuccess(t *testing.T) {
	geocoder := &fakeGeocoder{result: &nominatim.Result{Lat: 41.9078, Lon: 12.4893, DisplayName: "Via Veneto, Roma"}}

	rec := performGeocode(t, geocoder, "Via+Veneto+Roma")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "41.9078")
	assert.Contains(t, rec.Body.String(), "Via Veneto, Roma")
}

func TestGeocodeQueryTooShort(t *testing.T) {
	geocoder := &fakeGeocoder{err: nominatim.ErrQueryTooShort}

	rec := performGeocode(t, geocoder, "ab")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeocodeNoResults(t *testing.T) {
	rec := performGeocode(t, &fakeGeocoder{}, "endereco+inexistente")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeocodeUpstreamFailure(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("status 500")}

	rec := performGeocode(t, geocoder, "Via+Veneto+Roma")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
