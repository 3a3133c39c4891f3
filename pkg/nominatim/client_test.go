package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQueryTooShort(t *testing.T) {
	c := NewClient("", "", "")

	_, err := c.Search(context.Background(), "ab")
	assert.ErrorIs(t, err, ErrQueryTooShort)

	// Espaços não contam.
	_, err = c.Search(context.Background(), "  a  ")
	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestSearchSendsIdentificationHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "viagem-api/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "pt-BR,pt;q=0.9", r.Header.Get("Accept-Language"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "Via Veneto 10 Roma", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"lat":"41.9078","lon":"12.4893","display_name":"Via Veneto, Roma"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "")

	result, err := c.Search(context.Background(), "Via Veneto 10 Roma")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 41.9078, result.Lat)
	assert.Equal(t, 12.4893, result.Lon)
	assert.Equal(t, "Via Veneto, Roma", result.DisplayName)
}

func TestSearchEmptyResultIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "")

	result, err := c.Search(context.Background(), "endereço inexistente")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "")

	_, err := c.Search(context.Background(), "Via Veneto 10 Roma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSearchMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "")

	_, err := c.Search(context.Background(), "Via Veneto 10 Roma")
	assert.Error(t, err)
}

func TestSearchInvalidCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"abc","lon":"12.4893"}]`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "")

	_, err := c.Search(context.Background(), "Via Veneto 10 Roma")
	assert.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "", "")
	assert.Equal(t, "https://nominatim.openstreetmap.org", c.BaseURL)
	assert.Equal(t, "viagem-api/1.0", c.UserAgent)
	assert.Equal(t, "pt-BR,pt;q=0.9", c.Language)

	custom := NewClient("http://localhost:8080", "meu-app/2.0", "en-US")
	assert.Equal(t, "http://localhost:8080", custom.BaseURL)
	assert.Equal(t, "meu-app/2.0", custom.UserAgent)
	assert.Equal(t, "en-US", custom.Language)
}
