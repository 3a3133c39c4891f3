package nominatim

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/context"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// ErrQueryTooShort é retornado antes de qualquer chamada de rede quando a
// consulta tem menos de 3 caracteres.
var ErrQueryTooShort = errors.New("consulta muito curta para geocodificação")

// Result é o primeiro candidato retornado pela busca de endereço.
type Result struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

type searchEntry struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Client consulta o serviço de geocodificação Nominatim (OpenStreetMap).
// Sem chave de API; identifica o cliente via User-Agent, como exigido
// pela política de uso do serviço.
type Client struct {
	BaseURL    string
	UserAgent  string
	Language   string
	HTTPClient *http.Client
}

func NewClient(baseURL, userAgent, language string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = "viagem-api/1.0"
	}
	if language == "" {
		language = "pt-BR,pt;q=0.9"
	}
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		Language:   language,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search geocodifica uma consulta de texto livre e devolve o primeiro
// candidato. Lista vazia de resultados devolve (nil, nil): ausência de
// dado não é erro.
func (c *Client) Search(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if len(query) < 3 {
		return nil, ErrQueryTooShort
	}

	params := neturl.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", query)
	url := c.BaseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept-Language", c.Language)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocodificação falhou com status %d", resp.StatusCode)
	}

	var entries []searchEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("resposta de geocodificação inválida: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(entries[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("latitude inválida na resposta: %w", err)
	}
	lon, err := strconv.ParseFloat(entries[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("longitude inválida na resposta: %w", err)
	}

	return &Result{Lat: lat, Lon: lon, DisplayName: entries[0].DisplayName}, nil
}
