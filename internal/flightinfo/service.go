package flightinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"viagem/pkg/logger"
)

type InterfaceService interface {
	GetFlightInfo(ctx context.Context, code, date string) (FlightInfoResponse, error)
}

type Service struct {
	UpstreamURL string
	UpstreamKey string
	HTTPClient  *http.Client
	Logger      logger.Logger
}

func NewFlightInfoService(upstreamURL, upstreamKey string, log logger.Logger) *Service {
	return &Service{
		UpstreamURL: upstreamURL,
		UpstreamKey: upstreamKey,
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
		Logger:      log,
	}
}

// GetFlightInfo consulta a API de voos quando configurada; sem API, ou
// em qualquer falha de upstream, cai para a simulação local
// determinística.
func (s *Service) GetFlightInfo(ctx context.Context, code, date string) (FlightInfoResponse, error) {
	if s.UpstreamURL != "" && s.UpstreamKey != "" {
		info, err := s.fetchUpstream(ctx, code, date)
		if err == nil {
			return info, nil
		}
		s.Logger.Warn("consulta de voo no upstream falhou, usando simulação", "err", err)
	}

	info, ok := SimulateFlightInfo(code, date)
	if !ok {
		return FlightInfoResponse{}, errors.New("informações do voo não encontradas")
	}
	return info, nil
}

func (s *Service) fetchUpstream(ctx context.Context, code, date string) (FlightInfoResponse, error) {
	params := neturl.Values{}
	params.Set("code", code)
	params.Set("date", date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.UpstreamURL+"?"+params.Encode(), nil)
	if err != nil {
		return FlightInfoResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+s.UpstreamKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return FlightInfoResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FlightInfoResponse{}, fmt.Errorf("upstream respondeu com status %d", resp.StatusCode)
	}

	var upstream upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return FlightInfoResponse{}, err
	}

	hour := firstNonEmpty(upstream.DepartureHour, upstream.Hour, "12")
	minute := firstNonEmpty(upstream.DepartureMinute, upstream.Minute, "00")
	h, _ := strconv.Atoi(hour)

	return FlightInfoResponse{
		DepartureHour:   padTwo(hour),
		DepartureMinute: padTwo(minute),
		HorarioFaixa:    faixaForHour(h),
		DateYMD:         dateYMD(date),
		Airline:         upstream.Airline,
		Origin:          upstream.Origin,
		Destination:     upstream.Destination,
	}, nil
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// SimulateFlightInfo deriva horários determinísticos da parte numérica
// do código do voo, para ambientes sem API real.
func SimulateFlightInfo(code, date string) (FlightInfoResponse, bool) {
	if code == "" || date == "" {
		return FlightInfoResponse{}, false
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	digits := nonDigits.ReplaceAllString(normalized, "")

	base := len(normalized) * 7
	if digits != "" {
		if parsed, err := strconv.Atoi(digits); err == nil {
			base = parsed
		}
	}

	hour := base % 24
	minuteRaw := (base * 7) % 60
	minute5 := (minuteRaw / 5) * 5

	return FlightInfoResponse{
		DepartureHour:   fmt.Sprintf("%02d", hour),
		DepartureMinute: fmt.Sprintf("%02d", minute5),
		HorarioFaixa:    faixaForHour(hour),
		DateYMD:         dateYMD(date),
	}, true
}

func faixaForHour(h int) string {
	switch {
	case h >= 6 && h < 12:
		return "Manhã: 06-12h"
	case h >= 12 && h < 18:
		return "Tarde: 12-18h"
	default:
		return "Noite: 18-06h"
	}
}

func dateYMD(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

func padTwo(value string) string {
	if len(value) == 1 {
		return "0" + value
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
