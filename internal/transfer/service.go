package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cache "viagem/pkg"
	"viagem/pkg/logger"
	"viagem/pkg/nominatim"
	"viagem/validation"
)

var estimatesByMode = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "viagem_transfer_estimates_total",
	Help: "Estimativas de traslado concluídas, por modo mais rápido.",
}, []string{"modo"})

// Geocoder é o fallback de geocodificação por endereço livre.
type Geocoder interface {
	Search(ctx context.Context, query string) (*nominatim.Result, error)
}

type InterfaceService interface {
	EstimateTransfer(ctx context.Context, request EstimateRequest) (EstimateResponse, error)
	TransportOptions(distanceKm float64, cityName string) TransportOptionsResponse
}

type Service struct {
	Geocoder   Geocoder
	Classifier *RegionClassifier
	Logger     logger.Logger
}

func NewTransferService(geocoder Geocoder, classifier *RegionClassifier, log logger.Logger) *Service {
	if classifier == nil {
		classifier = DefaultRegionClassifier()
	}
	return &Service{Geocoder: geocoder, Classifier: classifier, Logger: log}
}

// EstimateTransfer percorre a cadeia completa: resolve as coordenadas da
// origem (par embutido no endereço, geocodificação, centro da cidade),
// calcula a distância até o aeroporto, monta as opções de transporte e
// retro-calcula o horário de saída a partir do horário do voo.
func (s *Service) EstimateTransfer(ctx context.Context, request EstimateRequest) (EstimateResponse, error) {
	airport := strings.ToUpper(strings.TrimSpace(request.Aeroporto))
	address := strings.TrimSpace(request.Endereco)
	city := strings.TrimSpace(request.Cidade)

	if !validation.IsValidISODate(request.DataVoo) {
		return EstimateResponse{}, errors.New("data do voo inválida, use o formato AAAA-MM-DD")
	}
	dateYMD := request.DataVoo[:10]

	cacheKey := fmt.Sprintf("transfer:%s:%s:%s:%s:%s",
		strings.ToLower(address), cityKey(city), airport, dateYMD, request.HorarioVoo)
	if cache.Rdb != nil {
		cached, err := cache.Rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cachedResponse EstimateResponse
			if json.Unmarshal([]byte(cached), &cachedResponse) == nil {
				return cachedResponse, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.Logger.Warn("erro ao recuperar cache do Redis", "err", err)
		}
	}

	airportCoord, airportOK := AirportCoords(airport)
	origin, originOK := s.resolveOrigin(ctx, address, city)

	destinationLabel := AirportLabel(airport)

	originParam := ""
	if originOK {
		originParam = fmt.Sprintf("%f,%f", origin.Lat, origin.Lon)
	} else if address != "" && city != "" {
		originParam = address + " " + city
	}
	destParam := airport
	if airportOK {
		destParam = fmt.Sprintf("%f,%f", airportCoord.Lat, airportCoord.Lon)
	}
	gmapsURL := buildGoogleMapsURL(originParam, destParam)

	response := EstimateResponse{
		OrigemEndereco:  address,
		Aeroporto:       airport,
		DestinoEndereco: destinationLabel,
		GmapsURL:        gmapsURL,
	}

	if !airportOK || !originOK {
		if address != "" {
			response.Aviso = "Estimativa aproximada: faltam coordenadas precisas."
		} else {
			response.Aviso = "Informe o endereço de origem ou da acomodação para estimar o deslocamento."
		}
		return response, nil
	}

	distance := HaversineDistanceKm(airportCoord, origin)
	distanceRounded := roundKmTenth(distance)
	options := s.Classifier.EstimateTransportOptions(distance, city)
	fastest := FastestOption(options)

	response.Origem = &origin
	response.DistanciaKm = &distanceRounded
	response.Opcoes = options
	response.ModoMaisRapido = fastest.Modo
	response.TempoEstimadoMin = &fastest.TempoEstimadoMin

	if request.HorarioVoo != "" {
		hour, minute, err := validation.ParseHourMinute(request.HorarioVoo)
		if err != nil {
			return EstimateResponse{}, fmt.Errorf("horário do voo inválido: %w", err)
		}
		if advice, ok := SuggestDeparture(dateYMD, hour, minute, fastest.TempoEstimadoMin); ok {
			response.HoraSaidaSugerida = advice.HoraSaidaSugerida
			response.DiaAnterior = advice.DiaAnterior
		}
	}

	estimatesByMode.WithLabelValues(fastest.Modo).Inc()

	if cache.Rdb != nil {
		if data, err := json.Marshal(response); err == nil {
			if err := cache.Rdb.Set(ctx, cacheKey, data, time.Hour).Err(); err != nil {
				s.Logger.Warn("erro ao salvar cache do Redis", "err", err)
			}
		}
	}

	return response, nil
}

// resolveOrigin aplica as camadas de resolução de coordenadas: par
// embutido no endereço, geocodificação externa e centro da cidade.
// Falha na geocodificação degrada em silêncio para a próxima camada.
func (s *Service) resolveOrigin(ctx context.Context, address, city string) (Coordinate, bool) {
	if coord, ok := ParseCoordsFromAddress(address); ok {
		return coord, true
	}

	if address != "" && city != "" && s.Geocoder != nil {
		result, err := s.Geocoder.Search(ctx, address+" "+city)
		if err != nil {
			s.Logger.Warn("geocodificação falhou, usando centro da cidade", "err", err)
		} else if result != nil {
			return Coordinate{Lat: result.Lat, Lon: result.Lon}, true
		}
	}

	if city != "" {
		if coord, ok := CityCenterCoords(city); ok {
			return coord, true
		}
	}

	return Coordinate{}, false
}

// TransportOptions expõe o estimador isoladamente para uma distância já
// conhecida.
func (s *Service) TransportOptions(distanceKm float64, cityName string) TransportOptionsResponse {
	options := s.Classifier.EstimateTransportOptions(distanceKm, cityName)
	return TransportOptionsResponse{
		DistanciaKm:    distanceKm,
		Opcoes:         options,
		ModoMaisRapido: FastestOption(options).Modo,
	}
}
