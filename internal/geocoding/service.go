package geocoding

import (
	"context"

	"viagem/pkg/nominatim"
)

type Geocoder interface {
	Search(ctx context.Context, query string) (*nominatim.Result, error)
}

type InterfaceService interface {
	Geocode(ctx context.Context, query string) (*GeocodeResponse, error)
}

type Service struct {
	Geocoder Geocoder
}

func NewGeocodingService(geocoder Geocoder) *Service {
	return &Service{Geocoder: geocoder}
}

// Geocode repassa a consulta ao serviço de geocodificação, sem cache:
// cada chamada vai direto ao upstream. Resultado vazio devolve nil.
func (s *Service) Geocode(ctx context.Context, query string) (*GeocodeResponse, error) {
	result, err := s.Geocoder.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return &GeocodeResponse{
		Lat:         result.Lat,
		Lon:         result.Lon,
		DisplayName: result.DisplayName,
	}, nil
}
