package places

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"viagem/pkg/logger"
)

const (
	maxCollected = 48
	maxDetailed  = 20
)

// Consultas padrão por tipo quando o chamador não informa palavra-chave.
var restaurantQueries = []string{
	"restaurant", "bistro", "trattoria", "pizzeria", "seafood",
	"steakhouse", "bakery", "cafe", "wine bar", "gelato",
}

var activityQueries = []string{
	"tour", "museum", "attraction", "walking tour", "landmark",
	"gallery", "cathedral", "park", "monument", "market",
	"passeio", "museu", "atração", "ponto turístico", "mirante",
}

type InterfaceService interface {
	SearchPlaces(ctx context.Context, city, searchType, keyword string) (PlacesResponse, error)
}

type Service struct {
	APIKey string
	Logger logger.Logger
}

func NewPlacesService(apiKey string, log logger.Logger) *Service {
	return &Service{APIKey: apiKey, Logger: log}
}

// SearchPlaces busca atividades ou restaurantes em uma cidade via Google
// Places (text search), deduplica por place_id e enriquece os primeiros
// resultados com detalhes (faixa de preço, horários, avaliação).
func (s *Service) SearchPlaces(ctx context.Context, city, searchType, keyword string) (PlacesResponse, error) {
	client, err := maps.NewClient(maps.WithAPIKey(s.APIKey))
	if err != nil {
		return PlacesResponse{}, fmt.Errorf("erro ao criar cliente Google Maps: %v", err)
	}

	queries := queriesFor(searchType, keyword)

	var collected []maps.PlacesSearchResult
	seen := make(map[string]struct{})
	for _, q := range queries {
		resp, err := client.TextSearch(ctx, &maps.TextSearchRequest{
			Query:    fmt.Sprintf("%s in %s", q, city),
			Language: "pt-BR",
		})
		if err != nil {
			s.Logger.Warn("busca de places falhou", "query", q, "err", err)
			continue
		}
		for _, item := range resp.Results {
			if item.PlaceID == "" {
				continue
			}
			if _, dup := seen[item.PlaceID]; dup {
				continue
			}
			seen[item.PlaceID] = struct{}{}
			collected = append(collected, item)
		}
		if len(collected) >= maxCollected {
			break
		}
	}

	top := collected
	if len(top) > maxDetailed {
		top = top[:maxDetailed]
	}

	items := make([]PlaceItem, 0, len(top))
	for _, r := range top {
		items = append(items, s.detailItem(ctx, client, r))
	}

	return PlacesResponse{Items: items}, nil
}

func (s *Service) detailItem(ctx context.Context, client *maps.Client, r maps.PlacesSearchResult) PlaceItem {
	fallbackURL := fmt.Sprintf("https://www.google.com/maps/place/?q=place_id:%s", r.PlaceID)

	detail, err := client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  r.PlaceID,
		Language: "pt-BR",
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskPriceLevel,
			maps.PlaceDetailsFieldMaskOpeningHours,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskURL,
			maps.PlaceDetailsFieldMaskBusinessStatus,
			maps.PlaceDetailsFieldMaskRatings,
			maps.PlaceDetailsFieldMaskUserRatingsTotal,
		},
	})
	if err != nil {
		return PlaceItem{Nome: r.Name, URL: fallbackURL}
	}

	name := detail.Name
	if name == "" {
		name = r.Name
	}
	url := detail.URL
	if url == "" {
		url = detail.Website
	}
	if url == "" {
		url = fallbackURL
	}

	var details []string
	if price := priceLevelLabel(detail.PriceLevel); price != "" {
		details = append(details, "Faixa de preço: "+price)
	}
	if detail.OpeningHours != nil && len(detail.OpeningHours.WeekdayText) > 0 {
		details = append(details, "Horários: "+detail.OpeningHours.WeekdayText[0])
	}
	if detail.Rating > 0 {
		line := fmt.Sprintf("Avaliação: %.1f", detail.Rating)
		if detail.UserRatingsTotal > 0 {
			line += fmt.Sprintf(" (%d)", detail.UserRatingsTotal)
		}
		details = append(details, line)
	}
	if detail.BusinessStatus != "" && detail.BusinessStatus != "OPERATIONAL" {
		details = append(details, "Status: "+detail.BusinessStatus)
	}

	return PlaceItem{
		Nome:     name,
		Detalhes: strings.Join(details, " — "),
		URL:      url,
	}
}

func queriesFor(searchType, keyword string) []string {
	if keyword != "" {
		return []string{keyword}
	}
	if searchType == "restaurante" {
		return restaurantQueries
	}
	return activityQueries
}

// priceLevelLabel converte o price_level do Google (1..4) em cifrões.
// Nível ausente (zero) fica sem rótulo.
func priceLevelLabel(level int) string {
	labels := []string{"$", "$$", "$$$", "$$$$"}
	if level <= 0 {
		return ""
	}
	if level > len(labels) {
		level = len(labels)
	}
	return labels[level-1]
}
