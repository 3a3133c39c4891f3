package transfer

import (
	"math"
	"strconv"
)

const (
	ModoTaxi              = "Táxi"
	ModoApp               = "App (ride-share)"
	ModoShuttle           = "Translado/Shuttle"
	ModoTransportePublico = "Transporte público"
)

// RegionClassifier decide a tabela de preços (Europa ou demais regiões)
// pelo nome da cidade. A lista de cidades europeias é uma heurística
// propositalmente grosseira, configurável sem mexer na aritmética do
// estimador.
type RegionClassifier struct {
	europe map[string]struct{}
}

func NewRegionClassifier(europeCities []string) *RegionClassifier {
	europe := make(map[string]struct{}, len(europeCities))
	for _, city := range europeCities {
		if key := cityKey(city); key != "" {
			europe[key] = struct{}{}
		}
	}
	return &RegionClassifier{europe: europe}
}

func DefaultRegionClassifier() *RegionClassifier {
	return NewRegionClassifier([]string{"roma", "rome", "paris", "london"})
}

func (rc *RegionClassifier) IsEurope(cityName string) bool {
	_, ok := rc.europe[cityKey(cityName)]
	return ok
}

// EstimateTransportOptions monta as quatro opções de deslocamento para a
// distância informada, sempre na mesma ordem: Táxi, App, Translado e
// Transporte público. Suposições simples de custo por km e velocidades
// médias; preços arredondados para a unidade da moeda.
func (rc *RegionClassifier) EstimateTransportOptions(distanceKm float64, cityName string) []TransportOption {
	isEurope := rc.IsEurope(cityName)
	currency := "R$"
	if isEurope {
		currency = "€"
	}

	taxiBase := 6.0
	taxiPerKm := 2.5
	ridePerKm := 2.0
	shuttlePerKm := 1.2
	transitTicket := 6.0 // bilhete/integração
	if isEurope {
		taxiBase = 5.0
		taxiPerKm = 1.2
		ridePerKm = 1.0
		shuttlePerKm = 0.4
		transitTicket = 2.0
	}

	taxiMinutes := roundMin(distanceKm/40*60 + 10)
	rideMinutes := roundMin(distanceKm/38*60 + 8)
	shuttleMinutes := roundMin(distanceKm/30*60 + 15)
	transitMinutes := roundMin(distanceKm/25*60 + 20)

	return []TransportOption{
		{
			Modo:             ModoTaxi,
			PrecoEstimado:    formatPrice(currency, taxiBase+taxiPerKm*distanceKm),
			TempoEstimadoMin: taxiMinutes,
			Observacao:       "Preço variável por tarifa, tráfego e horário.",
		},
		{
			Modo:             ModoApp,
			PrecoEstimado:    formatPrice(currency, ridePerKm*distanceKm),
			TempoEstimadoMin: rideMinutes,
		},
		{
			Modo:             ModoShuttle,
			PrecoEstimado:    formatPrice(currency, shuttlePerKm*distanceKm),
			TempoEstimadoMin: shuttleMinutes,
		},
		{
			Modo:             ModoTransportePublico,
			PrecoEstimado:    formatPrice(currency, transitTicket),
			TempoEstimadoMin: transitMinutes,
			Observacao:       "Necessita conexão; tempo inclui caminhada/espera.",
		},
	}
}

// FastestOption escolhe a opção de menor tempo estimado; empates ficam
// com a primeira da lista.
func FastestOption(options []TransportOption) TransportOption {
	fastest := options[0]
	for _, option := range options[1:] {
		if option.TempoEstimadoMin < fastest.TempoEstimadoMin {
			fastest = option
		}
	}
	return fastest
}

func roundMin(minutes float64) int {
	return int(math.Round(minutes))
}

func formatPrice(currency string, value float64) string {
	return currency + strconv.Itoa(int(math.Round(value)))
}
