package transfer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Coordenadas simplificadas de aeroportos (IATA) e de alguns centros de
// cidade. Tabelas imutáveis, carregadas uma única vez.
var iataCoords = map[string]Coordinate{
	"FCO": {Lat: 41.8003, Lon: 12.2389}, // Roma Fiumicino
	"CIA": {Lat: 41.799, Lon: 12.5949},  // Roma Ciampino
	"GRU": {Lat: -23.4356, Lon: -46.4731},
	"GIG": {Lat: -22.809, Lon: -43.2506},
	"SDU": {Lat: -22.9105, Lon: -43.1631},
	"CGH": {Lat: -23.6261, Lon: -46.6566},
	"VCP": {Lat: -23.0074, Lon: -47.1345},
	"CDG": {Lat: 49.0097, Lon: 2.5479},
	"ORY": {Lat: 48.7231, Lon: 2.379},
	"LHR": {Lat: 51.47, Lon: -0.4543},
	"JFK": {Lat: 40.6413, Lon: -73.7781},
}

var cityCoords = map[string]Coordinate{
	"roma":           {Lat: 41.9028, Lon: 12.4964},
	"rome":           {Lat: 41.9028, Lon: 12.4964},
	"rio de janeiro": {Lat: -22.9068, Lon: -43.1729},
	"sao paulo":      {Lat: -23.5505, Lon: -46.6333},
	"paris":          {Lat: 48.8566, Lon: 2.3522},
	"london":         {Lat: 51.5074, Lon: -0.1278},
	"new york":       {Lat: 40.7128, Lon: -74.006},
}

var airportLabels = map[string]string{
	"FCO": "Roma Fiumicino (FCO)",
	"CIA": "Roma Ciampino (CIA)",
	"GRU": "São Paulo/Guarulhos (GRU)",
	"GIG": "Rio/Galeão (GIG)",
	"SDU": "Rio/Santos Dumont (SDU)",
	"CGH": "São Paulo/Congonhas (CGH)",
	"VCP": "Campinas/Viracopos (VCP)",
	"CDG": "Paris Charles de Gaulle (CDG)",
	"ORY": "Paris Orly (ORY)",
	"LHR": "Londres Heathrow (LHR)",
	"JFK": "Nova York JFK (JFK)",
}

// AirportCoords resolve um código IATA para coordenadas. Código
// desconhecido devolve ok=false, nunca erro.
func AirportCoords(iata string) (Coordinate, bool) {
	coord, ok := iataCoords[strings.ToUpper(strings.TrimSpace(iata))]
	return coord, ok
}

// CityCenterCoords resolve o centro aproximado de uma cidade conhecida.
// A chave é normalizada (minúsculas, sem acentos), então "São Paulo"
// encontra "sao paulo".
func CityCenterCoords(name string) (Coordinate, bool) {
	coord, ok := cityCoords[cityKey(name)]
	return coord, ok
}

// AirportLabel devolve o nome de exibição do aeroporto; códigos fora da
// tabela voltam como estão.
func AirportLabel(code string) string {
	if label, ok := airportLabels[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return label
	}
	return code
}

var coordsPattern = regexp.MustCompile(`(-?\d{1,3}\.\d+)\s*,\s*(-?\d{1,3}\.\d+)`)

// ParseCoordsFromAddress extrai um par "lat,lon" embutido no texto do
// endereço. O padrão aceita qualquer par de decimais separados por
// vírgula e pode casar com números que não são coordenadas; essa folga
// é intencional e mantida como limitação conhecida.
func ParseCoordsFromAddress(address string) (Coordinate, bool) {
	m := coordsPattern.FindStringSubmatch(address)
	if m == nil {
		return Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lon: lon}, true
}

// cityKey normaliza o nome da cidade: minúsculas e sem marcas
// diacríticas (NFD, descartando combinações).
func cityKey(name string) string {
	decomposed := norm.NFD.String(strings.ToLower(strings.TrimSpace(name)))
	var b strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
