package transfer

import (
	"fmt"
	"math"
	neturl "net/url"
)

const earthRadiusKm = 6371

// HaversineDistanceKm calcula a distância de círculo máximo entre duas
// coordenadas, em quilômetros.
func HaversineDistanceKm(a, b Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// h pode passar de 1 por erro de ponto flutuante perto dos antípodas
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func roundKmTenth(km float64) float64 {
	return math.Round(km*10) / 10
}

func buildGoogleMapsURL(origin, destination string) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s&travelmode=driving",
		neturl.QueryEscape(origin),
		neturl.QueryEscape(destination))
}
