package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineIdentity(t *testing.T) {
	points := []Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 41.9028, Lon: 12.4964},
		{Lat: -23.5505, Lon: -46.6333},
		{Lat: 90, Lon: 0},
	}
	for _, p := range points {
		assert.Zero(t, HaversineDistanceKm(p, p))
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Coordinate{Lat: 41.8003, Lon: 12.2389}
	b := Coordinate{Lat: -23.4356, Lon: -46.4731}
	assert.Equal(t, HaversineDistanceKm(a, b), HaversineDistanceKm(b, a))
}

func TestHaversineKnownDistance(t *testing.T) {
	rome := Coordinate{Lat: 41.9028, Lon: 12.4964}
	paris := Coordinate{Lat: 48.8566, Lon: 2.3522}
	// Roma-Paris fica em torno de 1106 km
	assert.InDelta(t, 1106, HaversineDistanceKm(rome, paris), 15)
}

func TestHaversineTriangleSanity(t *testing.T) {
	a := Coordinate{Lat: 41.9028, Lon: 12.4964}  // Roma
	b := Coordinate{Lat: 48.8566, Lon: 2.3522}   // Paris
	c := Coordinate{Lat: 51.5074, Lon: -0.1278}  // Londres
	ac := HaversineDistanceKm(a, c)
	assert.LessOrEqual(t, ac, HaversineDistanceKm(a, b)+HaversineDistanceKm(b, c))
}

func TestHaversineAntipodalClamp(t *testing.T) {
	a := Coordinate{Lat: 0, Lon: 0}
	b := Coordinate{Lat: 0, Lon: 180}
	got := HaversineDistanceKm(a, b)
	assert.False(t, got != got, "distância não pode ser NaN")
	// meia circunferência da Terra
	assert.InDelta(t, 20015, got, 5)
}

func TestBuildGoogleMapsURL(t *testing.T) {
	url := buildGoogleMapsURL("41.900000,12.500000", "41.800300,12.238900")
	assert.Contains(t, url, "https://www.google.com/maps/dir/?api=1")
	assert.Contains(t, url, "origin=41.900000%2C12.500000")
	assert.Contains(t, url, "travelmode=driving")
}
