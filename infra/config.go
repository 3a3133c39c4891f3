package infra

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerName         string
	ServerPort         string
	Environment        string
	RedisUrl           string
	GooglePlacesKey    string
	FlightAPIURL       string
	FlightAPIKey       string
	NominatimURL       string
	NominatimUserAgent string
	NominatimLanguage  string
	EuropeCities       string
}

func NewConfig() Config {
	if os.Getenv("ENVIRONMENT") == "" {
		if err := godotenv.Load(".env"); err != nil {
			panic("Error loading env file")
		}
	}

	return Config{
		ServerName:         os.Getenv("SERVER_NAME"),
		ServerPort:         os.Getenv("SERVER_PORT"),
		Environment:        os.Getenv("ENVIRONMENT"),
		RedisUrl:           os.Getenv("REDIS_URL"),
		GooglePlacesKey:    os.Getenv("GOOGLE_PLACES_KEY"),
		FlightAPIURL:       os.Getenv("FLIGHT_API_URL"),
		FlightAPIKey:       os.Getenv("FLIGHT_API_KEY"),
		NominatimURL:       os.Getenv("NOMINATIM_URL"),
		NominatimUserAgent: os.Getenv("NOMINATIM_USER_AGENT"),
		NominatimLanguage:  os.Getenv("NOMINATIM_LANGUAGE"),
		EuropeCities:       os.Getenv("EUROPE_CITIES"),
	}
}
