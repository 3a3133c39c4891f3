package flighttime

type InterfaceService interface {
	LocalTime(dateISO string, hour, minute int, iata string) LocalTimeResponse
	Convert(dateISO string, hour, minute int, fromIATA, toIATA string) LocalTimeResponse
}

type Service struct{}

func NewFlightTimeService() *Service {
	return &Service{}
}

func (s *Service) LocalTime(dateISO string, hour, minute int, iata string) LocalTimeResponse {
	tz, _ := TimezoneForAirport(iata)
	return LocalTimeResponse{
		Horario:  FormatLocalTime(dateISO, hour, minute, iata),
		Timezone: tz,
	}
}

func (s *Service) Convert(dateISO string, hour, minute int, fromIATA, toIATA string) LocalTimeResponse {
	tz, _ := TimezoneForAirport(toIATA)
	return LocalTimeResponse{
		Horario:  ConvertLocalTime(dateISO, hour, minute, fromIATA, toIATA),
		Timezone: tz,
	}
}
