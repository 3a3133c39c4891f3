package flightinfo

// FlightInfoResponse segue o contrato consumido pelo planejador: hora e
// minuto de partida zero-preenchidos, faixa de horário e data YMD.
type FlightInfoResponse struct {
	DepartureHour   string `json:"departureHour"`
	DepartureMinute string `json:"departureMinute"`
	HorarioFaixa    string `json:"horarioFaixa"`
	DateYMD         string `json:"dateYMD"`
	Airline         string `json:"airline,omitempty"`
	Origin          string `json:"origin,omitempty"`
	Destination     string `json:"destination,omitempty"`
}

type upstreamResponse struct {
	DepartureHour   string `json:"departureHour"`
	Hour            string `json:"hour"`
	DepartureMinute string `json:"departureMinute"`
	Minute          string `json:"minute"`
	Airline         string `json:"airline"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
}
