package flighttime

// LocalTimeResponse carrega o horário formatado com o rótulo GMT do
// fuso na data consultada.
type LocalTimeResponse struct {
	Horario  string `json:"horario"`
	Timezone string `json:"timezone,omitempty"`
}
