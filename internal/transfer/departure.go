package transfer

import (
	"fmt"
	"time"
)

// Antecedência fixa de check-in/segurança antes do voo.
const preFlightBufferMin = 180

// SuggestDeparture resolve o horário de saída recomendado: horário local
// do voo menos (3h de antecedência + tempo de deslocamento). DiaAnterior
// indica que a saída cai em data estritamente anterior à do voo, no
// calendário local do voo. Data inválida devolve ok=false.
func SuggestDeparture(flightDateISO string, flightHour, flightMinute, transportMinutes int) (DepartureAdvice, bool) {
	if len(flightDateISO) < 10 {
		return DepartureAdvice{}, false
	}
	day, err := time.Parse("2006-01-02", flightDateISO[:10])
	if err != nil {
		return DepartureAdvice{}, false
	}

	flight := time.Date(day.Year(), day.Month(), day.Day(), flightHour, flightMinute, 0, 0, time.UTC)
	leave := flight.Add(-time.Duration(preFlightBufferMin+transportMinutes) * time.Minute)

	return DepartureAdvice{
		HoraSaidaSugerida: fmt.Sprintf("%02d:%02d", leave.Hour(), leave.Minute()),
		DiaAnterior:       leave.Format("2006-01-02") < flightDateISO[:10],
	}, true
}
