package flighttime

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Mapa de IATA -> timezone IANA. Mantém os principais aeroportos
// atendidos pelo planejador.
var iataTimezones = map[string]string{
	// Itália
	"FCO": "Europe/Rome",
	"CIA": "Europe/Rome",
	// Brasil (sudeste/sul)
	"GRU": "America/Sao_Paulo",
	"CGH": "America/Sao_Paulo",
	"VCP": "America/Sao_Paulo",
	"GIG": "America/Sao_Paulo",
	"SDU": "America/Sao_Paulo",
	"BSB": "America/Sao_Paulo",
	"CNF": "America/Sao_Paulo",
	"CWB": "America/Sao_Paulo",
	"POA": "America/Sao_Paulo",
	"FLN": "America/Sao_Paulo",
	"IGU": "America/Sao_Paulo",
	"VIX": "America/Sao_Paulo",
	"GYN": "America/Sao_Paulo",
	// Brasil (nordeste)
	"FOR": "America/Fortaleza",
	"NAT": "America/Fortaleza",
	"THE": "America/Fortaleza",
	"SLZ": "America/Fortaleza",
	"REC": "America/Recife",
	"MCZ": "America/Maceio",
	"SSA": "America/Bahia",
	// Brasil (norte/centro-oeste)
	"MAO": "America/Manaus",
	"PVH": "America/Porto_Velho",
	"BEL": "America/Belem",
	"MCP": "America/Belem",
	"PMW": "America/Araguaina",
	"CGB": "America/Cuiaba",
	"RBR": "America/Rio_Branco",
}

// TimezoneForAirport resolve o código IATA para o identificador IANA.
// Código desconhecido devolve ok=false.
func TimezoneForAirport(iata string) (string, bool) {
	tz, ok := iataTimezones[strings.ToUpper(strings.TrimSpace(iata))]
	return tz, ok
}

// GMTOffsetLabel calcula o rótulo de offset ("GMT+2", "GMT-3") para a
// data informada, ao meio-dia UTC, para refletir o horário de verão
// vigente. Datas ou fusos inválidos devolvem "GMT".
func GMTOffsetLabel(dateISO, timeZone string) string {
	offset, ok := offsetSeconds(dateISO, timeZone)
	if !ok {
		return "GMT"
	}
	return formatOffsetLabel(offset)
}

func offsetSeconds(dateISO, timeZone string) (int, bool) {
	if len(dateISO) < 10 {
		return 0, false
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return 0, false
	}
	day, err := time.Parse("2006-01-02", dateISO[:10])
	if err != nil {
		return 0, false
	}
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	_, offset := noon.In(loc).Zone()
	return offset, true
}

func offsetMinutes(dateISO, timeZone string) int {
	offset, ok := offsetSeconds(dateISO, timeZone)
	if !ok {
		return 0
	}
	return offset / 60
}

func formatOffsetLabel(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}

// FormatLocalTime formata um horário de relógio com o rótulo GMT do
// aeroporto na data informada; aeroporto sem fuso conhecido recebe o
// rótulo genérico "GMT".
func FormatLocalTime(dateISO string, hour, minute int, iata string) string {
	gmt := "GMT"
	if tz, ok := TimezoneForAirport(iata); ok {
		gmt = GMTOffsetLabel(dateISO, tz)
	}
	return fmt.Sprintf("%02d:%02d (%s)", hour, minute, gmt)
}

// ConvertLocalTime converte um horário de relógio do fuso do aeroporto
// de origem para o do destino e formata com o rótulo GMT do destino.
// Destino sem fuso conhecido não converte: devolve o horário original
// com rótulo genérico. Origem sem fuso conhecido assume offset 0,
// aproximação documentada.
func ConvertLocalTime(dateISO string, hour, minute int, fromIATA, toIATA string) string {
	tzTo, ok := TimezoneForAirport(toIATA)
	if !ok {
		return FormatLocalTime(dateISO, hour, minute, toIATA)
	}

	base := hour*60 + minute
	offFrom := 0
	if tzFrom, ok := TimezoneForAirport(fromIATA); ok {
		offFrom = offsetMinutes(dateISO, tzFrom)
	}
	offTo := offsetMinutes(dateISO, tzTo)

	converted := base + (offTo - offFrom)
	normalized := ((converted % 1440) + 1440) % 1440 // normaliza em 0..1439

	return fmt.Sprintf("%02d:%02d (%s)", normalized/60, normalized%60, GMTOffsetLabel(dateISO, tzTo))
}
