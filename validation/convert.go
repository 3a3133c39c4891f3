package validation

import (
	"fmt"
	"strconv"
	"strings"
)

func ParseStringToInt64(str string) (int64, error) {
	if str == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, err
	}
	return value, nil
}

func ParseStringToFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// ParseHourMinute converte "HH:MM" em horas e minutos inteiros.
// Aceita também hora e minuto separados sem zero à esquerda ("8:05").
func ParseHourMinute(text string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(text), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("horário inválido: %q", text)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("hora inválida: %q", text)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("minuto inválido: %q", text)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("horário fora do intervalo: %q", text)
	}
	return hour, minute, nil
}
