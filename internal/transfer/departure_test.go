package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestDeparture(t *testing.T) {
	advice, ok := SuggestDeparture("2024-06-10", 14, 30, 45)
	require.True(t, ok)
	// 14:30 - (180 + 45) min = 10:45
	assert.Equal(t, "10:45", advice.HoraSaidaSugerida)
	assert.False(t, advice.DiaAnterior)
}

func TestSuggestDepartureDayBoundary(t *testing.T) {
	// voo às 08:00 com 400 min de deslocamento: 480 - 580 min cai em 22:20
	// do dia anterior
	advice, ok := SuggestDeparture("2024-06-10", 8, 0, 400)
	require.True(t, ok)
	assert.Equal(t, "22:20", advice.HoraSaidaSugerida)
	assert.True(t, advice.DiaAnterior)
}

func TestSuggestDepartureExactMidnight(t *testing.T) {
	// saída exatamente à meia-noite ainda é o mesmo dia
	advice, ok := SuggestDeparture("2024-06-10", 3, 30, 30)
	require.True(t, ok)
	assert.Equal(t, "00:00", advice.HoraSaidaSugerida)
	assert.False(t, advice.DiaAnterior)
}

func TestSuggestDepartureZeroPadding(t *testing.T) {
	advice, ok := SuggestDeparture("2024-06-10", 12, 5, 60)
	require.True(t, ok)
	assert.Equal(t, "08:05", advice.HoraSaidaSugerida)
}

func TestSuggestDepartureInvalidDate(t *testing.T) {
	_, ok := SuggestDeparture("10/06/2024", 8, 0, 30)
	assert.False(t, ok)

	_, ok = SuggestDeparture("", 8, 0, 30)
	assert.False(t, ok)
}

func TestSuggestDepartureAcceptsFullISO(t *testing.T) {
	advice, ok := SuggestDeparture("2024-06-10T00:00:00Z", 9, 0, 30)
	require.True(t, ok)
	assert.Equal(t, "05:30", advice.HoraSaidaSugerida)
	assert.False(t, advice.DiaAnterior)
}
