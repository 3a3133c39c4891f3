package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLevelLabel(t *testing.T) {
	assert.Equal(t, "", priceLevelLabel(0))
	assert.Equal(t, "", priceLevelLabel(-1))
	assert.Equal(t, "$", priceLevelLabel(1))
	assert.Equal(t, "$$", priceLevelLabel(2))
	assert.Equal(t, "$$$", priceLevelLabel(3))
	assert.Equal(t, "$$$$", priceLevelLabel(4))
	// Valores acima da escala saturam no topo.
	assert.Equal(t, "$$$$", priceLevelLabel(9))
}

func TestQueriesForKeywordOverridesType(t *testing.T) {
	queries := queriesFor("restaurante", "sushi")
	assert.Equal(t, []string{"sushi"}, queries)
}

func TestQueriesForRestaurante(t *testing.T) {
	queries := queriesFor("restaurante", "")
	assert.Contains(t, queries, "restaurant")
	assert.Contains(t, queries, "pizzeria")
	assert.NotContains(t, queries, "museum")
}

func TestQueriesForAtividadeDefault(t *testing.T) {
	queries := queriesFor("atividade", "")
	assert.Contains(t, queries, "museum")
	assert.Contains(t, queries, "passeio")

	// Tipo desconhecido cai nas atividades.
	assert.Equal(t, queries, queriesFor("qualquer", ""))
}
