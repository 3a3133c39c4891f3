package transfer

// Coordinate é um par latitude/longitude em graus decimais.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TransportOption é uma opção de deslocamento até o aeroporto, com
// preço prefixado pela moeda da região e tempo estimado em minutos.
type TransportOption struct {
	Modo             string `json:"modo"`
	PrecoEstimado    string `json:"preco_estimado"`
	TempoEstimadoMin int    `json:"tempo_estimado_min"`
	Observacao       string `json:"observacao,omitempty"`
}

// DepartureAdvice é o horário de saída recomendado; DiaAnterior indica
// que a saída cai no dia do calendário anterior ao do voo.
type DepartureAdvice struct {
	HoraSaidaSugerida string `json:"hora_saida_sugerida"`
	DiaAnterior       bool   `json:"dia_anterior"`
}

type EstimateRequest struct {
	Endereco   string `json:"endereco"`
	Cidade     string `json:"cidade"`
	Aeroporto  string `json:"aeroporto" validate:"required,len=3"`
	DataVoo    string `json:"data_voo" validate:"required"`
	HorarioVoo string `json:"horario_voo"`
}

type EstimateResponse struct {
	OrigemEndereco    string            `json:"origem_endereco,omitempty"`
	Origem            *Coordinate       `json:"origem,omitempty"`
	Aeroporto         string            `json:"aeroporto"`
	DestinoEndereco   string            `json:"destino_endereco"`
	DistanciaKm       *float64          `json:"distancia_km"`
	Opcoes            []TransportOption `json:"opcoes,omitempty"`
	ModoMaisRapido    string            `json:"modo_mais_rapido,omitempty"`
	TempoEstimadoMin  *int              `json:"tempo_estimado_min"`
	HoraSaidaSugerida string            `json:"hora_saida_sugerida,omitempty"`
	DiaAnterior       bool              `json:"dia_anterior"`
	Aviso             string            `json:"aviso,omitempty"`
	GmapsURL          string            `json:"gmaps_url"`
}

type TransportOptionsResponse struct {
	DistanciaKm    float64           `json:"distancia_km"`
	Opcoes         []TransportOption `json:"opcoes"`
	ModoMaisRapido string            `json:"modo_mais_rapido"`
}
