package places

// PlaceItem é um resultado simplificado para o planejador: nome, linha
// de detalhes já montada e link para o local.
type PlaceItem struct {
	Nome     string `json:"nome"`
	Detalhes string `json:"detalhes"`
	URL      string `json:"url,omitempty"`
}

type PlacesResponse struct {
	Items []PlaceItem `json:"items"`
}
