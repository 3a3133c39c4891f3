package geocoding

// GeocodeResponse é o primeiro candidato da busca de endereço.
type GeocodeResponse struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}
