package models

// Coordinates представляет пару широта/долгота, извлеченную из URL
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceDescriptor содержит метаданные места, извлеченные из URL Google Maps.
// Отсутствующие поля сериализуются как null.
type PlaceDescriptor struct {
	Name        *string      `json:"name"`
	Coordinates *Coordinates `json:"coordinates"`
	PlaceID     *string      `json:"placeId"`
}

// IsEmpty сообщает, что ни одно поле не заполнено
func (p *PlaceDescriptor) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Coordinates == nil && p.PlaceID == nil)
}
