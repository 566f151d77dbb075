package catalog

type RoomTypeDTO struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxAdults     int     `json:"maxAdults"`
	MaxChildren   int     `json:"maxChildren"`
}

type ListRoomTypesResponse struct {
	RoomTypes []RoomTypeDTO `json:"roomTypes"`
}
