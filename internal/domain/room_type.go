package domain

type RoomType struct {
	ID            int
	Name          string
	PricePerNight float64
	MaxAdults     int
	MaxChildren   int
}

// AllowsChildren reports whether the room type accepts any child occupancy.
func (rt RoomType) AllowsChildren() bool {
	return rt.MaxChildren > 0
}
