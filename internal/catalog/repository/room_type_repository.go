package repository

import (
	"context"
	"fmt"

	"conserje/internal/domain"
	apperrors "conserje/internal/errors"
	"conserje/internal/infrastructure/hotelapi"
)

type roomTypeRecord struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
	MaxAdults     int     `json:"maxAdults"`
	MaxChildren   int     `json:"maxChildren"`
}

type HTTPRoomTypeRepository struct {
	api *hotelapi.Client
}

func NewHTTPRoomTypeRepository(api *hotelapi.Client) *HTTPRoomTypeRepository {
	return &HTTPRoomTypeRepository{api: api}
}

// FindAll fetches the room-type catalog. Any transport failure or malformed
// record is reported as CatalogUnavailableError; no retry is performed here.
func (r *HTTPRoomTypeRepository) FindAll(ctx context.Context) ([]domain.RoomType, error) {
	var records []roomTypeRecord
	if err := r.api.Get(ctx, "/room-types", &records); err != nil {
		return nil, apperrors.NewCatalogUnavailableError("fetching room types", err)
	}

	roomTypes := make([]domain.RoomType, 0, len(records))
	for _, rec := range records {
		if rec.ID <= 0 || rec.Name == "" || rec.PricePerNight < 0 || rec.MaxAdults < 0 || rec.MaxChildren < 0 {
			return nil, apperrors.NewCatalogUnavailableError(
				fmt.Sprintf("malformed room type record (id=%d)", rec.ID), nil)
		}
		roomTypes = append(roomTypes, domain.RoomType{
			ID:            rec.ID,
			Name:          rec.Name,
			PricePerNight: rec.PricePerNight,
			MaxAdults:     rec.MaxAdults,
			MaxChildren:   rec.MaxChildren,
		})
	}

	return roomTypes, nil
}
