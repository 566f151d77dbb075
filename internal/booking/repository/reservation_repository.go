package repository

import (
	"context"
	"fmt"

	"conserje/internal/domain"
	"conserje/internal/infrastructure/hotelapi"
)

type createReservationRequest struct {
	LastName   string  `json:"lastName"`
	FirstName  string  `json:"firstName"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Adults     int     `json:"adults"`
	Children   int     `json:"children"`
	RoomTypeID int     `json:"roomTypeId"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
}

type createReservationResponse struct {
	Reservation struct {
		ID uint `json:"id"`
	} `json:"reservation"`
}

type HTTPReservationRepository struct {
	api *hotelapi.Client
}

func NewHTTPReservationRepository(api *hotelapi.Client) *HTTPReservationRepository {
	return &HTTPReservationRepository{api: api}
}

// Create writes the reservation with status "reserved" and returns the
// identifier the hotel API generated. A response without an identifier is an
// error; the payment write depends on it.
func (r *HTTPReservationRepository) Create(ctx context.Context, draft domain.ReservationDraft) (uint, error) {
	req := createReservationRequest{
		LastName:   draft.LastName,
		FirstName:  draft.FirstName,
		Phone:      draft.Phone,
		Email:      draft.Email,
		CheckIn:    domain.FormatAPIDate(draft.CheckIn),
		CheckOut:   domain.FormatAPIDate(draft.CheckOut),
		Adults:     draft.Adults,
		Children:   draft.Children,
		RoomTypeID: draft.RoomTypeID,
		TotalPrice: draft.TotalPrice,
		Status:     domain.ReservationStatusReserved,
	}

	var resp createReservationResponse
	if err := r.api.Post(ctx, "/reservations", req, &resp); err != nil {
		return 0, err
	}

	if resp.Reservation.ID == 0 {
		return 0, fmt.Errorf("hotel api returned no reservation id")
	}

	return resp.Reservation.ID, nil
}
