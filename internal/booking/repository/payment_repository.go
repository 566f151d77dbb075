package repository

import (
	"context"
	"time"

	"conserje/internal/domain"
	"conserje/internal/infrastructure/hotelapi"
)

type createPaymentRequest struct {
	ReservationID uint    `json:"reservationId"`
	Amount        float64 `json:"amount"`
	MethodLabel   string  `json:"methodLabel"`
	PaidAt        string  `json:"paidAt"`
	Status        int     `json:"status"`
}

type HTTPPaymentRepository struct {
	api *hotelapi.Client
}

func NewHTTPPaymentRepository(api *hotelapi.Client) *HTTPPaymentRepository {
	return &HTTPPaymentRepository{api: api}
}

func (r *HTTPPaymentRepository) Create(ctx context.Context, payment domain.PaymentRecord) error {
	req := createPaymentRequest{
		ReservationID: payment.ReservationID,
		Amount:        payment.Amount,
		MethodLabel:   payment.MethodLabel,
		PaidAt:        payment.PaidAt.UTC().Format(time.RFC3339),
		Status:        payment.Status,
	}

	return r.api.Post(ctx, "/payments", req, nil)
}
