package dto

import "time"

type SubmissionStatus string

const (
	// SubmissionSuccess: reservation and payment both written.
	SubmissionSuccess SubmissionStatus = "SUCCESS"
	// SubmissionReservationFailed: nothing was written, safe to retry wholesale.
	SubmissionReservationFailed SubmissionStatus = "RESERVATION_FAILED"
	// SubmissionPaymentFailed: the reservation exists without a payment record.
	// Must never be merged with total failure; retrying the whole submit would
	// create a duplicate reservation.
	SubmissionPaymentFailed SubmissionStatus = "PAYMENT_FAILED"
)

type SubmissionResult struct {
	Status         SubmissionStatus
	ReservationID  uint
	TotalPrice     float64
	FailureMessage string
}

type SubmitResponse struct {
	TraceID       string    `json:"traceId"`
	Status        string    `json:"status"`
	ReservationID uint      `json:"reservationId,omitempty"`
	TotalPrice    float64   `json:"totalPrice"`
	Message       string    `json:"message,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type RetryPaymentRequest struct {
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
}
