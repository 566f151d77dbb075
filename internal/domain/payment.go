package domain

import "time"

const PaymentStatusUnpaid = 0

type PaymentRecord struct {
	ReservationID uint
	Amount        float64
	MethodLabel   string
	PaidAt        time.Time
	Status        int
}
