package domain

import "time"

type PaymentMode string

const (
	PaymentModeCard PaymentMode = "card"
	PaymentModeCash PaymentMode = "cash"
	PaymentModeCheck PaymentMode = "check"
	PaymentModeLink PaymentMode = "payment-link"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCard, PaymentModeCash, PaymentModeCheck, PaymentModeLink:
		return true
	}
	return false
}

// Label returns the settlement label the hotel API stores on payment records.
func (m PaymentMode) Label() string {
	switch m {
	case PaymentModeCard:
		return "Carte Bancaire"
	case PaymentModeCash:
		return "Espèces"
	case PaymentModeCheck:
		return "Chèque"
	case PaymentModeLink:
		return "Lien de Paiement"
	}
	return ""
}

const ReservationStatusReserved = "reserved"

// APIDateLayout is the wire layout for reservation dates; the time component
// is always midnight.
const APIDateLayout = "2006-01-02T15:04:05"

type ReservationDraft struct {
	LastName    string
	FirstName   string
	Phone       string
	Email       string
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	RoomTypeID  int
	PaymentMode PaymentMode
	TotalPrice  float64
}

func (d ReservationDraft) GuestName() string {
	if d.FirstName == "" {
		return d.LastName
	}
	return d.FirstName + " " + d.LastName
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatAPIDate renders t as the hotel API expects, time fixed to midnight.
func FormatAPIDate(t time.Time) string {
	return DateOnly(t).Format(APIDateLayout)
}
