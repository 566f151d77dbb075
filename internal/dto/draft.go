package dto

import "time"

// DraftDateLayout is the date-only layout accepted from the presentation layer.
const DraftDateLayout = "2006-01-02"

// DraftChange is a partial draft update; nil fields are left untouched.
type DraftChange struct {
	LastName    *string `json:"lastName"`
	FirstName   *string `json:"firstName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	CheckIn     *string `json:"checkIn"`
	CheckOut    *string `json:"checkOut"`
	Adults      *int    `json:"adults"`
	Children    *int    `json:"children"`
	RoomTypeID  *int    `json:"roomTypeId"`
	PaymentMode *string `json:"paymentMode"`
}

type DraftDTO struct {
	LastName    string  `json:"lastName"`
	FirstName   string  `json:"firstName"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	CheckIn     string  `json:"checkIn,omitempty"`
	CheckOut    string  `json:"checkOut,omitempty"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	RoomTypeID  int     `json:"roomTypeId"`
	PaymentMode string  `json:"paymentMode"`
	TotalPrice  float64 `json:"totalPrice"`
}

// DraftState is the derived snapshot returned after every draft mutation:
// the draft plus nights, total price, and the current validation hints.
type DraftState struct {
	SessionID  string           `json:"sessionId"`
	Operator   string           `json:"operator,omitempty"`
	Draft      DraftDTO         `json:"draft"`
	Nights     int              `json:"nights"`
	TotalPrice float64          `json:"totalPrice"`
	Hints      []ValidationHint `json:"hints"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
