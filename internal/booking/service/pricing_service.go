package service

import (
	"fmt"
	"math"
	"time"

	"conserje/internal/domain"
	"conserje/internal/dto"
)

// PricingService is the pure pricing and constraint validator. It performs no
// I/O; the clock is injectable for tests.
type PricingService struct {
	now func() time.Time
}

func NewPricingService() *PricingService {
	return &PricingService{now: time.Now}
}

func NewPricingServiceWithClock(now func() time.Time) *PricingService {
	return &PricingService{now: now}
}

// ComputeNights returns the whole-day difference between the date-truncated
// pair, rounded up. Zero or negative values are returned unclamped; they
// signal an invalid range downstream.
func (s *PricingService) ComputeNights(checkIn, checkOut time.Time) int {
	in := domain.DateOnly(checkIn)
	out := domain.DateOnly(checkOut)
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// ComputePrice is max(0, nights) × nightly price, 0 when no room type is
// selected.
func (s *PricingService) ComputePrice(roomType *domain.RoomType, nights int) float64 {
	if roomType == nil {
		return 0
	}
	if nights < 0 {
		nights = 0
	}
	return float64(nights) * roomType.PricePerNight
}

// Validate runs the gate rules in their fixed order. The first invalid
// outcome is the one surfaced on submit; the full list feeds the live form
// hints. Occupancy rules are skipped while no room type is selected, since
// they have no ceiling to check against.
func (s *PricingService) Validate(draft domain.ReservationDraft, roomType *domain.RoomType) []dto.ValidationOutcome {
	outcomes := []dto.ValidationOutcome{
		{
			Rule:    dto.RuleMissingPaymentMode,
			Valid:   draft.PaymentMode.Valid(),
			Message: "a payment mode must be selected",
		},
		{
			Rule:    dto.RuleMissingRoomType,
			Valid:   roomType != nil,
			Message: "a room type must be selected",
		},
	}

	if roomType != nil {
		outcomes = append(outcomes, dto.ValidationOutcome{
			Rule:    dto.RuleTooManyAdults,
			Valid:   draft.Adults <= roomType.MaxAdults,
			Max:     roomType.MaxAdults,
			Message: fmt.Sprintf("room type %s allows at most %d adults", roomType.Name, roomType.MaxAdults),
		})

		if !roomType.AllowsChildren() {
			outcomes = append(outcomes, dto.ValidationOutcome{
				Rule:    dto.RuleChildrenNotAllowed,
				Valid:   draft.Children == 0,
				Message: fmt.Sprintf("room type %s does not accept children", roomType.Name),
			})
		} else {
			outcomes = append(outcomes, dto.ValidationOutcome{
				Rule:    dto.RuleTooManyChildren,
				Valid:   draft.Children <= roomType.MaxChildren,
				Max:     roomType.MaxChildren,
				Message: fmt.Sprintf("room type %s allows at most %d children", roomType.Name, roomType.MaxChildren),
			})
		}
	}

	today := domain.DateOnly(s.now())
	outcomes = append(outcomes,
		dto.ValidationOutcome{
			Rule:    dto.RuleCheckInInPast,
			Valid:   !domain.DateOnly(draft.CheckIn).Before(today),
			Message: "check-in date must not be in the past",
		},
		dto.ValidationOutcome{
			Rule:    dto.RuleCheckOutBeforeCheckIn,
			Valid:   domain.DateOnly(draft.CheckOut).After(domain.DateOnly(draft.CheckIn)),
			Message: "check-out date must be after check-in date",
		},
	)

	return outcomes
}

// FirstFailure returns the first invalid outcome in rule order, nil when the
// gate passes.
func FirstFailure(outcomes []dto.ValidationOutcome) *dto.ValidationOutcome {
	for i := range outcomes {
		if !outcomes[i].Valid {
			return &outcomes[i]
		}
	}
	return nil
}

// Hints maps the invalid outcomes to the wire hints shown on the form.
func Hints(outcomes []dto.ValidationOutcome) []dto.ValidationHint {
	hints := []dto.ValidationHint{}
	for _, o := range outcomes {
		if o.Valid {
			continue
		}
		hints = append(hints, dto.ValidationHint{
			Rule:    string(o.Rule),
			Message: o.Message,
			Max:     o.Max,
		})
	}
	return hints
}

// FieldForRule names the draft field a rule constrains, for error details.
func FieldForRule(rule dto.ValidationRule) string {
	switch rule {
	case dto.RuleMissingPaymentMode:
		return "paymentMode"
	case dto.RuleMissingRoomType:
		return "roomTypeId"
	case dto.RuleTooManyAdults:
		return "adults"
	case dto.RuleChildrenNotAllowed, dto.RuleTooManyChildren:
		return "children"
	case dto.RuleCheckInInPast:
		return "checkIn"
	case dto.RuleCheckOutBeforeCheckIn:
		return "checkOut"
	}
	return ""
}
