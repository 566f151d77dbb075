package session

import (
	"sync"
	"time"

	"conserje/internal/booking/service"
	"conserje/internal/domain"
	"conserje/internal/dto"
	apperrors "conserje/internal/errors"

	"github.com/google/uuid"
)

type RoomTypeCatalog interface {
	ByID(id int) (*domain.RoomType, bool)
}

type entry struct {
	draft     domain.ReservationDraft
	operator  string
	busy      bool
	updatedAt time.Time
}

// Store keeps the active reservation drafts, one per workflow session. Every
// mutation goes through Update, which applies the partial change and then
// recomputes nights, total price and validation hints from the draft alone;
// there is no scattered recomputation anywhere else. Sessions are ephemeral
// and expire after the configured TTL.
type Store struct {
	catalog RoomTypeCatalog
	pricing *service.PricingService
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewStore(catalog RoomTypeCatalog, pricing *service.PricingService, ttl time.Duration) *Store {
	return &Store{
		catalog:  catalog,
		pricing:  pricing,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Open starts a fresh draft session. The operator identity is captured once
// here and travels with the session instead of living in ambient state.
func (s *Store) Open(operator string) *dto.DraftState {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked()

	e := &entry{
		draft:     domain.ReservationDraft{Adults: 1},
		operator:  operator,
		updatedAt: s.now(),
	}
	s.sessions[id] = e

	return s.stateLocked(id, e)
}

// Update applies a partial draft change, then recomputes the derived state.
func (s *Store) Update(id string, change dto.DraftChange) (*dto.DraftState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookupLocked(id)
	if err != nil {
		return nil, err
	}

	if err := applyChange(&e.draft, change); err != nil {
		return nil, err
	}
	e.updatedAt = s.now()

	return s.stateLocked(id, e), nil
}

// Draft returns a copy of the session's current draft, with the total price
// freshly derived.
func (s *Store) Draft(id string) (domain.ReservationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookupLocked(id)
	if err != nil {
		return domain.ReservationDraft{}, err
	}

	draft := e.draft
	roomType, _ := s.catalog.ByID(draft.RoomTypeID)
	draft.TotalPrice = s.pricing.ComputePrice(roomType, s.pricing.ComputeNights(draft.CheckIn, draft.CheckOut))
	return draft, nil
}

// BeginSubmit marks the session busy for the duration of a submit. A second
// submit on the same session is rejected while one is in flight.
func (s *Store) BeginSubmit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookupLocked(id)
	if err != nil {
		return err
	}

	if e.busy {
		return apperrors.NewConflictError("a submission is already in flight for this session")
	}

	e.busy = true
	return nil
}

func (s *Store) EndSubmit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[id]; ok {
		e.busy = false
	}
}

// Close discards the session, successful submission or navigation away.
func (s *Store) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) lookupLocked(id string) (*entry, error) {
	s.purgeExpiredLocked()

	e, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	return e, nil
}

func (s *Store) purgeExpiredLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.sessions {
		if !e.busy && e.updatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) stateLocked(id string, e *entry) *dto.DraftState {
	roomType, _ := s.catalog.ByID(e.draft.RoomTypeID)

	nights := s.pricing.ComputeNights(e.draft.CheckIn, e.draft.CheckOut)
	total := s.pricing.ComputePrice(roomType, nights)
	e.draft.TotalPrice = total

	hints := service.Hints(s.pricing.Validate(e.draft, roomType))

	return &dto.DraftState{
		SessionID:  id,
		Operator:   e.operator,
		Draft:      draftDTO(e.draft),
		Nights:     nights,
		TotalPrice: total,
		Hints:      hints,
		UpdatedAt:  e.updatedAt,
	}
}

func applyChange(draft *domain.ReservationDraft, change dto.DraftChange) error {
	if change.LastName != nil {
		draft.LastName = *change.LastName
	}
	if change.FirstName != nil {
		draft.FirstName = *change.FirstName
	}
	if change.Phone != nil {
		draft.Phone = *change.Phone
	}
	if change.Email != nil {
		draft.Email = *change.Email
	}
	if change.CheckIn != nil {
		t, err := time.Parse(dto.DraftDateLayout, *change.CheckIn)
		if err != nil {
			return apperrors.NewValidationError("invalid checkIn date", apperrors.ValidationDetail{
				Field:   "checkIn",
				Message: "checkIn must be a date formatted YYYY-MM-DD",
			})
		}
		draft.CheckIn = t
	}
	if change.CheckOut != nil {
		t, err := time.Parse(dto.DraftDateLayout, *change.CheckOut)
		if err != nil {
			return apperrors.NewValidationError("invalid checkOut date", apperrors.ValidationDetail{
				Field:   "checkOut",
				Message: "checkOut must be a date formatted YYYY-MM-DD",
			})
		}
		draft.CheckOut = t
	}
	if change.Adults != nil {
		if *change.Adults < 0 {
			return apperrors.NewValidationError("invalid adults count", apperrors.ValidationDetail{
				Field:   "adults",
				Message: "adults must be non-negative",
			})
		}
		draft.Adults = *change.Adults
	}
	if change.Children != nil {
		if *change.Children < 0 {
			return apperrors.NewValidationError("invalid children count", apperrors.ValidationDetail{
				Field:   "children",
				Message: "children must be non-negative",
			})
		}
		draft.Children = *change.Children
	}
	if change.RoomTypeID != nil {
		draft.RoomTypeID = *change.RoomTypeID
	}
	if change.PaymentMode != nil {
		draft.PaymentMode = domain.PaymentMode(*change.PaymentMode)
	}
	return nil
}

func draftDTO(draft domain.ReservationDraft) dto.DraftDTO {
	d := dto.DraftDTO{
		LastName:    draft.LastName,
		FirstName:   draft.FirstName,
		Phone:       draft.Phone,
		Email:       draft.Email,
		Adults:      draft.Adults,
		Children:    draft.Children,
		RoomTypeID:  draft.RoomTypeID,
		PaymentMode: string(draft.PaymentMode),
		TotalPrice:  draft.TotalPrice,
	}
	if !draft.CheckIn.IsZero() {
		d.CheckIn = draft.CheckIn.Format(dto.DraftDateLayout)
	}
	if !draft.CheckOut.IsZero() {
		d.CheckOut = draft.CheckOut.Format(dto.DraftDateLayout)
	}
	return d
}
