package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conserje/internal/domain"
	"conserje/internal/dto"
	apperrors "conserje/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Mock implementations

type mockSessionStore struct {
	OpenFunc        func(operator string) *dto.DraftState
	UpdateFunc      func(id string, change dto.DraftChange) (*dto.DraftState, error)
	DraftFunc       func(id string) (domain.ReservationDraft, error)
	BeginSubmitFunc func(id string) error
	closed          []string
	endCalls        int
}

func (m *mockSessionStore) Open(operator string) *dto.DraftState {
	return m.OpenFunc(operator)
}

func (m *mockSessionStore) Update(id string, change dto.DraftChange) (*dto.DraftState, error) {
	return m.UpdateFunc(id, change)
}

func (m *mockSessionStore) Draft(id string) (domain.ReservationDraft, error) {
	return m.DraftFunc(id)
}

func (m *mockSessionStore) BeginSubmit(id string) error {
	return m.BeginSubmitFunc(id)
}

func (m *mockSessionStore) EndSubmit(id string) {
	m.endCalls++
}

func (m *mockSessionStore) Close(id string) {
	m.closed = append(m.closed, id)
}

type mockSubmitUseCase struct {
	SubmitFunc       func(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error)
	RetryPaymentFunc func(ctx context.Context, reservationID uint, amount float64, mode domain.PaymentMode) (*dto.SubmissionResult, error)
}

func (m *mockSubmitUseCase) Submit(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error) {
	return m.SubmitFunc(ctx, draft)
}

func (m *mockSubmitUseCase) RetryPayment(ctx context.Context, reservationID uint, amount float64, mode domain.PaymentMode) (*dto.SubmissionResult, error) {
	return m.RetryPaymentFunc(ctx, reservationID, amount, mode)
}

type mockDispatcher struct {
	SendPaymentLinkFunc func(ctx context.Context, draft domain.ReservationDraft) error
}

func (m *mockDispatcher) SendPaymentLink(ctx context.Context, draft domain.ReservationDraft) error {
	return m.SendPaymentLinkFunc(ctx, draft)
}

// Helpers

func newTestRouter(sessions SessionStore, uc SubmitUseCase, dispatcher PaymentLinkDispatcher) http.Handler {
	ctrl := NewController(sessions, uc, dispatcher, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/sessions", ctrl.OpenSession)
	r.Patch("/sessions/{sessionId}", ctrl.UpdateDraft)
	r.Post("/sessions/{sessionId}/submit", ctrl.Submit)
	r.Post("/sessions/{sessionId}/payment-link", ctrl.SendPaymentLink)
	r.Post("/reservations/{reservationId}/payments", ctrl.RetryPayment)
	return r
}

func okSessionStore() *mockSessionStore {
	return &mockSessionStore{
		OpenFunc: func(operator string) *dto.DraftState {
			return &dto.DraftState{SessionID: "s-1", Operator: operator, Hints: []dto.ValidationHint{}}
		},
		UpdateFunc: func(id string, change dto.DraftChange) (*dto.DraftState, error) {
			return &dto.DraftState{SessionID: id, Hints: []dto.ValidationHint{}}, nil
		},
		DraftFunc: func(id string) (domain.ReservationDraft, error) {
			return domain.ReservationDraft{RoomTypeID: 1, PaymentMode: domain.PaymentModeCash}, nil
		},
		BeginSubmitFunc: func(id string) error { return nil },
	}
}

// Tests

func TestOpenSession(t *testing.T) {
	router := newTestRouter(okSessionStore(), &mockSubmitUseCase{}, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	req.Header.Set("X-Operator", "marie")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var state dto.DraftState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if state.Operator != "marie" {
		t.Errorf("expected operator marie, got %s", state.Operator)
	}
}

func TestUpdateDraft_UnknownSession(t *testing.T) {
	sessions := okSessionStore()
	sessions.UpdateFunc = func(id string, change dto.DraftChange) (*dto.DraftState, error) {
		return nil, apperrors.NewNotFoundError("session not found")
	}
	router := newTestRouter(sessions, &mockSubmitUseCase{}, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPatch, "/sessions/missing", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSubmit_Success_ClosesSession(t *testing.T) {
	sessions := okSessionStore()
	uc := &mockSubmitUseCase{
		SubmitFunc: func(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error) {
			return &dto.SubmissionResult{Status: dto.SubmissionSuccess, ReservationID: 42, TotalPrice: 300}, nil
		},
	}
	router := newTestRouter(sessions, uc, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/submit", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "SUCCESS" || resp.ReservationID != 42 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.TraceID == "" {
		t.Errorf("expected a traceId")
	}

	if len(sessions.closed) != 1 {
		t.Errorf("expected the session to be closed after success")
	}
}

func TestSubmit_PaymentFailed_DistinctOutcome(t *testing.T) {
	sessions := okSessionStore()
	uc := &mockSubmitUseCase{
		SubmitFunc: func(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error) {
			return &dto.SubmissionResult{
				Status:         dto.SubmissionPaymentFailed,
				ReservationID:  42,
				FailureMessage: "payment endpoint down",
			}, nil
		},
	}
	router := newTestRouter(sessions, uc, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/submit", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var resp dto.SubmitResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "PAYMENT_FAILED" {
		t.Errorf("expected PAYMENT_FAILED, got %s", resp.Status)
	}
	if resp.ReservationID != 42 {
		t.Errorf("expected the orphaned reservation id, got %d", resp.ReservationID)
	}

	// The session survives for the operator follow-up.
	if len(sessions.closed) != 0 {
		t.Errorf("expected the session to stay open after a payment failure")
	}
}

func TestSubmit_ValidationFailure(t *testing.T) {
	sessions := okSessionStore()
	uc := &mockSubmitUseCase{
		SubmitFunc: func(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error) {
			return nil, apperrors.NewValidationError("room type Double allows at most 2 adults", apperrors.ValidationDetail{
				Field:   "adults",
				Message: "room type Double allows at most 2 adults",
			})
		},
	}
	router := newTestRouter(sessions, uc, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/submit", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if sessions.endCalls != 1 {
		t.Errorf("expected the in-flight flag to be released")
	}
}

func TestSubmit_ConcurrentSubmitRejected(t *testing.T) {
	sessions := okSessionStore()
	sessions.BeginSubmitFunc = func(id string) error {
		return apperrors.NewConflictError("a submission is already in flight for this session")
	}
	router := newTestRouter(sessions, &mockSubmitUseCase{}, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/submit", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestSendPaymentLink_MissingEmail(t *testing.T) {
	sessions := okSessionStore()
	dispatcher := &mockDispatcher{
		SendPaymentLinkFunc: func(ctx context.Context, draft domain.ReservationDraft) error {
			return apperrors.NewDispatchError(apperrors.DispatchMissingEmail, "destination email is required", nil)
		},
	}
	router := newTestRouter(sessions, &mockSubmitUseCase{}, dispatcher)

	req := httptest.NewRequest(http.MethodPost, "/sessions/s-1/payment-link", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "MISSING_EMAIL") {
		t.Errorf("expected MISSING_EMAIL in body, got %s", rec.Body.String())
	}
}

func TestRetryPayment_InvalidID(t *testing.T) {
	router := newTestRouter(okSessionStore(), &mockSubmitUseCase{}, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/reservations/abc/payments", strings.NewReader(`{"amount":300,"paymentMode":"cash"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRetryPayment_Success(t *testing.T) {
	uc := &mockSubmitUseCase{
		RetryPaymentFunc: func(ctx context.Context, reservationID uint, amount float64, mode domain.PaymentMode) (*dto.SubmissionResult, error) {
			if reservationID != 42 || amount != 300 || mode != domain.PaymentModeCash {
				t.Errorf("unexpected args: %d %v %s", reservationID, amount, mode)
			}
			return &dto.SubmissionResult{Status: dto.SubmissionSuccess, ReservationID: reservationID, TotalPrice: amount}, nil
		},
	}
	router := newTestRouter(okSessionStore(), uc, &mockDispatcher{})

	req := httptest.NewRequest(http.MethodPost, "/reservations/42/payments", strings.NewReader(`{"amount":300,"paymentMode":"cash"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
