package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"conserje/internal/domain"
	"conserje/internal/dto"
	apperrors "conserje/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubmitUseCase interface {
	Submit(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error)
	RetryPayment(ctx context.Context, reservationID uint, amount float64, mode domain.PaymentMode) (*dto.SubmissionResult, error)
}

type PaymentLinkDispatcher interface {
	SendPaymentLink(ctx context.Context, draft domain.ReservationDraft) error
}

type SessionStore interface {
	Open(operator string) *dto.DraftState
	Update(id string, change dto.DraftChange) (*dto.DraftState, error)
	Draft(id string) (domain.ReservationDraft, error)
	BeginSubmit(id string) error
	EndSubmit(id string)
	Close(id string)
}

type Controller struct {
	sessions   SessionStore
	useCase    SubmitUseCase
	dispatcher PaymentLinkDispatcher
	logger     *zap.Logger
}

func NewController(sessions SessionStore, useCase SubmitUseCase, dispatcher PaymentLinkDispatcher, logger *zap.Logger) *Controller {
	return &Controller{
		sessions:   sessions,
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *Controller) OpenSession(w http.ResponseWriter, r *http.Request) {
	operator := r.Header.Get("X-Operator")
	state := c.sessions.Open(operator)
	c.writeJSON(w, http.StatusCreated, state)
}

func (c *Controller) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var change dto.DraftChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	state, err := c.sessions.Update(sessionID, change)
	if err != nil {
		c.handleSessionError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, state)
}

func (c *Controller) Submit(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	sessionID := chi.URLParam(r, "sessionId")

	if err := c.sessions.BeginSubmit(sessionID); err != nil {
		if ce, ok := apperrors.IsConflictError(err); ok {
			c.writeError(w, traceID, http.StatusConflict, "CONFLICT", ce.Message)
			return
		}
		c.handleSessionError(w, err)
		return
	}
	defer c.sessions.EndSubmit(sessionID)

	draft, err := c.sessions.Draft(sessionID)
	if err != nil {
		c.handleSessionError(w, err)
		return
	}

	result, err := c.useCase.Submit(r.Context(), draft)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		logger.Error("unexpected submit error", zap.Error(err))
		c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	if result.Status == dto.SubmissionSuccess {
		c.sessions.Close(sessionID)
	}

	c.writeSubmissionResult(w, traceID, result)
}

func (c *Controller) SendPaymentLink(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	sessionID := chi.URLParam(r, "sessionId")

	draft, err := c.sessions.Draft(sessionID)
	if err != nil {
		c.handleSessionError(w, err)
		return
	}

	if err := c.dispatcher.SendPaymentLink(r.Context(), draft); err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		if de, ok := apperrors.IsDispatchError(err); ok {
			if de.Code == apperrors.DispatchMissingEmail {
				c.writeError(w, traceID, http.StatusBadRequest, de.Code, de.Message)
				return
			}
			c.writeError(w, traceID, http.StatusBadGateway, de.Code, de.Message)
			return
		}
		c.logger.Error("unexpected dispatch error", zap.Error(err))
		c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"traceId":   traceID,
		"status":    "SENT",
		"timestamp": time.Now().UTC(),
	})
}

func (c *Controller) RetryPayment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	reservationIDStr := chi.URLParam(r, "reservationId")
	reservationID, err := strconv.ParseUint(reservationIDStr, 10, 64)
	if err != nil {
		c.writeValidationError(w, "invalid reservationId", apperrors.ValidationDetail{
			Field:   "reservationId",
			Message: "reservationId must be a positive integer",
		})
		return
	}

	var req dto.RetryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.useCase.RetryPayment(r.Context(), uint(reservationID), req.Amount, domain.PaymentMode(req.PaymentMode))
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		c.logger.Error("unexpected payment retry error", zap.Error(err))
		c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	c.writeSubmissionResult(w, traceID, result)
}

func (c *Controller) handleSessionError(w http.ResponseWriter, err error) {
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nf.Message,
		})
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	c.logger.Error("unexpected session error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *Controller) writeSubmissionResult(w http.ResponseWriter, traceID string, result *dto.SubmissionResult) {
	response := dto.SubmitResponse{
		TraceID:       traceID,
		Status:        string(result.Status),
		ReservationID: result.ReservationID,
		TotalPrice:    result.TotalPrice,
		Timestamp:     time.Now().UTC(),
	}

	statusCode := http.StatusCreated
	switch result.Status {
	case dto.SubmissionReservationFailed:
		statusCode = http.StatusBadGateway
		response.Message = "the reservation could not be created; nothing was written, the submission may be retried"
	case dto.SubmissionPaymentFailed:
		statusCode = http.StatusBadGateway
		response.Message = "the reservation was created but its payment record was not; follow up manually, do not resubmit"
	}

	c.writeJSON(w, statusCode, response)
}

func (c *Controller) writeError(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, map[string]interface{}{
		"traceId":   traceID,
		"error":     code,
		"message":   message,
		"timestamp": time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
