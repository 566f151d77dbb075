package service

import (
	"context"
	"fmt"

	"conserje/internal/domain"
	"conserje/internal/dto"
	apperrors "conserje/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EmailSender interface {
	Send(ctx context.Context, msg dto.EmailMessage) error
}

type RoomTypeCatalog interface {
	ByID(id int) (*domain.RoomType, bool)
}

// PaymentLinkService emails a remote payment link instead of collecting the
// payment in person. It never mutates the draft and never retries on its own.
type PaymentLinkService struct {
	emails   EmailSender
	catalog  RoomTypeCatalog
	template string
	linkBase string
	logger   *zap.Logger
	newToken func() string
}

func NewPaymentLinkService(
	emails EmailSender,
	catalog RoomTypeCatalog,
	template string,
	linkBase string,
	logger *zap.Logger,
) *PaymentLinkService {
	return &PaymentLinkService{
		emails:   emails,
		catalog:  catalog,
		template: template,
		linkBase: linkBase,
		logger:   logger,
		newToken: func() string { return uuid.New().String() },
	}
}

func (s *PaymentLinkService) SendPaymentLink(ctx context.Context, draft domain.ReservationDraft) error {
	if draft.PaymentMode != domain.PaymentModeLink {
		return apperrors.NewValidationError("payment mode is not payment-link", apperrors.ValidationDetail{
			Field:   "paymentMode",
			Message: "payment links can only be sent for the payment-link mode",
		})
	}

	if draft.Email == "" {
		// No network call is made for a missing destination.
		return apperrors.NewDispatchError(apperrors.DispatchMissingEmail, "destination email is required", nil)
	}

	roomTypeName := ""
	if rt, ok := s.catalog.ByID(draft.RoomTypeID); ok {
		roomTypeName = rt.Name
	}

	link := fmt.Sprintf("%s/%s", s.linkBase, s.newToken())

	msg := dto.EmailMessage{
		ToEmail:  draft.Email,
		ToName:   draft.GuestName(),
		Template: s.template,
		Params: map[string]string{
			"guestName":   draft.GuestName(),
			"checkIn":     draft.CheckIn.Format(dto.DraftDateLayout),
			"checkOut":    draft.CheckOut.Format(dto.DraftDateLayout),
			"roomType":    roomTypeName,
			"totalPrice":  fmt.Sprintf("%.2f", draft.TotalPrice),
			"paymentLink": link,
		},
	}

	if err := s.emails.Send(ctx, msg); err != nil {
		s.logger.Error("payment link dispatch failed",
			zap.String("email", draft.Email),
			zap.Error(err))
		return apperrors.NewDispatchError(apperrors.DispatchProviderError, "sending payment link", err)
	}

	s.logger.Info("payment link sent",
		zap.String("email", draft.Email),
		zap.String("roomType", roomTypeName))

	return nil
}
