package usecase

import (
	"context"
	"time"

	"conserje/internal/booking/service"
	"conserje/internal/domain"
	"conserje/internal/dto"
	apperrors "conserje/internal/errors"

	"go.uber.org/zap"
)

type RoomTypeCatalog interface {
	ByID(id int) (*domain.RoomType, bool)
}

type ReservationRepository interface {
	Create(ctx context.Context, draft domain.ReservationDraft) (uint, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.PaymentRecord) error
}

// SubmitReservationUseCase orchestrates the two dependent remote writes:
// create the reservation, then create its payment record using the generated
// identifier. Strictly sequential; the payment's foreign key depends on the
// reservation write completing first.
type SubmitReservationUseCase struct {
	catalog         RoomTypeCatalog
	pricing         *service.PricingService
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	logger          *zap.Logger
	now             func() time.Time
}

func NewSubmitReservationUseCase(
	catalog RoomTypeCatalog,
	pricing *service.PricingService,
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	logger *zap.Logger,
) *SubmitReservationUseCase {
	return &SubmitReservationUseCase{
		catalog:         catalog,
		pricing:         pricing,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		logger:          logger,
		now:             time.Now,
	}
}

func (uc *SubmitReservationUseCase) Submit(ctx context.Context, draft domain.ReservationDraft) (*dto.SubmissionResult, error) {
	// Bloque 1: gate de validación, sin tocar la API remota
	roomType, _ := uc.catalog.ByID(draft.RoomTypeID)

	outcomes := uc.pricing.Validate(draft, roomType)
	if failure := service.FirstFailure(outcomes); failure != nil {
		uc.logger.Warn("submission blocked by validation",
			zap.String("rule", string(failure.Rule)),
			zap.Int("roomTypeId", draft.RoomTypeID))
		return nil, apperrors.NewValidationError(failure.Message, apperrors.ValidationDetail{
			Field:   service.FieldForRule(failure.Rule),
			Message: failure.Message,
		})
	}

	nights := uc.pricing.ComputeNights(draft.CheckIn, draft.CheckOut)
	draft.TotalPrice = uc.pricing.ComputePrice(roomType, nights)

	uc.logger.Info("submission started",
		zap.String("guest", draft.GuestName()),
		zap.Int("roomTypeId", draft.RoomTypeID),
		zap.Int("nights", nights),
		zap.Float64("totalPrice", draft.TotalPrice))

	// Bloque 2: crear la reserva
	reservationID, err := uc.reservationRepo.Create(ctx, draft)
	if err != nil {
		// Nothing was written; the whole submit is safe to retry.
		uc.logger.Error("reservation write failed", zap.Error(err))
		return &dto.SubmissionResult{
			Status:         dto.SubmissionReservationFailed,
			TotalPrice:     draft.TotalPrice,
			FailureMessage: err.Error(),
		}, nil
	}

	// Bloque 3: registrar el pago con el id generado
	payment := domain.PaymentRecord{
		ReservationID: reservationID,
		Amount:        draft.TotalPrice,
		MethodLabel:   draft.PaymentMode.Label(),
		PaidAt:        uc.now(),
		Status:        domain.PaymentStatusUnpaid,
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		// The reservation exists without a payment record. No rollback is
		// issued; the caller must surface this state for manual follow-up,
		// a blind resubmit would duplicate the reservation.
		uc.logger.Error("payment write failed after reservation was created",
			zap.Uint("reservationId", reservationID),
			zap.Error(err))
		return &dto.SubmissionResult{
			Status:         dto.SubmissionPaymentFailed,
			ReservationID:  reservationID,
			TotalPrice:     draft.TotalPrice,
			FailureMessage: err.Error(),
		}, nil
	}

	uc.logger.Info("submission completed",
		zap.Uint("reservationId", reservationID),
		zap.Float64("totalPrice", draft.TotalPrice))

	return &dto.SubmissionResult{
		Status:        dto.SubmissionSuccess,
		ReservationID: reservationID,
		TotalPrice:    draft.TotalPrice,
	}, nil
}

// RetryPayment re-issues only the payment write for an already-created
// reservation, the operator follow-up after a PAYMENT_FAILED outcome. The
// reservation is never re-created here.
func (uc *SubmitReservationUseCase) RetryPayment(ctx context.Context, reservationID uint, amount float64, mode domain.PaymentMode) (*dto.SubmissionResult, error) {
	var details []apperrors.ValidationDetail
	if reservationID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "reservationId",
			Message: "reservationId must be a positive integer",
		})
	}
	if amount < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "amount",
			Message: "amount must be non-negative",
		})
	}
	if !mode.Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "paymentMode",
			Message: "a payment mode must be selected",
		})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	payment := domain.PaymentRecord{
		ReservationID: reservationID,
		Amount:        amount,
		MethodLabel:   mode.Label(),
		PaidAt:        uc.now(),
		Status:        domain.PaymentStatusUnpaid,
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		uc.logger.Error("payment retry failed",
			zap.Uint("reservationId", reservationID),
			zap.Error(err))
		return &dto.SubmissionResult{
			Status:         dto.SubmissionPaymentFailed,
			ReservationID:  reservationID,
			TotalPrice:     amount,
			FailureMessage: err.Error(),
		}, nil
	}

	uc.logger.Info("payment retry completed", zap.Uint("reservationId", reservationID))

	return &dto.SubmissionResult{
		Status:        dto.SubmissionSuccess,
		ReservationID: reservationID,
		TotalPrice:    amount,
	}, nil
}
