package booking

import (
	"conserje/internal/booking/controller"
	"conserje/internal/booking/repository"
	"conserje/internal/booking/service"
	"conserje/internal/booking/session"
	"conserje/internal/booking/usecase"
	catalogservice "conserje/internal/catalog/service"
	"conserje/internal/config"
	"conserje/internal/infrastructure/hotelapi"
	notificationrepo "conserje/internal/notification/repository"
	notificationservice "conserje/internal/notification/service"

	"go.uber.org/zap"
)

func NewModule(api *hotelapi.Client, catalog *catalogservice.CatalogService, cfg *config.Config, logger *zap.Logger) *controller.Controller {
	pricing := service.NewPricingService()

	reservationRepo := repository.NewHTTPReservationRepository(api)
	paymentRepo := repository.NewHTTPPaymentRepository(api)

	submitUC := usecase.NewSubmitReservationUseCase(
		catalog,
		pricing,
		reservationRepo,
		paymentRepo,
		logger,
	)

	sessions := session.NewStore(catalog, pricing, cfg.Booking.SessionTTL)

	emailRepo := notificationrepo.NewHTTPEmailRepository(cfg.Mailer)
	dispatcher := notificationservice.NewPaymentLinkService(
		emailRepo,
		catalog,
		cfg.Mailer.Template,
		cfg.Mailer.PaymentLinkBase,
		logger,
	)

	return controller.NewController(sessions, submitUC, dispatcher, logger)
}
