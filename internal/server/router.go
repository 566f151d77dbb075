package server

import (
	"net/http"
	"time"

	bookingcontroller "conserje/internal/booking/controller"
	"conserje/internal/catalog"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(catalogCtrl *catalog.Controller, bookingCtrl *bookingcontroller.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/room-types", catalogCtrl.HandleListRoomTypes)

		r.Post("/sessions", bookingCtrl.OpenSession)
		r.Patch("/sessions/{sessionId}", bookingCtrl.UpdateDraft)
		r.Post("/sessions/{sessionId}/submit", bookingCtrl.Submit)
		r.Post("/sessions/{sessionId}/payment-link", bookingCtrl.SendPaymentLink)

		r.Post("/reservations/{reservationId}/payments", bookingCtrl.RetryPayment)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
