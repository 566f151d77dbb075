package catalog

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleListRoomTypes(w http.ResponseWriter, r *http.Request) {
	if !c.service.Loaded() {
		// One re-fetch on demand; the cache itself never retries.
		if err := c.service.Load(r.Context()); err != nil {
			c.logger.Warn("room-type catalog still unavailable", zap.Error(err))
			c.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error":   "CATALOG_UNAVAILABLE",
				"message": "room-type catalog could not be fetched",
			})
			return
		}
	}

	roomTypes := c.service.RoomTypes()
	dtos := make([]RoomTypeDTO, 0, len(roomTypes))
	for _, rt := range roomTypes {
		dtos = append(dtos, RoomTypeDTO{
			ID:            rt.ID,
			Name:          rt.Name,
			PricePerNight: rt.PricePerNight,
			MaxAdults:     rt.MaxAdults,
			MaxChildren:   rt.MaxChildren,
		})
	}

	c.writeJSON(w, http.StatusOK, ListRoomTypesResponse{RoomTypes: dtos})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
