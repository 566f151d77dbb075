package catalog

import (
	"conserje/internal/catalog/repository"
	"conserje/internal/catalog/service"
	"conserje/internal/infrastructure/hotelapi"

	"go.uber.org/zap"
)

func NewModule(api *hotelapi.Client, logger *zap.Logger) (*service.CatalogService, *Controller) {
	repo := repository.NewHTTPRoomTypeRepository(api)
	svc := service.NewCatalogService(repo, logger)
	ctrl := NewController(svc, logger)
	return svc, ctrl
}
