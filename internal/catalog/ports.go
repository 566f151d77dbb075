package catalog

import (
	"context"

	"conserje/internal/domain"
)

type Service interface {
	Load(ctx context.Context) error
	Loaded() bool
	RoomTypes() []domain.RoomType
	ByID(id int) (*domain.RoomType, bool)
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.RoomType, error)
}
