package service

import (
	"context"
	"sync"

	"conserje/internal/domain"
	"go.uber.org/zap"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.RoomType, error)
}

// CatalogService holds the one-shot in-memory room-type catalog. It is
// fetched once at workflow start and consulted synchronously by the pricing
// logic; while it is not loaded, submission stays blocked (every ByID lookup
// misses) but the caller may re-invoke Load.
type CatalogService struct {
	repo   Repository
	logger *zap.Logger

	mu     sync.RWMutex
	byID   map[int]domain.RoomType
	list   []domain.RoomType
	loaded bool
}

func NewCatalogService(repo Repository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
		byID:   make(map[int]domain.RoomType),
	}
}

func (s *CatalogService) Load(ctx context.Context) error {
	roomTypes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Warn("room-type catalog unavailable", zap.Error(err))
		return err
	}

	byID := make(map[int]domain.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		byID[rt.ID] = rt
	}

	s.mu.Lock()
	s.byID = byID
	s.list = roomTypes
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("room-type catalog loaded", zap.Int("count", len(roomTypes)))
	return nil
}

func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *CatalogService) RoomTypes() []domain.RoomType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RoomType, len(s.list))
	copy(out, s.list)
	return out
}

func (s *CatalogService) ByID(id int) (*domain.RoomType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rt, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &rt, true
}
