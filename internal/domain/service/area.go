package service

import (
	"context"

	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type AreaStorage interface {
	Get(ctx context.Context, id uint, status entity.Status) (*entity.Area, error)
	GetAll(ctx context.Context, status entity.Status) ([]entity.Area, error)
}

type AreaService struct {
	areaStorage AreaStorage
}

func NewAreaService(areaStorage AreaStorage) *AreaService {
	return &AreaService{
		areaStorage: areaStorage,
	}
}

func (s *AreaService) Get(ctx context.Context, id uint) (*entity.Area, error) {
	return s.areaStorage.Get(ctx, id, entity.StatusValid)
}

func (s *AreaService) GetAll(ctx context.Context) ([]entity.Area, error) {
	return s.areaStorage.GetAll(ctx, entity.StatusValid)
}
