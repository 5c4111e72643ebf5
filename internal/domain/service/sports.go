package service

import (
	"context"

	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type SportsStorage interface {
	Get(ctx context.Context, id uint, status entity.Status) (*entity.Sports, error)
	GetAll(ctx context.Context, status entity.Status) ([]entity.Sports, error)
}

type SportsService struct {
	sportsStorage SportsStorage
}

func NewSportsService(sportsStorage SportsStorage) *SportsService {
	return &SportsService{
		sportsStorage: sportsStorage,
	}
}

func (s *SportsService) Get(ctx context.Context, id uint) (*entity.Sports, error) {
	return s.sportsStorage.Get(ctx, id, entity.StatusValid)
}

func (s *SportsService) GetAll(ctx context.Context) ([]entity.Sports, error) {
	return s.sportsStorage.GetAll(ctx, entity.StatusValid)
}
