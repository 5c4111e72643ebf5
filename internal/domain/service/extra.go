package service

import (
	"context"

	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type ExtraStorage interface {
	Get(ctx context.Context, id uint, status entity.Status) (*entity.Extra, error)
	GetAll(ctx context.Context, status entity.Status) ([]entity.Extra, error)
}

type ExtraService struct {
	extraStorage ExtraStorage
}

func NewExtraService(extraStorage ExtraStorage) *ExtraService {
	return &ExtraService{
		extraStorage: extraStorage,
	}
}

func (s *ExtraService) Get(ctx context.Context, id uint) (*entity.Extra, error) {
	return s.extraStorage.Get(ctx, id, entity.StatusValid)
}

func (s *ExtraService) GetAll(ctx context.Context) ([]entity.Extra, error) {
	return s.extraStorage.GetAll(ctx, entity.StatusValid)
}
