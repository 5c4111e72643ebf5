package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type SportsStorage struct {
	db *gorm.DB
}

func NewSportsStorage(db *gorm.DB) *SportsStorage {
	return &SportsStorage{
		db: db,
	}
}

func (s *SportsStorage) Get(ctx context.Context, id uint, status entity.Status) (*entity.Sports, error) {
	var sports entity.Sports
	err := conn(ctx, s.db).Where("id = ? AND status = ?", id, status).First(&sports).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &sports, nil
}

func (s *SportsStorage) GetAll(ctx context.Context, status entity.Status) ([]entity.Sports, error) {
	var sports []entity.Sports
	err := conn(ctx, s.db).Where("status = ?", status).Order("id").Find(&sports).Error
	return sports, err
}
