package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type AreaStorage struct {
	db *gorm.DB
}

func NewAreaStorage(db *gorm.DB) *AreaStorage {
	return &AreaStorage{
		db: db,
	}
}

func (s *AreaStorage) Get(ctx context.Context, id uint, status entity.Status) (*entity.Area, error) {
	var area entity.Area
	err := conn(ctx, s.db).Where("id = ? AND status = ?", id, status).First(&area).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &area, nil
}

func (s *AreaStorage) GetAll(ctx context.Context, status entity.Status) ([]entity.Area, error) {
	var areas []entity.Area
	err := conn(ctx, s.db).Where("status = ?", status).Order("id").Find(&areas).Error
	return areas, err
}
