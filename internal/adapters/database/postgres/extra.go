package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type ExtraStorage struct {
	db *gorm.DB
}

func NewExtraStorage(db *gorm.DB) *ExtraStorage {
	return &ExtraStorage{
		db: db,
	}
}

func (s *ExtraStorage) Get(ctx context.Context, id uint, status entity.Status) (*entity.Extra, error) {
	var extra entity.Extra
	err := conn(ctx, s.db).Where("id = ? AND status = ?", id, status).First(&extra).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &extra, nil
}

func (s *ExtraStorage) GetAll(ctx context.Context, status entity.Status) ([]entity.Extra, error) {
	var extras []entity.Extra
	err := conn(ctx, s.db).Where("status = ?", status).Order("id").Find(&extras).Error
	return extras, err
}
