package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type AccountClubStorage struct {
	db *gorm.DB
}

func NewAccountClubStorage(db *gorm.DB) *AccountClubStorage {
	return &AccountClubStorage{
		db: db,
	}
}

func (s *AccountClubStorage) Get(ctx context.Context, accountID, clubID uint, status entity.Status) (*entity.AccountClubRelation, error) {
	var relation entity.AccountClubRelation
	err := conn(ctx, s.db).
		Where("account_id = ? AND club_id = ? AND status = ?", accountID, clubID, status).
		First(&relation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &relation, nil
}

func (s *AccountClubStorage) Create(ctx context.Context, relation *entity.AccountClubRelation) (*entity.AccountClubRelation, error) {
	err := conn(ctx, s.db).Create(&relation).Error
	return relation, err
}

func (s *AccountClubStorage) Update(ctx context.Context, relation *entity.AccountClubRelation) (*entity.AccountClubRelation, error) {
	err := conn(ctx, s.db).Save(&relation).Error
	return relation, err
}
