package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type AccountStorage struct {
	db *gorm.DB
}

func NewAccountStorage(db *gorm.DB) *AccountStorage {
	return &AccountStorage{
		db: db,
	}
}

func (s *AccountStorage) Create(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	err := conn(ctx, s.db).Create(&account).Error
	return account, err
}

func (s *AccountStorage) GetByEmail(ctx context.Context, email string, status entity.Status) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, s.db).Where("email = ? AND status = ?", email, status).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *AccountStorage) GetByOAuthID(ctx context.Context, oauthID string, status entity.Status) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, s.db).Where("o_auth_id = ? AND status = ?", oauthID, status).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *AccountStorage) GetByNickname(ctx context.Context, nickname string, status entity.Status) (*entity.Account, error) {
	var account entity.Account
	err := conn(ctx, s.db).Where("nickname = ? AND status = ?", nickname, status).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &account, nil
}

func (s *AccountStorage) Update(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	err := conn(ctx, s.db).Save(&account).Error
	return account, err
}
