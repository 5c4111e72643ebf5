package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type AccountSportsStorage struct {
	db *gorm.DB
}

func NewAccountSportsStorage(db *gorm.DB) *AccountSportsStorage {
	return &AccountSportsStorage{
		db: db,
	}
}

func (s *AccountSportsStorage) Create(ctx context.Context, relation *entity.AccountSportsRelation) (*entity.AccountSportsRelation, error) {
	err := conn(ctx, s.db).Create(&relation).Error
	return relation, err
}

func (s *AccountSportsStorage) GetByAccountID(ctx context.Context, accountID uint, status entity.Status) ([]entity.AccountSportsRelation, error) {
	var relations []entity.AccountSportsRelation
	err := conn(ctx, s.db).
		Preload("Sports").
		Where("account_id = ? AND status = ?", accountID, status).
		Find(&relations).Error
	return relations, err
}
