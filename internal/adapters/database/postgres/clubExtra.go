package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type ClubExtraStorage struct {
	db *gorm.DB
}

func NewClubExtraStorage(db *gorm.DB) *ClubExtraStorage {
	return &ClubExtraStorage{
		db: db,
	}
}

func (s *ClubExtraStorage) Create(ctx context.Context, relation *entity.ClubExtraRelation) (*entity.ClubExtraRelation, error) {
	err := conn(ctx, s.db).Create(&relation).Error
	return relation, err
}

func (s *ClubExtraStorage) GetByClubID(ctx context.Context, clubID uint, status entity.Status) ([]entity.ClubExtraRelation, error) {
	var relations []entity.ClubExtraRelation
	err := conn(ctx, s.db).
		Preload("Extra").
		Where("club_id = ? AND status = ?", clubID, status).
		Find(&relations).Error
	return relations, err
}
