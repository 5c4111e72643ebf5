package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := conn(ctx, s.db).Create(&club).Error
	return club, err
}

func (s *ClubStorage) Get(ctx context.Context, id uint, status entity.Status) (*entity.Club, error) {
	var club entity.Club
	err := conn(ctx, s.db).
		Preload("Area").
		Preload("Sports").
		Where("id = ? AND status = ?", id, status).
		First(&club).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return &club, nil
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := conn(ctx, s.db).Save(&club).Error
	return club, err
}

// GetWithFilters runs the compound listing query: every supplied constraint
// is intersected, day and age filters match by bitmask overlap.
func (s *ClubStorage) GetWithFilters(ctx context.Context, filter dto.ClubFilter) ([]entity.Club, int64, error) {
	var total int64
	err := applyClubFilters(conn(ctx, s.db).Model(&entity.Club{}), filter).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var clubs []entity.Club
	err = applyClubFilters(conn(ctx, s.db), filter).
		Preload("Area").
		Preload("Sports").
		Order(clubOrder(filter)).
		Offset(filter.Page * filter.Size).
		Limit(filter.Size).
		Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func applyClubFilters(q *gorm.DB, filter dto.ClubFilter) *gorm.DB {
	q = q.Where("status = ?", entity.StatusValid)
	if filter.AreaID != nil {
		q = q.Where("area_id = ?", *filter.AreaID)
	}
	if filter.SportsID != nil {
		q = q.Where("sports_id = ?", *filter.SportsID)
	}
	if filter.DayMask != 0 {
		q = q.Where("day_mask & ? <> 0", filter.DayMask)
	}
	if filter.AgeMask != 0 {
		q = q.Where("age_mask & ? <> 0", filter.AgeMask)
	}
	if filter.MemberCount != nil {
		q = q.Where("member_count >= ?", *filter.MemberCount)
	}
	return q
}

// clubOrder whitelists sortable columns; unknown fields fall back to id.
func clubOrder(filter dto.ClubFilter) string {
	column := "id"
	switch filter.SortBy {
	case "title":
		column = "title"
	case "createdAt":
		column = "created_at"
	case "memberCount":
		column = "member_count"
	}
	direction := "DESC"
	if filter.IsAsc {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}
