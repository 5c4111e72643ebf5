package service

import (
	"context"
	"errors"
	"io"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id uint, status entity.Status) (*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	GetWithFilters(ctx context.Context, filter dto.ClubFilter) ([]entity.Club, int64, error)
}

type ClubExtraStorage interface {
	Create(ctx context.Context, relation *entity.ClubExtraRelation) (*entity.ClubExtraRelation, error)
	GetByClubID(ctx context.Context, clubID uint, status entity.Status) ([]entity.ClubExtraRelation, error)
}

type AccountClubStorage interface {
	Get(ctx context.Context, accountID, clubID uint, status entity.Status) (*entity.AccountClubRelation, error)
	Create(ctx context.Context, relation *entity.AccountClubRelation) (*entity.AccountClubRelation, error)
	Update(ctx context.Context, relation *entity.AccountClubRelation) (*entity.AccountClubRelation, error)
}

// Uploader stores a blob and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string, dir string) (string, error)
}

type ClubService struct {
	clubStorage        ClubStorage
	accountStorage     AccountStorage
	areaStorage        AreaStorage
	sportsStorage      SportsStorage
	extraStorage       ExtraStorage
	clubExtraStorage   ClubExtraStorage
	accountClubStorage AccountClubStorage
	uploader           Uploader
	tx                 TxManager
}

func NewClubService(
	clubStorage ClubStorage,
	accountStorage AccountStorage,
	areaStorage AreaStorage,
	sportsStorage SportsStorage,
	extraStorage ExtraStorage,
	clubExtraStorage ClubExtraStorage,
	accountClubStorage AccountClubStorage,
	uploader Uploader,
	tx TxManager,
) *ClubService {
	return &ClubService{
		clubStorage:        clubStorage,
		accountStorage:     accountStorage,
		areaStorage:        areaStorage,
		sportsStorage:      sportsStorage,
		extraStorage:       extraStorage,
		clubExtraStorage:   clubExtraStorage,
		accountClubStorage: accountClubStorage,
		uploader:           uploader,
		tx:                 tx,
	}
}

// List returns one page of clubs matching the supplied filters, each row
// annotated with the viewer's pin flag. An optional area/sports filter whose
// id has no VALID row is silently dropped, not an error.
func (s *ClubService) List(ctx context.Context, claims dto.Claims, req dto.ListClubsReq) (*dto.ClubListPage, error) {
	viewer, err := s.accountStorage.GetByOAuthID(ctx, claims.OAuthID, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return nil, errorz.AccountNotValid
		}
		return nil, err
	}

	filter := dto.ClubFilter{
		DayMask:     entity.DayMask(req.Days),
		AgeMask:     entity.AgeMask(req.AgeList),
		MemberCount: req.MemberCount,
		SortBy:      req.SortBy,
		IsAsc:       req.IsAsc,
		Page:        req.Page,
		Size:        req.Size,
	}
	if req.AreaID != nil {
		area, err := s.areaStorage.Get(ctx, *req.AreaID, entity.StatusValid)
		switch {
		case err == nil:
			filter.AreaID = &area.ID
		case !errors.Is(err, errorz.NotFound):
			return nil, err
		}
	}
	if req.SportsID != nil {
		sports, err := s.sportsStorage.Get(ctx, *req.SportsID, entity.StatusValid)
		switch {
		case err == nil:
			filter.SportsID = &sports.ID
		case !errors.Is(err, errorz.NotFound):
			return nil, err
		}
	}

	clubs, total, err := s.clubStorage.GetWithFilters(ctx, filter)
	if err != nil {
		return nil, err
	}

	content := make([]dto.ClubListRes, 0, len(clubs))
	for i := range clubs {
		res := dto.NewClubListRes(&clubs[i])
		relation, err := s.accountClubStorage.Get(ctx, viewer.ID, clubs[i].ID, entity.StatusValid)
		switch {
		case err == nil:
			res.IsPinUp = relation.IsPinUp
		case errors.Is(err, errorz.NotFound):
			res.IsPinUp = false
		default:
			return nil, err
		}
		content = append(content, res)
	}

	page := &dto.ClubListPage{
		Content:    content,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}
	if req.Size > 0 {
		page.TotalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return page, nil
}

// Create persists a club owned by the caller plus one ClubExtraRelation per
// requested extra tag. The first unresolvable tag aborts the call.
func (s *ClubService) Create(ctx context.Context, claims dto.Claims, req dto.CreateClubReq) (uint, error) {
	var clubID uint
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accountStorage.GetByOAuthID(ctx, claims.OAuthID, entity.StatusValid)
		if err != nil {
			if errors.Is(err, errorz.NotFound) {
				return errorz.AccountNotFound
			}
			return err
		}
		sports, err := s.sportsStorage.Get(ctx, req.SportsID, entity.StatusValid)
		if err != nil {
			if errors.Is(err, errorz.NotFound) {
				return errorz.SportsNotFound
			}
			return err
		}
		area, err := s.areaStorage.Get(ctx, req.AreaID, entity.StatusValid)
		if err != nil {
			if errors.Is(err, errorz.NotFound) {
				return errorz.AreaNotFound
			}
			return err
		}

		club := &entity.Club{
			Title:        req.Title,
			DayMask:      entity.DayMask(req.Days),
			AgeMask:      entity.AgeMask(req.AgeList),
			MemberCount:  req.MemberCount,
			Introduction: req.Introduction,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			AccountID:    account.ID,
			SportsID:     sports.ID,
			AreaID:       area.ID,
			Status:       entity.StatusValid,
		}
		club, err = s.clubStorage.Create(ctx, club)
		if err != nil {
			return err
		}
		clubID = club.ID

		for _, extraID := range req.ExtraInfoList {
			extra, err := s.extraStorage.Get(ctx, extraID, entity.StatusValid)
			if err != nil {
				if errors.Is(err, errorz.NotFound) {
					return errorz.ExtraNotFound
				}
				return err
			}
			relation := &entity.ClubExtraRelation{
				ClubID:  club.ID,
				ExtraID: extra.ID,
				Status:  entity.StatusValid,
			}
			if _, err = s.clubExtraStorage.Create(ctx, relation); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return clubID, nil
}

// AttachImage stores the blob and sets the club's image URL. The club is
// resolved before anything is uploaded so a bad id never leaves an orphaned
// blob behind.
func (s *ClubService) AttachImage(ctx context.Context, file io.Reader, filename string, clubID uint) (string, error) {
	club, err := s.clubStorage.Get(ctx, clubID, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return "", errorz.ClubNotFound
		}
		return "", err
	}

	imageURL, err := s.uploader.Upload(ctx, file, filename, "clubImage")
	if err != nil {
		return "", err
	}

	club.ImageURL = imageURL
	if _, err = s.clubStorage.Update(ctx, club); err != nil {
		return "", err
	}
	return imageURL, nil
}

// GetDetail projects the club plus the info strings of its VALID extra tags.
func (s *ClubService) GetDetail(ctx context.Context, clubID uint) (*dto.ClubDetailRes, error) {
	club, err := s.clubStorage.Get(ctx, clubID, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return nil, errorz.ClubNotFound
		}
		return nil, err
	}

	res := dto.NewClubDetailRes(club)
	relations, err := s.clubExtraStorage.GetByClubID(ctx, club.ID, entity.StatusValid)
	if err != nil {
		return nil, err
	}
	res.ExtraList = make([]string, 0, len(relations))
	for _, relation := range relations {
		if relation.Extra != nil {
			res.ExtraList = append(res.ExtraList, relation.Extra.Info)
		}
	}
	return &res, nil
}

// TogglePin flips the caller's pin flag for the club, creating the relation
// row on first use. Returns the resulting flag.
func (s *ClubService) TogglePin(ctx context.Context, claims dto.Claims, clubID uint) (bool, error) {
	account, err := s.accountStorage.GetByOAuthID(ctx, claims.OAuthID, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return false, errorz.AccountNotFound
		}
		return false, err
	}
	club, err := s.clubStorage.Get(ctx, clubID, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return false, errorz.ClubNotFound
		}
		return false, err
	}

	relation, err := s.accountClubStorage.Get(ctx, account.ID, club.ID, entity.StatusValid)
	if err != nil {
		if !errors.Is(err, errorz.NotFound) {
			return false, err
		}
		relation = &entity.AccountClubRelation{
			AccountID: account.ID,
			ClubID:    club.ID,
			IsPinUp:   true,
			Status:    entity.StatusValid,
		}
		if _, err = s.accountClubStorage.Create(ctx, relation); err != nil {
			return false, err
		}
		return true, nil
	}

	relation.IsPinUp = !relation.IsPinUp
	if _, err = s.accountClubStorage.Update(ctx, relation); err != nil {
		return false, err
	}
	return relation.IsPinUp, nil
}
