package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type AccountStorage interface {
	Create(ctx context.Context, account *entity.Account) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string, status entity.Status) (*entity.Account, error)
	GetByOAuthID(ctx context.Context, oauthID string, status entity.Status) (*entity.Account, error)
	GetByNickname(ctx context.Context, nickname string, status entity.Status) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) (*entity.Account, error)
}

type AccountSportsStorage interface {
	Create(ctx context.Context, relation *entity.AccountSportsRelation) (*entity.AccountSportsRelation, error)
	GetByAccountID(ctx context.Context, accountID uint, status entity.Status) ([]entity.AccountSportsRelation, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(plain, digest string) bool
}

type TokenIssuer interface {
	Issue(accountID uint, oauthID string, role entity.Role) (string, error)
}

type AccountService struct {
	accountStorage       AccountStorage
	areaStorage          AreaStorage
	sportsStorage        SportsStorage
	accountSportsStorage AccountSportsStorage
	hasher               PasswordHasher
	tokens               TokenIssuer
	tx                   TxManager
}

func NewAccountService(
	accountStorage AccountStorage,
	areaStorage AreaStorage,
	sportsStorage SportsStorage,
	accountSportsStorage AccountSportsStorage,
	hasher PasswordHasher,
	tokens TokenIssuer,
	tx TxManager,
) *AccountService {
	return &AccountService{
		accountStorage:       accountStorage,
		areaStorage:          areaStorage,
		sportsStorage:        sportsStorage,
		accountSportsStorage: accountSportsStorage,
		hasher:               hasher,
		tokens:               tokens,
		tx:                   tx,
	}
}

// SignIn authenticates against the VALID account holding the email and
// issues a token over its OAuth id and role.
func (s *AccountService) SignIn(ctx context.Context, req dto.SignInReq) (*dto.SignInRes, error) {
	account, err := s.accountStorage.GetByEmail(ctx, req.Email, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return nil, errorz.FailedToLogin
		}
		return nil, err
	}
	if !s.hasher.Matches(req.Password, account.Password) {
		return nil, errorz.FailedToLogin
	}

	token, err := s.tokens.Issue(account.ID, account.OAuthID, account.Role)
	if err != nil {
		return nil, err
	}
	return &dto.SignInRes{
		AccountID: account.ID,
		OAuthID:   account.OAuthID,
		Token:     token,
	}, nil
}

// SignUp registers a password account. Local accounts get a namespaced OAuth
// id so the token format stays identical to social accounts.
func (s *AccountService) SignUp(ctx context.Context, req dto.SignUpReq) (*dto.SignInRes, error) {
	_, err := s.accountStorage.GetByEmail(ctx, req.Email, entity.StatusValid)
	if err == nil {
		return nil, errorz.DuplicatedEmail
	}
	if !errors.Is(err, errorz.NotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	account := &entity.Account{
		OAuthID:  "local_" + uuid.NewString(),
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: hashed,
		Role:     entity.RoleUser,
		Status:   entity.StatusValid,
	}
	account, err = s.accountStorage.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.OAuthID, account.Role)
	if err != nil {
		return nil, err
	}
	return &dto.SignInRes{
		AccountID: account.ID,
		OAuthID:   account.OAuthID,
		Token:     token,
	}, nil
}

// GetAuthAccount projects the caller's account and reissues a token on every
// call. The live row is loaded from storage, not taken from the principal.
func (s *AccountService) GetAuthAccount(ctx context.Context, claims dto.Claims) (*dto.AccountAuthRes, error) {
	account, err := s.accountStorage.GetByOAuthID(ctx, claims.OAuthID, entity.StatusValid)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return nil, errorz.AccountNotFound
		}
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.OAuthID, account.Role)
	if err != nil {
		return nil, err
	}
	return &dto.AccountAuthRes{
		AccountID:    account.ID,
		OAuthID:      account.OAuthID,
		Email:        account.Email,
		Nickname:     account.Nickname,
		Gender:       account.Gender,
		Introduction: account.Introduction,
		AreaID:       account.AreaID,
		Role:         string(account.Role),
		Token:        token,
	}, nil
}

// CheckNickname fails when a VALID account already holds the nickname.
// Withdrawn holders do not count.
func (s *AccountService) CheckNickname(ctx context.Context, nickname string) error {
	_, err := s.accountStorage.GetByNickname(ctx, nickname, entity.StatusValid)
	if err == nil {
		return errorz.DuplicatedNickname
	}
	if errors.Is(err, errorz.NotFound) {
		return nil
	}
	return err
}

// CompleteProfile applies scalar profile fields, attaches the requested area
// and appends one AccountSportsRelation row per submitted pair. Resubmitting
// the same sports appends rows next to the earlier ones.
func (s *AccountService) CompleteProfile(ctx context.Context, claims dto.Claims, req dto.AccountInformReq) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accountStorage.GetByOAuthID(ctx, claims.OAuthID, entity.StatusValid)
		if err != nil {
			if errors.Is(err, errorz.NotFound) {
				return errorz.AccountNotFound
			}
			return err
		}

		if req.Nickname != "" {
			account.Nickname = req.Nickname
		}
		if req.Gender != "" {
			account.Gender = req.Gender
		}
		if req.Introduction != "" {
			account.Introduction = req.Introduction
		}

		area, err := s.areaStorage.Get(ctx, req.AreaID, entity.StatusValid)
		if err != nil {
			if errors.Is(err, errorz.NotFound) {
				return errorz.AreaNotFound
			}
			return err
		}
		account.AreaID = &area.ID

		if _, err = s.accountStorage.Update(ctx, account); err != nil {
			return err
		}

		for _, pair := range req.SportsList {
			sports, err := s.sportsStorage.Get(ctx, pair.SportsID, entity.StatusValid)
			if err != nil {
				if errors.Is(err, errorz.NotFound) {
					return errorz.SportsNotFound
				}
				return err
			}
			relation := &entity.AccountSportsRelation{
				AccountID: account.ID,
				SportsID:  sports.ID,
				Level:     pair.Level,
				Status:    entity.StatusValid,
			}
			if _, err = s.accountSportsStorage.Create(ctx, relation); err != nil {
				return err
			}
		}
		return nil
	})
}
