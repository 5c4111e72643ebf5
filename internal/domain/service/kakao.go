package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

// KakaoProvider exchanges an authorization code with the identity provider
// for the user's external profile.
type KakaoProvider interface {
	GetUserInfo(ctx context.Context, code string) (*dto.KakaoUserInfo, error)
}

type KakaoService struct {
	accountService *AccountService
	accountStorage AccountStorage
	hasher         PasswordHasher
	provider       KakaoProvider
	providerSecret string
}

func NewKakaoService(
	accountService *AccountService,
	accountStorage AccountStorage,
	hasher PasswordHasher,
	provider KakaoProvider,
	providerSecret string,
) *KakaoService {
	return &KakaoService{
		accountService: accountService,
		accountStorage: accountStorage,
		hasher:         hasher,
		provider:       provider,
		providerSecret: providerSecret,
	}
}

// SignIn exchanges the code, reuses the VALID account holding the namespaced
// OAuth id or synthesizes one, then runs the normal sign-in path so social
// and password accounts share one token format. The synthetic credential is
// derived from the OAuth id and the provider secret.
func (s *KakaoService) SignIn(ctx context.Context, code string) (*dto.SignInRes, error) {
	info, err := s.provider.GetUserInfo(ctx, code)
	if err != nil {
		return nil, err
	}
	oauthID := "kakao_" + strconv.FormatInt(info.ID, 10)
	credential := oauthID + s.providerSecret

	account, err := s.accountStorage.GetByOAuthID(ctx, oauthID, entity.StatusValid)
	if err != nil {
		if !errors.Is(err, errorz.NotFound) {
			return nil, err
		}
		hashed, hashErr := s.hasher.Hash(credential)
		if hashErr != nil {
			return nil, hashErr
		}
		account, err = s.accountStorage.Create(ctx, &entity.Account{
			OAuthID:  oauthID,
			Email:    info.Email,
			Nickname: info.Nickname,
			Password: hashed,
			Role:     entity.RoleUser,
			Status:   entity.StatusValid,
		})
		if err != nil {
			return nil, err
		}
	}

	return s.accountService.SignIn(ctx, dto.SignInReq{
		Email:    account.Email,
		Password: credential,
	})
}
