package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/wupitch/wupitch-server/internal/domain/dto"
)

const userInfoURL = "https://kapi.kakao.com/v2/user/me"

// Endpoint is Kakao's OAuth2 endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Client exchanges authorization codes with Kakao and fetches the user's
// profile with the resulting access token.
type Client struct {
	conf *oauth2.Config
}

func NewClient(cfg Config) *Client {
	return &Client{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     Endpoint,
		},
	}
}

type userInfoResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

func (c *Client) GetUserInfo(ctx context.Context, code string) (*dto.KakaoUserInfo, error) {
	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.conf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned status %d", resp.StatusCode)
	}

	var info userInfoResponse
	if err = json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &dto.KakaoUserInfo{
		ID:       info.ID,
		Nickname: info.KakaoAccount.Profile.Nickname,
		Email:    info.KakaoAccount.Email,
	}, nil
}
