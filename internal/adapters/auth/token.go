package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

// appClaims is the signed token payload. The OAuth id rides in the standard
// subject claim.
type appClaims struct {
	AccountID uint   `json:"accountId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 session tokens. Issuance is
// stateless: a fresh token is produced on every call.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *TokenManager) Issue(accountID uint, oauthID string, role entity.Role) (string, error) {
	now := time.Now()
	claims := &appClaims{
		AccountID: accountID,
		Role:      string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   oauthID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse validates the signature and expiry and returns the principal claims.
func (m *TokenManager) Parse(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &appClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*appClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &dto.Claims{
		AccountID: claims.AccountID,
		OAuthID:   claims.Subject,
		Role:      entity.Role(claims.Role),
	}, nil
}
