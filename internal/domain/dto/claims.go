package dto

import "github.com/wupitch/wupitch-server/internal/domain/entity"

// Claims is the minimal authenticated principal resolved once at the HTTP
// boundary. Services re-resolve the live account row from the OAuth id
// instead of trusting a loaded entity carried with the request.
type Claims struct {
	AccountID uint
	OAuthID   string
	Role      entity.Role
}
