package dto

type SignUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type SignInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRes struct {
	AccountID uint   `json:"accountId"`
	OAuthID   string `json:"oAuthId"`
	Token     string `json:"jwt"`
}

// SportsLevel is one (sport, self-assessed level) pair of a profile.
type SportsLevel struct {
	SportsID uint `json:"sportsId"`
	Level    int  `json:"level"`
}

// AccountInformReq carries the profile-completion payload.
type AccountInformReq struct {
	Nickname     string        `json:"nickname"`
	Gender       string        `json:"gender"`
	Introduction string        `json:"introduction"`
	AreaID       uint          `json:"areaId"`
	SportsList   []SportsLevel `json:"sportsList"`
}

type AccountAuthRes struct {
	AccountID    uint   `json:"accountId"`
	OAuthID      string `json:"oAuthId"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	Gender       string `json:"gender"`
	Introduction string `json:"introduction"`
	AreaID       *uint  `json:"areaId,omitempty"`
	Role         string `json:"role"`
	Token        string `json:"jwt"`
}

// KakaoUserInfo is what the identity provider returns for an exchanged code.
type KakaoUserInfo struct {
	ID       int64
	Nickname string
	Email    string
}
