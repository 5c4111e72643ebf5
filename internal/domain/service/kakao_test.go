package service

import (
	"context"
	"testing"

	postgres "github.com/wupitch/wupitch-server/internal/adapters/database/postgres"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

type fakeProvider struct {
	info dto.KakaoUserInfo
}

func (p *fakeProvider) GetUserInfo(context.Context, string) (*dto.KakaoUserInfo, error) {
	info := p.info
	return &info, nil
}

func TestKakaoService_SignIn_CreatesAccountOnce(t *testing.T) {
	db := setupTestDB(t)
	accountSvc := newAccountService(db, postgres.NewTxManager(db))
	provider := &fakeProvider{info: dto.KakaoUserInfo{ID: 123, Nickname: "alice", Email: "alice@kakao.com"}}
	svc := NewKakaoService(accountSvc, postgres.NewAccountStorage(db), plainHasher{}, provider, "provider-secret")

	first, err := svc.SignIn(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("expected first social sign-in to succeed, got %v", err)
	}
	if first.OAuthID != "kakao_123" {
		t.Errorf("expected namespaced oauth id, got %s", first.OAuthID)
	}
	if first.Token == "" {
		t.Error("expected a token")
	}

	second, err := svc.SignIn(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("expected second social sign-in to succeed, got %v", err)
	}
	if second.AccountID != first.AccountID {
		t.Errorf("expected the same account to be reused, got %d and %d", first.AccountID, second.AccountID)
	}

	var count int64
	db.Model(&entity.Account{}).Where("o_auth_id = ?", "kakao_123").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one account row, got %d", count)
	}
}

func TestKakaoService_SignIn_CredentialDerivation(t *testing.T) {
	db := setupTestDB(t)
	accountSvc := newAccountService(db, postgres.NewTxManager(db))
	provider := &fakeProvider{info: dto.KakaoUserInfo{ID: 9, Nickname: "bob", Email: "bob@kakao.com"}}
	svc := NewKakaoService(accountSvc, postgres.NewAccountStorage(db), plainHasher{}, provider, "s3cret")

	if _, err := svc.SignIn(context.Background(), "code"); err != nil {
		t.Fatalf("social sign-in failed: %v", err)
	}

	var account entity.Account
	if err := db.Where("o_auth_id = ?", "kakao_9").First(&account).Error; err != nil {
		t.Fatalf("account not created: %v", err)
	}
	if account.Password != "hashed:kakao_9s3cret" {
		t.Errorf("credential not derived from oauth id and provider secret: %s", account.Password)
	}
}
