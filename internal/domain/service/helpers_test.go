package service

import (
	"context"
	"io"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	postgres "github.com/wupitch/wupitch-server/internal/adapters/database/postgres"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(postgres.Migrations...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// plainHasher makes credentials deterministic in tests.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Matches(plain, digest string) bool { return digest == "hashed:"+plain }

type staticTokens struct{}

func (staticTokens) Issue(_ uint, oauthID string, _ entity.Role) (string, error) {
	return "token-" + oauthID, nil
}

// passthroughTx runs the unit of work without a transaction, used to observe
// partial-commit behavior.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingUploader counts uploads so tests can assert ordering guarantees.
type recordingUploader struct {
	url   string
	calls int
}

func (u *recordingUploader) Upload(_ context.Context, _ io.Reader, _ string, _ string) (string, error) {
	u.calls++
	return u.url, nil
}

func newAccountService(db *gorm.DB, tx TxManager) *AccountService {
	return NewAccountService(
		postgres.NewAccountStorage(db),
		postgres.NewAreaStorage(db),
		postgres.NewSportsStorage(db),
		postgres.NewAccountSportsStorage(db),
		plainHasher{},
		staticTokens{},
		tx,
	)
}

func newClubService(db *gorm.DB, uploader Uploader, tx TxManager) *ClubService {
	return NewClubService(
		postgres.NewClubStorage(db),
		postgres.NewAccountStorage(db),
		postgres.NewAreaStorage(db),
		postgres.NewSportsStorage(db),
		postgres.NewExtraStorage(db),
		postgres.NewClubExtraStorage(db),
		postgres.NewAccountClubStorage(db),
		uploader,
		tx,
	)
}

func seedAccount(t *testing.T, db *gorm.DB, oauthID, email, nickname string, status entity.Status) *entity.Account {
	t.Helper()
	account := &entity.Account{
		OAuthID:  oauthID,
		Email:    email,
		Nickname: nickname,
		Password: "hashed:pw",
		Role:     entity.RoleUser,
		Status:   status,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return account
}

func seedArea(t *testing.T, db *gorm.DB, name string) *entity.Area {
	t.Helper()
	area := &entity.Area{Name: name, Status: entity.StatusValid}
	if err := db.Create(area).Error; err != nil {
		t.Fatalf("failed to seed area: %v", err)
	}
	return area
}

func seedSports(t *testing.T, db *gorm.DB, name string) *entity.Sports {
	t.Helper()
	sports := &entity.Sports{Name: name, Status: entity.StatusValid}
	if err := db.Create(sports).Error; err != nil {
		t.Fatalf("failed to seed sports: %v", err)
	}
	return sports
}

func seedExtra(t *testing.T, db *gorm.DB, info string) *entity.Extra {
	t.Helper()
	extra := &entity.Extra{Info: info, Status: entity.StatusValid}
	if err := db.Create(extra).Error; err != nil {
		t.Fatalf("failed to seed extra: %v", err)
	}
	return extra
}
