package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	postgres "github.com/wupitch/wupitch-server/internal/adapters/database/postgres"
	"github.com/wupitch/wupitch-server/internal/domain/common/errorz"
	"github.com/wupitch/wupitch-server/internal/domain/dto"
	"github.com/wupitch/wupitch-server/internal/domain/entity"
)

func TestClubService_CreateAndDetail(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))
	seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")
	parking := seedExtra(t, db, "free parking")
	shower := seedExtra(t, db, "shower room")

	claims := dto.Claims{OAuthID: "local_a"}
	clubID, err := svc.Create(context.Background(), claims, dto.CreateClubReq{
		SportsID:      sports.ID,
		AreaID:        area.ID,
		Title:         "Sunday run",
		Days:          []int{0, 6},
		AgeList:       []int{20, 30},
		MemberCount:   12,
		Introduction:  "come run with us",
		StartTime:     9,
		EndTime:       11,
		ExtraInfoList: []uint{parking.ID, shower.ID},
	})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if clubID == 0 {
		t.Fatal("expected a club id")
	}

	detail, err := svc.GetDetail(context.Background(), clubID)
	if err != nil {
		t.Fatalf("expected detail to succeed, got %v", err)
	}
	if detail.Title != "Sunday run" {
		t.Errorf("expected title Sunday run, got %s", detail.Title)
	}
	if len(detail.ExtraList) != 2 {
		t.Fatalf("expected exactly 2 extra descriptions, got %d", len(detail.ExtraList))
	}
	joined := strings.Join(detail.ExtraList, ",")
	if !strings.Contains(joined, "free parking") || !strings.Contains(joined, "shower room") {
		t.Errorf("unexpected extras: %v", detail.ExtraList)
	}
	if len(detail.Days) != 2 || detail.Days[0] != 0 || detail.Days[1] != 6 {
		t.Errorf("unexpected days: %v", detail.Days)
	}
}

func TestClubService_Create_UnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))
	seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")

	claims := dto.Claims{OAuthID: "local_a"}

	_, err := svc.Create(context.Background(), claims, dto.CreateClubReq{SportsID: 999, AreaID: area.ID, Title: "x"})
	if !errors.Is(err, errorz.SportsNotFound) {
		t.Errorf("expected SportsNotFound, got %v", err)
	}
	_, err = svc.Create(context.Background(), claims, dto.CreateClubReq{SportsID: sports.ID, AreaID: 999, Title: "x"})
	if !errors.Is(err, errorz.AreaNotFound) {
		t.Errorf("expected AreaNotFound, got %v", err)
	}
	_, err = svc.Create(context.Background(), dto.Claims{OAuthID: "missing"}, dto.CreateClubReq{SportsID: sports.ID, AreaID: area.ID, Title: "x"})
	if !errors.Is(err, errorz.AccountNotFound) {
		t.Errorf("expected AccountNotFound, got %v", err)
	}
}

func TestClubService_Create_ExtraNotFound_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))
	seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")
	parking := seedExtra(t, db, "free parking")

	_, err := svc.Create(context.Background(), dto.Claims{OAuthID: "local_a"}, dto.CreateClubReq{
		SportsID:      sports.ID,
		AreaID:        area.ID,
		Title:         "doomed",
		ExtraInfoList: []uint{parking.ID, 999},
	})
	if !errors.Is(err, errorz.ExtraNotFound) {
		t.Fatalf("expected ExtraNotFound, got %v", err)
	}

	var clubs, relations int64
	db.Model(&entity.Club{}).Count(&clubs)
	db.Model(&entity.ClubExtraRelation{}).Count(&relations)
	if clubs != 0 || relations != 0 {
		t.Errorf("expected full rollback, got %d clubs and %d relations", clubs, relations)
	}
}

func TestClubService_Create_ExtraNotFound_PartialCommitWithoutTx(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, passthroughTx{})
	seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")
	parking := seedExtra(t, db, "free parking")

	_, err := svc.Create(context.Background(), dto.Claims{OAuthID: "local_a"}, dto.CreateClubReq{
		SportsID:      sports.ID,
		AreaID:        area.ID,
		Title:         "doomed",
		ExtraInfoList: []uint{parking.ID, 999},
	})
	if !errors.Is(err, errorz.ExtraNotFound) {
		t.Fatalf("expected ExtraNotFound, got %v", err)
	}

	// Without a transaction boundary the club and the first relation stay.
	var clubs, relations int64
	db.Model(&entity.Club{}).Count(&clubs)
	db.Model(&entity.ClubExtraRelation{}).Count(&relations)
	if clubs != 1 || relations != 1 {
		t.Errorf("expected partial commit, got %d clubs and %d relations", clubs, relations)
	}
}

func seedClub(t *testing.T, db *gorm.DB, title string, ownerID, sportsID, areaID uint, dayMask, ageMask, memberCount int) *entity.Club {
	t.Helper()
	club := &entity.Club{
		Title:       title,
		DayMask:     dayMask,
		AgeMask:     ageMask,
		MemberCount: memberCount,
		AccountID:   ownerID,
		SportsID:    sportsID,
		AreaID:      areaID,
		Status:      entity.StatusValid,
	}
	if err := db.Create(club).Error; err != nil {
		t.Fatalf("failed to seed club: %v", err)
	}
	return club
}

func TestClubService_List_PinFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))
	viewer := seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")

	pinned := seedClub(t, db, "pinned", viewer.ID, sports.ID, area.ID, 0, 0, 0)
	unpinned := seedClub(t, db, "unpinned", viewer.ID, sports.ID, area.ID, 0, 0, 0)
	withdrawn := seedClub(t, db, "withdrawn-pin", viewer.ID, sports.ID, area.ID, 0, 0, 0)
	seedClub(t, db, "no-relation", viewer.ID, sports.ID, area.ID, 0, 0, 0)

	db.Create(&entity.AccountClubRelation{AccountID: viewer.ID, ClubID: pinned.ID, IsPinUp: true, Status: entity.StatusValid})
	db.Create(&entity.AccountClubRelation{AccountID: viewer.ID, ClubID: unpinned.ID, IsPinUp: false, Status: entity.StatusValid})
	db.Create(&entity.AccountClubRelation{AccountID: viewer.ID, ClubID: withdrawn.ID, IsPinUp: true, Status: entity.StatusInvalid})

	page, err := svc.List(context.Background(), dto.Claims{OAuthID: "local_a"}, dto.ListClubsReq{Size: 10})
	if err != nil {
		t.Fatalf("expected list to succeed, got %v", err)
	}
	if len(page.Content) != 4 {
		t.Fatalf("expected 4 clubs, got %d", len(page.Content))
	}

	flags := make(map[string]bool, len(page.Content))
	for _, res := range page.Content {
		flags[res.Title] = res.IsPinUp
	}
	if !flags["pinned"] {
		t.Error("expected pinned club to be flagged")
	}
	for _, title := range []string{"unpinned", "withdrawn-pin", "no-relation"} {
		if flags[title] {
			t.Errorf("expected %s to be unflagged", title)
		}
	}
}

func TestClubService_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))
	viewer := seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	seoul := seedArea(t, db, "Seoul")
	busan := seedArea(t, db, "Busan")
	soccer := seedSports(t, db, "soccer")
	tennis := seedSports(t, db, "tennis")

	// Mon+Wed, twenties, 10 members.
	seedClub(t, db, "a", viewer.ID, soccer.ID, seoul.ID, entity.DayMask([]int{0, 2}), entity.AgeMask([]int{20}), 10)
	// Sat, thirties, 30 members.
	seedClub(t, db, "b", viewer.ID, tennis.ID, busan.ID, entity.DayMask([]int{5}), entity.AgeMask([]int{30}), 30)

	claims := dto.Claims{OAuthID: "local_a"}

	page, err := svc.List(context.Background(), claims, dto.ListClubsReq{Size: 10, AreaID: &seoul.ID})
	if err != nil || len(page.Content) != 1 || page.Content[0].Title != "a" {
		t.Fatalf("area filter: got %+v, err %v", page, err)
	}

	page, err = svc.List(context.Background(), claims, dto.ListClubsReq{Size: 10, SportsID: &tennis.ID})
	if err != nil || len(page.Content) != 1 || page.Content[0].Title != "b" {
		t.Fatalf("sports filter: got %+v, err %v", page, err)
	}

	page, err = svc.List(context.Background(), claims, dto.ListClubsReq{Size: 10, Days: []int{2, 3}})
	if err != nil || len(page.Content) != 1 || page.Content[0].Title != "a" {
		t.Fatalf("day overlap filter: got %+v, err %v", page, err)
	}

	min := 20
	page, err = svc.List(context.Background(), claims, dto.ListClubsReq{Size: 10, MemberCount: &min})
	if err != nil || len(page.Content) != 1 || page.Content[0].Title != "b" {
		t.Fatalf("member count filter: got %+v, err %v", page, err)
	}

	page, err = svc.List(context.Background(), claims, dto.ListClubsReq{Size: 10, AgeList: []int{30, 40}})
	if err != nil || len(page.Content) != 1 || page.Content[0].Title != "b" {
		t.Fatalf("age overlap filter: got %+v, err %v", page, err)
	}

	// An unknown optional filter id drops the constraint instead of failing.
	missingArea := uint(999)
	page, err = svc.List(context.Background(), claims, dto.ListClubsReq{Size: 10, AreaID: &missingArea})
	if err != nil || len(page.Content) != 2 {
		t.Fatalf("unknown area filter should be ignored: got %+v, err %v", page, err)
	}
}

func TestClubService_List_ViewerNotValid(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))

	_, err := svc.List(context.Background(), dto.Claims{OAuthID: "missing"}, dto.ListClubsReq{Size: 10})
	if !errors.Is(err, errorz.AccountNotValid) {
		t.Errorf("expected AccountNotValid, got %v", err)
	}
}

func TestClubService_AttachImage_ValidatesBeforeUpload(t *testing.T) {
	db := setupTestDB(t)
	uploader := &recordingUploader{url: "http://files/clubImage/x.png"}
	svc := newClubService(db, uploader, postgres.NewTxManager(db))

	_, err := svc.AttachImage(context.Background(), strings.NewReader("img"), "x.png", 999)
	if !errors.Is(err, errorz.ClubNotFound) {
		t.Fatalf("expected ClubNotFound, got %v", err)
	}
	if uploader.calls != 0 {
		t.Errorf("expected no upload for a missing club, got %d", uploader.calls)
	}

	viewer := seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")
	club := seedClub(t, db, "a", viewer.ID, sports.ID, area.ID, 0, 0, 0)

	url, err := svc.AttachImage(context.Background(), strings.NewReader("img"), "x.png", club.ID)
	if err != nil {
		t.Fatalf("expected attach to succeed, got %v", err)
	}
	if uploader.calls != 1 {
		t.Errorf("expected exactly one upload, got %d", uploader.calls)
	}

	var updated entity.Club
	db.First(&updated, club.ID)
	if updated.ImageURL != url {
		t.Errorf("expected image url %s, got %s", url, updated.ImageURL)
	}
}

func TestClubService_TogglePin(t *testing.T) {
	db := setupTestDB(t)
	svc := newClubService(db, &recordingUploader{}, postgres.NewTxManager(db))
	viewer := seedAccount(t, db, "local_a", "alice@example.com", "alice", entity.StatusValid)
	area := seedArea(t, db, "Seoul")
	sports := seedSports(t, db, "soccer")
	club := seedClub(t, db, "a", viewer.ID, sports.ID, area.ID, 0, 0, 0)

	claims := dto.Claims{OAuthID: "local_a"}

	pinned, err := svc.TogglePin(context.Background(), claims, club.ID)
	if err != nil || !pinned {
		t.Fatalf("expected first toggle to pin, got %v / %v", pinned, err)
	}
	pinned, err = svc.TogglePin(context.Background(), claims, club.ID)
	if err != nil || pinned {
		t.Fatalf("expected second toggle to unpin, got %v / %v", pinned, err)
	}

	var count int64
	db.Model(&entity.AccountClubRelation{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single relation row, got %d", count)
	}
}
