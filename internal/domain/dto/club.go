package dto

import "github.com/wupitch/wupitch-server/internal/domain/entity"

type CreateClubReq struct {
	SportsID      uint   `json:"sportsId"`
	AreaID        uint   `json:"areaId"`
	Title         string `json:"title"`
	Days          []int  `json:"days"`
	AgeList       []int  `json:"ageList"`
	MemberCount   int    `json:"memberCount"`
	Introduction  string `json:"introduction"`
	StartTime     int    `json:"startTime"`
	EndTime       int    `json:"endTime"`
	ExtraInfoList []uint `json:"extraInfoList"`
}

// ListClubsReq holds the listing query. Optional filters are pointers;
// nil means the constraint is not applied.
type ListClubsReq struct {
	Page        int
	Size        int
	SortBy      string
	IsAsc       bool
	AreaID      *uint
	SportsID    *uint
	Days        []int
	MemberCount *int
	AgeList     []int
}

// ClubFilter is the storage-level form of ListClubsReq: reference filters
// already resolved, day/age lists folded into masks.
type ClubFilter struct {
	AreaID      *uint
	SportsID    *uint
	DayMask     int
	AgeMask     int
	MemberCount *int
	SortBy      string
	IsAsc       bool
	Page        int
	Size        int
}

type ClubListRes struct {
	ClubID      uint   `json:"clubId"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	AreaName    string `json:"areaName"`
	SportsName  string `json:"sportsName"`
	MemberCount int    `json:"memberCount"`
	Days        []int  `json:"days"`
	IsPinUp     bool   `json:"isPinUp"`
}

type ClubListPage struct {
	Content    []ClubListRes `json:"content"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalCount int64         `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
}

type ClubDetailRes struct {
	ClubID       uint     `json:"clubId"`
	Title        string   `json:"title"`
	Introduction string   `json:"introduction"`
	ImageURL     string   `json:"imageUrl"`
	AreaName     string   `json:"areaName"`
	SportsName   string   `json:"sportsName"`
	MemberCount  int      `json:"memberCount"`
	Days         []int    `json:"days"`
	AgeList      []int    `json:"ageList"`
	StartTime    int      `json:"startTime"`
	EndTime      int      `json:"endTime"`
	ExtraList    []string `json:"extraList"`
}

// NewClubListRes projects a club row; the pin flag is annotated afterwards.
func NewClubListRes(club *entity.Club) ClubListRes {
	res := ClubListRes{
		ClubID:      club.ID,
		Title:       club.Title,
		ImageURL:    club.ImageURL,
		MemberCount: club.MemberCount,
		Days:        DaysOf(club.DayMask),
	}
	if club.Area != nil {
		res.AreaName = club.Area.Name
	}
	if club.Sports != nil {
		res.SportsName = club.Sports.Name
	}
	return res
}

func NewClubDetailRes(club *entity.Club) ClubDetailRes {
	res := ClubDetailRes{
		ClubID:       club.ID,
		Title:        club.Title,
		Introduction: club.Introduction,
		ImageURL:     club.ImageURL,
		MemberCount:  club.MemberCount,
		Days:         DaysOf(club.DayMask),
		AgeList:      AgesOf(club.AgeMask),
		StartTime:    club.StartTime,
		EndTime:      club.EndTime,
	}
	if club.Area != nil {
		res.AreaName = club.Area.Name
	}
	if club.Sports != nil {
		res.SportsName = club.Sports.Name
	}
	return res
}

// DaysOf unfolds a weekday bitmask back into day numbers.
func DaysOf(mask int) []int {
	days := make([]int, 0, 7)
	for d := 0; d <= 6; d++ {
		if mask&(1<<d) != 0 {
			days = append(days, d)
		}
	}
	return days
}

// AgesOf unfolds an age bitmask back into decade values.
func AgesOf(mask int) []int {
	ages := make([]int, 0, 10)
	for bracket := 1; bracket <= 10; bracket++ {
		if mask&(1<<bracket) != 0 {
			ages = append(ages, bracket*10)
		}
	}
	return ages
}
