package handlers

import (
	"github.com/wupitch/wupitch-server/internal/adapters/logger"
	"github.com/wupitch/wupitch-server/internal/adapters/metrics"
	"github.com/wupitch/wupitch-server/internal/domain/service"
)

type Handler struct {
	accountService *service.AccountService
	kakaoService   *service.KakaoService
	clubService    *service.ClubService
	areaService    *service.AreaService
	sportsService  *service.SportsService
	extraService   *service.ExtraService
	metrics        *metrics.Registry
	logger         *logger.Logger
}

func New(
	accountService *service.AccountService,
	kakaoService *service.KakaoService,
	clubService *service.ClubService,
	areaService *service.AreaService,
	sportsService *service.SportsService,
	extraService *service.ExtraService,
	reg *metrics.Registry,
	log *logger.Logger,
) *Handler {
	return &Handler{
		accountService: accountService,
		kakaoService:   kakaoService,
		clubService:    clubService,
		areaService:    areaService,
		sportsService:  sportsService,
		extraService:   extraService,
		metrics:        reg,
		logger:         log,
	}
}
