package setup

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wupitch/wupitch-server/internal/adapters/auth"
	"github.com/wupitch/wupitch-server/internal/adapters/config"
	"github.com/wupitch/wupitch-server/internal/adapters/controller/http/handlers"
	"github.com/wupitch/wupitch-server/internal/adapters/controller/http/middlewares"
	postgresStorage "github.com/wupitch/wupitch-server/internal/adapters/database/postgres"
	"github.com/wupitch/wupitch-server/internal/adapters/logger"
	"github.com/wupitch/wupitch-server/internal/adapters/metrics"
	"github.com/wupitch/wupitch-server/internal/adapters/oauth/kakao"
	"github.com/wupitch/wupitch-server/internal/adapters/storage"
	"github.com/wupitch/wupitch-server/internal/domain/service"
)

// Setup wires storages, services and handlers and returns the root handler.
func Setup(cfg *config.Config) http.Handler {
	log, err := logger.Named("http")
	if err != nil {
		panic(err)
	}

	accountStorage := postgresStorage.NewAccountStorage(cfg.Database)
	areaStorage := postgresStorage.NewAreaStorage(cfg.Database)
	sportsStorage := postgresStorage.NewSportsStorage(cfg.Database)
	accountSportsStorage := postgresStorage.NewAccountSportsStorage(cfg.Database)
	clubStorage := postgresStorage.NewClubStorage(cfg.Database)
	extraStorage := postgresStorage.NewExtraStorage(cfg.Database)
	clubExtraStorage := postgresStorage.NewClubExtraStorage(cfg.Database)
	accountClubStorage := postgresStorage.NewAccountClubStorage(cfg.Database)
	txManager := postgresStorage.NewTxManager(cfg.Database)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	uploader := storage.NewLocalUploader(cfg.UploadsDir, cfg.UploadsURL)
	kakaoClient := kakao.NewClient(kakao.Config{
		ClientID:     cfg.KakaoClientID,
		ClientSecret: cfg.KakaoClientSecret,
		RedirectURL:  cfg.KakaoRedirectURL,
	})

	accountService := service.NewAccountService(
		accountStorage, areaStorage, sportsStorage, accountSportsStorage,
		hasher, tokens, txManager,
	)
	kakaoService := service.NewKakaoService(
		accountService, accountStorage, hasher, kakaoClient, cfg.KakaoProviderSecret,
	)
	clubService := service.NewClubService(
		clubStorage, accountStorage, areaStorage, sportsStorage,
		extraStorage, clubExtraStorage, accountClubStorage,
		uploader, txManager,
	)
	areaService := service.NewAreaService(areaStorage)
	sportsService := service.NewSportsService(sportsStorage)
	extraService := service.NewExtraService(extraStorage)

	reg := metrics.NewRegistry()
	handler := handlers.New(
		accountService, kakaoService, clubService,
		areaService, sportsService, extraService,
		reg, log,
	)

	r := chi.NewRouter()
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.Metrics(reg))
	r.Use(middlewares.RateLimit)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploader.Dir())))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/sign-up", handler.SignUp)
		r.Post("/auth/sign-in", handler.SignIn)
		r.Get("/auth/kakao", handler.KakaoSignIn)

		r.Get("/areas", handler.ListAreas)
		r.Get("/sports", handler.ListSports)
		r.Get("/extras", handler.ListExtras)

		r.Get("/accounts/nickname-check", handler.CheckNickname)
		r.Get("/clubs/{clubId}", handler.GetClubDetail)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Auth(tokens))

			r.Get("/accounts/me", handler.GetAuthAccount)
			r.Patch("/accounts/me", handler.CompleteProfile)

			r.Get("/clubs", handler.ListClubs)
			r.Post("/clubs", handler.CreateClub)
			r.Post("/clubs/{clubId}/image", handler.UploadClubImage)
			r.Post("/clubs/{clubId}/pin", handler.TogglePin)
		})
	})

	return r
}
