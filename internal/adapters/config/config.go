package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postgresStorage "github.com/wupitch/wupitch-server/internal/adapters/database/postgres"
	"github.com/wupitch/wupitch-server/internal/adapters/logger"
)

type Config struct {
	Database *gorm.DB

	ServerAddr string

	JWTSecret string
	JWTTTL    time.Duration

	KakaoClientID     string
	KakaoClientSecret string
	KakaoRedirectURL  string
	// KakaoProviderSecret salts the synthetic credential of social accounts.
	KakaoProviderSecret string

	UploadsDir string
	UploadsURL string
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	var gormConfig *gorm.Config
	if viper.GetBool("settings.debug") {
		newLogger := gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
		gormConfig = &gorm.Config{
			Logger: newLogger,
		}
	} else {
		gormConfig = &gorm.Config{}
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	errMigrate := database.AutoMigrate(postgresStorage.Migrations...)
	if errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	jwtTTL := viper.GetDuration("service.jwt.ttl")
	if jwtTTL == 0 {
		jwtTTL = 24 * time.Hour
	}

	return &Config{
		Database:            database,
		ServerAddr:          viper.GetString("service.server.addr"),
		JWTSecret:           viper.GetString("service.jwt.secret"),
		JWTTTL:              jwtTTL,
		KakaoClientID:       viper.GetString("oauth.kakao.client-id"),
		KakaoClientSecret:   viper.GetString("oauth.kakao.client-secret"),
		KakaoRedirectURL:    viper.GetString("oauth.kakao.redirect-url"),
		KakaoProviderSecret: viper.GetString("oauth.kakao.provider-secret"),
		UploadsDir:          viper.GetString("service.uploads.dir"),
		UploadsURL:          viper.GetString("service.uploads.base-url"),
	}
}
