package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *Logger

type Logger struct {
	*zap.SugaredLogger
	Name string
}

// Config represents configuration options for logger initialization
type Config struct {
	Debug     bool   // Enable debug logging
	LogToFile bool   // Enable logging to a file
	LogsDir   string // Directory for log files
}

// Init initializes the package logger. Console output is always on; a JSON
// file core is added when LogToFile is set.
func Init(config Config) error {
	var l Logger
	l.Name = "main"

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if config.Debug {
		level = zapcore.DebugLevel
	}

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if config.LogToFile {
		logsDir := config.LogsDir
		if logsDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			logsDir = wd
		}
		if err := os.MkdirAll(logsDir, os.ModePerm); err != nil {
			return err
		}

		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		fileEncoder := zapcore.NewJSONEncoder(fileEncoderConfig)

		logPath := filepath.Join(logsDir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
		fileWriter, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	l.SugaredLogger = log.Named(l.Name).Sugar()
	Log = &l

	return nil
}

// Named returns a new logger with the specified name ("http", "database", etc.)
func Named(name string) (*Logger, error) {
	if Log == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return &Logger{
		SugaredLogger: Log.SugaredLogger.Named(name),
		Name:          name,
	}, nil
}
