package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Newはアプリ共通のロガーを返す。devでは読みやすいコンソール出力、
// それ以外はJSON。
func New(goEnv string, level string) zerolog.Logger {
	lv, err := zerolog.ParseLevel(level)
	if err != nil {
		lv = zerolog.InfoLevel
	}

	if goEnv == "dev" {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(out).Level(lv).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stdout).Level(lv).With().Timestamp().Logger()
}
