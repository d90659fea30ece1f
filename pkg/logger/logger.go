package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger — интерфейс логирования, используемый во всех слоях приложения.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

// SlogLogger реализует Logger поверх стандартного slog.
type SlogLogger struct {
	log *slog.Logger
}

func NewSlogLogger() *SlogLogger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return &SlogLogger{
		log: slog.New(handler),
	}
}

func (l *SlogLogger) Infof(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Errorf(err error, format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}
