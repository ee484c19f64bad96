package logger_fx

import (
	"go.uber.org/fx"
	"tripnote/pkg/logger"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() logger.Logger {
	return logger.NewStdLogger()
}
