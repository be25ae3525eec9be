package middleware

import (
	"log/slog"

	"hosting/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger returns the access-log middleware. 4xx responses log at
// warn and 5xx at error; health probes are skipped unless debugging.
// Request headers and bodies are never logged: they carry passwords and tokens.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	logCfg := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		WithRequestID:    true,
	}
	if !cfg.Env.Debug {
		logCfg.Filters = []slogecho.Filter{slogecho.IgnorePath("/health")}
	}

	return slogecho.NewWithConfig(logger, logCfg)
}
