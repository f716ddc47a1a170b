// Package app — сборка процесса: конфиг, логгер и локальное хранилище.
package app

import (
	"sort"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"tgrelay/internal/infra/config"
	"tgrelay/internal/infra/logger"
	"tgrelay/internal/infra/storage"
)

// App хранит зависимости, собранные на старте.
type App struct {
	cfg *config.Config
}

// New создаёт App поверх уже загруженной конфигурации.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Startup готовит окружение процесса: пишет предупреждения конфига и
// создаёт каталог данных. Идемпотентен: повторный вызов не падает.
func (a *App) Startup() error {
	if a.cfg == nil {
		return errors.New("app: nil config")
	}
	for _, msg := range a.cfg.Warnings() {
		logger.Warn(msg)
	}

	env := a.cfg.Env
	if err := storage.EnsureDir(env.DataDir); err != nil {
		return errors.Wrap(err, "ensure data dir")
	}

	redacted := env.Redacted()
	keys := make([]string, 0, len(redacted))
	for k := range redacted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.String(k, redacted[k]))
	}
	logger.Info("startup complete", fields...)
	return nil
}
