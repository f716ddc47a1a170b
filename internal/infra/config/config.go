// Пакет config собирает конфигурацию процесса из окружения. Он:
//  1. подгружает .env (через godotenv), не перетирая уже выставленные переменные,
//  2. связывает переменные со структурой EnvConfig (через envconfig),
//  3. нормализует и валидирует значения.
//
// Учетные данные (BOT_TOKEN, USER_ID, API_ID, API_HASH) обязательны и не имеют
// значений по умолчанию: если переменная не задана, Load возвращает ошибку,
// а не подставляет литерал из исходников.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrMissingEnv сигнализирует, что обязательная переменная окружения пуста или не задана.
var ErrMissingEnv = errors.New("required env is not set")

// EnvConfig описывает параметры, приходящие из окружения.
type EnvConfig struct {
	BotToken   string `envconfig:"BOT_TOKEN" required:"true"`
	UserID     int64  `envconfig:"USER_ID" required:"true"`
	APIID      int    `envconfig:"API_ID" required:"true"`
	APIHash    string `envconfig:"API_HASH" required:"true"`
	WebhookURL string `envconfig:"WEBHOOK_URL"`
	DataDir    string `envconfig:"DATA_DIR" default:"data"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Config хранит результат загрузки вместе с предупреждениями о подставленных дефолтах.
type Config struct {
	Env      EnvConfig
	warnings []string
}

// requiredKeys перечисляет учетные данные, без которых процесс не стартует.
var requiredKeys = []string{"BOT_TOKEN", "USER_ID", "API_ID", "API_HASH"}

// Значения по умолчанию только для несекретных параметров.
const (
	defaultDataDir  = "data"
	defaultLogLevel = "info"
)

// Load читает envPath (если файл существует) и окружение процесса.
// Переменные, уже выставленные в окружении, имеют приоритет над .env.
func Load(envPath string) (*Config, error) {
	var warnings []string

	if p := strings.TrimSpace(envPath); p != "" {
		if err := godotenv.Load(p); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, errors.Wrapf(err, "load env file %s", p)
			}
			appendWarningf(&warnings, "env file %s not found; using process environment only", p)
		}
	}

	for _, name := range requiredKeys {
		if strings.TrimSpace(os.Getenv(name)) == "" {
			return nil, errors.Wrap(ErrMissingEnv, name)
		}
	}

	var env EnvConfig
	if err := envconfig.Process("", &env); err != nil {
		return nil, errors.Wrap(err, "process env")
	}

	if err := normalize(&env, &warnings); err != nil {
		return nil, err
	}

	return &Config{Env: env, warnings: warnings}, nil
}

// normalize проверяет обязательные поля и приводит необязательные к каноничному виду.
func normalize(env *EnvConfig, warnings *[]string) error {
	env.BotToken = strings.TrimSpace(env.BotToken)
	if env.BotToken == "" {
		return errors.Wrap(ErrMissingEnv, "BOT_TOKEN")
	}
	env.APIHash = strings.TrimSpace(env.APIHash)
	if env.APIHash == "" {
		return errors.Wrap(ErrMissingEnv, "API_HASH")
	}
	if env.UserID <= 0 {
		return errors.Errorf("env USER_ID must be a positive integer, got %d", env.UserID)
	}
	if env.APIID <= 0 {
		return errors.Errorf("env API_ID must be a positive integer, got %d", env.APIID)
	}

	env.WebhookURL = strings.TrimSpace(env.WebhookURL)
	if env.WebhookURL != "" {
		u, err := url.Parse(env.WebhookURL)
		if err != nil {
			return errors.Wrap(err, "parse WEBHOOK_URL")
		}
		if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
			return errors.Errorf("env WEBHOOK_URL must be an absolute http(s) URL, got %q", env.WebhookURL)
		}
	}

	env.DataDir = strings.TrimSpace(env.DataDir)
	if env.DataDir == "" {
		appendWarningf(warnings, "env DATA_DIR is empty; using default %q", defaultDataDir)
		env.DataDir = defaultDataDir
	}
	env.LogLevel = sanitizeLogLevel(env.LogLevel, warnings)
	return nil
}

// Warnings возвращает копию накопленных предупреждений.
func (c *Config) Warnings() []string {
	result := make([]string, len(c.warnings))
	copy(result, c.warnings)
	return result
}

// Redacted возвращает снимок для логов: секреты замаскированы.
func (e EnvConfig) Redacted() map[string]string {
	return map[string]string{
		"BOT_TOKEN":   mask(e.BotToken),
		"USER_ID":     fmt.Sprint(e.UserID),
		"API_ID":      fmt.Sprint(e.APIID),
		"API_HASH":    mask(e.APIHash),
		"WEBHOOK_URL": e.WebhookURL,
		"DATA_DIR":    e.DataDir,
		"LOG_LEVEL":   e.LogLevel,
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

// sanitizeLogLevel ограничивает значения набором {debug, info, warn, error}.
func sanitizeLogLevel(level string, warnings *[]string) string {
	lvl := strings.ToLower(strings.TrimSpace(level))
	switch lvl {
	case "debug", "info", "warn", "error":
		return lvl
	case "":
		appendWarningf(warnings, "env LOG_LEVEL is empty; using default %q", defaultLogLevel)
	default:
		appendWarningf(warnings, "env LOG_LEVEL value %q is invalid; using default %q", level, defaultLogLevel)
	}
	return defaultLogLevel
}

func appendWarningf(warnings *[]string, format string, args ...any) {
	if warnings == nil {
		return
	}
	*warnings = append(*warnings, fmt.Sprintf(format, args...))
}
