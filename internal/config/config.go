package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Session    Session    `mapstructure:",squash"`
	AuditTrail AuditTrail `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// IsDevelopment indica se a aplicação está rodando em modo de desenvolvimento
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development" || a.Env == "dev"
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL         string        `mapstructure:"meta_base_url"`
	URL             string        `mapstructure:"-"`
	Version         string        `mapstructure:"meta_version"`
	AppID           string        `mapstructure:"meta_app_id"`
	AppSecret       string        `mapstructure:"meta_app_secret"`
	OAuthDialogURL  string        `mapstructure:"meta_oauth_dialog_url"`
	RedirectURI     string        `mapstructure:"meta_redirect_uri"`
	SystemUserToken string        `mapstructure:"meta_system_user_token"`
	HTTPTimeout     time.Duration `mapstructure:"meta_http_timeout"`
}

type Session struct {
	CookieName    string `mapstructure:"session_cookie_name"`
	MaxAgeSeconds int    `mapstructure:"session_max_age_seconds"`
	SigningSecret string `mapstructure:"session_signing_secret"`
}

type AuditTrail struct {
	Enabled       bool   `mapstructure:"audit_enabled"`
	RetentionDays int    `mapstructure:"audit_retention_days"`
	PruneCron     string `mapstructure:"audit_prune_cron"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fbcampaign")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_OAUTH_DIALOG_URL", "https://www.facebook.com")
	viper.SetDefault("META_REDIRECT_URI", "http://localhost:8000/api/auth/callback")
	viper.SetDefault("META_SYSTEM_USER_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("META_HTTP_TIMEOUT", "15s")

	viper.SetDefault("SESSION_COOKIE_NAME", "fbData")
	viper.SetDefault("SESSION_MAX_AGE_SECONDS", 86400)
	viper.SetDefault("SESSION_SIGNING_SECRET", "") // vazio = cookie base64 sem assinatura

	viper.SetDefault("AUDIT_ENABLED", false)
	viper.SetDefault("AUDIT_RETENTION_DAYS", 30)
	viper.SetDefault("AUDIT_PRUNE_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
