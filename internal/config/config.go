package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Square     Square     `mapstructure:",squash"`
	OpenAI     OpenAI     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	SquareSync SquareSync `mapstructure:",squash"`
	Analytics  Analytics  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// Fuso usado para converter timestamps de pedidos do POS em datas
	// de calendário do negócio.
	BusinessTimezone string `mapstructure:"business_timezone"`
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

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Square struct {
	BaseURL     string `mapstructure:"square_base_url"`
	AppID       string `mapstructure:"square_app_id"`
	AppSecret   string `mapstructure:"square_app_secret"`
	RedirectURI string `mapstructure:"square_redirect_uri"`
}

type OpenAI struct {
	BaseURL string `mapstructure:"openai_base_url"`
	APIKey  string `mapstructure:"openai_api_key"`
	Model   string `mapstructure:"openai_model"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	Version string `mapstructure:"meta_version"`
	URL     string `mapstructure:"-"`
}

type SquareSync struct {
	CronSchedule        string `mapstructure:"square_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"square_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"square_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"square_sync_enabled"`
}

type Analytics struct {
	LookbackDays  int `mapstructure:"analytics_lookback_days"`
	TrendDays     int `mapstructure:"analytics_trend_days"`
	MaxActive     int `mapstructure:"suggestions_max_active"`
	StaleAfterDay int `mapstructure:"suggestions_stale_after_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("BUSINESS_TIMEZONE", "Australia/Brisbane")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketer")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("SQUARE_BASE_URL", "https://connect.squareup.com")
	viper.SetDefault("SQUARE_APP_ID", "your_app_id")
	viper.SetDefault("SQUARE_APP_SECRET", "your_app_secret")
	viper.SetDefault("SQUARE_REDIRECT_URI", "http://localhost:3000/settings/sales")

	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_API_KEY", "your_api_key")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	// Sincronização diária com o Square (além do refresh manual)
	viper.SetDefault("SQUARE_SYNC_CRON", "0 4 * * *")
	viper.SetDefault("SQUARE_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("SQUARE_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SQUARE_SYNC_ENABLED", false)

	viper.SetDefault("ANALYTICS_LOOKBACK_DAYS", 30)
	viper.SetDefault("ANALYTICS_TREND_DAYS", 14)
	viper.SetDefault("SUGGESTIONS_MAX_ACTIVE", 5)
	viper.SetDefault("SUGGESTIONS_STALE_AFTER_DAYS", 30)
}

func NewConfig() (*Config, error) {
	// Carrega o .env antes do viper para ambientes locais
	loadEnvFile()

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
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
