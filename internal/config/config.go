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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Ledger          Ledger          `mapstructure:",squash"`
	Mystic          Mystic          `mapstructure:",squash"`
	LedgerSync      LedgerSync      `mapstructure:",squash"`
	LeaderboardSync LeaderboardSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

// Ledger configura a origem do CSV financeiro e a janela padrão da tendência
type Ledger struct {
	SourceURL   string `mapstructure:"ledger_source_url"`
	TrendWindow int    `mapstructure:"ledger_trend_window"`
}

// Mystic aponta para o serviço externo de RAG (upload de documentos e chat)
type Mystic struct {
	URL         string `mapstructure:"mystic_url"`
	AccessToken string `mapstructure:"mystic_access_token"`
}

type LedgerSync struct {
	CronSchedule string `mapstructure:"ledger_sync_cron"`
	Enabled      bool   `mapstructure:"ledger_sync_enabled"`
}

type LeaderboardSync struct {
	CronSchedule string `mapstructure:"leaderboard_sync_cron"`
	Enabled      bool   `mapstructure:"leaderboard_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marvelhub")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("LEDGER_SOURCE_URL", "http://localhost:3000/data/starkledger_financial_dataset.csv")
	viper.SetDefault("LEDGER_TREND_WINDOW", 6)

	viper.SetDefault("MYSTIC_URL", "http://localhost:8088")
	viper.SetDefault("MYSTIC_ACCESS_TOKEN", "")

	// Recarrega o CSV de origem a cada hora; placar recalculado às 6h
	viper.SetDefault("LEDGER_SYNC_CRON", "0 * * * *")
	viper.SetDefault("LEDGER_SYNC_ENABLED", false)
	viper.SetDefault("LEADERBOARD_SYNC_CRON", "0 6 * * *")
	viper.SetDefault("LEADERBOARD_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Carrega o .env primeiro via godotenv
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado; usando defaults e variáveis de ambiente")
}
