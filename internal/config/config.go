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

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Dataset  Dataset  `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source          string `mapstructure:"dataset_source"`
	StartupPath     string `mapstructure:"startup_data_path"`
	CompetitorsPath string `mapstructure:"competitors_data_path"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.SetDefault("DATASET_SOURCE", SourceFile)
	v.SetDefault("STARTUP_DATA_PATH", "startup_data.csv")
	v.SetDefault("COMPETITORS_DATA_PATH", "competitors_data.csv")

	// Usado apenas quando DATASET_SOURCE=postgres
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/startups?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
}

func NewConfig() (*Config, error) {
	loadEnvFile()
	return Load(viper.New(), ".env")
}

// Load monta a configuração a partir de defaults, arquivo .env opcional e variáveis de ambiente
func Load(v *viper.Viper, envFile string) (*Config, error) {
	config := &Config{}

	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(envFile)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("Arquivo .env não lido pelo viper, usando apenas variáveis de ambiente")
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Dataset.Source != SourceFile && config.Dataset.Source != SourcePostgres {
		return nil, fmt.Errorf("config: invalid DATASET_SOURCE %q", config.Dataset.Source)
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

// loadEnvFile carrega o .env do diretório atual ou de um dos diretórios pais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível obter o diretório de trabalho")
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.WithField("path", location).Info("Arquivo .env carregado")
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
