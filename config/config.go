package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/NascimentoLucas/GroceryAPI/models"
	"github.com/NascimentoLucas/GroceryAPI/utils"
)

var DB *gorm.DB

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	SecretsDir string           `mapstructure:"secrets_dir"`
	LogLevel   string           `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Port     string `mapstructure:"port"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ExtractionConfig configures the outbound call to the text-extraction API.
type ExtractionConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Prompt  string        `mapstructure:"prompt"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// BuildInput joins the configured prompt and the caller text. No trimming or
// escaping happens here; the text goes upstream exactly as received.
func (e ExtractionConfig) BuildInput(text string) string {
	return e.Prompt + "\n" + text
}

// Load reads .env, environment variables and the mounted secrets directory
// into one Config. Missing extraction or database settings fail fast here
// rather than on the first request.
func Load() (*Config, error) {
	// .env is a local development convenience; absent in deployment
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.name", "DB_NAME")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.sslmode", "DB_SSLMODE")
	v.BindEnv("extraction.url", "EXTRACTION_URL")
	v.BindEnv("extraction.api_key", "EXTRACTION_API_KEY")
	v.BindEnv("extraction.model", "EXTRACTION_MODEL")
	v.BindEnv("extraction.prompt", "EXTRACTION_PROMPT")
	v.BindEnv("secrets_dir", "SECRETS_DIR")
	v.BindEnv("log_level", "LOG_LEVEL")

	// mounted secrets override env, matching the deployment layering
	if err := LoadFileSecrets(v, v.GetString("secrets_dir")); err != nil {
		return nil, fmt.Errorf("failed to read secrets directory: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("extraction.timeout", "60s")
	v.SetDefault("secrets_dir", "/etc/secrets")
	v.SetDefault("log_level", "info")
}

func validate(cfg *Config) error {
	if cfg.Extraction.URL == "" {
		return fmt.Errorf("extraction url is required")
	}
	if cfg.Extraction.APIKey == "" {
		return fmt.Errorf("extraction api key is required")
	}
	if cfg.Extraction.Model == "" {
		return fmt.Errorf("extraction model is required")
	}
	if cfg.Extraction.Prompt == "" {
		return fmt.Errorf("extraction prompt is required")
	}
	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return fmt.Errorf("database user and name are required")
	}
	return nil
}

// InitDB opens the Postgres connection and migrates the catalog tables.
func InitDB(cfg *Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utils.Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// case-insensitive name columns
	if err = DB.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
		utils.Logger.Fatal("failed to enable citext", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.Food{},
		&models.Ingredient{},
		&models.FoodIngredient{},
	)
	if err != nil {
		utils.Logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
