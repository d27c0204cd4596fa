package config

import (
	"fmt"
	"strings"
	"time"

	"conduit-api/models"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	App struct {
		Name string
		Port string
	}
	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		Secret          string
		ExpirationHours int
	}
}

var (
	AppConfig     *Config
	JWTSecret     []byte
	JWTExpiration time.Duration
)

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("app.name", "conduit-api")
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.name", "conduit")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("jwt.secret", "change-this-in-production")
	viper.SetDefault("jwt.expirationhours", 24)

	// Environment variables override file values, e.g. JWT_SECRET, DATABASE_HOST
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("no config file found, using defaults and environment")
	}

	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatal().Err(err).Msg("unable to decode config")
	}

	JWTSecret = []byte(AppConfig.JWT.Secret)
	JWTExpiration = time.Duration(AppConfig.JWT.ExpirationHours) * time.Hour
}

func InitDB() *gorm.DB {
	c := AppConfig.Database
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the services map to conflicts
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(&models.User{}, &models.Article{}, &models.Tag{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	return db
}
