package app

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config stores runtime configuration, loaded from config.yaml with
// REFQUIZ_-prefixed environment overrides.
type Config struct {
	AppEnv           string        `mapstructure:"APP_ENV"`
	HTTPAddr         string        `mapstructure:"HTTP_ADDR"`
	BankURL          string        `mapstructure:"BANK_URL"`
	BankFile         string        `mapstructure:"BANK_FILE"`
	TotalQuestions   int           `mapstructure:"TOTAL_QUESTIONS"`
	SettleDelay      time.Duration `mapstructure:"SETTLE_DELAY"`
	BankFetchTimeout time.Duration `mapstructure:"BANK_FETCH_TIMEOUT"`
	StaticDir        string        `mapstructure:"STATIC_DIR"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("BANK_URL", "")
	viper.SetDefault("BANK_FILE", "examen_wkf_2026.json")
	viper.SetDefault("TOTAL_QUESTIONS", 20)
	viper.SetDefault("SETTLE_DELAY", "220ms")
	viper.SetDefault("BANK_FETCH_TIMEOUT", "10s")
	viper.SetDefault("STATIC_DIR", "web/static")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("config.yaml not found, using environment variables and defaults")
		} else {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("REFQUIZ")
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
