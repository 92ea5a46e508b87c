package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type RiskConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	RiskDB       `yaml:"risk_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Provider     `yaml:"validation-provider"`
	Scheduler    `yaml:"scheduler"`
	Processor    `yaml:"processor"`
	Risk         `yaml:"risk"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RiskDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Provider struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key" env:"VALIDATION_PROVIDER_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env-default:"3s"`
}

type Scheduler struct {
	TickInterval time.Duration `yaml:"tick_interval" env-default:"15m"`
}

type Processor struct {
	BatchSize     int           `yaml:"batch_size" env-default:"10"`
	DrainInterval time.Duration `yaml:"drain_interval" env-default:"15s"`
}

type Risk struct {
	AmbiguousLow       float64 `yaml:"ambiguous_low" env-default:"35"`
	AmbiguousHigh      float64 `yaml:"ambiguous_high" env-default:"65"`
	HighValueThreshold float64 `yaml:"high_value_threshold" env-default:"1000"`
}

func MustLoad() *RiskConfig {

	// Processing env config variable and file
	configPath := os.Getenv("RISK_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("RISK_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RiskConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
