package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "NOVA"

	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Agent   AgentConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Storage.ensurePaths()
	return &cfg, nil
}

type AppConfig struct {
	Env      string `envconfig:"NOVA_APP_ENV" default:"dev"`
	Port     string `envconfig:"NOVA_APP_PORT" default:"8080"`
	LogLevel string `envconfig:"NOVA_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig locates the flat JSON documents on local disk. Unset paths
// resolve relative to DataDir so a single variable relocates everything.
type StorageConfig struct {
	DataDir          string `envconfig:"NOVA_DATA_DIR" default:"data"`
	CatalogPath      string `envconfig:"NOVA_CATALOG_PATH"`
	OrdersPath       string `envconfig:"NOVA_ORDERS_PATH"`
	TutorContentPath string `envconfig:"NOVA_TUTOR_CONTENT_PATH"`
	CoffeeOrderPath  string `envconfig:"NOVA_COFFEE_ORDER_PATH"`
	WellnessLogPath  string `envconfig:"NOVA_WELLNESS_LOG_PATH"`
}

func (s *StorageConfig) ensurePaths() {
	if s.CatalogPath == "" {
		s.CatalogPath = filepath.Join(s.DataDir, "products.json")
	}
	if s.OrdersPath == "" {
		s.OrdersPath = filepath.Join(s.DataDir, "orders.json")
	}
	if s.TutorContentPath == "" {
		s.TutorContentPath = filepath.Join(s.DataDir, "tutor_content.json")
	}
	if s.CoffeeOrderPath == "" {
		s.CoffeeOrderPath = filepath.Join(s.DataDir, "order_summary.json")
	}
	if s.WellnessLogPath == "" {
		s.WellnessLogPath = filepath.Join(s.DataDir, "wellness_log.json")
	}
}

type AgentConfig struct {
	Currency       string `envconfig:"NOVA_CURRENCY" default:"INR"`
	CurrencySymbol string `envconfig:"NOVA_CURRENCY_SYMBOL" default:"₹"`
	ListLimit      int    `envconfig:"NOVA_LIST_LIMIT" default:"10"`
	HistoryLimit   int    `envconfig:"NOVA_HISTORY_LIMIT" default:"5"`
}
