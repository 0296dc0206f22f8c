package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgCatalog     ConfigCatalog `yaml:"catalog"`
	CfgKafka       ConfigKafka   `yaml:"kafka"`
	RedisAddr      string        `yaml:"redis_addr"`
	CartStorageKey string        `yaml:"cart_storage_key"`
	ServerPort     string        `yaml:"srv_port"`
}

type ConfigCatalog struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
