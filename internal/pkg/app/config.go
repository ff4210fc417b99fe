package app

import (
	"time"

	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host          string
	Port          string
	RateLimit     int
	RateWindowSec int
}

func (c WebConfig) RateWindow() time.Duration {
	return time.Duration(c.RateWindowSec) * time.Second
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type CacheConfig struct {
	FreshnessSec int
}

func (c CacheConfig) Freshness() time.Duration {
	return time.Duration(c.FreshnessSec) * time.Second
}

type LoggingConfig struct {
	Level int
}

type Config struct {
	Web     WebConfig
	DB      DBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

func DefaultConfig() Config {
	return Config{
		Web: WebConfig{
			Host:          "0.0.0.0",
			Port:          "5000",
			RateLimit:     10,
			RateWindowSec: 15,
		},
		Cache: CacheConfig{
			FreshnessSec: 15,
		},
	}
}

func ReadLocalConfig(path string) (Config, error) {
	loader := konf.New()
	if err := loader.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal))); err != nil {
		return Config{}, errors.Wrap(err, "load config file")
	}

	config := DefaultConfig()
	if err := loader.Unmarshal("", &config); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}
