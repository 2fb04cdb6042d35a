package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-sign/app"
	"github.com/anyproto/any-sign/app/logger"
	"github.com/anyproto/any-sign/metric"
	"github.com/anyproto/any-sign/signingservice"
)

const CName = "config"

var log = logger.NewNamed(CName)

func NewFromFile(path string) (c *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (c *Config, err error) {
	c = &Config{}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("can't parse config: %w", err)
	}
	return
}

type Config struct {
	Log     logger.Config         `yaml:"log"`
	Metric  metric.Config         `yaml:"metric"`
	Signing signingservice.Config `yaml:"signing"`
}

func (c *Config) Init(a *app.App) (err error) {
	log.Info("config loaded",
		zap.String("algorithm", c.Signing.Algorithm),
		zap.Bool("hasKey", c.Signing.PrivateKey != ""),
		zap.String("metricAddr", c.Metric.Addr),
	)
	return
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetLogging() logger.Config {
	return c.Log
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetSigning() signingservice.Config {
	return c.Signing
}
