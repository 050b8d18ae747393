package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"gopkg.in/yaml.v2"
)

var (
	ErrMissingQueueURL = errors.New("aws.url is required")
	ErrMissingRegion   = errors.New("aws.region is required")
	ErrBadLogLevel     = errors.New("unknown logLevel")
)

type Config struct {
	Aws         *AWSsqsConfig `yaml:"aws"`
	Queue       QueueConfig   `yaml:"queue"`
	LogFilePath string        `yaml:"logFile"`
	LogLevel    string        `yaml:"logLevel"`
	InputPath   string        `yaml:"inputPath"`
}

type AWSsqsConfig struct {
	QueueUrl     string `yaml:"url"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	ClientId     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	ClientToken  string `yaml:"clientToken"`
}

// QueueConfig tunes how lists are drained from and published to the queue.
type QueueConfig struct {
	WaitTimeSeconds int64  `yaml:"waitTimeSeconds"`
	MaxMessages     int64  `yaml:"maxMessages"`
	IdlePolls       int    `yaml:"idlePolls"`
	GroupId         string `yaml:"groupId"`
}

const (
	DefaultWaitTimeSeconds = 2
	DefaultMaxMessages     = 10
	DefaultIdlePolls       = 1
	DefaultGroupId         = "linkforge"
	DefaultLogLevel        = "info"
)

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse expands environment variables in data, decodes it and fills in
// defaults.
func Parse(data []byte) (*Config, error) {
	// Substitute from environemental vars
	confContent := []byte(os.ExpandEnv(string(data)))

	config := &Config{}

	err := yaml.Unmarshal(confContent, config)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.setDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.Queue.WaitTimeSeconds <= 0 {
		c.Queue.WaitTimeSeconds = DefaultWaitTimeSeconds
	}
	if c.Queue.WaitTimeSeconds > 20 {
		c.Queue.WaitTimeSeconds = 20
	}
	if c.Queue.MaxMessages <= 0 || c.Queue.MaxMessages > 10 {
		c.Queue.MaxMessages = DefaultMaxMessages
	}
	if c.Queue.IdlePolls <= 0 {
		c.Queue.IdlePolls = DefaultIdlePolls
	}
	if c.Queue.GroupId == "" {
		c.Queue.GroupId = DefaultGroupId
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) validate() error {
	if c.Aws == nil || c.Aws.QueueUrl == "" {
		return ErrMissingQueueURL
	}
	if c.Aws.Region == "" {
		return ErrMissingRegion
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (log15.Lvl, error) {
	lvl, err := log15.LvlFromString(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrBadLogLevel, c.LogLevel)
	}
	return lvl, nil
}
