package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration shared by the solver core and the CLI.
type Config struct {
	Logger *logrus.Logger
	Debug  bool
	Stats  bool
}

// New returns a config with a logger writing to stderr at info level.
func New() *Config {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	return &Config{Logger: logger}
}

// EnableDebug switches the logger to debug level.
func (c *Config) EnableDebug() {
	c.Debug = true
	c.Logger.SetLevel(logrus.DebugLevel)
}
