package sweep

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	// MaxMessages is the number of distinct 12-bit messages.
	MaxMessages = 1 << 12

	// MaxErrorWeight is the highest error weight the code is specified for.
	MaxErrorWeight = 4

	// CodewordBits is the width of the error patterns.
	CodewordBits = 24
)

// Config controls a sweep.
type Config struct {
	// MaxErrors is the highest number of bit errors injected per codeword.
	MaxErrors int `yaml:"maxErrors"`

	// Workers is the number of concurrent decoders.
	Workers int `yaml:"workers"`

	// Messages is the number of messages swept, starting at 0.
	Messages int `yaml:"messages"`

	// MetricsFile receives the sweep metrics in the Prometheus text format.
	MetricsFile string `yaml:"metricsFile"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig sweeps every message with up to 4 errors on all CPUs.
func DefaultConfig() Config {
	return Config{
		MaxErrors: MaxErrorWeight,
		Workers:   runtime.GOMAXPROCS(0),
		Messages:  MaxMessages,
		LogLevel:  "info",
	}
}

// ParseConfig reads YAML on top of the defaults.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, errors.Wrap(err, "sweep: invalid configuration")
	}
	return config, config.Validate()
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(name string) (Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return DefaultConfig(), errors.Wrap(err, "sweep: can't read configuration")
	}
	config, err := ParseConfig(data)
	return config, errors.Wrap(err, name)
}

func (c Config) Validate() error {
	switch {
	case c.MaxErrors < 0 || c.MaxErrors > MaxErrorWeight:
		return errors.Errorf("sweep: maxErrors %d out of range [0, %d]", c.MaxErrors, MaxErrorWeight)
	case c.Workers < 1:
		return errors.Errorf("sweep: need at least 1 worker, got %d", c.Workers)
	case c.Messages < 1 || c.Messages > MaxMessages:
		return errors.Errorf("sweep: messages %d out of range [1, %d]", c.Messages, MaxMessages)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "sweep: logLevel")
	}
	return nil
}
