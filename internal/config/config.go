package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kubev2v/threadpool/internal/workload"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Pool Server Workload

const EnvPrefix = "THREADPOOL"

type Configuration struct {
	Pool      Pool     `mapstructure:"pool" debugmap:"visible"`
	Server    Server   `mapstructure:"server" debugmap:"visible"`
	Workload  Workload `mapstructure:"workload" debugmap:"visible"`
	LogFormat string   `mapstructure:"log-format" debugmap:"visible" default:"console"`
	LogLevel  string   `mapstructure:"log-level" debugmap:"visible" default:"info"`
}

type Pool struct {
	Workers int `mapstructure:"workers" debugmap:"visible" default:"4"`
}

type Server struct {
	ServerMode      string        `mapstructure:"server-mode" debugmap:"visible" default:"dev"`
	HTTPPort        int           `mapstructure:"http-port" debugmap:"visible" default:"8080"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" debugmap:"visible" default:"10s"`
}

type Workload struct {
	Jobs        int           `mapstructure:"jobs" debugmap:"visible" default:"100"`
	JobDuration time.Duration `mapstructure:"job-duration" debugmap:"visible" default:"10ms"`
	FailRate    float64       `mapstructure:"fail-rate" debugmap:"visible" default:"0"`
	PanicRate   float64       `mapstructure:"panic-rate" debugmap:"visible" default:"0"`
	Retries     uint          `mapstructure:"retries" debugmap:"visible" default:"3"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"workers":          "pool.workers",
	"server-mode":      "server.server-mode",
	"http-port":        "server.http-port",
	"shutdown-timeout": "server.shutdown-timeout",
	"jobs":             "workload.jobs",
	"job-duration":     "workload.job-duration",
	"fail-rate":        "workload.fail-rate",
	"panic-rate":       "workload.panic-rate",
	"retries":          "workload.retries",
	"log-format":       "log-format",
	"log-level":        "log-level",
}

// NewViper returns a viper instance reading THREADPOOL_* environment variables,
// e.g. THREADPOOL_POOL_WORKERS for pool.workers.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known flag of fs to its configuration key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("failed to bind flag %q: %w", f.Name, bindErr)
		}
	})
	return err
}

// Load builds the configuration from defaults, the optional config file,
// the environment and the bound flags, in increasing order of precedence.
func Load(v *viper.Viper, configFile string) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	// keys only present in the environment are unknown to viper until registered
	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %q: %w", key, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate() error {
	if c.Pool.Workers < 1 {
		return fmt.Errorf("invalid pool.workers %d: must be at least 1", c.Pool.Workers)
	}
	if c.Server.ServerMode != "dev" && c.Server.ServerMode != "prod" {
		return fmt.Errorf("invalid server.server-mode %q: must be 'dev' or 'prod'", c.Server.ServerMode)
	}
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid server.http-port %d", c.Server.HTTPPort)
	}
	if c.Workload.Jobs < 0 {
		return fmt.Errorf("invalid workload.jobs %d: must not be negative", c.Workload.Jobs)
	}
	if c.Workload.JobDuration < 0 {
		return fmt.Errorf("invalid workload.job-duration %s", c.Workload.JobDuration)
	}
	if c.Workload.FailRate < 0 || c.Workload.FailRate > 1 {
		return fmt.Errorf("invalid workload.fail-rate %v: must be in [0, 1]", c.Workload.FailRate)
	}
	if c.Workload.PanicRate < 0 || c.Workload.PanicRate > 1 {
		return fmt.Errorf("invalid workload.panic-rate %v: must be in [0, 1]", c.Workload.PanicRate)
	}
	if c.Workload.Retries > workload.MaxRetries {
		return fmt.Errorf("invalid workload.retries %d: must be at most %d", c.Workload.Retries, workload.MaxRetries)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'console' or 'json'", c.LogFormat)
	}
	return nil
}
