// Package config loads grains settings from flags, GRAINS_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/zikhan/grains/actors"
	"github.com/zikhan/grains/internal/logging"
)

const (
	EnvPrefix = "GRAINS"

	BackendMemory    = "memory"
	BackendCassandra = "cassandra"
)

// Flag names. Each maps onto the configuration key in flagKeys.
const (
	FlagConfig            = "config"
	FlagStore             = "store"
	FlagCassandraHosts    = "cassandra-hosts"
	FlagCassandraKeyspace = "cassandra-keyspace"
	FlagCassandraTimeout  = "cassandra-timeout"
	FlagAskTimeout        = "ask-timeout"
	FlagMailboxSize       = "mailbox-size"
	FlagLogLevel          = "log-level"
	FlagLogDevelopment    = "log-development"
)

var flagKeys = map[string]string{
	FlagStore:             "store.backend",
	FlagCassandraHosts:    "store.cassandra.hosts",
	FlagCassandraKeyspace: "store.cassandra.keyspace",
	FlagCassandraTimeout:  "store.cassandra.timeout",
	FlagAskTimeout:        "runtime.askTimeout",
	FlagMailboxSize:       "runtime.mailboxSize",
	FlagLogLevel:          "log.level",
	FlagLogDevelopment:    "log.development",
}

type Config struct {
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	Runtime RuntimeConfig `mapstructure:"runtime" yaml:"runtime"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type StoreConfig struct {
	// Backend is "memory" or "cassandra".
	Backend   string          `mapstructure:"backend" yaml:"backend"`
	Cassandra CassandraConfig `mapstructure:"cassandra" yaml:"cassandra"`
}

type CassandraConfig struct {
	Hosts       []string      `mapstructure:"hosts" yaml:"hosts"`
	Keyspace    string        `mapstructure:"keyspace" yaml:"keyspace"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Consistency string        `mapstructure:"consistency" yaml:"consistency,omitempty"`
}

type RuntimeConfig struct {
	// AskTimeout bounds every ask; zero disables the bound.
	AskTimeout  time.Duration `mapstructure:"askTimeout" yaml:"askTimeout"`
	MailboxSize int           `mapstructure:"mailboxSize" yaml:"mailboxSize"`
}

type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("store.cassandra.hosts", []string{})
	v.SetDefault("store.cassandra.keyspace", "grains")
	v.SetDefault("store.cassandra.timeout", 3*time.Second)
	v.SetDefault("store.cassandra.consistency", "")
	v.SetDefault("runtime.askTimeout", time.Duration(0))
	v.SetDefault("runtime.mailboxSize", actors.DefaultMailboxSize)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// BindFlags registers the configuration flags on flags.
func BindFlags(flags *pflag.FlagSet) {
	flags.String(FlagConfig, "", "path to a YAML configuration file")
	flags.String(FlagStore, BackendMemory, "state store backend (memory|cassandra)")
	flags.StringSlice(FlagCassandraHosts, nil, "cassandra contact points")
	flags.String(FlagCassandraKeyspace, "grains", "cassandra keyspace holding grain state")
	flags.Duration(FlagCassandraTimeout, 3*time.Second, "cassandra request timeout")
	flags.Duration(FlagAskTimeout, 0, "bound on every actor ask, 0 for none")
	flags.Int(FlagMailboxSize, actors.DefaultMailboxSize, "queued operations per activation")
	flags.String(FlagLogLevel, "info", "log level (error|warn|info|debug|trace)")
	flags.Bool(FlagLogDevelopment, false, "human readable development logging")
}

// Load resolves the configuration. flags may be nil, in which case only the
// environment and defaults apply.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if path, err := flags.GetString(FlagConfig); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendCassandra:
		if len(c.Store.Cassandra.Hosts) == 0 {
			return fmt.Errorf("store.cassandra.hosts is required for the cassandra backend")
		}
		if c.Store.Cassandra.Keyspace == "" {
			return fmt.Errorf("store.cassandra.keyspace is required for the cassandra backend")
		}
		if c.Store.Cassandra.Timeout < 0 {
			return fmt.Errorf("store.cassandra.timeout must be >= 0, got %s", c.Store.Cassandra.Timeout)
		}
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q",
			BackendMemory, BackendCassandra, c.Store.Backend)
	}
	if c.Runtime.AskTimeout < 0 {
		return fmt.Errorf("runtime.askTimeout must be >= 0, got %s", c.Runtime.AskTimeout)
	}
	if c.Runtime.MailboxSize < 0 {
		return fmt.Errorf("runtime.mailboxSize must be >= 0, got %d", c.Runtime.MailboxSize)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	return nil
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c *Config) NewLogger() (logr.Logger, error) {
	return logging.NewLogger(c.Log.Level, c.Log.Development)
}

func (c *Config) NewPersistenceProvider() actors.PersistenceProvider {
	if c.Store.Backend == BackendCassandra {
		return actors.NewCassandraPersistenceProvider(actors.CassandraConfig{
			Hosts:       c.Store.Cassandra.Hosts,
			Keyspace:    c.Store.Cassandra.Keyspace,
			Timeout:     c.Store.Cassandra.Timeout,
			Consistency: c.Store.Cassandra.Consistency,
		})
	}
	return actors.NewPersistenceProvider()
}

// RuntimeOptions builds the options for actors.NewRuntime.
func (c *Config) RuntimeOptions(
	logger logr.Logger,
	sink actors.Sink,
	registerer prometheus.Registerer,
) actors.Options {
	return actors.Options{
		Persistence: c.NewPersistenceProvider(),
		Sink:        sink,
		Logger:      logger,
		Registerer:  registerer,
		MailboxSize: c.Runtime.MailboxSize,
		AskTimeout:  c.Runtime.AskTimeout,
	}
}
