package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config carries everything the transports and collaborator clients need.
// Credentials are loaded here once and passed into constructors explicitly;
// nothing below this layer reads the process environment.
type Config struct {
	IPMI      IPMIConfig      `mapstructure:"ipmi"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Fleet     FleetConfig     `mapstructure:"fleet"`
	Log       LogConfig       `mapstructure:"log"`
}

// IPMIConfig configures the three management transports. The same service
// account password is shared by the IPMI CLI, the vendor shell and the
// Redfish endpoint.
type IPMIConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	ProbeTimeout   time.Duration `mapstructure:"probe_timeout"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
	KillGrace      time.Duration `mapstructure:"kill_grace"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	SessionTimeout time.Duration `mapstructure:"session_timeout"`
}

// InventoryConfig points at the fleet inventory service.
type InventoryConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// FleetConfig points at the fleet-status service used for best-effort
// offline notifications.
type FleetConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ConfigureZerolog sets the global log level from the configuration.
func (c *LogConfig) ConfigureZerolog() {
	level := zerolog.InfoLevel
	switch strings.ToLower(c.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(level)
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.oob-cli")
	viper.AddConfigPath("/etc/oob-cli/")

	viper.SetEnvPrefix("OOB")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The BMC service-account password keeps its historical variable name;
	// every network operation requires it.
	viper.BindEnv("ipmi.password", "IPMI_PASSWORD")
	viper.BindEnv("inventory.endpoint")
	viper.BindEnv("inventory.token")
	viper.BindEnv("fleet.endpoint")
	viper.BindEnv("fleet.token")
	viper.BindEnv("log.level")

	viper.SetDefault("ipmi.username", "ADMIN")
	viper.SetDefault("ipmi.probe_timeout", 5*time.Second)
	viper.SetDefault("ipmi.command_timeout", 20*time.Second)
	viper.SetDefault("ipmi.kill_grace", 5*time.Second)
	viper.SetDefault("ipmi.connect_timeout", 10*time.Second)
	viper.SetDefault("ipmi.session_timeout", 60*time.Second)
	viper.SetDefault("inventory.timeout", 10*time.Second)
	viper.SetDefault("fleet.timeout", 5*time.Second)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// RequirePassword verifies the service-account password is present before
// any network operation is attempted.
func (c *Config) RequirePassword() error {
	if c.IPMI.Password == "" {
		return fmt.Errorf("IPMI_PASSWORD is not set")
	}
	return nil
}
