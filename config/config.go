package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port        int    `mapstructure:"port"`
	LogLevel    string `mapstructure:"log_level"`
	Output      string `mapstructure:"output"`
	ColumnWidth int    `mapstructure:"column_width"`
	BatchesFile string `mapstructure:"batches_file"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("output", "text")
	v.SetDefault("column_width", 10)
	v.SetDefault("batches_file", "")
}

// Load reads cfgFile, or config.yaml from the working directory when cfgFile is empty.
// A missing config.yaml is not an error. FCFS_* environment variables override the file.
func Load(v *viper.Viper, cfgFile string) (*SchedulerConfig, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	v.SetEnvPrefix("fcfs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &SchedulerConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", config.Port)
	}
	if config.ColumnWidth <= 0 {
		return nil, fmt.Errorf("column width must be positive, got %d", config.ColumnWidth)
	}
	return config, nil
}
