package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// OutputConfig holds the destinations for the file exports.
type OutputConfig struct {
	// JSONPath is where the JSON export is written.
	JSONPath string `mapstructure:"json_path"`
	// XMLPath is where the XML export is written.
	XMLPath string `mapstructure:"xml_path"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `mapstructure:"level"`
}

// Config wraps the configuration for the transport-registry binary.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// envBindings defines how environment variables map to configuration keys
// used by Viper. When loading, any variable that is set overrides the value
// from the config file.
var envBindings = map[string]string{
	"output.json_path": "REGISTRY_OUTPUT_JSON_PATH",
	"output.xml_path":  "REGISTRY_OUTPUT_XML_PATH",
	"log.level":        "REGISTRY_LOG_LEVEL",
}

// Load loads the config from the file path, falling back to env vars and
// defaults if the file does not exist. If the file exists, any env vars that
// are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	// If the config file exists, we continue to read it, otherwise we fall
	// back to using environment variables and defaults.
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables and defaults
// alone.
func LoadEnv() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.json_path", "transport_data.json")
	v.SetDefault("output.xml_path", "transport_data.xml")
	v.SetDefault("log.level", "info")
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}

	return nil
}
