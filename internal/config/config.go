package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	appDir     = "captioner"
	envPrefix  = "CAPTIONER"

	KeyViewerCommand     = "viewer.command"
	KeyViewerArgs        = "viewer.args"
	KeyOutputType        = "output.type"
	KeyOutputName        = "output.name"
	KeyGalleryExtensions = "gallery.extensions"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyLogFile           = "log.file"
)

type Config struct {
	Viewer  ViewerConfig
	Output  OutputConfig
	Gallery GalleryConfig
	Log     LogConfig
	// File is the config file that was read, empty when none was found.
	File string
}

type ViewerConfig struct {
	Command string
	Args    []string
}

type OutputConfig struct {
	Type string
	Name string
}

type GalleryConfig struct {
	Extensions []string
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads $XDG_CONFIG_HOME/captioner/config.toml (or explicitPath),
// CAPTIONER_* environment variables and any flags already bound to v.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper, explicitPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault(KeyOutputType, "csv")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		Viewer: ViewerConfig{
			Command: v.GetString(KeyViewerCommand),
			Args:    v.GetStringSlice(KeyViewerArgs),
		},
		Output: OutputConfig{
			Type: v.GetString(KeyOutputType),
			Name: v.GetString(KeyOutputName),
		},
		Gallery: GalleryConfig{
			Extensions: v.GetStringSlice(KeyGalleryExtensions),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   v.GetString(KeyLogFile),
		},
		File: v.ConfigFileUsed(),
	}, nil
}
