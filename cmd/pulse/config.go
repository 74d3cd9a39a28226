package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shivam-dubey-byte/SocialPulseAnalytics/internal/model"
)

const (
	defaultSkin       = model.DefaultSkin
	defaultListenAddr = model.DefaultListenAddr
	defaultLogLevel   = "info"
)

// cliConfig is the runtime configuration shared by the terminal and browser
// surfaces.
type cliConfig struct {
	Skin               string `mapstructure:"skin"`
	SkinDir            string `mapstructure:"skin-dir"`
	ListenAddr         string `mapstructure:"listen-addr"`
	LogLevel           string `mapstructure:"log-level"`
	LogPath            string `mapstructure:"log-path"`
	Mouse              bool   `mapstructure:"mouse"`
	ReverseScrollWheel bool   `mapstructure:"reverse-scroll-wheel"`
	ConfigPath         string `mapstructure:"-"` // not from config file
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"skin":      "skin",
	"log-level": "log-level",
	"listen":    "listen-addr",
}

func loadConfig(configPath string, flags *pflag.FlagSet) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("PULSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("skin-dir", filepath.Join(home, ".config", "pulse", "skins"))
	v.SetDefault("listen-addr", defaultListenAddr)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-path", filepath.Join(home, ".local", "state", "pulse", "pulse.log"))
	v.SetDefault("mouse", true)
	v.SetDefault("reverse-scroll-wheel", false)

	if flags != nil {
		for name, key := range flagKeys {
			// Only explicitly set flags override file and env values.
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "pulse", "config.yml"))
	}

	found := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
		found = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if found {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	cfg.SkinDir = expandHome(cfg.SkinDir, home)
	cfg.LogPath = expandHome(cfg.LogPath, home)

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	return cfg, nil
}

// expandHome expands a leading ~/ in path.
func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
