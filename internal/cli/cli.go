package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ParseArgs parses command line arguments into Config. Values are
// layered: explicit flags override environment variables (prefixed
// GEN_BUILDER_), which override the config file, which overrides flag
// defaults.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("gen-builder", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Input, "input", "i", "", "class description file")
	fs.StringVarP(&cfg.OutDir, "out-dir", "o", ".", "output directory for generated sources")
	fs.BoolVarP(&cfg.Watch, "watch", "w", false, "regenerate when the input file changes")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "console", "log format (console, json)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "config file")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("GEN_BUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.Input = v.GetString("input")
	cfg.OutDir = v.GetString("out-dir")
	cfg.Watch = v.GetBool("watch")
	cfg.LogLevel = v.GetString("log-level")
	cfg.LogFormat = v.GetString("log-format")

	if strings.TrimSpace(cfg.Input) == "" {
		return nil, fmt.Errorf("--input is required")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return nil, fmt.Errorf("--out-dir is required")
	}
	return cfg, nil
}
