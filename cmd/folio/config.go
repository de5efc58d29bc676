package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmaulika/folio"
	"github.com/rmaulika/folio/content"
)

// cliConfig is everything the commands read from flags, FOLIO_* variables
// and folio.yaml, in that order of precedence.
type cliConfig struct {
	Site      folio.SiteConfig `mapstructure:",squash"`
	StaticDir string           `mapstructure:"static_dir"`
	Content   string           `mapstructure:"content"`
}

var (
	cfgFile string
	v       *viper.Viper
	cfg     cliConfig
)

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default is ./folio.yaml)")
	f.String("url", "", "canonical site URL")
	f.String("name", "", "site name (default: the profile name)")
	f.String("static-dir", "public", "directory served under /public")
	f.String("content", "", "YAML file with records to render instead of the built-in ones")
	f.Bool("wasm", false, "load the WebAssembly client")
	f.String("log-level", "info", "debug, info, warn, error or off")
}

func initializeConfig(cmd *cobra.Command) error {
	v = viper.New()

	v.SetDefault("name", "")
	v.SetDefault("url", "")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("wasm", false)
	v.SetDefault("nav_rate_limit", 60)
	v.SetDefault("static_dir", "public")
	v.SetDefault("content", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Printf("using config file %s", v.ConfigFileUsed())
	}

	flags := map[string]string{
		"url":        "url",
		"name":       "name",
		"static_dir": "static-dir",
		"content":    "content",
		"wasm":       "wasm",
		"log_level":  "log-level",
	}
	for key, flag := range flags {
		if fl := cmd.Flags().Lookup(flag); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	if fl := cmd.Flags().Lookup("addr"); fl != nil {
		if err := v.BindPFlag("addr", fl); err != nil {
			return fmt.Errorf("bind --addr: %w", err)
		}
	}

	cfg = cliConfig{}
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// loadStore returns the configured records: the --content file when set,
// the built-in ones otherwise.
func loadStore(c cliConfig) (*content.Store, error) {
	if c.Content == "" {
		return content.Default(), nil
	}
	return content.LoadFile(c.Content)
}

// newApp builds the app from c.
func newApp(c cliConfig) (*folio.App, error) {
	store, err := loadStore(c)
	if err != nil {
		return nil, err
	}
	return folio.New(c.Site,
		folio.WithStaticDir(c.StaticDir),
		folio.WithContent(store),
	), nil
}

// watchPaths lists the inputs of a build: the static dir, the content file
// and the config file.
func watchPaths(c cliConfig) []string {
	paths := []string{c.StaticDir}
	if c.Content != "" {
		paths = append(paths, c.Content)
	}
	if used := v.ConfigFileUsed(); used != "" {
		paths = append(paths, used)
	}
	return paths
}
