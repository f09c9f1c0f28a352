package store

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath            = "~/.memo.db"
	defaultSettleDelay     = 400 * time.Millisecond
	defaultSavingIndicator = 600 * time.Millisecond
)

// Config describes where memo state lives and how the session behaves.
type Config interface {
	BasePath() string
	SettleDelay() time.Duration
	SavingIndicator() time.Duration
	CaseSensitiveSearch() bool
	LogLevel() string
	LogDevelopment() bool
}

// LoadConfig reads .memo.yaml from $MEMO_CONFIG_PATH or the working
// directory, with MEMO_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("settleDelay", defaultSettleDelay)
	v.SetDefault("savingIndicator", defaultSavingIndicator)
	v.SetDefault("search.caseSensitive", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetConfigName(".memo") // .yaml is implicit
	v.SetEnvPrefix("MEMO")
	v.AutomaticEnv()

	if override := os.Getenv("MEMO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	return &fileConfig{
		Path:           path,
		Settle:         v.GetDuration("settleDelay"),
		Saving:         v.GetDuration("savingIndicator"),
		CaseSensitive:  v.GetBool("search.caseSensitive"),
		Level:          v.GetString("log.level"),
		Development:    v.GetBool("log.development"),
		ConfigFileUsed: v.ConfigFileUsed(),
	}, nil
}

// StaticConfig is a Config with fixed values, for tests and embedding.
type StaticConfig struct {
	Path string
}

func (s StaticConfig) BasePath() string               { return s.Path }
func (s StaticConfig) SettleDelay() time.Duration     { return defaultSettleDelay }
func (s StaticConfig) SavingIndicator() time.Duration { return defaultSavingIndicator }
func (s StaticConfig) CaseSensitiveSearch() bool      { return false }
func (s StaticConfig) LogLevel() string               { return "warn" }
func (s StaticConfig) LogDevelopment() bool           { return false }

type fileConfig struct {
	Path           string        `json:"path"`
	Settle         time.Duration `json:"settleDelay"`
	Saving         time.Duration `json:"savingIndicator"`
	CaseSensitive  bool          `json:"caseSensitive"`
	Level          string        `json:"logLevel"`
	Development    bool          `json:"logDevelopment"`
	ConfigFileUsed string        `json:"configFile,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) SettleDelay() time.Duration {
	return f.Settle
}

func (f *fileConfig) SavingIndicator() time.Duration {
	return f.Saving
}

func (f *fileConfig) CaseSensitiveSearch() bool {
	return f.CaseSensitive
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogDevelopment() bool {
	return f.Development
}

// ConfigFile returns the config file that was read, if any.
func ConfigFile(c Config) string {
	if f, ok := c.(*fileConfig); ok {
		return f.ConfigFileUsed
	}
	return ""
}
