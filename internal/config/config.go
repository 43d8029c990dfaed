// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for trainer.
type Config struct {
	APIURL        string `mapstructure:"api_url" yaml:"api_url"`
	Timeout       string `mapstructure:"timeout" yaml:"timeout"`
	DataDir       string `mapstructure:"data_dir" yaml:"data_dir"`
	ExportDir     string `mapstructure:"export_dir" yaml:"export_dir"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	CameraDevice  int    `mapstructure:"camera_device" yaml:"camera_device"`
	MirrorPreview bool   `mapstructure:"mirror_preview" yaml:"mirror_preview"`
	SaveDraft     bool   `mapstructure:"save_draft" yaml:"save_draft"`
	Archive       bool   `mapstructure:"archive" yaml:"archive"`
}

// keys lists every setting with its default, in the order they are bound
// to TRAINER_* variables.
var keys = []struct {
	name string
	def  any
}{
	{"api_url", "http://localhost/api"},
	{"timeout", "0s"},
	{"data_dir", ".trainer"},
	{"export_dir", "."},
	{"log_level", "info"},
	{"log_file", ""},
	{"camera_device", 0},
	{"mirror_preview", false},
	{"save_draft", false},
	{"archive", true},
}

// EnvFile is the dotenv file read from the working directory.
const EnvFile = ".env"

// Load loads configuration with full precedence:
// CLI flags > ENV vars (.env included) > project config > XDG global config > defaults
func Load() (*Config, error) {
	if err := loadDotEnv(EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("trainer")

	for _, k := range keys {
		v.SetDefault(k.name, k.def)
	}

	v.SetEnvPrefix("TRAINER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k.name, "TRAINER_"+strings.ToUpper(k.name)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", k.name, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if !fileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded environment from %s", path)
	return nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	for _, k := range keys {
		v.SetDefault(k.name, k.def)
	}
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks values that would otherwise fail later and far from the
// config file.
func (c *Config) Validate() error {
	var errs []error
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url %q is not an absolute URL", c.APIURL))
	}
	if _, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	if c.CameraDevice < 0 {
		errs = append(errs, fmt.Errorf("camera_device must not be negative, got %d", c.CameraDevice))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir must be set"))
	}
	return errors.Join(errs...)
}

// RequestTimeout parses Timeout. Empty and zero mean no timeout.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout %q must not be negative", c.Timeout)
	}
	return d, nil
}

// ExportPath returns the path for an exported file name.
func (c *Config) ExportPath(name string) string {
	dir := c.ExportDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns ~/.config/trainer/trainer.yml or
// $XDG_CONFIG_HOME/trainer/trainer.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trainer", "trainer.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "trainer", "trainer.yml")
}

// ProjectPath returns ./trainer.yml.
func ProjectPath() string {
	return "trainer.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
