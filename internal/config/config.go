package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName   = "rfz"
	envPrefix = "RFZ"

	DefaultPreviewMaxBytes int64 = 256 * 1024
	DefaultSyntaxStyle           = "monokai"
	DefaultEditorEnv             = "EDITOR"
	DefaultMimeCommand           = "file --mime-type -b"
	DefaultLogLevel              = "info"
)

type Preview struct {
	MaxBytes    int64  `mapstructure:"max_bytes"`
	SyntaxStyle string `mapstructure:"syntax_style"`
}

type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Config holds every user setting. Missing keys take their defaults.
type Config struct {
	Editor       string   `mapstructure:"editor"`
	EditorEnv    string   `mapstructure:"editor_env"`
	Opener       string   `mapstructure:"opener"`
	MimeCommand  string   `mapstructure:"mime_command"`
	TextPatterns []string `mapstructure:"text_patterns"`
	Preview      Preview  `mapstructure:"preview"`
	Log          Log      `mapstructure:"log"`
}

// Load reads config.yaml from the first directory of SearchDirs that has
// one, then applies RFZ_* environment overrides.
func Load() (*Config, error) {
	return LoadFrom(SearchDirs())
}

// LoadFrom is Load with an explicit directory search list, in lookup
// order. Finding no config file is not an error.
func LoadFrom(dirs []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		if dir != "" {
			v.AddConfigPath(dir)
		}
	}
	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		EditorEnv:   DefaultEditorEnv,
		Opener:      defaultOpener(runtime.GOOS),
		MimeCommand: DefaultMimeCommand,
		Preview: Preview{
			MaxBytes:    DefaultPreviewMaxBytes,
			SyntaxStyle: DefaultSyntaxStyle,
		},
		Log: Log{
			File:  defaultLogFile(),
			Level: DefaultLogLevel,
		},
	}
}

// SearchDirs lists the directories searched for config.yaml, in lookup
// order.
func SearchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, appName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", appName))
	}
	return dirs
}

// Validate rejects settings the program cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Preview.MaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("preview.max_bytes must be positive, got %d", c.Preview.MaxBytes))
	}
	if len(c.MimeCommandArgs()) == 0 {
		errs = append(errs, errors.New("mime_command must not be empty"))
	}
	return errors.Join(errs...)
}

// EditorCommand is the configured editor, falling back to the environment
// variable named by EditorEnv. Empty means no editor is available.
func (c *Config) EditorCommand(getenv func(string) string) string {
	if editor := strings.TrimSpace(c.Editor); editor != "" {
		return editor
	}
	if c.EditorEnv == "" || getenv == nil {
		return ""
	}
	return strings.TrimSpace(getenv(c.EditorEnv))
}

// MimeCommandArgs splits MimeCommand into argv.
func (c *Config) MimeCommandArgs() []string {
	return strings.Fields(c.MimeCommand)
}

// OpenerArgs splits Opener into argv.
func (c *Config) OpenerArgs() []string {
	return strings.Fields(c.Opener)
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("editor", d.Editor)
	v.SetDefault("editor_env", d.EditorEnv)
	v.SetDefault("opener", d.Opener)
	v.SetDefault("mime_command", d.MimeCommand)
	v.SetDefault("text_patterns", []string{})
	v.SetDefault("preview.max_bytes", d.Preview.MaxBytes)
	v.SetDefault("preview.syntax_style", d.Preview.SyntaxStyle)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

func defaultOpener(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

// defaultLogFile lives in the per-user cache directory so users never
// share one log.
func defaultLogFile() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, appName, appName+".log")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%d.log", appName, os.Getuid()))
}
