package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aaronzipp/life-total/internal/game"
	"github.com/aaronzipp/life-total/internal/models"
)

// EnvPrefix prefixes every environment override, e.g. LIFE_TOTAL_SERVER_PORT
const EnvPrefix = "LIFE_TOTAL"

// Config is the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Table   TableConfig   `mapstructure:"table"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port for the listener
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TableConfig is the settings a new session starts with
type TableConfig struct {
	PlayerCount      int    `mapstructure:"player_count"`
	StartingLife     int    `mapstructure:"starting_life"`
	CommanderFormat  bool   `mapstructure:"commander_format"`
	LifeLinkEnabled  bool   `mapstructure:"life_link_enabled"`
	FivePlayerLayout string `mapstructure:"five_player_layout"`
}

// GameSettings converts the table defaults into game settings
func (t TableConfig) GameSettings() models.GameSettings {
	return models.GameSettings{
		PlayerCount:      t.PlayerCount,
		StartingLife:     t.StartingLife,
		CommanderFormat:  t.CommanderFormat,
		LifeLinkEnabled:  t.LifeLinkEnabled,
		FivePlayerLayout: models.FivePlayerLayout(t.FivePlayerLayout),
	}
}

// SessionConfig controls how long idle tables are kept
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	CookieName    string        `mapstructure:"cookie_name"`
	SecureCookie  bool          `mapstructure:"secure_cookie"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	Output string        `mapstructure:"output"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig controls rotated log files
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Loader reads configuration and keeps the current value for hot reload
type Loader struct {
	v   *viper.Viper
	mu  sync.RWMutex
	cfg *Config
}

// Load reads .env (if present), an optional config file and environment
// overrides. An empty path searches ./config and . for config.yaml.
func Load(configPath string) (*Loader, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	return &Loader{v: v, cfg: cfg}, nil
}

// Get returns the current configuration
func (l *Loader) Get() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Watch reloads the config file when it changes. Invalid edits are reported
// through onError and the previous configuration stays in effect.
func (l *Loader) Watch(onChange func(*Config), onError func(error)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := decode(l.v)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}

		l.mu.Lock()
		l.cfg = cfg
		l.mu.Unlock()

		if onChange != nil {
			onChange(cfg)
		}
	})
	l.v.WatchConfig()
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would produce a broken table or server
func (c *Config) Validate() error {
	t := c.Table
	if t.PlayerCount < game.MinPlayers || t.PlayerCount > game.MaxPlayers {
		return fmt.Errorf("table.player_count must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, t.PlayerCount)
	}
	if t.StartingLife <= 0 {
		return fmt.Errorf("table.starting_life must be positive, got %d", t.StartingLife)
	}
	if !models.FivePlayerLayout(t.FivePlayerLayout).Valid() {
		return fmt.Errorf("table.five_player_layout must be %q or %q, got %q", models.LayoutThreeVsTwo, models.LayoutTwoTwoOne, t.FivePlayerLayout)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	defaults := game.DefaultSettings()
	v.SetDefault("table.player_count", defaults.PlayerCount)
	v.SetDefault("table.starting_life", defaults.StartingLife)
	v.SetDefault("table.commander_format", defaults.CommanderFormat)
	v.SetDefault("table.life_link_enabled", defaults.LifeLinkEnabled)
	v.SetDefault("table.five_player_layout", string(defaults.FivePlayerLayout))

	v.SetDefault("session.ttl", "12h")
	v.SetDefault("session.sweep_interval", "10m")
	v.SetDefault("session.cookie_name", "table_id")
	v.SetDefault("session.secure_cookie", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.filename", "life-total.log")
	v.SetDefault("log.file.max_size", 50)
	v.SetDefault("log.file.max_age", 14)
	v.SetDefault("log.file.max_backups", 5)
	v.SetDefault("log.file.compress", true)
}

// TableDefaults returns the settings new tables start with
func (l *Loader) TableDefaults() models.GameSettings {
	return l.Get().Table.GameSettings()
}
