package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BookingWidget/internal/domain"
	"github.com/m04kA/SMC-BookingWidget/pkg/types"
)

// Драйверы хранилища записей
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Widget   WidgetConfig   `toml:"widget"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Events   EventsConfig   `toml:"events"`
}

// ServerConfig HTTP сервер (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig метрики Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// WidgetConfig поведение виджета бронирования
type WidgetConfig struct {
	Locale    string   `toml:"locale"`
	TimeSlots []string `toml:"time_slots"`
	// RevalidateOnConfirm повторно проверяет занятость слота при подтверждении
	RevalidateOnConfirm bool `toml:"revalidate_on_confirm"`
	// SessionTTL время жизни неактивной сессии страницы в секундах
	SessionTTL int `toml:"session_ttl"`
}

// StorageConfig хранилище записей
type StorageConfig struct {
	Driver string      `toml:"driver"`
	Redis  RedisConfig `toml:"redis"`
}

// RedisConfig подключение к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
}

// DatabaseConfig подключение к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// EventsConfig публикация событий в Kafka
type EventsConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "booking_widget",
		},
		Widget: WidgetConfig{
			Locale:              domain.DefaultLocale,
			TimeSlots:           append([]string(nil), domain.DefaultTimeSlots...),
			RevalidateOnConfirm: true,
			SessionTTL:          1800,
		},
		Storage: StorageConfig{
			Driver: StorageMemory,
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "appointments",
			},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Events: EventsConfig{
			Topic: "appointments",
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if _, err := c.SlotCatalog(); err != nil {
		return err
	}

	if c.Events.Enabled && (len(c.Events.Brokers) == 0 || c.Events.Topic == "") {
		return fmt.Errorf("%w: events enabled without brokers or topic", ErrInvalidConfig)
	}

	if c.Widget.SessionTTL <= 0 {
		return fmt.Errorf("%w: session_ttl must be positive", ErrInvalidConfig)
	}

	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: http_port must be positive", ErrInvalidConfig)
	}

	return nil
}

// SlotCatalog возвращает каталог слотов: HH:MM, без повторов, по возрастанию
func (c *Config) SlotCatalog() (domain.SlotCatalog, error) {
	if len(c.Widget.TimeSlots) == 0 {
		return nil, fmt.Errorf("%w: widget.time_slots is empty", ErrInvalidConfig)
	}

	catalog := make(domain.SlotCatalog, 0, len(c.Widget.TimeSlots))
	for _, raw := range c.Widget.TimeSlots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: widget.time_slots: %v", ErrInvalidConfig, err)
		}
		catalog = append(catalog, slot)
	}

	ascending := sort.SliceIsSorted(catalog, func(i, j int) bool {
		return catalog[i].IsBefore(catalog[j])
	})
	if !ascending {
		return nil, fmt.Errorf("%w: widget.time_slots must be in ascending order", ErrInvalidConfig)
	}
	for i := 1; i < len(catalog); i++ {
		if catalog[i] == catalog[i-1] {
			return nil, fmt.Errorf("%w: duplicate slot %s", ErrInvalidConfig, catalog[i])
		}
	}

	return catalog, nil
}
