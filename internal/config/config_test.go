package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "es-ES", cfg.Widget.Locale)
	assert.True(t, cfg.Widget.RevalidateOnConfirm)
	assert.Equal(t, 1800, cfg.Widget.SessionTTL)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "appointments", cfg.Storage.Redis.Key)

	catalog, err := cfg.SlotCatalog()
	require.NoError(t, err)
	assert.Len(t, catalog, 13)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[widget]
locale = "en-US"
time_slots = ["08:00", "08:30"]
revalidate_on_confirm = false

[storage]
driver = "redis"

[storage.redis]
addr = "redis:6379"
key = "widget:appointments"

[database]
host = "db"
dbname = "booking"

[events]
enabled = true
brokers = ["kafka:9092"]
topic = "widget.appointments"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "en-US", cfg.Widget.Locale)
	assert.Equal(t, []string{"08:00", "08:30"}, cfg.Widget.TimeSlots)
	assert.False(t, cfg.Widget.RevalidateOnConfirm)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "widget:appointments", cfg.Storage.Redis.Key)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Events.Brokers)
	assert.Contains(t, cfg.Database.DSN(), "host=db port=5432")
	assert.Contains(t, cfg.Database.DSN(), "dbname=booking")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown driver", body: "[storage]\ndriver = \"mongo\"\n"},
		{name: "bad slot label", body: "[widget]\ntime_slots = [\"9:00\"]\n"},
		{name: "unsorted slots", body: "[widget]\ntime_slots = [\"10:00\", \"09:00\"]\n"},
		{name: "duplicate slots", body: "[widget]\ntime_slots = [\"09:00\", \"09:00\"]\n"},
		{name: "empty slots", body: "[widget]\ntime_slots = []\n"},
		{name: "zero session ttl", body: "[widget]\nsession_ttl = 0\n"},
		{name: "events without brokers", body: "[events]\nenabled = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
