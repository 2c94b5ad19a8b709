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
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "db"
port = 5432
user = "u"
password = "p"
dbname = "sessions"

[redis]
addr = "redis:6379"

[user_service]
url = "http://users"

[booking]
payment_url = "http://pay"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "booking:draft", cfg.Redis.KeyPrefix)
	assert.Equal(t, "Europe/Istanbul", cfg.Booking.Timezone)
	assert.Equal(t, 30, cfg.Booking.HorizonDays)
	assert.Equal(t, []string{"09:30", "11:00", "13:00", "14:30", "16:00", "17:30"}, cfg.Booking.SlotTemplate)
	assert.Equal(t, 60, cfg.Booking.SlotDurationMinutes)
	assert.Equal(t, []string{"10:00", "14:00", "16:00", "18:00"}, cfg.Booking.FallbackSlotTemplate)
	assert.Equal(t, 90, cfg.Booking.FallbackDurationMinutes)
	assert.Equal(t, "consultant", cfg.Booking.ProviderRole)
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=sessions sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/sessions?sslmode=disable", cfg.Database.URL())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PAYMENT_URL", "https://pay.example.com/checkout")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "https://pay.example.com/checkout", cfg.Booking.PaymentURL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing redis",
			body: `
[database]
host = "db"
dbname = "sessions"
[user_service]
url = "http://users"
[booking]
payment_url = "http://pay"
`,
		},
		{
			name: "unparsable payment url",
			body: `
[database]
host = "db"
dbname = "sessions"
[redis]
addr = "redis:6379"
[user_service]
url = "http://users"
[booking]
payment_url = "http://pay.example.com/%zz"
`,
		},
		{
			name: "bad timezone",
			body: minimalConfig + `timezone = "Mars/Olympus"
`,
		},
		{
			name: "horizon too large",
			body: minimalConfig + `horizon_days = 365
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
