package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "rooms.csv", cfg.Data.RoomsFile)
	assert.Equal(t, "reservations.csv", cfg.Data.ReservationsFile)
	assert.Len(t, cfg.SeedRooms, 5)
	assert.Equal(t, 800*time.Millisecond, cfg.PaymentDelay())
	assert.False(t, cfg.Monitoring.PrometheusEnabled)
}

func TestLoad_ExplicitMissingPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_FileOverridesAndEnvExpansion(t *testing.T) {
	t.Setenv("HOTEL_DATA_DIR", "/var/lib/hotel")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  rooms_file: ${HOTEL_DATA_DIR}/rooms.csv
booking:
  payment_delay_ms: -1
seed_rooms:
  - number: 1
    category: Cabin
    price: 99.5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/hotel/rooms.csv", cfg.Data.RoomsFile)
	assert.Equal(t, "reservations.csv", cfg.Data.ReservationsFile)
	assert.Equal(t, time.Duration(0), cfg.PaymentDelay())
	require.Len(t, cfg.SeedRooms, 1)
	assert.Equal(t, "Cabin", cfg.SeedRooms[0].Category)
	assert.Equal(t, 99.5, cfg.SeedRooms[0].Price)
}
