package cmd_test

import (
	"log/slog"
	"testing"

	"parcel/cmd"
	"parcel/internal/jobs"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "parcel.bookings", cfg.AMQPExchange)
	assert.Equal(t, jobs.DefaultOutboxRelaySchedule, cfg.OutboxRelaySchedule)
	assert.Equal(t, 100, cfg.OutboxBatchSize)
	assert.Equal(t, 10, cfg.PageSize)
	assert.InDelta(t, 20.0, cfg.RateLimitRPS, 0.0001)
	require.NoError(t, cfg.ValidateServe())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "s3cret pass")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OUTBOX_RELAY_SCHEDULE", "*/30 * * * * *")

	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "*/30 * * * * *", cfg.OutboxRelaySchedule)
	assert.Equal(t,
		"host=db port=5432 user=postgres password='s3cret pass' dbname=parcel sslmode=disable",
		cfg.DSN())

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_InvalidNumber(t *testing.T) {
	t.Setenv("PAGE_SIZE", "ten")

	_, err := cmd.LoadConfig()
	require.Error(t, err)
}

func TestConfig_ValidateServe(t *testing.T) {
	cfg := cmd.Config{HTTPPort: "8080"}
	require.ErrorIs(t, cfg.ValidateServe(), errs.ErrValueIsRequired)
}

func TestConfig_SlogLevel_Invalid(t *testing.T) {
	cfg := cmd.Config{LogLevel: "loud"}
	_, err := cfg.SlogLevel()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
