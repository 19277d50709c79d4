package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("CONTACT_EMAIL", "bruiloft@example.com")
	t.Setenv("RSVP_DEADLINE", "2025-05-01")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "rsvp.db", cfg.DatabasePath)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, 25, cfg.MailPort)
	assert.Equal(t, "bruiloft@example.com", cfg.ContactEmail)
	assert.Equal(t, "2025-05-01", cfg.Deadline().Format(DeadlineLayout))
}

func TestLoad_MissingRequiredKey(t *testing.T) {
	for _, key := range RequiredKeys {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Load("")
			require.Error(t, err)

			var missing *MissingConfigurationKeyError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, key, missing.Key)
		})
	}
}

func TestLoad_InvalidDeadline(t *testing.T) {
	setRequired(t)
	t.Setenv("RSVP_DEADLINE", "1 mei")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RSVP_DEADLINE")
}

func TestLoad_ConfigFile(t *testing.T) {
	setRequired(t)
	path := filepath.Join(t.TempDir(), "rsvp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PORT: \"9090\"\nPUBLIC_URL: https://rsvp.example.com/\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://rsvp.example.com/ABCD", cfg.ManageURL("ABCD"))
}

func TestDeadlinePassed(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.DeadlinePassed(time.Now()), "no deadline never closes")

	require.NoError(t, cfg.SetDeadline("2025-05-01"))

	dayBefore := time.Date(2025, 4, 30, 23, 59, 0, 0, time.Local)
	deadlineDay := time.Date(2025, 5, 1, 0, 0, 1, 0, time.Local)
	dayAfter := time.Date(2025, 5, 2, 12, 0, 0, 0, time.Local)

	assert.False(t, cfg.DeadlinePassed(dayBefore))
	assert.True(t, cfg.DeadlinePassed(deadlineDay))
	assert.True(t, cfg.DeadlinePassed(dayAfter))
}
