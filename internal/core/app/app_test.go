package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsIncompleteConfig(t *testing.T) {
	t.Run("missing webhook secret", func(t *testing.T) {
		cfg := Config{
			DatabaseFile:      filepath.Join(t.TempDir(), "core.db"),
			AuthPublicKeyFile: filepath.Join(t.TempDir(), "auth.pem"),
			WebhookSecret:     "",
		}

		_, err := New(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "CRYPTLY_WEBHOOK_SECRET")
	})

	t.Run("missing auth public key file", func(t *testing.T) {
		cfg := Config{
			DatabaseFile:  filepath.Join(t.TempDir(), "core.db"),
			WebhookSecret: "test-secret",
		}

		_, err := New(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "CRYPTLY_AUTH_PUBLIC_KEY_FILE")
	})
}
