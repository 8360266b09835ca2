package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCORSOrigins(t *testing.T) {
	t.Run("defaults to the local dev origin", func(t *testing.T) {
		t.Setenv("CORS_ORIGINS", "")
		cfg := Load()
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	})

	t.Run("splits and trims a comma separated list", func(t *testing.T) {
		t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com ,")
		cfg := Load()
		assert.Equal(t,
			[]string{"https://shop.example.com", "https://admin.example.com"},
			cfg.CORSOrigins,
		)
	})
}
