package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("BRIDGE", "")
	t.Setenv("GUEST_NAME", "")

	cfg := Load()
	assert.Equal(t, CatalogHTTP, cfg.CatalogSource)
	assert.Equal(t, DefaultCatalogURL, cfg.CatalogURL)
	assert.Equal(t, BridgeLocal, cfg.Bridge)
	assert.Equal(t, "Гость", cfg.GuestName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "Development")
	t.Setenv("CATALOG_SOURCE", "POSTGRES")
	t.Setenv("BRIDGE", "amqp")

	cfg := Load()
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, CatalogPostgres, cfg.CatalogSource)
	assert.Equal(t, BridgeAMQP, cfg.Bridge)
}

func TestIsDevelopment(t *testing.T) {
	assert.False(t, (&Config{Env: "production"}).IsDevelopment())
	assert.True(t, (&Config{Env: "development"}).IsDevelopment())
}
