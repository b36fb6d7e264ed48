package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PRINT_SERVICE_URL", "http://printer-host:8000/api")
	t.Setenv("REDIS_DB", "2")

	cfg := Load()

	assert.Equal(t, "fiscal-console", cfg.App.Name)
	assert.Equal(t, "http://printer-host:8000/api", cfg.PrintService.URL)
	assert.Equal(t, 10*time.Second, cfg.PrintService.Timeout)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 5*time.Minute, cfg.Redis.PreviewTTL)
	assert.Equal(t, uint32(5), cfg.Breaker.FailureThreshold)
	assert.Equal(t, "лв", cfg.Receipt.Currency)
}

func TestReceiptLocation(t *testing.T) {
	assert.Equal(t, time.UTC, (&ReceiptConfig{}).Location())
	assert.Equal(t, time.UTC, (&ReceiptConfig{Timezone: "Nowhere/Atlantis"}).Location())
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "h", Port: "5432", Name: "n", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}

func TestInitLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		InitLogger("DEBUG")
		InitLogger("nonsense")
	})
}
