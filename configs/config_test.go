package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
app:
  name: papas-locas-sales-api
  http_addr: ":3000"
  log_file: ./logs/app.log

http:
  read_timeout: 5s
  write_timeout: 10s

mysql:
  dsn: "root:root@tcp(localhost:3306)/papas_locas_db?parseTime=true"
  max_open_conns: 10
  max_idle_conns: 10
  conn_max_lifetime: 30m

redis:
  addr: "localhost:6379"

reservations:
  ttl: 720h
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, "base.yaml", baseYAML)

	cfg, err := Load(dir, "dev") // dev.yaml absent: optional
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.App.HTTPAddr)
	assert.Equal(t, 10, cfg.MySQL.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.MySQL.ConnMaxLifetime)
	assert.Equal(t, 720*time.Hour, cfg.Reservations.TTL)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoadEnvOverlay(t *testing.T) {
	dir := writeConfig(t, "base.yaml", baseYAML)

	t.Setenv("PAPASLOCAS_MYSQL__DSN", "user:pw@tcp(db:3306)/papas_locas_db")
	t.Setenv("PAPASLOCAS_REDIS__ADDR", "cache:6379")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(db:3306)/papas_locas_db", cfg.MySQL.DSN)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoadEnvFileOverridesBase(t *testing.T) {
	dir := writeConfig(t, "base.yaml", baseYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.yaml"),
		[]byte("app:\n  http_addr: \":8080\"\n"), 0o644))

	cfg, err := Load(dir, "prod")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
}

func TestLoadMissingBase(t *testing.T) {
	_, err := Load(t.TempDir(), "dev")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := writeConfig(t, "base.yaml", `
app:
  http_addr: ""
mysql:
  dsn: "x"
  max_open_conns: 10
redis:
  addr: "localhost:6379"
`)
	_, err := Load(dir, "dev")
	require.ErrorContains(t, err, "app.http_addr required")
}
