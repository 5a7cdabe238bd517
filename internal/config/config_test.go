package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Store:    StoreConfig{Driver: DriverPostgres},
		Database: DatabaseConfig{Password: "secret"},
		JWT:      JWTConfig{Secret: "jwt", AccessExpiration: "1h"},
		Snapshot: SnapshotConfig{Hour: 1},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid postgres", mutate: func(c *Config) {}},
		{name: "missing db password", mutate: func(c *Config) { c.Database.Password = "" }, wantErr: "DB_PASSWORD"},
		{name: "firestore needs project", mutate: func(c *Config) { c.Store.Driver = DriverFirestore }, wantErr: "FIREBASE_PROJECT_ID"},
		{name: "firestore ok", mutate: func(c *Config) {
			c.Store.Driver = DriverFirestore
			c.Database.Password = ""
			c.Firebase.ProjectID = "demo"
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mysql" }, wantErr: "STORE_DRIVER"},
		{name: "missing jwt secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT_SECRET_KEY"},
		{name: "bad expiration", mutate: func(c *Config) { c.JWT.AccessExpiration = "soon" }, wantErr: "JWT_ACCESS_EXPIRATION_TIME"},
		{name: "bad snapshot hour", mutate: func(c *Config) { c.Snapshot.Hour = 24 }, wantErr: "SNAPSHOT_HOUR"},
		{name: "unknown timezone", mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" }, wantErr: "APP_TIMEZONE"},
		{name: "utc timezone", mutate: func(c *Config) { c.App.Timezone = "UTC" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Firestore")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SNAPSHOT_ENABLED", "false")

	c, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverFirestore, c.Store.Driver)
	assert.Equal(t, 6543, c.Database.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.App.CORSOrigins)
	assert.False(t, c.Snapshot.Enabled)
}

func TestLocation(t *testing.T) {
	c := validConfig()

	c.App.Timezone = "UTC"
	assert.Equal(t, time.UTC, c.Location())

	c.App.Timezone = "Mars/Olympus"
	assert.Equal(t, time.Local, c.Location())
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("DB_PORT", "abc")

	_, err := fromEnv()
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestLoadFile_OverlaysEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET_KEY", "env-secret")

	path := filepath.Join(t.TempDir(), "hris.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
host = "db.internal"
name = "hris_prod"

[jwt]
access_expiration = "30m"
`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", c.Database.Host)
	assert.Equal(t, "hris_prod", c.Database.Name)
	assert.Equal(t, "from-env", c.Database.Password)
	assert.Equal(t, "env-secret", c.JWT.Secret)
	assert.Equal(t, 30*time.Minute, c.AccessTTL())
}

func TestDatabaseURL(t *testing.T) {
	c := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", c.DatabaseURL())
}
