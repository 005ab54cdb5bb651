package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSetupConfigWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	bc, err := SetupConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if bc.Server.HTTP.Port != 8090 {
		t.Errorf("port = %d, want 8090", bc.Server.HTTP.Port)
	}
	if bc.Server.Clip.BufferSec != 5 {
		t.Errorf("buffer_sec = %v, want 5", bc.Server.Clip.BufferSec)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestSetupConfigParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
debug = true

[server.http]
port = 9000

[server.clip]
buffer_sec = 8.5
retain_days = 7

[data.database]
dsn = "postgres://localhost/camclip"
conn_max_lifetime = "30m"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	bc, err := SetupConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bc.Debug {
		t.Error("debug should be true")
	}
	if bc.Server.HTTP.Port != 9000 {
		t.Errorf("port = %d, want 9000", bc.Server.HTTP.Port)
	}
	if bc.Server.Clip.BufferSec != 8.5 {
		t.Errorf("buffer_sec = %v, want 8.5", bc.Server.Clip.BufferSec)
	}
	if got := bc.Data.Database.ConnMaxLifetime.Duration(); got != 30*time.Minute {
		t.Errorf("conn_max_lifetime = %v, want 30m", got)
	}
}
