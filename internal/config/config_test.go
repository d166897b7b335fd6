package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scholium-io/linnaeus/internal/config"
)

const baseConfig = `shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "linnaeus"
user = "linnaeus"
password = "linnaeus"
ssl_mode = "disable"

[storage]
container_name = "papers"
connection_string = "DefaultEndpointsProtocol=http;AccountName=devstore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/devstore;"

[api]
base_path = "/api"

[agent]
name = "scorer"

[agent.provider]
name = "ollama"
base_url = "http://localhost:11434"

[agent.model]
name = "llama3.1:8b"

[pipeline]
hint_floor = 0.05
min_candidates = 3
publish_threshold = 0.1
max_assignments = 5
timeout = "5m"
retry_backoff = "2s"
`

const overlayConfig = `[server]
port = 9090

[database]
host = "prodhost"

[pipeline]
max_assignments = 4
`

// minimalConfig carries only the fields without usable defaults: database
// name and user, and the storage connection string. Everything else is
// filled by loadDefaults.
const minimalConfig = `[database]
name = "linnaeus"
user = "linnaeus"

[storage]
connection_string = "conn"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "linnaeus" {
		t.Errorf("database name: got %q, want linnaeus", cfg.Database.Name)
	}
	if cfg.Agent.Model.Name != "llama3.1:8b" {
		t.Errorf("agent model: got %q, want llama3.1:8b", cfg.Agent.Model.Name)
	}
	if cfg.Pipeline.MaxAssignments != 5 {
		t.Errorf("max assignments: got %d, want 5", cfg.Pipeline.MaxAssignments)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)
	t.Setenv(config.EnvAppEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want overlay 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("database host: got %q, want overlay prodhost", cfg.Database.Host)
	}
	if cfg.Database.Name != "linnaeus" {
		t.Errorf("database name: got %q, want base linnaeus", cfg.Database.Name)
	}
	if cfg.Pipeline.MaxAssignments != 4 {
		t.Errorf("max assignments: got %d, want overlay 4", cfg.Pipeline.MaxAssignments)
	}
}

func TestLoadMinimalDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("shutdown timeout default: got %q, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.Pipeline.HintFloor != 0.05 {
		t.Errorf("hint floor default: got %f, want 0.05", cfg.Pipeline.HintFloor)
	}
	if cfg.Pipeline.MinCandidates != 3 {
		t.Errorf("min candidates default: got %d, want 3", cfg.Pipeline.MinCandidates)
	}

	settings := cfg.Pipeline.Settings()
	if settings.Timeout != 5*time.Minute {
		t.Errorf("pipeline timeout default: got %v, want 5m", settings.Timeout)
	}
	if settings.RetryBackoff != 2*time.Second {
		t.Errorf("retry backoff default: got %v, want 2s", settings.RetryBackoff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)
	t.Setenv(config.EnvAppShutdownTimeout, "45s")
	t.Setenv(config.EnvPipelineMaxAssignments, "2")
	t.Setenv(config.EnvAgentModelName, "qwen2.5:7b")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ShutdownTimeout != "45s" {
		t.Errorf("shutdown timeout: got %q, want env 45s", cfg.ShutdownTimeout)
	}
	if cfg.Pipeline.MaxAssignments != 2 {
		t.Errorf("max assignments: got %d, want env 2", cfg.Pipeline.MaxAssignments)
	}
	if cfg.Agent.Model.Name != "qwen2.5:7b" {
		t.Errorf("agent model: got %q, want env qwen2.5:7b", cfg.Agent.Model.Name)
	}
}

func TestPipelineConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.PipelineConfig)
		wantErr bool
	}{
		{"defaults valid", func(c *config.PipelineConfig) {}, false},
		{"hint floor out of range", func(c *config.PipelineConfig) { c.HintFloor = 1.5 }, true},
		{"negative publish threshold", func(c *config.PipelineConfig) { c.PublishThreshold = -0.1 }, true},
		{"bad timeout", func(c *config.PipelineConfig) { c.Timeout = "soon" }, true},
		{"bad retry backoff", func(c *config.PipelineConfig) { c.RetryBackoff = "later" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c config.PipelineConfig
			tt.mutate(&c)
			err := c.Finalize()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
