package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("HHWATCH_AREA", "1")
	t.Setenv("HHWATCH_OUTPUT", "moscow.txt")
	t.Setenv("HHWATCH_RPS", "not-a-number")

	cfg := DefaultConfig()
	if cfg.Area != 1 {
		t.Fatalf("Area = %d, want 1", cfg.Area)
	}
	if cfg.Output != "moscow.txt" {
		t.Fatalf("Output = %q, want moscow.txt", cfg.Output)
	}
	if cfg.RequestsPerSecond != 5 {
		t.Fatalf("RequestsPerSecond = %v, want fallback 5", cfg.RequestsPerSecond)
	}
	if cfg.Schedule != "@every 10m" {
		t.Fatalf("Schedule = %q, want @every 10m", cfg.Schedule)
	}
}

func TestLoadJSON5(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HHWATCH_CONFIG_DIR", dir)

	data := `{
  // Moscow instead of Krasnodar
  area: 1,
  schedule: "*/15 * * * *",
  requests_per_second: 2.5,
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Area != 1 || cfg.Schedule != "*/15 * * * *" || cfg.RequestsPerSecond != 2.5 {
		t.Fatalf("Load() = %+v", cfg)
	}
	if cfg.Output != "jobs.txt" {
		t.Fatalf("Output = %q, want default jobs.txt", cfg.Output)
	}
}

func TestLoadMissingAndEmpty(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HHWATCH_CONFIG_DIR", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() missing error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("Load() missing = %+v, want defaults", cfg)
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(); err != nil {
		t.Fatalf("Load() empty error = %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("HHWATCH_CONFIG_DIR", dir)

	created, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Init() created %v, want 2 files", created)
	}

	created, err = Init()
	if err != nil {
		t.Fatalf("Init() (2nd) error = %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("Init() (2nd) created %v, want none", created)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() after Init error = %v", err)
	}
	if cfg.Area != 53 {
		t.Fatalf("Area = %d, want 53", cfg.Area)
	}
}

func TestLoadProxies(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HHWATCH_CONFIG_DIR", dir)
	t.Setenv("HHWATCH_PROXIES", "")

	got, err := LoadProxies(" http://a:1 , ,http://b:2")
	if err != nil {
		t.Fatalf("LoadProxies(flag) error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"http://a:1", "http://b:2"}) {
		t.Fatalf("LoadProxies(flag) = %v", got)
	}

	got, err = LoadProxies("")
	if err != nil || got != nil {
		t.Fatalf("LoadProxies() missing file = %v, %v", got, err)
	}

	content := "# comment\nhttp://c:3\n\n  http://d:4  \n"
	if err := os.WriteFile(filepath.Join(dir, ProxiesFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write proxies: %v", err)
	}
	got, err = LoadProxies("")
	if err != nil {
		t.Fatalf("LoadProxies(file) error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"http://c:3", "http://d:4"}) {
		t.Fatalf("LoadProxies(file) = %v", got)
	}

	t.Setenv("HHWATCH_PROXIES", "http://e:5")
	got, _ = LoadProxies("")
	if !reflect.DeepEqual(got, []string{"http://e:5"}) {
		t.Fatalf("LoadProxies(env) = %v", got)
	}
}
