package config

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeFS is an in-memory FileSystem for resolver tests.
type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Exists(path string) bool { return f.files[path] }
func (f *fakeFS) LoadEnv(path string) error {
	return nil
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	cfg := ServiceConfig{Name: "drillkit"}
	cfg.ApplyDefaults()
	if cfg.Environment != "development" {
		t.Errorf("environment = %s, want development", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("development should enable debug")
	}
	if cfg.Logging.ServiceName != "drillkit" {
		t.Errorf("logging service name = %s, want drillkit", cfg.Logging.ServiceName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging level = %s, want info", cfg.Logging.Level)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
	}{
		{"valid", ServiceConfig{Name: "x", Environment: "production"}, false},
		{"missing name", ServiceConfig{Environment: "production"}, true},
		{"bad environment", ServiceConfig{Name: "x", Environment: "qa"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Logging.ApplyDefaults()
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestResolveFilesExplicitPaths(t *testing.T) {
	r := &Resolver{FileSystem: &fakeFS{}}
	got := r.ResolveFiles("demo", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
	if got.ConfigFile != "a.yml" || got.EnvFile != "b.env" {
		t.Errorf("ResolveFiles = %+v", got)
	}
}

func TestResolveFilesSearchOrder(t *testing.T) {
	fs := &fakeFS{files: map[string]bool{
		"./cmd/demo/config.yml": true,
		"./config/config.yml":   true,
		"./.env":                true,
	}}
	r := &Resolver{FileSystem: fs}
	got := r.ResolveFiles("demo", LoaderConfig{})
	if got.ConfigFile != "./cmd/demo/config.yml" {
		t.Errorf("config file = %s, want nearest cmd path", got.ConfigFile)
	}
	if got.EnvFile != "./.env" {
		t.Errorf("env file = %s, want ./.env", got.EnvFile)
	}
}

func TestResolveFilesNothingFound(t *testing.T) {
	r := &Resolver{FileSystem: &fakeFS{}}
	got := r.ResolveFiles("demo", LoaderConfig{})
	if got.ConfigFile != "" || got.EnvFile != "" {
		t.Errorf("expected empty resolution, got %+v", got)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("name: drillkit\nenvironment: staging\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	var cfg ServiceConfig
	if err := LoadConfig("drillkit", &cfg, WithConfigFile(path)); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "drillkit" {
		t.Errorf("name = %s, want drillkit", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("environment = %s, want staging", cfg.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	var cfg ServiceConfig
	if err := LoadConfig("drillkit", &cfg, WithFileSystem(&fakeFS{})); err != nil {
		t.Fatal(err)
	}
	if cfg.Environment != "production" {
		t.Errorf("environment = %s, want production (from env)", cfg.Environment)
	}
}
