package meshdag

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesSpecDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ClusterSize != 128 || cfg.MinClusterSize != 64 || cfg.MinGroupSize != 4 || cfg.MaxGroupSize != 32 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestConfigSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meshdag.yaml")

	cfg := DefaultConfig()
	cfg.ClusterSize = 256
	cfg.Logging.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.ClusterSize != 256 {
		t.Errorf("expected ClusterSize 256 after round trip, got %d", loaded.ClusterSize)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected log level debug after round trip, got %q", loaded.Logging.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(os.TempDir(), "does-not-exist-meshdag.yaml"))
	if err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}

func TestLoadConfigPartialOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("cluster_size: 64\n"), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ClusterSize != 64 {
		t.Errorf("expected overlaid ClusterSize 64, got %d", cfg.ClusterSize)
	}
	if cfg.MinGroupSize != 4 {
		t.Errorf("expected default MinGroupSize 4 to survive partial overlay, got %d", cfg.MinGroupSize)
	}
}
