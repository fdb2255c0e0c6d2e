package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearDataRootEnv keeps tests hermetic when the variable is set in the
// developer's shell. Normalize ignores an empty value.
func clearDataRootEnv(t *testing.T) {
	t.Helper()
	t.Setenv(DataRootEnv, "")
}

func loadFromContent(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := Load(path)
	return cfg, err
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	if cfg.Matching.SimilarityThreshold != defaultSimilarityThreshold {
		t.Errorf("threshold = %v, want %v", cfg.Matching.SimilarityThreshold, defaultSimilarityThreshold)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
}

func TestLoadDerivesSubdirectories(t *testing.T) {
	clearDataRootEnv(t)
	root := t.TempDir()
	cfg, err := loadFromContent(t, "[paths]\ndata_root = \""+root+"\"\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Paths.DocumentsDir != filepath.Join(root, "documents") {
		t.Errorf("documents_dir = %q", cfg.Paths.DocumentsDir)
	}
	if cfg.Paths.MediaDir != filepath.Join(root, "images") {
		t.Errorf("media_dir = %q", cfg.Paths.MediaDir)
	}
}

func TestLoadEnvOverridesDataRoot(t *testing.T) {
	fileRoot := t.TempDir()
	envRoot := t.TempDir()
	t.Setenv(DataRootEnv, envRoot)

	cfg, err := loadFromContent(t, "[paths]\ndata_root = \""+fileRoot+"\"\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.DataRoot != envRoot {
		t.Errorf("data_root = %q, want env override %q", cfg.Paths.DataRoot, envRoot)
	}
	if cfg.Paths.DocumentsDir != filepath.Join(envRoot, "documents") {
		t.Errorf("documents_dir = %q, want under env root", cfg.Paths.DocumentsDir)
	}
}

func TestLoadRejectsThresholdOutOfRange(t *testing.T) {
	for _, value := range []string{"0.5", "1.2"} {
		_, err := loadFromContent(t, "[matching]\nsimilarity_threshold = "+value+"\n")
		if err == nil {
			t.Errorf("threshold %s accepted, want error", value)
			continue
		}
		if !strings.Contains(err.Error(), "similarity_threshold") {
			t.Errorf("error %q does not mention similarity_threshold", err)
		}
	}
}

func TestLoadAcceptsThresholdBounds(t *testing.T) {
	for _, value := range []string{"0.7", "1.0", "0.9"} {
		if _, err := loadFromContent(t, "[matching]\nsimilarity_threshold = "+value+"\n"); err != nil {
			t.Errorf("threshold %s rejected: %v", value, err)
		}
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	_, err := loadFromContent(t, "[logging]\nformat = \"xml\"\n")
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("err = %v, want logging.format error", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	clearDataRootEnv(t)
	root := t.TempDir()
	cfg, err := loadFromContent(t, "[paths]\ndata_root = \""+filepath.Join(root, "data")+"\"\ndatabase_path = \""+filepath.Join(root, "db", "catalog.db")+"\"\nlog_dir = \""+filepath.Join(root, "logs")+"\"\n")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	for _, dir := range []string{cfg.Paths.DocumentsDir, cfg.Paths.MediaDir, filepath.Dir(cfg.Paths.DatabasePath), cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %q missing after EnsureDirectories (err=%v)", dir, err)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("Load(sample) err=%v exists=%v", err, exists)
	}
}
