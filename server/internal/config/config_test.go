package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, `log:
  level: info
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.ShutdownTimeout != DefaultShutdownTimeout {
		t.Errorf("shutdown_timeout: got %v, want %v", cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	}
	if cfg.Dataset.Path != DefaultDatasetPath {
		t.Errorf("dataset.path: got %q, want %q", cfg.Dataset.Path, DefaultDatasetPath)
	}
	if len(cfg.Dataset.Sites) != 4 || cfg.Dataset.Sites[2] != "KSC LC-39A" {
		t.Errorf("dataset.sites: got %v, want the default four", cfg.Dataset.Sites)
	}
	if cfg.Slider.Min != 0 || cfg.Slider.Max != 10000 || cfg.Slider.Step != 1000 {
		t.Errorf("slider: got %+v, want 0..10000 step 1000", cfg.Slider)
	}
}

func TestLoad_Full(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 9090
  shutdown_timeout: 2s
  pretty_html: true
dataset:
  path: /data/launches.csv
  sites: ["KSC LC-39A", "VAFB SLC-4E"]
slider:
  min: 0
  max: 16000
  step: 2000
log:
  level: debug
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9090 {
		t.Errorf("http_port: got %d, want 9090", cfg.Server.HTTPPort)
	}
	if cfg.Server.ShutdownTimeout != 2*time.Second {
		t.Errorf("shutdown_timeout: got %v, want 2s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Server.PrettyHTML {
		t.Error("pretty_html: got false, want true")
	}
	if cfg.Dataset.Path != "/data/launches.csv" {
		t.Errorf("dataset.path: got %q", cfg.Dataset.Path)
	}
	if len(cfg.Dataset.Sites) != 2 || cfg.Dataset.Sites[0] != "KSC LC-39A" {
		t.Errorf("dataset.sites: got %v", cfg.Dataset.Sites)
	}
	if cfg.Slider.Max != 16000 || cfg.Slider.Step != 2000 {
		t.Errorf("slider: got %+v", cfg.Slider)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level: got %v, want debug", cfg.Log.SlogLevel())
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"port":      "server:\n  http_port: 70000\n",
		"timeout":   "server:\n  shutdown_timeout: -1s\n",
		"path":      "dataset:\n  path: \"\"\n",
		"empty":     "dataset:\n  sites: [\"\"]\n",
		"reserved":  "dataset:\n  sites: [ALL]\n",
		"duplicate": "dataset:\n  sites: [a, a]\n",
		"slider":    "slider:\n  min: 5000\n  max: 1000\n",
		"negative":  "slider:\n  min: -1\n",
		"step":      "slider:\n  step: 0\n",
		"level":     "log:\n  level: trace\n",
		"yaml":      "server: [\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := validate(Default()); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestDefault_SitesNotShared(t *testing.T) {
	a := Default()
	a.Dataset.Sites[0] = "mutated"
	if DefaultSites[0] != "CCAFS LC-40" {
		t.Error("Default() shares its sites slice with DefaultSites")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := (LogConfig{Level: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q): got %v, want %v", in, got, want)
		}
	}
}
