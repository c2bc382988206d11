package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\ndb_path: /tmp/t.db\nollama_host: http://localhost:11434\nvision_model: llava\nmax_upload_mb: 5\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.DBPath != "/tmp/t.db" || cfg.OllamaHost != "http://localhost:11434" || cfg.VisionModel != "llava" || cfg.MaxUploadMB != 5 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","db_path":"/d/a.db","uploads_dir":"/d/up","translate_endpoint":"http://127.0.0.1:9/t","request_timeout_s":30}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.DBPath != "/d/a.db" || cfg.UploadsDir != "/d/up" || cfg.TranslateEndpoint != "http://127.0.0.1:9/t" || cfg.RequestTimeoutS != 30 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nvision_model=\"bakllava\"\ncors_disabled=true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8081" || cfg.VisionModel != "bakllava" || !cfg.CORSDisabled {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := Load(filepath.Join(d, "missing.yaml")); err == nil {
		t.Fatalf("expected error on missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	d := t.TempDir()
	if _, err := Load(writeTempFile(t, d, "bad.json", "{")); err == nil {
		t.Fatalf("expected JSON error")
	}
	if _, err := Load(writeTempFile(t, d, "bad.yaml", ":\n  - [")); err == nil {
		t.Fatalf("expected YAML error")
	}
	if _, err := Load(writeTempFile(t, d, "bad.toml", "= nope")); err == nil {
		t.Fatalf("expected TOML error")
	}
}
