package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crop-tool.json")
	cfg := DefaultConfig()
	cfg.MaxPreviewWidth = 1200
	cfg.HandleRadius = 10
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.MaxPreviewWidth != 1200 || loaded.HandleRadius != 10 {
		t.Fatalf("round trip lost values: %+v", loaded)
	}
}

func TestValidate_ClampsNonsense(t *testing.T) {
	cfg := &Config{MaxPreviewWidth: -1, MaxPreviewHeight: 0, HandleRadius: 0, JPEGQuality: 400, TickMillis: 0}
	_ = cfg.Validate()
	def := DefaultConfig()
	if *cfg != *def {
		t.Fatalf("validate did not restore defaults: %+v", cfg)
	}
}

func TestLoad_BadJSONKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if cfg == nil || cfg.MaxPreviewWidth != DefaultConfig().MaxPreviewWidth {
		t.Fatalf("defaults not returned alongside error: %+v", cfg)
	}
}

func TestGrabRadius(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GrabRadius() != 16 {
		t.Fatalf("grab radius %d, want 16", cfg.GrabRadius())
	}
}
