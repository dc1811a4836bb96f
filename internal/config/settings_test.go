package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	settings, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	want := Settings{DBPath: "/tmp/agent.db", DefaultLanguage: "ar"}
	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != want {
		t.Errorf("LoadFile = %+v, want %+v", got, want)
	}
}

func TestLoadFileInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadFile(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if settings != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults on parse failure", settings)
	}
}

func TestManagerReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := SaveFile(path, Settings{DBPath: "a.db", DefaultLanguage: "en"}); err != nil {
		t.Fatal(err)
	}

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Stop()

	if got := m.Settings().DBPath; got != "a.db" {
		t.Fatalf("initial DBPath = %q", got)
	}

	reloaded := make(chan Settings, 1)
	m.OnChange(func(s Settings) { reloaded <- s })

	if err := SaveFile(path, Settings{DBPath: "b.db", DefaultLanguage: "ar"}); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-reloaded:
		if s.DBPath != "b.db" || s.DefaultLanguage != "ar" {
			t.Errorf("reloaded settings = %+v", s)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := m.Settings().DBPath; got != "b.db" {
		t.Errorf("DBPath after reload = %q, want b.db", got)
	}
}
