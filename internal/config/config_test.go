package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Navigation.TabWrap {
		t.Error("tab wrapping should default to on")
	}
	if !cfg.Announce.Enabled {
		t.Error("announcements should default to on")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathcaret.toml")
	content := "[navigation]\ntab_wrap = false\n\n[announce]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Navigation.TabWrap {
		t.Error("tab_wrap = false was not applied")
	}
	if cfg.Announce.Enabled {
		t.Error("enabled = false was not applied")
	}
}

func TestLoadReaderPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader("[navigation]\ntab_wrap = false\n"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if cfg.Navigation.TabWrap {
		t.Error("tab_wrap = false was not applied")
	}
	if !cfg.Announce.Enabled {
		t.Error("unset sections should keep their defaults")
	}
}

func TestLoadReaderMalformed(t *testing.T) {
	_, err := LoadReader(strings.NewReader("navigation = ["))
	if err == nil {
		t.Fatal("malformed TOML should fail")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError should carry the decoder error")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mathcaret.toml")
	if err := os.WriteFile(path, []byte("[navigation]\ntab_wrap = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, func(err error) { t.Logf("watch error: %v", err) })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[navigation]\ntab_wrap = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Navigation.TabWrap {
			t.Error("reloaded config should carry tab_wrap = false")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mathcaret.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) { reloaded <- cfg }, nil)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(other, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloaded:
		t.Error("a write to an unrelated file should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}
