package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
color: never
max_steps: 5000
history: /tmp/hist
prelude:
  - church.lc
  - /abs/bool.lc
`)
	cfg, err := ParseConfig(data, "/home/me/.lambda.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != ColorNever || cfg.MaxSteps != 5000 || cfg.History != "/tmp/hist" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	want := []string{filepath.Join("/home/me", "church.lc"), "/abs/bool.lc"}
	if len(cfg.Prelude) != 2 || cfg.Prelude[0] != want[0] || cfg.Prelude[1] != want[1] {
		t.Errorf("prelude = %q, want %q", cfg.Prelude, want)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("max_steps: 10\n"), ".lambda.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("color = %q, want %q", cfg.Color, ColorAuto)
	}
	if cfg.History != Default().History {
		t.Errorf("history = %q", cfg.History)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{"color: sometimes", `color must be`},
		{"max_steps: -1", `max_steps must not be negative`},
		{"prelude: ['']", `prelude[0]: empty path`},
		{"max_steps: [1", `parsing x.yaml`},
	}
	for _, tt := range tests {
		_, err := ParseConfig([]byte(tt.data), "x.yaml")
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("ParseConfig(%q): got %v, want error containing %q", tt.data, err, tt.want)
		}
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte("color: always\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FindConfig(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("FindConfig = %q, want %q", got, path)
	}
	cfg, err := LoadConfig(got)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("color = %q", cfg.Color)
	}
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg := &Config{History: "~/.h"}
	if got, want := cfg.HistoryPath(), filepath.Join(home, ".h"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	cfg.History = "/var/h"
	if got := cfg.HistoryPath(); got != "/var/h" {
		t.Errorf("got %q", got)
	}
}
