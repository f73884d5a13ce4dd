package taskhelp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()

	if cfg.Description != DefaultDescription {
		t.Errorf("Description = %q, want %q", cfg.Description, DefaultDescription)
	}
	if cfg.HideEmpty {
		t.Error("HideEmpty should default to false")
	}
	if diff := cmp.Diff([]string{"default"}, cfg.Aliases); diff != "" {
		t.Errorf("Aliases mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output != os.Stdout {
		t.Error("Output should default to os.Stdout")
	}
	if cfg.Runner != filepath.Base(os.Args[0]) {
		t.Errorf("Runner = %q, want %q", cfg.Runner, filepath.Base(os.Args[0]))
	}
	if cfg.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
	if cfg.Callback != nil {
		t.Error("Callback should default to nil")
	}
}

func TestConfigWithDefaults_Aliases(t *testing.T) {
	tests := []struct {
		name    string
		aliases []string
		want    []string
	}{
		{"extra aliases", []string{"--help", "h"}, []string{"default", "--help", "h"}},
		{"default not repeated", []string{"default", "h"}, []string{"default", "h"}},
		{"duplicates dropped", []string{"h", "h"}, []string{"default", "h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.aliases...)
			got := Config{Aliases: in}.WithDefaults().Aliases
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aliases mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.aliases, in); diff != "" {
				t.Errorf("input aliases modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigWithDefaults_Idempotent(t *testing.T) {
	once := Config{Aliases: []string{"h"}, Runner: "build"}.WithDefaults()
	twice := once.WithDefaults()

	if diff := cmp.Diff(once.Aliases, twice.Aliases); diff != "" {
		t.Errorf("Aliases changed on second pass (-once +twice):\n%s", diff)
	}
	if twice.Runner != "build" || twice.Description != DefaultDescription {
		t.Errorf("unexpected config after second pass: %+v", twice)
	}
}
