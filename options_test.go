package taskhelp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type deployOptions struct {
	Env    string `usage:"target environment"`
	DryRun bool   `arg:"dry" usage:"print without executing"`
	Count  int
	Secret string `arg:"-"`
	hidden bool
}

type flagName string

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []Option
	}{
		{
			name: "string map sorted by key",
			in:   map[string]string{"zeta": "last", "alpha": "first"},
			want: []Option{{Name: "alpha", Usage: "first"}, {Name: "zeta", Usage: "last"}},
		},
		{
			name: "any map stringified",
			in:   map[string]any{"n": 2, "s": "text"},
			want: []Option{{Name: "n", Usage: "2"}, {Name: "s", Usage: "text"}},
		},
		{
			name: "typed map values formatted",
			in:   map[string]int{"retries": 3, "depth": 1},
			want: []Option{{Name: "depth", Usage: "1"}, {Name: "retries", Usage: "3"}},
		},
		{
			name: "named string key type",
			in:   map[flagName]bool{"-v": true},
			want: []Option{{Name: "-v", Usage: "true"}},
		},
		{
			name: "struct keeps field order",
			in:   deployOptions{Env: "staging"},
			want: []Option{
				{Name: "-env", Usage: `target environment (default: "staging")`},
				{Name: "-dry", Usage: "print without executing (default: false)"},
				{Name: "-count", Usage: "(default: 0)"},
			},
		},
		{
			name: "pointer to struct",
			in:   &deployOptions{Count: 3},
			want: []Option{
				{Name: "-env", Usage: `target environment (default: "")`},
				{Name: "-dry", Usage: "print without executing (default: false)"},
				{Name: "-count", Usage: "(default: 3)"},
			},
		},
		{
			name: "nil map",
			in:   map[string]string(nil),
			want: nil,
		},
		{
			name: "empty map",
			in:   map[string]string{},
			want: []Option{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !isOptions(tt.in) {
				t.Fatalf("isOptions(%T) = false", tt.in)
			}
			got, err := parseOptions(tt.in)
			if err != nil {
				t.Fatalf("parseOptions() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsOptions_RejectsOtherShapes(t *testing.T) {
	for _, v := range []any{"name", []string{"alias"}, 42, nil, map[int]string{1: "x"}} {
		if isOptions(v) {
			t.Errorf("isOptions(%#v) = true, want false", v)
		}
	}
}

func TestMetadataOpts(t *testing.T) {
	md := &Metadata{Options: []Option{{Name: "-v", Usage: "verbose"}}}
	if diff := cmp.Diff(map[string]string{"-v": "verbose"}, md.Opts()); diff != "" {
		t.Errorf("Opts() mismatch (-want +got):\n%s", diff)
	}

	if (&Metadata{}).Opts() != nil {
		t.Error("expected nil opts without options")
	}
}

func TestToLowerCamel(t *testing.T) {
	tests := map[string]string{
		"SkipRace": "skip-race",
		"Env":      "env",
		"":         "",
	}
	for in, want := range tests {
		if got := toLowerCamel(in); got != want {
			t.Errorf("toLowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}
