package taskhelp

import (
	"context"
	"errors"
	"testing"
)

func TestRunTask(t *testing.T) {
	host := NewRegistry()
	r := NewRegistrar(host, nil)

	var ran []string
	r.MustRegister("ok", []string{"alias"}, func(done Done) {
		ran = append(ran, "ok")
		done()
	})
	Must(host.Define("native", foreignTask("native", "")))

	tests := []struct {
		name    string
		task    string
		wantErr bool
		wantRun int
	}{
		{name: "by name", task: "ok", wantRun: 1},
		{name: "by alias", task: "alias", wantRun: 1},
		{name: "unknown task", task: "missing", wantErr: true},
		{name: "foreign task", task: "native", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran = nil
			err := RunTask(context.Background(), host, tt.task)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if len(ran) != tt.wantRun {
				t.Errorf("ran %d times, want %d", len(ran), tt.wantRun)
			}
		})
	}

	if err := RunTask(context.Background(), host, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
