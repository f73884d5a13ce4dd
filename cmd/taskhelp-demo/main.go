// Command taskhelp-demo is a goyek build program whose tasks are registered
// through taskhelp.
//
// Usage:
//
//	go run ./cmd/taskhelp-demo help
//	go run ./cmd/taskhelp-demo test:child
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fredrikaverpil/taskhelp"
	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/boot"
	log "github.com/sirupsen/logrus"
)

type testOptions struct {
	Race    bool   `usage:"enable the race detector"`
	Package string `arg:"pkg" usage:"package pattern"`
}

func main() {
	logger := log.New()
	logger.SetLevel(log.WarnLevel)

	flow := taskhelp.NewFlow(goyek.DefaultFlow, logger)
	r, err := taskhelp.Attach(flow, taskhelp.Config{
		Aliases: []string{"tasks"},
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	r.MustRegister("default", "Custom description", func(done taskhelp.Done) {
		fmt.Println("ok")
		done()
	})
	r.MustRegister("test", "Test", []string{"t"}, testOptions{Package: "./..."}, func(ctx context.Context) error {
		fmt.Println("basic test")
		return nil
	})
	r.MustRegister("test:child", "Child", func(done taskhelp.Done) {
		fmt.Println("child test")
		done()
	})
	r.MustRegister("test:nested:child", func(done taskhelp.Done) {
		fmt.Println("nested child")
		done()
	})
	r.MustRegister(map[string]string{"--verbose": "print every step"}, ok)

	// Plain goyek tasks show up in the help listing too.
	flow.Goyek().Define(goyek.Task{
		Name:  "version",
		Usage: "Print the demo version",
		Action: func(a *goyek.A) {
			a.Log("taskhelp-demo v0.1.0")
		},
	})

	boot.Main()
}

// ok is registered under its own function name.
func ok(done taskhelp.Done) {
	fmt.Println("named function task")
	done()
}
