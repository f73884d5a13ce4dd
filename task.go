package taskhelp

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"
	"sync"
)

// Done signals that a task has finished.
// A task body calls it exactly once.
type Done func()

// Func is a task body that reports completion through done.
//
// Example:
//
//	func lint(done taskhelp.Done) {
//	    defer done()
//	    // ...
//	}
type Func func(done Done)

// Action is a task body that needs both a context and the completion signal.
// Returning a non-nil error completes the task with that error.
type Action func(ctx context.Context, done Done) error

// Task is a stable handle for one task body.
// Every name and alias a task is registered under refers to the same *Task,
// so the handle is the task's identity.
type Task struct {
	name  string // declared Go function name, empty for function literals
	usage string // description supplied by the host for tasks defined outside taskhelp
	body  Action
}

// newTask creates a handle for a supported callable.
// The second return value is false when fn is not a task body.
func newTask(fn any) (*Task, bool) {
	body, ok := toAction(fn)
	if !ok {
		return nil, false
	}
	return &Task{name: funcName(fn), body: body}, true
}

// foreignTask creates a handle for a task the host defined on its own.
func foreignTask(name, usage string) *Task {
	return &Task{name: name, usage: usage}
}

// Name returns the declared Go function name of the task body.
// It is empty for function literals and closures.
func (t *Task) Name() string {
	return t.name
}

// Runnable reports whether the task body can be invoked through taskhelp.
// Tasks the host defined on its own are listed but not runnable.
func (t *Task) Runnable() bool {
	return t.body != nil
}

// Call invokes the task body once with done, without waiting for done.
func (t *Task) Call(ctx context.Context, done Done) error {
	if t.body == nil {
		return fmt.Errorf("task %q was not registered through taskhelp", t.name)
	}
	return t.body(ctx, done)
}

// Run invokes the task body and blocks until it calls done, returns an error,
// or ctx is canceled.
func (t *Task) Run(ctx context.Context) error {
	finished := make(chan struct{})
	var once sync.Once
	done := func() {
		once.Do(func() { close(finished) })
	}

	if err := t.Call(ctx, done); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("task %q: %w", t.name, ctx.Err())
	}
}

// toAction normalizes the supported callable shapes into an Action.
func toAction(fn any) (Action, bool) {
	switch f := fn.(type) {
	case Func:
		if f == nil {
			return nil, false
		}
		return doneAction(f), true
	case func(Done):
		if f == nil {
			return nil, false
		}
		return doneAction(f), true
	case Action:
		if f == nil {
			return nil, false
		}
		return f, true
	case func(context.Context, Done) error:
		if f == nil {
			return nil, false
		}
		return f, true
	case func(context.Context) error:
		if f == nil {
			return nil, false
		}
		return func(ctx context.Context, done Done) error {
			err := f(ctx)
			done()
			return err
		}, true
	default:
		return nil, false
	}
}

func doneAction(f func(Done)) Action {
	return func(_ context.Context, done Done) error {
		f(done)
		return nil
	}
}

// anonymousName matches the compiler-generated names of function literals,
// e.g. "func1" in "main.main.func1" or "1" in "main.main.func1.1".
var anonymousName = regexp.MustCompile(`^(func\d+|\d+)$`)

// funcName returns the declared name of a function value.
// Package-level functions yield their identifier, method values their method
// name, and function literals the empty string.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}

	full := strings.ReplaceAll(rf.Name(), "[...]", "")
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	parts := strings.Split(full, ".")
	if len(parts) < 2 {
		return ""
	}
	for _, p := range parts[1:] {
		// Package-level function literals are named "glob..func1".
		if p == "" || anonymousName.MatchString(p) {
			return ""
		}
	}
	return strings.TrimSuffix(parts[len(parts)-1], "-fm")
}
