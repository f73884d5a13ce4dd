package taskhelp

import (
	"fmt"

	"github.com/goyek/goyek/v3"
	"github.com/sirupsen/logrus"
)

// Flow is a Host backed by a goyek flow.
//
// Each Define creates a goyek task whose action runs the taskhelp task and
// waits for its completion signal. Defining a name that already exists
// replaces the goyek task, and the "default" name also becomes the flow's
// default task.
//
// Tasks defined directly on the goyek flow are listed with their goyek usage
// as description, but cannot be run through taskhelp.
type Flow struct {
	flow    *goyek.Flow
	log     logrus.FieldLogger
	handles map[string]flowHandle
}

// flowHandle pairs a goyek task with the taskhelp handle it was listed as.
type flowHandle struct {
	defined *goyek.DefinedTask
	task    *Task
}

// NewFlow creates a Host for flow.
// Use goyek.DefaultFlow to work with goyek's package-level functions and boot.Main.
// A nil logger discards all log output.
func NewFlow(flow *goyek.Flow, logger logrus.FieldLogger) *Flow {
	if logger == nil {
		logger = discardLogger()
	}
	return &Flow{
		flow:    flow,
		log:     logger,
		handles: make(map[string]flowHandle),
	}
}

// Define defines a goyek task named name that runs t.
func (f *Flow) Define(name string, t *Task) error {
	if name == "" {
		return fmt.Errorf("define: task name is required")
	}
	if t == nil {
		return fmt.Errorf("define %q: task is nil", name)
	}

	if existing := f.lookup(name); existing != nil {
		f.log.WithField("task", name).Debug("replacing goyek task")
		f.flow.Undefine(existing)
	}

	defined := f.flow.Define(goyek.Task{
		Name: name,
		Action: func(a *goyek.A) {
			if err := t.Run(a.Context()); err != nil {
				a.Fatal(err)
			}
		},
	})
	if name == DefaultTaskName {
		f.flow.SetDefault(defined)
	}
	f.handles[name] = flowHandle{defined: defined, task: t}
	return nil
}

// Tasks returns every task of the goyek flow by name.
func (f *Flow) Tasks() (map[string]*Task, error) {
	defined := f.flow.Tasks()
	tasks := make(map[string]*Task, len(defined))
	for _, dt := range defined {
		tasks[dt.Name()] = f.handle(dt)
	}
	return tasks, nil
}

// Task returns the task of the goyek flow named name.
func (f *Flow) Task(name string) (*Task, error) {
	dt := f.lookup(name)
	if dt == nil {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	return f.handle(dt), nil
}

// Goyek returns the underlying goyek flow, for defining tasks that taskhelp
// only lists.
func (f *Flow) Goyek() *goyek.Flow {
	return f.flow
}

func (f *Flow) lookup(name string) *goyek.DefinedTask {
	for _, dt := range f.flow.Tasks() {
		if dt.Name() == name {
			return dt
		}
	}
	return nil
}

// handle returns a stable *Task for a goyek task.
// Goyek tasks not created by Define get a listing-only handle.
func (f *Flow) handle(dt *goyek.DefinedTask) *Task {
	// Tasks returns a fresh *DefinedTask on every call; compare the snapshot it wraps.
	if h, ok := f.handles[dt.Name()]; ok && *h.defined == *dt {
		return h.task
	}
	t := foreignTask(dt.Name(), dt.Usage())
	f.handles[dt.Name()] = flowHandle{defined: dt, task: t}
	return t
}
