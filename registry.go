package taskhelp

import "fmt"

// Host is the task runner taskhelp decorates.
//
// Define is the host's own registration primitive; it binds a name to a task.
// Tasks enumerates every registered name, and Task looks a single name up.
// Errors returned by a Host are passed through taskhelp unchanged.
type Host interface {
	Define(name string, t *Task) error
	Tasks() (map[string]*Task, error)
	Task(name string) (*Task, error)
}

// Registry is an in-memory Host.
// Defining a name that already exists replaces the previous task.
// It is not safe for concurrent use.
type Registry struct {
	tasks map[string]*Task
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]*Task)}
}

// Define binds name to t.
func (r *Registry) Define(name string, t *Task) error {
	if name == "" {
		return fmt.Errorf("define: task name is required")
	}
	if t == nil {
		return fmt.Errorf("define %q: task is nil", name)
	}
	r.tasks[name] = t
	return nil
}

// Tasks returns a copy of the name to task mapping.
func (r *Registry) Tasks() (map[string]*Task, error) {
	tasks := make(map[string]*Task, len(r.tasks))
	for name, t := range r.tasks {
		tasks[name] = t
	}
	return tasks, nil
}

// Task returns the task registered under name.
func (r *Registry) Task(name string) (*Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	return t, nil
}
