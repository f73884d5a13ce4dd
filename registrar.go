package taskhelp

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// Registrar resolves loosely typed registration calls and forwards them to a Host.
// It replaces the host's registration primitive: every task, including the
// help task itself, is registered through Register.
type Registrar struct {
	host Host
	log  logrus.FieldLogger
	meta map[*Task]*Metadata
}

// NewRegistrar creates a Registrar that defines tasks on host.
// A nil logger discards all log output.
func NewRegistrar(host Host, logger logrus.FieldLogger) *Registrar {
	if logger == nil {
		logger = discardLogger()
	}
	return &Registrar{
		host: host,
		log:  logger,
		meta: make(map[*Task]*Metadata),
	}
}

// registration is the canonical form of a Register call.
type registration struct {
	name        string
	description string
	aliases     []string
	options     []Option
	hasOptions  bool
	task        *Task
}

// Register defines a task on the host under its name and every alias.
//
// The last argument is the task body: a Func, an Action, a
// func(context.Context) error, or a *Task returned by an earlier call.
// The arguments before it are, in order and all optional:
//
//	name string, description string, aliases []string, options
//
// Options are a map with string keys, or a struct whose fields
// carry `arg` and `usage` tags. Without a name, the declared name of the Go
// function is used; function literals must be given a name.
//
// Examples:
//
//	r.Register(lint)
//	r.Register("test", "run tests", test)
//	r.Register("build", "build binaries", []string{"b"}, map[string]string{"-race": "enable race detector"}, build)
//
// Resolution errors wrap ErrInvalidRegistration and leave the host untouched.
// Host errors are returned unchanged.
func (r *Registrar) Register(args ...any) (*Task, error) {
	reg, err := resolve(args)
	if err != nil {
		return nil, err
	}

	next := Metadata{Description: reg.description}
	md, ok := r.meta[reg.task]
	if ok {
		next.Options = md.Options
	}
	if reg.hasOptions {
		next.Options = reg.options
	}

	if err := r.host.Define(reg.name, reg.task); err != nil {
		return nil, err
	}
	if !ok {
		md = &Metadata{}
		r.meta[reg.task] = md
	}
	*md = next
	for _, alias := range reg.aliases {
		if err := r.host.Define(alias, reg.task); err != nil {
			return nil, err
		}
	}

	r.log.WithFields(logrus.Fields{
		"task":    reg.name,
		"aliases": reg.aliases,
	}).Debug("registered task")
	return reg.task, nil
}

// MustRegister is like Register but panics on error.
func (r *Registrar) MustRegister(args ...any) *Task {
	t, err := r.Register(args...)
	Must(err)
	return t
}

// Metadata returns the metadata record shared by all names of t.
// Changes to the record are visible through every name.
// It returns nil for tasks that were not registered through r.
func (r *Registrar) Metadata(t *Task) *Metadata {
	return r.meta[t]
}

// Describe returns a copy of the metadata of t. Tasks the host defined on its
// own are described by the usage text the host reported for them.
func (r *Registrar) Describe(t *Task) Metadata {
	if md, ok := r.meta[t]; ok {
		return Metadata{
			Description: md.Description,
			Options:     slices.Clone(md.Options),
		}
	}
	return Metadata{Description: t.usage}
}

// Host returns the host tasks are defined on.
func (r *Registrar) Host() Host {
	return r.host
}

// resolve classifies the arguments of a Register call.
// The task body is taken from the end, then options and aliases are matched
// by shape from the end, and whatever remains is the name and description.
func resolve(args []any) (registration, error) {
	var reg registration

	if len(args) == 0 {
		return reg, fmt.Errorf("%w: missing task function", ErrInvalidRegistration)
	}
	last := args[len(args)-1]
	rest := args[:len(args)-1]

	switch fn := last.(type) {
	case *Task:
		if fn == nil {
			return reg, fmt.Errorf("%w: missing task function", ErrInvalidRegistration)
		}
		reg.task = fn
	default:
		t, ok := newTask(fn)
		if !ok {
			return reg, fmt.Errorf("%w: missing task function, got %T", ErrInvalidRegistration, last)
		}
		reg.task = t
	}

	if n := len(rest); n > 0 && isOptions(rest[n-1]) {
		options, err := parseOptions(rest[n-1])
		if err != nil {
			return reg, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
		}
		reg.options = options
		reg.hasOptions = true
		rest = rest[:n-1]
	}

	if n := len(rest); n > 0 {
		if aliases, ok := rest[n-1].([]string); ok {
			reg.aliases = aliases
			rest = rest[:n-1]
		}
	}

	if len(rest) > 0 {
		name, ok := rest[0].(string)
		if !ok {
			return reg, fmt.Errorf("%w: task name must be a string, got %T", ErrInvalidRegistration, rest[0])
		}
		reg.name = name
		rest = rest[1:]
	} else {
		reg.name = reg.task.name
	}

	if len(rest) > 0 {
		description, ok := rest[0].(string)
		if !ok {
			return reg, fmt.Errorf("%w: task description must be a string, got %T", ErrInvalidRegistration, rest[0])
		}
		reg.description = description
		rest = rest[1:]
	}

	if len(rest) > 0 {
		return reg, fmt.Errorf("%w: unexpected argument %v (%T)", ErrInvalidRegistration, rest[0], rest[0])
	}

	if reg.name == "" {
		return reg, fmt.Errorf("%w: anonymous function requires an explicit name", ErrInvalidRegistration)
	}

	return reg, nil
}
