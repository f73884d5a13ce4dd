package taskhelp

import (
	"context"
	"fmt"
)

// RunTask looks up name on host and runs the task, waiting for its
// completion signal.
func RunTask(ctx context.Context, host Host, name string) error {
	t, err := host.Task(name)
	if err != nil {
		return err
	}
	if !t.Runnable() {
		return fmt.Errorf("cannot run task %q: not registered through taskhelp", name)
	}
	return t.Run(ctx)
}
