package taskhelp

import (
	"bytes"
	"fmt"
	"io"
)

// Output is the writer task output goes to.
type Output struct {
	Stdout io.Writer
}

// Printf formats and prints to stdout.
func (o *Output) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(o.Stdout, format, a...)
}

// Println prints to stdout with a newline.
func (o *Output) Println(a ...any) (int, error) {
	return fmt.Fprintln(o.Stdout, a...)
}

// bufferedOutput captures output for later printing.
// Nothing reaches the parent until Flush is called.
type bufferedOutput struct {
	parent *Output
	stdout bytes.Buffer
}

// newBufferedOutput creates a bufferedOutput that flushes to the given parent.
func newBufferedOutput(parent *Output) *bufferedOutput {
	return &bufferedOutput{parent: parent}
}

// Flush writes all buffered output to the parent output.
func (b *bufferedOutput) Flush() error {
	_, err := io.Copy(b.parent.Stdout, &b.stdout)
	return err
}

// Output returns an Output that writes to the buffer.
func (b *bufferedOutput) Output() *Output {
	return &Output{Stdout: &b.stdout}
}
