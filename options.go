package taskhelp

import (
	"fmt"
	"reflect"
	"sort"
)

// Option describes one option a task accepts, shown below the task in help output.
type Option struct {
	Name  string
	Usage string
}

// Metadata is the description and options of a task.
// All names and aliases of a task share one Metadata record.
type Metadata struct {
	Description string
	Options     []Option
}

// Opts returns the options as a map from option name to usage text.
// It returns nil when the task declares no options.
func (m *Metadata) Opts() map[string]string {
	if m.Options == nil {
		return nil
	}
	opts := make(map[string]string, len(m.Options))
	for _, o := range m.Options {
		opts[o.Name] = o.Usage
	}
	return opts
}

// isOptions reports whether a registration argument has the shape of an
// options value: a string-keyed map or a struct.
func isOptions(v any) bool {
	if isOptionsMap(v) {
		return true
	}
	return isOptionsStruct(v)
}

func isOptionsMap(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

// parseOptions converts an options value into an ordered option list.
// Map options are sorted by key; struct options keep field order and show
// their default value after the usage text.
func parseOptions(v any) ([]Option, error) {
	if isOptionsMap(v) {
		return mapOptions(reflect.ValueOf(v)), nil
	}

	fields, err := inspectArgs(v)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, nil
	}
	options := make([]Option, 0, len(fields))
	for _, f := range fields {
		usage := fmt.Sprintf("(default: %s)", formatArgDefault(f.Default))
		if f.Usage != "" {
			usage = f.Usage + " " + usage
		}
		options = append(options, Option{Name: "-" + f.Name, Usage: usage})
	}
	return options, nil
}

// mapOptions lists the entries of a string-keyed map sorted by key.
// Values other than strings are formatted with fmt.Sprint.
func mapOptions(m reflect.Value) []Option {
	if m.IsNil() {
		return nil
	}
	keys := make([]string, 0, m.Len())
	for _, k := range m.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	options := make([]Option, 0, len(keys))
	for _, k := range keys {
		val := m.MapIndex(reflect.ValueOf(k).Convert(m.Type().Key()))
		options = append(options, Option{Name: k, Usage: fmt.Sprint(val.Interface())})
	}
	return options
}
