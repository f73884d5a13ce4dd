package taskhelp

import (
	"fmt"
	"reflect"
	"strconv"
)

// argField holds metadata about a single field of an options struct.
type argField struct {
	Name    string // CLI name (from tag or field name)
	Usage   string // description (from tag)
	Default any    // default value from struct
}

// inspectArgs extracts option metadata from a struct using reflection.
// The struct fields may have `arg` tags for CLI names and `usage` tags for descriptions.
//
// Example struct:
//
//	type TestOptions struct {
//	    SkipRace   bool   `arg:"skip-race" usage:"skip race detection"`
//	    LintConfig string `arg:"lint-config" usage:"path to config file"`
//	}
func inspectArgs(args any) ([]argField, error) {
	if args == nil {
		return nil, nil
	}

	v := reflect.ValueOf(args)
	t := v.Type()

	// Handle pointer to struct.
	if t.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
		t = v.Type()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("options must be a struct, got %s", t.Kind())
	}

	fields := make([]argField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get("arg")
		if name == "" {
			name = toLowerCamel(field.Name)
		}
		if name == "-" {
			continue
		}

		switch kind := field.Type.Kind(); kind {
		case reflect.Bool, reflect.String, reflect.Int:
			// supported
		default:
			return nil, fmt.Errorf("unsupported option type %s for field %s", kind, field.Name)
		}

		fields = append(fields, argField{
			Name:    name,
			Usage:   field.Tag.Get("usage"),
			Default: v.Field(i).Interface(),
		})
	}

	return fields, nil
}

// isOptionsStruct reports whether v is a struct or a pointer to one.
func isOptionsStruct(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// toLowerCamel converts a PascalCase string to lower-case with dashes.
// Example: "SkipRace" -> "skip-race".
func toLowerCamel(s string) string {
	return convertCase(s, '-')
}

// convertCase converts a PascalCase string to lower-case with the given separator.
func convertCase(s string, sep byte) string {
	if s == "" {
		return ""
	}
	result := make([]byte, 0, len(s)+4)
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result = append(result, sep)
			}
			result = append(result, byte(r+'a'-'A'))
		} else {
			result = append(result, string(r)...)
		}
	}
	return string(result)
}

// formatArgDefault formats a default value for display.
func formatArgDefault(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case string:
		if val == "" {
			return `""`
		}
		return fmt.Sprintf("%q", val)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}
