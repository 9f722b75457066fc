package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abatilo/taskwiz/internal/task"
)

// parseFieldArgs turns Taskwarrior-style arguments into a field bag.
// "name:value" sets a field, "name:" leaves it unset, and bare words
// are joined into the description. Status defaults to pending.
func parseFieldArgs(args []string) (task.Fields, error) {
	fields := task.Fields{}
	var words []string

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, ":")
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			words = append(words, arg)
			continue
		}
		if _, dup := fields[name]; dup {
			return nil, fmt.Errorf("field %q given more than once", name)
		}
		fields[name] = fieldValue(name, value)
	}

	if len(words) > 0 {
		if fields.Has(task.FieldDescription) {
			return nil, fmt.Errorf("description given both as words and as %s:", task.FieldDescription)
		}
		fields[task.FieldDescription] = strings.Join(words, " ")
	}
	if _, ok := fields[task.FieldStatus]; !ok {
		fields[task.FieldStatus] = string(task.StatusPending)
	}
	return fields, nil
}

// fieldValue converts a raw argument value. Only imask is numeric; a
// value that does not parse stays a string so validation can name it.
func fieldValue(name, value string) any {
	if value == "" {
		return nil
	}
	if name == task.FieldIMask {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return value
}
