package storage

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abatilo/taskwiz/internal/task"
)

// ParseRecord parses a YAML record file into its fields.
func ParseRecord(content []byte) (task.Fields, error) {
	var fields task.Fields
	if err := yaml.Unmarshal(content, &fields); err != nil {
		return nil, &parseError{"invalid YAML: " + err.Error()}
	}
	if fields == nil {
		return nil, &parseError{"empty record"}
	}
	if _, ok := fields[task.FieldUUID].(string); !ok {
		return nil, &parseError{"missing uuid"}
	}
	return fields, nil
}

// SerializeRecord converts a record to YAML.
func SerializeRecord(rec task.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:mnd // two-space YAML indent
	if err := enc.Encode(rec.Fields()); err != nil {
		return nil, fmt.Errorf("encode record %s: %w", rec.UUID, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseError represents a parsing error.
type parseError struct {
	msg string
}

func (e *parseError) Error() string {
	return e.msg
}
