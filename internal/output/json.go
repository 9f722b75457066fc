package output

import (
	"encoding/json"

	taskerrors "github.com/abatilo/taskwiz/internal/errors"
	"github.com/abatilo/taskwiz/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatRecord formats a single record as a JSON object, the shape
// `task import` accepts.
func (f *JSONFormatter) FormatRecord(fields task.Fields) string {
	return marshalJSON(fields)
}

// FormatRecordList formats a list of records as a JSON array.
func (f *JSONFormatter) FormatRecordList(records []task.Fields) string {
	if records == nil {
		records = []task.Fields{}
	}
	return marshalJSON(records)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// FormatError formats an error as JSON, naming the offending field when
// there is one.
func (f *JSONFormatter) FormatError(err error) string {
	field, _ := taskerrors.FieldOf(err)
	return marshalJSON(errorJSON{Error: err.Error(), Field: field})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
