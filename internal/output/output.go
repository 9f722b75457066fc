package output

import "github.com/abatilo/taskwiz/internal/task"

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatRecord(fields task.Fields) string
	FormatRecordList(records []task.Fields) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
