package output

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/abatilo/taskwiz/internal/task"
)

const shortIDLength = 8

// headerFields are printed first, in this order.
//
//nolint:gochecknoglobals // fixed display order
var headerFields = []string{
	task.FieldStatus, task.FieldEntry, task.FieldPriority, task.FieldDue,
	task.FieldWait, task.FieldScheduled, task.FieldStart, task.FieldUntil,
	task.FieldEnd, task.FieldRecur, task.FieldMask, task.FieldParent, task.FieldIMask,
}

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatRecord formats a single record for display.
func (f *HumanFormatter) FormatRecord(fields task.Fields) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%s] %v\n", str(fields, task.FieldUUID), fields[task.FieldDescription])

	for _, name := range headerFields {
		if fields.Has(name) {
			fmt.Fprintf(&sb, "  %-10s %v\n", name+":", fields[name])
		}
	}

	// Remaining attributes (project, tags, UDAs) in key order.
	shown := append(slices.Clone(headerFields), task.FieldUUID, task.FieldDescription)
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if slices.Contains(shown, name) || !fields.Has(name) {
			continue
		}
		fmt.Fprintf(&sb, "  %-10s %v\n", name+":", fields[name])
	}

	return sb.String()
}

// FormatRecordList formats a list of records for display.
func (f *HumanFormatter) FormatRecordList(records []task.Fields) string {
	if len(records) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(f.formatRecordLine(r))
	}
	return sb.String()
}

// formatRecordLine formats a single record as a compact one-liner.
func (f *HumanFormatter) formatRecordLine(fields task.Fields) string {
	id := str(fields, task.FieldUUID)
	if len(id) > shortIDLength {
		id = id[:shortIDLength]
	}
	statusIcon := f.statusIcon(task.Status(str(fields, task.FieldStatus)))
	priority := str(fields, task.FieldPriority)
	if priority == "" {
		priority = "-"
	}
	due := ""
	if d := str(fields, task.FieldDue); d != "" {
		due = " (due " + d + ")"
	}
	return fmt.Sprintf("%s %s [%s] %v%s\n", statusIcon, priority, id, fields[task.FieldDescription], due)
}

func (f *HumanFormatter) statusIcon(s task.Status) string {
	switch s {
	case task.StatusPending:
		return "[ ]"
	case task.StatusWaiting:
		return "[~]"
	case task.StatusRecurring:
		return "[R]"
	case task.StatusCompleted:
		return "[X]"
	default:
		return "[?]"
	}
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func str(fields task.Fields, name string) string {
	s, _ := fields[name].(string)
	return s
}
