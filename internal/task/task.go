package task

import "maps"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusWaiting   Status = "waiting"
	StatusRecurring Status = "recurring"
	StatusDeleted   Status = "deleted"
)

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "H"
	PriorityMedium Priority = "M"
	PriorityLow    Priority = "L"
)

// Field names understood by the constructor.
const (
	FieldUUID        = "uuid"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldEntry       = "entry"
	FieldEnd         = "end"
	FieldWait        = "wait"
	FieldDue         = "due"
	FieldStart       = "start"
	FieldUntil       = "until"
	FieldScheduled   = "scheduled"
	FieldPriority    = "priority"
	FieldRecur       = "recur"
	FieldMask        = "mask"
	FieldIMask       = "imask"
	FieldParent      = "parent"
)

// Fields is a loosely typed bag of task attributes keyed by field name.
// A key mapped to nil counts as absent.
type Fields map[string]any

// Has reports whether name is present with a non-nil value.
func (f Fields) Has(name string) bool {
	v, ok := f[name]
	return ok && v != nil
}

// PriorityOrder returns the sort order for a priority (lower = higher priority).
func PriorityOrder(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusWaiting, StatusRecurring, StatusDeleted:
		return true
	default:
		return false
	}
}

// State carries the fields that only exist for one status or recurring branch.
// The set of implementations is closed.
type State interface {
	Status() Status
	isState()
}

// Pending is the state of an open task.
type Pending struct{}

// Completed is the state of a finished task.
type Completed struct {
	End string
}

// Waiting is the state of a task hidden until Wait.
type Waiting struct {
	Wait string
}

// RecurringRoot is the template of a recurring series.
type RecurringRoot struct {
	Mask  string
	Recur string
}

// RecurringChild is one instance generated from a RecurringRoot.
type RecurringChild struct {
	Parent string
	IMask  int
	Recur  string
}

func (Pending) Status() Status        { return StatusPending }
func (Completed) Status() Status      { return StatusCompleted }
func (Waiting) Status() Status        { return StatusWaiting }
func (RecurringRoot) Status() Status  { return StatusRecurring }
func (RecurringChild) Status() Status { return StatusRecurring }

func (Pending) isState()        {}
func (Completed) isState()      {}
func (Waiting) isState()        {}
func (RecurringRoot) isState()  {}
func (RecurringChild) isState() {}

// Record is a validated task. It is built only by a Constructor and is
// never changed afterwards; empty strings mean the attribute is absent.
type Record struct {
	UUID        string
	Description string
	Entry       string
	Due         string
	Start       string
	Until       string
	Scheduled   string
	Priority    Priority
	State       State

	fields Fields
}

// Status returns the record's status.
func (r Record) Status() Status {
	if r.State == nil {
		return ""
	}
	return r.State.Status()
}

// Fields returns a copy of the full attribute mapping, including
// generated fields and any extra attributes the caller supplied.
func (r Record) Fields() Fields {
	return maps.Clone(r.fields)
}
