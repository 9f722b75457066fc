package task

import (
	"context"
	"io"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	taskerrors "github.com/abatilo/taskwiz/internal/errors"
	"github.com/abatilo/taskwiz/internal/validate"
)

// Constructor validates field bags and builds Records. It holds no
// mutable state and is safe for concurrent use when its clock and ID
// generator are.
type Constructor struct {
	now    func() time.Time
	newID  IDGenerator
	logger *log.Logger
}

// Option configures a Constructor.
type Option func(*Constructor)

// WithClock sets the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(c *Constructor) {
		c.now = now
	}
}

// WithIDGenerator sets the source of record identifiers.
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *Constructor) {
		c.newID = gen
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *Constructor) {
		c.logger = logger
	}
}

// NewConstructor creates a Constructor using the wall clock and random
// UUIDs unless overridden.
func NewConstructor(opts ...Option) *Constructor {
	c := &Constructor{
		now:    time.Now,
		newID:  NewID,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

//nolint:gochecknoglobals // shared default for package-level Create
var defaultConstructor = NewConstructor()

// Create validates fields with the default Constructor.
func Create(ctx context.Context, fields Fields) (Record, error) {
	return defaultConstructor.Create(ctx, fields)
}

// Create validates fields against the rules for their status and returns
// the resulting Record. The first failing check determines the error:
//
//  1. status is missing or unknown, or deleted (NothingToDoError)
//  2. a field illegal for the status or recurring branch is present
//  3. description, due, start, until, scheduled and priority
//  4. status-specific fields in order, presence before format
//
// Supplied values are copied into the record unchanged; uuid and entry
// are always generated, and end is generated for completed tasks that
// lack one.
func (c *Constructor) Create(ctx context.Context, fields Fields) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	rec, err := check(fields)
	if err != nil {
		c.logger.Debug("task rejected", "status", fields[FieldStatus], "err", err)
		return Record{}, err
	}

	now := validate.FormatTime(c.now())
	rec.UUID = c.newID()
	rec.Entry = now
	if done, ok := rec.State.(Completed); ok && done.End == "" {
		done.End = now
		rec.State = done
		rec.fields[FieldEnd] = now
	}
	rec.fields[FieldUUID] = rec.UUID
	rec.fields[FieldEntry] = rec.Entry

	c.logger.Debug("task created", "uuid", rec.UUID, "status", rec.Status())
	return rec, nil
}

// check runs every validation step and returns a Record without
// generated fields.
func check(fields Fields) (Record, error) {
	status, err := parseStatus(fields)
	if err != nil {
		return Record{}, err
	}

	rules := rulesFor(status, fields)
	for _, name := range rules.illegal {
		if fields.Has(name) {
			return Record{}, taskerrors.IllegalFieldError{Field: name}
		}
	}

	if err = checkDescription(fields[FieldDescription]); err != nil {
		return Record{}, err
	}
	for _, name := range dateFields {
		if fields.Has(name) && !isDate(fields[name]) {
			return Record{}, taskerrors.InvalidFieldError{Field: name, Value: fields[name]}
		}
	}
	if fields.Has(FieldPriority) && !isPriority(fields[FieldPriority]) {
		return Record{}, taskerrors.InvalidFieldError{Field: FieldPriority, Value: fields[FieldPriority]}
	}

	for _, rule := range rules.fields {
		if !fields.Has(rule.name) {
			if rule.required {
				return Record{}, taskerrors.RequiredFieldError{Field: rule.name}
			}
			continue
		}
		if !rule.valid(fields[rule.name]) {
			return Record{}, taskerrors.InvalidFieldError{Field: rule.name, Value: fields[rule.name]}
		}
	}

	return build(status, fields), nil
}

func parseStatus(fields Fields) (Status, error) {
	raw := fields[FieldStatus]
	s, ok := raw.(string)
	if !ok || !IsValidStatus(Status(s)) {
		return "", taskerrors.InvalidStatusError{Value: raw}
	}
	if Status(s) == StatusDeleted {
		return "", taskerrors.NothingToDoError{}
	}
	return Status(s), nil
}

func checkDescription(v any) error {
	if v == nil {
		return taskerrors.RequiredFieldError{Field: FieldDescription}
	}
	s, ok := v.(string)
	switch {
	case !ok:
		return taskerrors.InvalidFieldError{Field: FieldDescription, Value: v}
	case s == "":
		return taskerrors.RequiredFieldError{Field: FieldDescription}
	case strings.ContainsAny(s, "\r\n"):
		return taskerrors.InvalidFieldError{Field: FieldDescription, Value: v}
	}
	return nil
}

// build assembles a Record from fields that already passed check.
func build(status Status, fields Fields) Record {
	str := func(name string) string {
		s, _ := fields[name].(string)
		return s
	}

	rec := Record{
		Description: str(FieldDescription),
		Due:         str(FieldDue),
		Start:       str(FieldStart),
		Until:       str(FieldUntil),
		Scheduled:   str(FieldScheduled),
		Priority:    Priority(str(FieldPriority)),
		fields:      make(Fields, len(fields)+3), //nolint:mnd // room for generated fields
	}

	switch status {
	case StatusCompleted:
		rec.State = Completed{End: str(FieldEnd)}
	case StatusWaiting:
		rec.State = Waiting{Wait: str(FieldWait)}
	case StatusRecurring:
		if fields.Has(FieldParent) {
			imask, _ := asIndex(fields[FieldIMask])
			rec.State = RecurringChild{Parent: str(FieldParent), IMask: imask, Recur: str(FieldRecur)}
		} else {
			rec.State = RecurringRoot{Mask: str(FieldMask), Recur: str(FieldRecur)}
		}
	default:
		rec.State = Pending{}
	}

	maps.Copy(rec.fields, fields)
	maps.DeleteFunc(rec.fields, func(_ string, v any) bool { return v == nil })
	return rec
}
