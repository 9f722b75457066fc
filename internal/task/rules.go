package task

import (
	"encoding/json"
	"math"

	"github.com/abatilo/taskwiz/internal/validate"
)

// fieldRule checks one status-specific field.
type fieldRule struct {
	name     string
	required bool
	valid    func(any) bool
}

// ruleSet is the status-specific part of the rule table.
type ruleSet struct {
	illegal []string
	fields  []fieldRule
}

// dateFields are the timestamps allowed on every status.
//
//nolint:gochecknoglobals // fixed rule table
var dateFields = []string{FieldDue, FieldStart, FieldUntil, FieldScheduled}

//nolint:gochecknoglobals // fixed rule table
var (
	pendingRules = ruleSet{
		illegal: []string{FieldEnd, FieldWait, FieldRecur, FieldMask, FieldIMask, FieldParent},
	}
	// end is generated when absent, so it is optional on input.
	completedRules = ruleSet{
		illegal: []string{FieldWait, FieldRecur, FieldMask, FieldIMask, FieldParent},
		fields: []fieldRule{
			{name: FieldEnd, valid: isDate},
		},
	}
	waitingRules = ruleSet{
		illegal: []string{FieldEnd, FieldRecur, FieldMask, FieldIMask, FieldParent},
		fields: []fieldRule{
			{name: FieldWait, required: true, valid: isDate},
		},
	}
	recurringRootRules = ruleSet{
		illegal: []string{FieldEnd, FieldWait, FieldIMask},
		fields: []fieldRule{
			{name: FieldMask, required: true, valid: isMask},
			{name: FieldDue, required: true, valid: isDate},
			{name: FieldRecur, required: true, valid: isDuration},
		},
	}
	recurringChildRules = ruleSet{
		illegal: []string{FieldEnd, FieldWait, FieldMask},
		fields: []fieldRule{
			{name: FieldParent, required: true, valid: isParent},
			{name: FieldIMask, required: true, valid: isIndex},
			{name: FieldRecur, valid: isDuration},
		},
	}
)

// rulesFor returns the rule set for a status. For recurring tasks the
// presence of parent selects the branch.
func rulesFor(status Status, fields Fields) ruleSet {
	switch status {
	case StatusCompleted:
		return completedRules
	case StatusWaiting:
		return waitingRules
	case StatusRecurring:
		if fields.Has(FieldParent) {
			return recurringChildRules
		}
		return recurringRootRules
	default:
		return pendingRules
	}
}

func stringMatching(fn validate.Func) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && fn(s)
	}
}

//nolint:gochecknoglobals // adapters over the string grammars
var (
	isDate     = stringMatching(validate.Date)
	isMask     = stringMatching(validate.Mask)
	isDuration = stringMatching(validate.Duration)
	isPriority = stringMatching(validate.Priority)
	isParent   = stringMatching(isIdentifier)
)

func isIndex(v any) bool {
	_, ok := asIndex(v)
	return ok
}

// asIndex converts a non-negative integral number to int. Strings are
// rejected even when they hold digits.
func asIndex(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, n >= 0
	case int8:
		return int(n), n >= 0
	case int16:
		return int(n), n >= 0
	case int32:
		return int(n), n >= 0
	case int64:
		return int(n), n >= 0 && n <= math.MaxInt
	case uint:
		return int(n), uint64(n) <= math.MaxInt
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), n <= math.MaxInt
	case float32:
		return floatIndex(float64(n))
	case float64:
		return floatIndex(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return asIndex(i)
	default:
		return 0, false
	}
}

func floatIndex(f float64) (int, bool) {
	if f < 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
