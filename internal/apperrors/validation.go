package apperrors

import (
	"fmt"
	"strings"
)

// ValidationRule names the journal rule a violation belongs to.
type ValidationRule string

const (
	RuleDate       ValidationRule = "DATE"
	RuleMinLegs    ValidationRule = "MIN_LEGS"
	RuleLegAccount ValidationRule = "LEG_ACCOUNT"
	RuleLegAmount  ValidationRule = "LEG_AMOUNT"
	RuleLegType    ValidationRule = "LEG_TYPE"
	RuleBalance    ValidationRule = "BALANCE"
	RuleCurrency   ValidationRule = "CURRENCY"
)

// NoLeg is the LegIndex of violations that concern the journal as a whole.
const NoLeg = -1

// Violation describes one failed rule.
type Violation struct {
	Rule     ValidationRule `json:"rule"`
	LegIndex int            `json:"legIndex"`
	Field    string         `json:"field,omitempty"`
	Message  string         `json:"message"`
}

// ValidationError lists every violation found, in rule order.
// It unwraps to ErrValidation.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a ValidationError with a single violation.
func NewValidationError(rule ValidationRule, legIndex int, field, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Rule: rule, LegIndex: legIndex, Field: field, Message: message}}}
}

// Add appends a violation.
func (e *ValidationError) Add(rule ValidationRule, legIndex int, field, message string) {
	e.Violations = append(e.Violations, Violation{Rule: rule, LegIndex: legIndex, Field: field, Message: message})
}

// First returns the first failing rule.
func (e *ValidationError) First() Violation {
	if len(e.Violations) == 0 {
		return Violation{LegIndex: NoLeg}
	}
	return e.Violations[0]
}

// HasRule reports whether any violation belongs to rule.
func (e *ValidationError) HasRule(rule ValidationRule) bool {
	for _, v := range e.Violations {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	first := e.First()
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")
	b.WriteString(string(first.Rule))
	if first.LegIndex != NoLeg {
		fmt.Fprintf(&b, " (leg %d)", first.LegIndex)
	}
	b.WriteString(": ")
	b.WriteString(first.Message)
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
