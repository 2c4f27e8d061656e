package http

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValidationErrors holds per-field validation messages.
// JSON output: {"errors": {"field": ["msg1", "msg2"]}}
type ValidationErrors struct {
	Bag map[string][]string `json:"errors"`
}

func (e *ValidationErrors) add(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string][]string)
	}
	e.Bag[field] = append(e.Bag[field], msg)
}

// Has returns true if there are any errors.
func (e *ValidationErrors) Has() bool { return len(e.Bag) > 0 }

// First returns the first error for a field.
func (e *ValidationErrors) First(field string) string {
	if msgs, ok := e.Bag[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Rules maps field name to a pipe-separated rule string,
// e.g. Rules{"name": "required|max:255"}.
type Rules map[string]string

// Validate checks a flat map of input values against rules. Rules for a
// field run left to right and stop at the first failure.
func Validate(data map[string]string, rules Rules) *ValidationErrors {
	errs := &ValidationErrors{}
	for field, ruleStr := range rules {
		value := data[field]
		for _, rule := range strings.Split(ruleStr, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}
			name, param, _ := strings.Cut(rule, ":")
			if !applyRule(errs, field, value, name, param) {
				break
			}
		}
	}
	return errs
}

// applyRule returns true if the rule passes.
func applyRule(errs *ValidationErrors, field, value, rule, param string) bool {
	switch rule {
	case "required":
		if strings.TrimSpace(value) == "" {
			errs.add(field, fmt.Sprintf("The %s field is required.", field))
			return false
		}

	case "sometimes":
		// Skip remaining rules if the field is absent.
		if value == "" {
			return false
		}

	case "min":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) < n {
			errs.add(field, fmt.Sprintf("The %s must be at least %d characters.", field, n))
			return false
		}

	case "max":
		n, _ := strconv.Atoi(param)
		if utf8.RuneCountInString(value) > n {
			errs.add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, n))
			return false
		}

	case "in":
		for _, a := range strings.Split(param, ",") {
			if strings.TrimSpace(a) == value {
				return true
			}
		}
		errs.add(field, fmt.Sprintf("The selected %s is invalid.", field))
		return false
	}

	return true
}
