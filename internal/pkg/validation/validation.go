// Package validation evaluates declarative per-field rules against request
// payloads before any handler logic runs.
package validation

import "net/mail"

// Check is a single predicate over a field value with its failure message.
type Check struct {
	Valid   func(value string) bool
	Message string
}

// Rule binds an ordered list of checks to a named payload field.
type Rule struct {
	Field  string
	Checks []Check
}

func Field(name string, checks ...Check) Rule {
	return Rule{Field: name, Checks: checks}
}

func NotEmpty(message string) Check {
	return Check{
		Valid:   func(value string) bool { return value != "" },
		Message: message,
	}
}

func Email(message string) Check {
	return Check{
		Valid: func(value string) bool {
			addr, err := mail.ParseAddress(value)
			return err == nil && addr.Address == value
		},
		Message: message,
	}
}

// OneOf passes empty values through so optional enum fields stay optional.
func OneOf(message string, allowed ...string) Check {
	return Check{
		Valid: func(value string) bool {
			if value == "" {
				return true
			}
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Message: message,
	}
}

// Validate evaluates every rule against the payload and reports the first
// failing check per field. A nil result means the payload passed.
func Validate(payload map[string]string, rules []Rule) map[string]string {
	failures := make(map[string]string)
	for _, rule := range rules {
		value := payload[rule.Field]
		for _, check := range rule.Checks {
			if !check.Valid(value) {
				failures[rule.Field] = check.Message
				break
			}
		}
	}

	if len(failures) == 0 {
		return nil
	}
	return failures
}
