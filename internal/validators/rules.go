// Package validators implements the form validation used by the CRM client.
//
// A form is validated by compiling a [FieldRules] specification into a
// [Schema] once, then applying the schema to a flat value bag. Each field's
// rules run strictly in order and evaluation stops at the first failure, so
// the result carries at most one message per field.
//
// Rules come in two shapes: [NamedRule] references a builtin (or registered)
// rule by name, optionally parameterised; [PredicateRule] supplies the check
// function directly. Both are resolved at compile time, and an unknown rule
// name fails Compile rather than passing silently.
package validators

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleFunc is a single pure validation predicate. A nil return means the
// value passed; a non-nil error describes the failure.
type RuleFunc func(value string) error

// RuleFactory builds a RuleFunc from the params given in a [NamedRule].
// Factories run once, at schema compile time.
type RuleFactory func(params map[string]any) (RuleFunc, error)

var (
	// emailPattern requires a local part and a domain without whitespace or
	// extra "@", and at least one dot in the domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phonePattern matches an optional leading "+", a non-zero first digit,
	// and up to 15 further digits.
	phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)

	// phoneStripper removes the formatting characters commonly typed into
	// phone fields before the pattern is applied.
	phoneStripper = strings.NewReplacer(" ", "", "\t", "", "(", "", ")", "", "-", "")
)

// Registry maps rule names to their factories. The zero value is not usable;
// construct one with NewRegistry.
type Registry struct {
	factories map[string]RuleFactory
}

// NewRegistry returns a registry pre-populated with the builtin rules:
// required, email, phone, minLength, maxLength.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]RuleFactory)}
	r.Register("required", noParams(ruleRequired))
	r.Register("email", noParams(ruleEmail))
	r.Register("phone", noParams(rulePhone))
	r.Register("minLength", minLengthFactory)
	r.Register("maxLength", maxLengthFactory)
	return r
}

// Register adds or replaces a rule factory under name.
func (r *Registry) Register(name string, factory RuleFactory) {
	r.factories[name] = factory
}

// resolve builds the RuleFunc for a named rule, failing loudly on unknown
// names or bad params.
func (r *Registry) resolve(name string, params map[string]any) (RuleFunc, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	fn, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return fn, nil
}

// noParams adapts a parameterless RuleFunc into a RuleFactory.
func noParams(fn RuleFunc) RuleFactory {
	return func(map[string]any) (RuleFunc, error) {
		return fn, nil
	}
}

func ruleRequired(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequired
	}
	return nil
}

func ruleEmail(value string) error {
	if !emailPattern.MatchString(value) {
		return ErrInvalidEmail
	}
	return nil
}

func rulePhone(value string) error {
	if !phonePattern.MatchString(phoneStripper.Replace(value)) {
		return ErrInvalidPhone
	}
	return nil
}

func minLengthFactory(params map[string]any) (RuleFunc, error) {
	min, err := intParam(params, "min")
	if err != nil {
		return nil, err
	}

	return func(value string) error {
		// an absent value can never satisfy a minimum length
		if value == "" || len(value) < min {
			return fmt.Errorf("%w: need at least %d characters", ErrTooShort, min)
		}
		return nil
	}, nil
}

func maxLengthFactory(params map[string]any) (RuleFunc, error) {
	max, err := intParam(params, "max")
	if err != nil {
		return nil, err
	}

	return func(value string) error {
		// an absent value trivially fits any maximum
		if value != "" && len(value) > max {
			return fmt.Errorf("%w: need at most %d characters", ErrTooLong, max)
		}
		return nil
	}, nil
}

// intParam extracts an integer parameter, accepting the numeric types a
// params map can realistically carry (including float64 from decoded JSON).
func intParam(params map[string]any, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrBadRuleParams, key)
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %q must be a number", ErrBadRuleParams, key)
	}
}
