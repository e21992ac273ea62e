package validators

import "fmt"

// Values is a flat bag of form field values keyed by field name. A field
// missing from the bag is treated as an empty value.
type Values map[string]string

// Rule is the tagged union of the two supported rule shapes. Only NamedRule
// and PredicateRule implement it.
type Rule interface {
	isRule()
}

// NamedRule references a rule in the registry by name, optionally with
// parameters (e.g. {"min": 3} for minLength) and a custom error message that
// overrides the generated default.
type NamedRule struct {
	Name    string
	Params  map[string]any
	Message string
}

func (NamedRule) isRule() {}

// WithMessage returns a copy of the rule with a custom error message.
func (r NamedRule) WithMessage(message string) NamedRule {
	r.Message = message
	return r
}

// PredicateRule supplies the check function directly. The text of the
// returned error is used as the field's message.
type PredicateRule struct {
	Check RuleFunc
}

func (PredicateRule) isRule() {}

// Convenience constructors for the builtin rules.

func Required() NamedRule { return NamedRule{Name: "required"} }
func Email() NamedRule    { return NamedRule{Name: "email"} }
func Phone() NamedRule    { return NamedRule{Name: "phone"} }

func MinLength(min int) NamedRule {
	return NamedRule{Name: "minLength", Params: map[string]any{"min": min}}
}

func MaxLength(max int) NamedRule {
	return NamedRule{Name: "maxLength", Params: map[string]any{"max": max}}
}

// FieldRules maps each field name to its ordered rule list.
type FieldRules map[string][]Rule

// compiledRule is a resolved rule plus everything needed to produce the
// field's error message without another registry lookup.
type compiledRule struct {
	name      string
	message   string
	check     RuleFunc
	predicate bool
}

func (r compiledRule) messageFor(field string, err error) string {
	if r.message != "" {
		return r.message
	}
	if r.predicate {
		if err != nil && err.Error() != "" {
			return err.Error()
		}
		return field + " validation failed"
	}
	return field + " is " + r.name
}

// Schema is a compiled, reusable validation specification. It is safe for
// concurrent use once compiled.
type Schema struct {
	fields map[string][]compiledRule
}

// Compile resolves spec against the builtin registry. See
// [Registry.Compile] for resolving against a custom registry.
func Compile(spec FieldRules) (*Schema, error) {
	return defaultRegistry.Compile(spec)
}

// defaultRegistry backs the package-level Compile. It holds only the pure
// builtin predicates and is never mutated after init.
var defaultRegistry = NewRegistry()

// Compile resolves every rule in spec once, so Validate never pays a lookup
// and configuration errors (unknown rule names, bad params, nil predicates)
// surface immediately.
func (r *Registry) Compile(spec FieldRules) (*Schema, error) {
	fields := make(map[string][]compiledRule, len(spec))

	for field, rules := range spec {
		compiled := make([]compiledRule, 0, len(rules))
		for _, rule := range rules {
			switch v := rule.(type) {
			case NamedRule:
				check, err := r.resolve(v.Name, v.Params)
				if err != nil {
					return nil, fmt.Errorf("field %q: %w", field, err)
				}
				compiled = append(compiled, compiledRule{
					name:    v.Name,
					message: v.Message,
					check:   check,
				})
			case PredicateRule:
				if v.Check == nil {
					return nil, fmt.Errorf("field %q: %w", field, ErrNilPredicate)
				}
				compiled = append(compiled, compiledRule{
					check:     v.Check,
					predicate: true,
				})
			default:
				return nil, fmt.Errorf("field %q: unsupported rule type %T", field, rule)
			}
		}
		fields[field] = compiled
	}

	return &Schema{fields: fields}, nil
}

// Validate applies the schema to values. For each field the rules run
// strictly in order and stop at the first failure, so Result.Errors carries
// at most one message per field; fields whose rules all pass are absent.
func (s *Schema) Validate(values Values) Result {
	errs := make(map[string]string)

	for field, rules := range s.fields {
		for _, rule := range rules {
			if err := rule.check(values[field]); err != nil {
				errs[field] = rule.messageFor(field, err)
				break
			}
		}
	}

	return Result{Errors: errs}
}

// Result is the outcome of validating one value bag. Errors maps each failed
// field to its first error message.
type Result struct {
	Errors map[string]string
}

// IsValid reports whether no field failed.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}
