// Package validate evaluates declarative form schemas: each field carries
// an ordered rule set, the first failing rule supplies the message, and
// cross-field refinements only run once every involved field passed on
// its own. The result is a field -> message map any caller can render.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Errors maps field name to the first failing rule's message.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// Field declares the rules for one form field. Rules evaluate in the
// declared order: Required, MinLen, MaxLen, Pattern, OneOf, Check.
type Field struct {
	Name     string
	Required bool
	// RequiredMsg is mandatory when Required is set.
	RequiredMsg string
	// Optional fields with an empty value skip every remaining rule.
	MinLen     int
	MinLenMsg  string
	MaxLen     int
	MaxLenMsg  string
	Pattern    *regexp.Regexp
	PatternMsg string
	OneOf      []string
	OneOfMsg   string
	// Check is a custom rule: return "" to accept, a message to reject.
	Check func(value string) string
}

// Refinement is a cross-field rule (e.g. confirm-password equality).
// It runs only when none of Fields has its own error yet.
type Refinement struct {
	// Fields the rule reads; the rule is skipped if any of them already
	// failed its per-field rules.
	Fields []string
	// Target names the field the message attaches to.
	Target string
	Check  func(values map[string]string) string
}

// Schema is an ordered field list plus cross-field refinements.
type Schema struct {
	Fields      []Field
	Refinements []Refinement
}

// Validate evaluates values against the schema.
func (s Schema) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, f := range s.Fields {
		if msg := f.validate(strings.TrimSpace(values[f.Name])); msg != "" {
			errs[f.Name] = msg
		}
	}
	for _, r := range s.Refinements {
		if errs[r.Target] != "" {
			continue
		}
		clean := true
		for _, name := range r.Fields {
			if errs[name] != "" {
				clean = false
				break
			}
		}
		if !clean {
			continue
		}
		if msg := r.Check(values); msg != "" {
			errs[r.Target] = msg
		}
	}
	return errs
}

func (f Field) validate(value string) string {
	if value == "" {
		if f.Required {
			return f.RequiredMsg
		}
		return ""
	}
	if f.MinLen > 0 && utf8.RuneCountInString(value) < f.MinLen {
		return f.MinLenMsg
	}
	if f.MaxLen > 0 && utf8.RuneCountInString(value) > f.MaxLen {
		return f.MaxLenMsg
	}
	if f.Pattern != nil && !f.Pattern.MatchString(value) {
		return f.PatternMsg
	}
	if len(f.OneOf) > 0 {
		found := false
		for _, opt := range f.OneOf {
			if value == opt {
				found = true
				break
			}
		}
		if !found {
			return f.OneOfMsg
		}
	}
	if f.Check != nil {
		return f.Check(value)
	}
	return ""
}

// EmailPattern is intentionally permissive: one @, a dot in the domain.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
