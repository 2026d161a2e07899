// Package forms coerces and validates raw form submissions per entity,
// producing either typed data or a field-keyed error map for re-rendering.
// Parsing is pure: no side effects, no storage access.
package forms

import "net/url"

// State is the invalid half of a validation outcome. A nil *State means the
// input passed. Errors maps submitted field names to human-readable messages;
// Message is the summary shown above the form.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func (s *State) addError(field, msg string) {
	if s.Errors == nil {
		s.Errors = make(map[string][]string)
	}
	s.Errors[field] = append(s.Errors[field], msg)
}

func (s *State) invalid() bool {
	return len(s.Errors) > 0
}

// field names are case-sensitive and must match the submitted form exactly.
func formValue(form url.Values, field string) string {
	return form.Get(field)
}
