// Package validation carries field-indexed request validation failures from
// use cases to the HTTP layer, where they become 422 responses with an
// "errors" object keyed by field name.
package validation

import "strings"

type Error struct {
	fields map[string][]string
	order  []string
}

func NewError() *Error {
	return &Error{fields: make(map[string][]string)}
}

func (e *Error) Add(field string, message string) *Error {
	if _, seen := e.fields[field]; !seen {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
	return e
}

func (e *Error) HasErrors() bool {
	return e != nil && len(e.fields) > 0
}

// Err returns the error itself when any field failed, nil otherwise.
// Callers accumulate with Add and finish with `return v.Err()`.
func (e *Error) Err() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// Fields returns messages keyed by field, in a copy safe to serialize.
func (e *Error) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for field, messages := range e.fields {
		out[field] = append([]string(nil), messages...)
	}
	return out
}

// Message is the first recorded failure, used as the response summary line.
func (e *Error) Message() string {
	for _, field := range e.order {
		if messages := e.fields[field]; len(messages) > 0 {
			return messages[0]
		}
	}
	return "The given data was invalid."
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, field := range e.order {
		parts = append(parts, field+": "+strings.Join(e.fields[field], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
