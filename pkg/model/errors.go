package model

import (
	"slices"
	"strings"
	"sync"
)

// Errors is an ordered collection of validation messages keyed by field name.
// Field order follows the first message added for each field.
type Errors struct {
	mu       sync.RWMutex
	order    []string
	messages map[string][]string
	form     []string
}

// NewErrors returns an empty collection.
func NewErrors() *Errors {
	return &Errors{messages: make(map[string][]string)}
}

// Add appends messages for field. Blank messages are ignored.
func (e *Errors) Add(field string, messages ...string) {
	field = strings.TrimSpace(field)
	if e == nil || field == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.messages == nil {
		e.messages = make(map[string][]string)
	}
	for _, message := range messages {
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if _, exists := e.messages[field]; !exists {
			e.order = append(e.order, field)
		}
		e.messages[field] = append(e.messages[field], message)
	}
}

// AddForm appends messages that do not belong to a single field.
func (e *Errors) AddForm(messages ...string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.form = MergeMessages(e.form, messages...)
}

// Get returns a copy of the messages recorded for field, or nil.
func (e *Errors) Get(field string) []string {
	if e == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.messages[strings.TrimSpace(field)])
}

// Form returns the form-level messages.
func (e *Errors) Form() []string {
	if e == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.form)
}

// Has reports whether field has at least one message.
func (e *Errors) Has(field string) bool {
	return len(e.Get(field)) > 0
}

// Fields returns field names in insertion order.
func (e *Errors) Fields() []string {
	if e == nil {
		return nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.order)
}

// Len returns the number of field and form level messages.
func (e *Errors) Len() int {
	if e == nil {
		return 0
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	total := len(e.form)
	for _, messages := range e.messages {
		total += len(messages)
	}
	return total
}

// Empty reports whether the collection holds no messages.
func (e *Errors) Empty() bool {
	return e.Len() == 0
}

// Clone returns an independent copy.
func (e *Errors) Clone() *Errors {
	out := NewErrors()
	if e == nil {
		return out
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	out.order = slices.Clone(e.order)
	for field, messages := range e.messages {
		out.messages[field] = slices.Clone(messages)
	}
	out.form = slices.Clone(e.form)
	return out
}

// MergeMessages concatenates message slices, trimming whitespace and removing
// duplicates while preserving order.
func MergeMessages(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
