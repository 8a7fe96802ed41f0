package validator

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// Values supplies the current value of sibling fields for cross-field checks.
type Values interface {
	Value(field string) string
}

// ValueMap is a Values backed by a plain map.
type ValueMap map[string]string

func (m ValueMap) Value(field string) string {
	return m[field]
}

type confirmation struct {
	sibling string
	message string
}

// Confirmation fields compared literally against the field they confirm.
var confirmations = map[string]confirmation{
	"confirmPassword":    {sibling: "password", message: "Passwords do not match"},
	"confirmNewPassword": {sibling: "newPassword", message: "New passwords do not match"},
}

// ConfirmsField returns the field that confirmation field confirms, if any.
func ConfirmsField(field string) (string, bool) {
	c, ok := confirmations[field]
	return c.sibling, ok
}

// Table maps field identifiers to their active FieldRule.
// At most one rule is active per identifier; registering again replaces it.
type Table struct {
	mu    sync.RWMutex
	rules map[string]FieldRule
	now   func() time.Time
}

// Option configures a Table.
type Option func(*Table)

// WithRules seeds the table. Later registrations still replace these entries.
func WithRules(rules map[string]FieldRule) Option {
	return func(t *Table) {
		maps.Copy(t.rules, rules)
	}
}

// WithClock sets the time source used by date predicates.
func WithClock(now func() time.Time) Option {
	return func(t *Table) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTable creates an empty rule table.
func NewTable(opts ...Option) *Table {
	t := &Table{
		rules: make(map[string]FieldRule),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewDefaultTable creates a table holding DefaultRules.
func NewDefaultTable(opts ...Option) *Table {
	return NewTable(append([]Option{WithRules(DefaultRules())}, opts...)...)
}

// Register inserts or overwrites the rule for field.
func (t *Table) Register(field string, rule FieldRule) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rules[field] = rule
}

// Unregister removes the rule for field. Missing fields are ignored.
func (t *Table) Unregister(field string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rules, field)
}

// Lookup returns the rule for field.
func (t *Table) Lookup(field string) (FieldRule, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rule, ok := t.rules[field]
	return rule, ok
}

// Fields returns registered identifiers in sorted order.
func (t *Table) Fields() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.rules))
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rules)
}

// Rules returns a snapshot copy of the table contents.
func (t *Table) Rules() map[string]FieldRule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.rules)
}

// Clone returns an independent table with the same rules and clock.
func (t *Table) Clone() *Table {
	return NewTable(WithRules(t.Rules()), WithClock(t.now))
}

// Evaluate applies the rule registered for field to the trimmed rawValue.
//
// Checks run in fixed priority order and the first failure wins:
// required, length, pattern, custom predicate, confirmation.
// Unregistered fields are always valid. siblings may be nil, in which case
// the confirmation check is skipped.
func (t *Table) Evaluate(field, rawValue string, siblings Values) Outcome {
	rule, ok := t.Lookup(field)
	if !ok {
		return ValidOutcome(field)
	}

	value := strings.TrimSpace(rawValue)
	if value == "" {
		if rule.Required {
			return InvalidOutcome(field, WithMessage(Required(field, value), rule.Message).Error.Message)
		}
		return ValidOutcome(field)
	}

	checks := make([]Rule, 0, 4)
	if rule.MinLength > 0 {
		checks = append(checks, MinLen(field, value, rule.MinLength))
	}
	if rule.MaxLength > 0 {
		checks = append(checks, MaxLen(field, value, rule.MaxLength))
	}
	if rule.Pattern != nil {
		checks = append(checks, Matches(field, value, rule.Pattern))
	}
	if rule.Custom != nil {
		checks = append(checks, rule.Custom.rule(field, value, t.now()))
	}

	if failed, ok := First(checks...); ok {
		return InvalidOutcome(field, WithMessage(Rule{Error: failed}, rule.Message).Error.Message)
	}

	if c, ok := confirmations[field]; ok && siblings != nil {
		if other := siblings.Value(c.sibling); other != "" {
			if failed, ok := First(Equal(field, value, other, c.message)); ok {
				return InvalidOutcome(field, failed.Message)
			}
		}
	}

	return ValidOutcome(field)
}
