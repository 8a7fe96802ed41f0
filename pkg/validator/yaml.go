package validator

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ruleDocument is the serialized form of a FieldRule.
type ruleDocument struct {
	Required  bool       `yaml:"required,omitempty"`
	MinLength int        `yaml:"min_length,omitempty"`
	MaxLength int        `yaml:"max_length,omitempty"`
	Pattern   string     `yaml:"pattern,omitempty"`
	Custom    *Predicate `yaml:"custom,omitempty"`
	Message   string     `yaml:"message"`
}

func (d ruleDocument) compile(field string) (FieldRule, error) {
	if d.MinLength < 0 || d.MaxLength < 0 {
		return FieldRule{}, fmt.Errorf("%w: %s: negative length bound", ErrInvalidRule, field)
	}
	if d.MinLength > 0 && d.MaxLength > 0 && d.MinLength > d.MaxLength {
		return FieldRule{}, fmt.Errorf("%w: %s: min_length %d exceeds max_length %d", ErrInvalidRule, field, d.MinLength, d.MaxLength)
	}

	rule := FieldRule{
		Required:  d.Required,
		MinLength: d.MinLength,
		MaxLength: d.MaxLength,
		Message:   d.Message,
	}

	if d.Pattern != "" {
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return FieldRule{}, errors.Join(fmt.Errorf("%w: %s", ErrInvalidPattern, field), err)
		}
		rule.Pattern = re
	}

	if d.Custom != nil {
		if err := d.Custom.Validate(); err != nil {
			return FieldRule{}, fmt.Errorf("%s: %w", field, err)
		}
		custom := *d.Custom
		rule.Custom = &custom
	}

	return rule, nil
}

func documentFor(rule FieldRule) ruleDocument {
	d := ruleDocument{
		Required:  rule.Required,
		MinLength: rule.MinLength,
		MaxLength: rule.MaxLength,
		Custom:    rule.Custom,
		Message:   rule.Message,
	}
	if rule.Pattern != nil {
		d.Pattern = rule.Pattern.String()
	}
	return d
}

// ParseRules decodes a YAML mapping of field identifier to rule.
// Patterns are compiled and predicate kinds checked here, so a table built
// from the result never holds a malformed rule.
func ParseRules(data []byte) (map[string]FieldRule, error) {
	var docs map[string]ruleDocument
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, errors.Join(ErrFailedToParseRules, err)
	}

	rules := make(map[string]FieldRule, len(docs))
	for field, doc := range docs {
		if field == "" {
			return nil, fmt.Errorf("%w: empty field identifier", ErrInvalidRule)
		}
		rule, err := doc.compile(field)
		if err != nil {
			return nil, err
		}
		rules[field] = rule
	}
	return rules, nil
}

// LoadRulesFile reads and parses a YAML rule document from path.
func LoadRulesFile(path string) (map[string]FieldRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRules, err)
	}
	return ParseRules(data)
}

// MarshalRules encodes rules as a YAML document accepted by ParseRules.
func MarshalRules(rules map[string]FieldRule) ([]byte, error) {
	docs := make(map[string]ruleDocument, len(rules))
	for field, rule := range rules {
		docs[field] = documentFor(rule)
	}
	return yaml.Marshal(docs)
}
