package fsm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// tableDocument is the YAML shape accepted by LoadTable:
//
//	rules:
//	  - from: idle
//	    event: start
//	    to: running
//
// The key is named "event" rather than "on" because unquoted "on" resolves
// as a YAML boolean.
type tableDocument struct {
	Rules []ruleDocument `yaml:"rules"`
}

type ruleDocument struct {
	From  string `yaml:"from"`
	Event string `yaml:"event"`
	To    string `yaml:"to"`
}

// LoadTable reads a YAML table definition and builds an immutable Table from
// it. This is startup-time construction: the returned table is as read-only
// as one built with NewTable, and re-reading a changed document has no effect
// on machines already holding the previous table.
//
// State and event names are the lowercase forms produced by State.String and
// Event.String; unknown names and duplicate (from, on) pairs are construction
// errors, as with NewTable.
func LoadTable(r io.Reader) (*Table, error) {
	var doc tableDocument

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode transition table: %w", err)
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for i, rd := range doc.Rules {
		from, err := ParseState(rd.From)
		if err != nil {
			return nil, fmt.Errorf("rule[%d] from: %w", i, err)
		}
		on, err := ParseEvent(rd.Event)
		if err != nil {
			return nil, fmt.Errorf("rule[%d] event: %w", i, err)
		}
		to, err := ParseState(rd.To)
		if err != nil {
			return nil, fmt.Errorf("rule[%d] to: %w", i, err)
		}
		rules = append(rules, Rule{From: from, On: on, To: to})
	}

	return NewTable(rules)
}
