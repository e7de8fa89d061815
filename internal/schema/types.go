package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Rule -trimprefix=Rule

// Rule selects how a resolved value renders at its destination.
type Rule int

const (
	RuleInvalid Rule = iota

	// RuleScalar renders one key = value pair. Accepts string, integer,
	// float, and boolean values.
	RuleScalar

	// RuleList renders a sequence of scalars as one indented entry per
	// line under the key. A bare string is also accepted and renders as a
	// scalar, matching setuptools' comma-separated shorthand.
	RuleList

	// RuleKeyValues renders a flat mapping as indented "k = v"
	// continuation lines under the key (project_urls, package_dir).
	RuleKeyValues

	// RuleSubsection promotes a mapping to its own section, e.g.
	// entry_points becomes [options.entry_points]. Mapping values may be
	// scalars or sequences of scalars.
	RuleSubsection

	// RuleTotal is a constant that represents the total number of rules defined
	RuleTotal = int(iota)
)

// UnmarshalYAML parses a rule from its lowercase schema-file name.
//
// The name mapping is a switch, not a package-level table: this method runs
// while Default is being initialized, and yaml.v3 reaches it through
// interface dispatch, which initialization dependency analysis cannot
// follow. A package variable here may still be nil at that point.
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch s {
	case "scalar":
		*r = RuleScalar
	case "list":
		*r = RuleList
	case "keyvalues":
		*r = RuleKeyValues
	case "subsection":
		*r = RuleSubsection
	default:
		return fmt.Errorf("unknown rule %q", s)
	}

	return nil
}

// Entry maps one keyword argument to a destination and a rendering rule.
type Entry struct {
	// Arg is the setup() keyword-argument name.
	Arg string `yaml:"arg"`

	// Section is the destination section, metadata or options.
	Section string `yaml:"section"`

	// Key is the destination key. Defaults to Arg.
	Key string `yaml:"key,omitempty"`

	// Rule is the rendering rule for the value.
	Rule Rule `yaml:"rule"`
}

// SubsectionName returns the derived section name for a subsection-rule
// entry, e.g. options.entry_points.
func (e Entry) SubsectionName() string {
	return e.Section + "." + e.Key
}

// file is the YAML document shape of the embedded schema.
type file struct {
	Version string  `yaml:"version,omitempty"`
	Fields  []Entry `yaml:"fields"`
}

// Table is the parsed, validated schema table. Read-only after Parse.
type Table struct {
	version string
	entries []Entry
	byArg   map[string]int
}

// Version returns the schema version string.
func (t *Table) Version() string {
	return t.version
}

// Entries returns all entries in table order. The table order is canonical:
// it decides key order within sections and the order of subsections.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Lookup finds the entry for a keyword-argument name.
func (t *Table) Lookup(arg string) (Entry, bool) {
	i, ok := t.byArg[arg]
	if !ok {
		return Entry{}, false
	}

	return t.entries[i], true
}
