package schema

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed schema.yaml
var rawSchema []byte

// Default is the process-wide schema table, loaded from the embedded
// schema.yaml at startup.
var Default = mustParse(rawSchema)

// Parse parses and validates a YAML schema document.
func Parse(data []byte) (*Table, error) {
	var f file

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	t := &Table{
		version: f.Version,
		entries: f.Fields,
		byArg:   make(map[string]int, len(f.Fields)),
	}
	for i, e := range f.Fields {
		t.byArg[e.Arg] = i
	}

	if err := validate(t); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return t, nil
}

func applyDefaults(f *file) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Fields {
		if f.Fields[i].Key == "" {
			f.Fields[i].Key = f.Fields[i].Arg
		}
	}
}

// validate checks the structural invariants the mapper relies on.
func validate(t *Table) error {
	var errs []error

	seen := make(map[string]struct{}, len(t.entries))
	for _, e := range t.entries {
		if e.Arg == "" {
			errs = append(errs, errors.New("entry with empty arg"))
			continue
		}

		if _, dup := seen[e.Arg]; dup {
			errs = append(errs, fmt.Errorf("duplicate entry for %s", e.Arg))
		}
		seen[e.Arg] = struct{}{}

		if e.Section != "metadata" && e.Section != "options" {
			errs = append(errs, fmt.Errorf("%s: unknown section %q", e.Arg, e.Section))
		}

		if e.Rule <= RuleInvalid || int(e.Rule) >= RuleTotal {
			errs = append(errs, fmt.Errorf("%s: missing rule", e.Arg))
		}

		// subsections are a setuptools [options.*] construct
		if e.Rule == RuleSubsection && e.Section != "options" {
			errs = append(errs, fmt.Errorf("%s: subsection outside options", e.Arg))
		}
	}

	return errors.Join(errs...)
}

func mustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}

	return t
}
