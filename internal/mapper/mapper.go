package mapper

import (
	"strings"

	"setup2cfg/internal/diagnostic"
	"setup2cfg/internal/resolve"
	"setup2cfg/internal/schema"
)

// Argument is one argument of the located setup() call. A keyword argument
// carries either a resolved value or an unresolved marker, never both;
// positional and unpacked arguments carry only their source text.
type Argument struct {
	Name       string
	Value      resolve.Value
	Unresolved *resolve.Unresolved

	// Positional marks an argument passed positionally or via * or **
	// unpacking. Such arguments have no declarative mapping; Source holds
	// their text for the diagnostic.
	Positional bool
	Source     string

	// Line and Column locate the argument in the source, 1-based.
	Line   int
	Column int
}

// Mapper builds output documents against one schema table, routing
// non-convertible arguments to the diagnostic sink.
type Mapper struct {
	table *schema.Table
	sink  *diagnostic.Sink
}

// New creates a Mapper over the given table and sink.
func New(table *schema.Table, sink *diagnostic.Sink) *Mapper {
	return &Mapper{table: table, sink: sink}
}

// contribution is the accepted rendering of one argument: a plain item for
// scalar/list/keyvalues rules, a whole section for the subsection rule.
type contribution struct {
	item    *Item
	section *Section
}

// Build classifies the arguments in source order (fixing diagnostic order)
// and assembles the document in schema-table order (fixing output order).
func (m *Mapper) Build(args []Argument) *Document {
	contribs := make(map[string]contribution, len(args))

	for _, arg := range args {
		if arg.Positional {
			m.sink.AddPositional(arg.Source, arg.Line, arg.Column)
			continue
		}

		entry, known := m.table.Lookup(arg.Name)
		if !known {
			m.sink.AddUnknownField(arg.Name, arg.Line, arg.Column)
			continue
		}

		if u := arg.Unresolved; u != nil {
			m.sink.AddUnresolved(arg.Name, u.Reason, u.Source, u.Line, u.Column)
			continue
		}

		if c, ok := m.apply(entry, arg); ok {
			contribs[arg.Name] = c
		}
	}

	doc := &Document{}
	for _, entry := range m.table.Entries() {
		c, ok := contribs[entry.Arg]
		switch {
		case !ok:
		case c.item != nil:
			doc.add(entry.Section, *c.item)
		case c.section != nil:
			doc.Sections = append(doc.Sections, *c.section)
		}
	}

	return doc
}

// apply checks a resolved value against its entry's rendering rule. A shape
// mismatch produces the argument's single diagnostic and no contribution.
func (m *Mapper) apply(entry schema.Entry, arg Argument) (contribution, bool) {
	v := arg.Value

	switch entry.Rule {
	case schema.RuleScalar:
		if !v.IsScalar() {
			m.mismatch(arg, "a scalar value", v)
			return contribution{}, false
		}
		return contribution{item: &Item{Key: entry.Key, Kind: ItemScalar, Scalar: v.Render()}}, true

	case schema.RuleList:
		// setuptools also reads a bare comma-separated string here
		if v.Kind == resolve.KindString {
			return contribution{item: &Item{Key: entry.Key, Kind: ItemScalar, Scalar: v.Str}}, true
		}
		values, ok := scalarSlice(v)
		if !ok {
			m.mismatch(arg, "a sequence of scalars", v)
			return contribution{}, false
		}
		return contribution{item: &Item{Key: entry.Key, Kind: ItemList, Values: values}}, true

	case schema.RuleKeyValues:
		pairs, ok := scalarPairs(v)
		if !ok {
			m.mismatch(arg, "a mapping of scalars", v)
			return contribution{}, false
		}
		return contribution{item: &Item{Key: entry.Key, Kind: ItemPairs, Pairs: pairs}}, true

	case schema.RuleSubsection:
		section, ok := subsection(entry, v)
		if !ok {
			m.mismatch(arg, "a mapping of scalars or scalar sequences", v)
			return contribution{}, false
		}
		return contribution{section: section}, true

	default:
		// unreachable with a validated table
		m.sink.AddUnknownField(arg.Name, arg.Line, arg.Column)
		return contribution{}, false
	}
}

func (m *Mapper) mismatch(arg Argument, want string, got resolve.Value) {
	m.sink.AddShapeMismatch(arg.Name, want, describe(got), arg.Line, arg.Column)
}

// describe names a value's shape for diagnostics, e.g. "sequence".
func describe(v resolve.Value) string {
	return strings.ToLower(v.Kind.String())
}

// scalarSlice renders a sequence of scalars, or reports a shape mismatch.
func scalarSlice(v resolve.Value) ([]string, bool) {
	if v.Kind != resolve.KindSequence {
		return nil, false
	}

	out := make([]string, len(v.Seq))
	for i, e := range v.Seq {
		if !e.IsScalar() {
			return nil, false
		}
		out[i] = e.Render()
	}

	return out, true
}

// scalarPairs renders a flat scalar mapping in source key order.
func scalarPairs(v resolve.Value) ([]Pair, bool) {
	if v.Kind != resolve.KindMapping {
		return nil, false
	}

	out := make([]Pair, len(v.Map))
	for i, e := range v.Map {
		if !e.Value.IsScalar() {
			return nil, false
		}
		out[i] = Pair{Key: e.Key, Value: e.Value.Render()}
	}

	return out, true
}

// subsection promotes a mapping to its own section: scalar values become
// key = value items, scalar sequences become one-per-line items.
func subsection(entry schema.Entry, v resolve.Value) (*Section, bool) {
	if v.Kind != resolve.KindMapping {
		return nil, false
	}

	section := &Section{Name: entry.SubsectionName()}
	for _, e := range v.Map {
		switch {
		case e.Value.IsScalar():
			section.Items = append(section.Items, Item{Key: e.Key, Kind: ItemScalar, Scalar: e.Value.Render()})
		default:
			values, ok := scalarSlice(e.Value)
			if !ok {
				return nil, false
			}
			section.Items = append(section.Items, Item{Key: e.Key, Kind: ItemList, Values: values})
		}
	}

	return section, true
}
