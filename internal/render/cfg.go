package render

import (
	"fmt"
	"strings"

	"setup2cfg/internal/mapper"
)

// indent matches the continuation-line convention setuptools documents for
// multi-value keys.
const indent = "    "

// Cfg renders a document as setup.cfg text. Rendering the same document
// twice yields byte-identical output.
func Cfg(doc *mapper.Document) string {
	var b strings.Builder

	for i, section := range canonical(doc.Sections) {
		if i > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "[%s]\n", section.Name)

		for _, item := range section.Items {
			writeItem(&b, item)
		}
	}

	return b.String()
}

func writeItem(b *strings.Builder, item mapper.Item) {
	switch item.Kind {
	case mapper.ItemScalar:
		fmt.Fprintf(b, "%s = %s\n", item.Key, continuation(item.Scalar))

	case mapper.ItemList:
		fmt.Fprintf(b, "%s =\n", item.Key)
		for _, v := range item.Values {
			b.WriteString(indent)
			b.WriteString(v)
			b.WriteByte('\n')
		}

	case mapper.ItemPairs:
		fmt.Fprintf(b, "%s =\n", item.Key)
		for _, p := range item.Pairs {
			fmt.Fprintf(b, "%s%s = %s\n", indent, p.Key, p.Value)
		}
	}
}

// continuation indents embedded newlines so multi-line scalars (e.g. a
// long_description) stay inside their key.
func continuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}

// canonical orders sections metadata first, then options, then subsections
// in their existing (schema table) order.
func canonical(sections []mapper.Section) []mapper.Section {
	out := make([]mapper.Section, 0, len(sections))

	for _, name := range []string{"metadata", "options"} {
		for _, s := range sections {
			if s.Name == name {
				out = append(out, s)
			}
		}
	}

	for _, s := range sections {
		if s.Name != "metadata" && s.Name != "options" {
			out = append(out, s)
		}
	}

	return out
}
