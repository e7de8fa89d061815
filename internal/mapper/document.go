package mapper

//go:generate go tool stringer -type=ItemKind -trimprefix=Item

// ItemKind discriminates how a document item renders.
type ItemKind int

const (
	ItemScalar ItemKind = iota
	ItemList
	ItemPairs
)

// Pair is one k = v continuation line of an ItemPairs item.
type Pair struct {
	Key   string
	Value string
}

// Item is one key under a section.
type Item struct {
	Key  string
	Kind ItemKind

	// Scalar is the value of an ItemScalar item.
	Scalar string
	// Values are the one-per-line entries of an ItemList item.
	Values []string
	// Pairs are the continuation lines of an ItemPairs item.
	Pairs []Pair
}

// Section is an ordered sequence of items under one [name].
type Section struct {
	Name  string
	Items []Item
}

// Document is the ordered section/key model consumed by the serializer.
// It is built by one conversion run and discarded after rendering.
type Document struct {
	Sections []Section
}

// add appends an item to the named section, creating the section on first
// use.
func (d *Document) add(section string, item Item) {
	for i := range d.Sections {
		if d.Sections[i].Name == section {
			d.Sections[i].Items = append(d.Sections[i].Items, item)
			return
		}
	}

	d.Sections = append(d.Sections, Section{Name: section, Items: []Item{item}})
}
