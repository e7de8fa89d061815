package resolve

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind discriminates the variants of a resolved Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindNone
	KindSequence
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
