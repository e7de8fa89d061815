package resolve

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Unresolved describes an expression the literal sublanguage rejects.
// It carries no value, only enough context to produce a diagnostic.
type Unresolved struct {
	// Reason is a short phrase naming the rejected construct.
	Reason string
	// Source is the text of the offending expression.
	Source string
	// Line and Column locate the expression in the input, 1-based.
	Line   int
	Column int
}

// Error implements the error interface.
func (u *Unresolved) Error() string {
	return u.Reason
}

// Resolver evaluates expression subtrees against a single source text.
//
// A Resolver is bound to one conversion run. It carries the loop-variable
// environment used to unroll comprehensions; outside a comprehension the
// environment is empty and every name lookup is unresolved.
type Resolver struct {
	src []byte
	env map[string]Value
}

// New creates a Resolver for the given source text.
func New(src []byte) *Resolver {
	return &Resolver{
		src: src,
		env: make(map[string]Value),
	}
}

// Expression resolves one expression subtree to a Value, or reports why it
// cannot be resolved without execution. The result for container shapes is
// all-or-nothing: one unresolvable element rejects the whole expression.
func (r *Resolver) Expression(n *sitter.Node) (Value, *Unresolved) {
	switch n.Type() {
	case "string":
		return r.stringLiteral(n)

	case "concatenated_string":
		return r.concatenatedString(n)

	case "integer":
		return r.integerLiteral(n)

	case "float":
		return r.floatLiteral(n)

	case "true":
		return BoolVal(true), nil

	case "false":
		return BoolVal(false), nil

	case "none":
		return NoneVal(), nil

	case "parenthesized_expression":
		inner, ok := firstNamedChild(n)
		if !ok {
			return Value{}, r.unresolved(n, "empty parentheses")
		}
		return r.Expression(inner)

	case "unary_operator":
		return r.unaryOperator(n)

	case "binary_operator":
		return r.binaryOperator(n)

	case "list", "tuple", "set":
		return r.sequenceLiteral(n)

	case "dictionary":
		return r.dictLiteral(n)

	case "list_comprehension", "set_comprehension", "generator_expression":
		return r.comprehension(n)

	case "identifier":
		if v, ok := r.env[n.Content(r.src)]; ok {
			return v, nil
		}
		return Value{}, r.unresolved(n, "reference to the name "+n.Content(r.src))

	case "call":
		return Value{}, r.unresolved(n, "the call "+n.Content(r.src))

	case "attribute":
		return Value{}, r.unresolved(n, "attribute access")

	case "subscript":
		return Value{}, r.unresolved(n, "subscript expression")

	case "conditional_expression":
		return Value{}, r.unresolved(n, "conditional expression")

	case "lambda":
		return Value{}, r.unresolved(n, "lambda expression")

	case "list_splat", "dictionary_splat":
		return Value{}, r.unresolved(n, "unpacking expression")

	case "dictionary_comprehension":
		return Value{}, r.unresolved(n, "dictionary comprehension")

	default:
		return Value{}, r.unresolved(n, "unsupported expression ("+n.Type()+")")
	}
}

func (r *Resolver) unresolved(n *sitter.Node, reason string) *Unresolved {
	return &Unresolved{
		Reason: reason,
		Source: n.Content(r.src),
		Line:   int(n.StartPoint().Row) + 1,
		Column: int(n.StartPoint().Column) + 1,
	}
}

// stringLiteral resolves one string token, rejecting bytes literals and
// f-strings that embed expressions.
func (r *Resolver) stringLiteral(n *sitter.Node) (Value, *Unresolved) {
	raw := n.Content(r.src)

	prefix := ""
	for len(raw) > 0 && raw[0] != '"' && raw[0] != '\'' {
		prefix += strings.ToLower(raw[:1])
		raw = raw[1:]
	}

	if strings.Contains(prefix, "b") {
		return Value{}, r.unresolved(n, "bytes literal")
	}

	if strings.Contains(prefix, "f") {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if n.NamedChild(i).Type() == "interpolation" {
				return Value{}, r.unresolved(n, "f-string interpolation")
			}
		}
	}

	body, ok := stripQuotes(raw)
	if !ok {
		return Value{}, r.unresolved(n, "malformed string literal")
	}

	if strings.Contains(prefix, "r") {
		return StringVal(body), nil
	}

	return StringVal(unescape(body)), nil
}

// concatenatedString resolves adjacent string literals ("a" "b") to their
// concatenation.
func (r *Resolver) concatenatedString(n *sitter.Node) (Value, *Unresolved) {
	var b strings.Builder

	for _, part := range namedChildren(n) {
		v, unres := r.Expression(part)
		if unres != nil {
			return Value{}, unres
		}
		if v.Kind != KindString {
			return Value{}, r.unresolved(part, "non-string in string concatenation")
		}
		b.WriteString(v.Str)
	}

	return StringVal(b.String()), nil
}

func (r *Resolver) integerLiteral(n *sitter.Node) (Value, *Unresolved) {
	text := strings.ReplaceAll(n.Content(r.src), "_", "")

	if strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J") {
		return Value{}, r.unresolved(n, "complex literal")
	}

	// base 0 covers 0x, 0o, and 0b prefixes
	i, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return Value{}, r.unresolved(n, "unparseable integer literal")
	}

	return IntVal(i), nil
}

func (r *Resolver) floatLiteral(n *sitter.Node) (Value, *Unresolved) {
	text := strings.ReplaceAll(n.Content(r.src), "_", "")

	if strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J") {
		return Value{}, r.unresolved(n, "complex literal")
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, r.unresolved(n, "unparseable float literal")
	}

	return FloatVal(f), nil
}

// unaryOperator accepts +/- on numeric literals, the one unary shape
// ast.literal_eval accepts as well.
func (r *Resolver) unaryOperator(n *sitter.Node) (Value, *Unresolved) {
	op := n.ChildByFieldName("operator")
	arg := n.ChildByFieldName("argument")
	if op == nil || arg == nil {
		return Value{}, r.unresolved(n, "unsupported unary expression")
	}

	v, unres := r.Expression(arg)
	if unres != nil {
		return Value{}, unres
	}

	switch op.Content(r.src) {
	case "-":
		switch v.Kind {
		case KindInt:
			return IntVal(-v.Int), nil
		case KindFloat:
			return FloatVal(-v.Float), nil
		}
	case "+":
		if v.Kind == KindInt || v.Kind == KindFloat {
			return v, nil
		}
	}

	return Value{}, r.unresolved(n, "unsupported unary expression")
}

// binaryOperator accepts + joining two resolvable strings or two resolvable
// sequences. Any other operator requires execution semantics.
func (r *Resolver) binaryOperator(n *sitter.Node) (Value, *Unresolved) {
	op := n.ChildByFieldName("operator")
	if op == nil || op.Content(r.src) != "+" {
		return Value{}, r.unresolved(n, "unsupported operator")
	}

	leftNode := n.ChildByFieldName("left")
	rightNode := n.ChildByFieldName("right")
	if leftNode == nil || rightNode == nil {
		return Value{}, r.unresolved(n, "unsupported operator")
	}

	left, unres := r.Expression(leftNode)
	if unres != nil {
		return Value{}, unres
	}

	right, unres := r.Expression(rightNode)
	if unres != nil {
		return Value{}, unres
	}

	switch {
	case left.Kind == KindString && right.Kind == KindString:
		return StringVal(left.Str + right.Str), nil
	case left.Kind == KindSequence && right.Kind == KindSequence:
		joined := make([]Value, 0, len(left.Seq)+len(right.Seq))
		joined = append(joined, left.Seq...)
		joined = append(joined, right.Seq...)
		return SequenceVal(joined...), nil
	default:
		return Value{}, r.unresolved(n, "mixed operands for +")
	}
}

func (r *Resolver) sequenceLiteral(n *sitter.Node) (Value, *Unresolved) {
	children := namedChildren(n)
	elems := make([]Value, 0, len(children))

	for _, c := range children {
		v, unres := r.Expression(c)
		if unres != nil {
			return Value{}, unres
		}
		elems = append(elems, v)
	}

	return SequenceVal(elems...), nil
}

// dictLiteral resolves a dict literal. Keys must be string literals; source
// key order is preserved.
func (r *Resolver) dictLiteral(n *sitter.Node) (Value, *Unresolved) {
	var entries []MapEntry

	for _, pair := range namedChildren(n) {
		if pair.Type() != "pair" {
			return Value{}, r.unresolved(pair, "unsupported dictionary entry")
		}

		keyNode := pair.ChildByFieldName("key")
		if keyNode == nil || (keyNode.Type() != "string" && keyNode.Type() != "concatenated_string") {
			return Value{}, r.unresolved(pair, "non-literal dictionary key")
		}

		valNode := pair.ChildByFieldName("value")
		if valNode == nil {
			return Value{}, r.unresolved(pair, "unsupported dictionary entry")
		}

		key, unres := r.Expression(keyNode)
		if unres != nil {
			return Value{}, unres
		}

		val, unres := r.Expression(valNode)
		if unres != nil {
			return Value{}, unres
		}

		entries = append(entries, MapEntry{Key: key.Str, Value: val})
	}

	return MappingVal(entries...), nil
}

// comprehension unrolls a single-for, no-filter comprehension over a
// resolvable iterable by binding the loop variable per element and
// re-resolving the body. Anything with filters, multiple clauses, or a
// destructuring target stays unresolved.
func (r *Resolver) comprehension(n *sitter.Node) (Value, *Unresolved) {
	body := n.ChildByFieldName("body")
	if body == nil {
		return Value{}, r.unresolved(n, "unsupported comprehension")
	}

	var forClause *sitter.Node
	for _, c := range namedChildren(n) {
		switch c.Type() {
		case "for_in_clause":
			if forClause != nil {
				return Value{}, r.unresolved(n, "nested comprehension clauses")
			}
			forClause = c
		case "if_clause":
			return Value{}, r.unresolved(n, "filtered comprehension")
		}
	}
	if forClause == nil {
		return Value{}, r.unresolved(n, "unsupported comprehension")
	}

	target := forClause.ChildByFieldName("left")
	if target == nil || target.Type() != "identifier" {
		return Value{}, r.unresolved(n, "destructuring comprehension target")
	}
	name := target.Content(r.src)

	iterNode := forClause.ChildByFieldName("right")
	if iterNode == nil {
		return Value{}, r.unresolved(n, "unsupported comprehension")
	}

	iterable, unres := r.Expression(iterNode)
	if unres != nil {
		return Value{}, unres
	}
	if iterable.Kind != KindSequence {
		return Value{}, r.unresolved(n, "comprehension over a non-sequence")
	}

	saved, shadowed := r.env[name]

	elems := make([]Value, 0, len(iterable.Seq))
	for _, item := range iterable.Seq {
		r.env[name] = item

		v, unres := r.Expression(body)
		if unres != nil {
			r.restore(name, saved, shadowed)
			return Value{}, unres
		}
		elems = append(elems, v)
	}

	r.restore(name, saved, shadowed)

	return SequenceVal(elems...), nil
}

func (r *Resolver) restore(name string, saved Value, shadowed bool) {
	if shadowed {
		r.env[name] = saved
	} else {
		delete(r.env, name)
	}
}

// namedChildren returns the named children of a node with comments skipped.
func namedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)

	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c.Type() == "comment" {
			continue
		}
		out = append(out, c)
	}

	return out
}

func firstNamedChild(n *sitter.Node) (*sitter.Node, bool) {
	children := namedChildren(n)
	if len(children) == 0 {
		return nil, false
	}

	return children[0], true
}

// stripQuotes removes the surrounding quotes from a string literal body.
func stripQuotes(raw string) (string, bool) {
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if len(raw) >= 2*len(q) && strings.HasPrefix(raw, q) && strings.HasSuffix(raw, q) {
			return raw[len(q) : len(raw)-len(q)], true
		}
	}

	return "", false
}

// unescape processes the escape sequences that matter for build metadata.
// Unrecognized escapes keep the backslash, matching Python's behavior.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}

		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '\'', '"':
			b.WriteByte(s[i])
		case '\n':
			// line continuation inside a string drops the newline
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
