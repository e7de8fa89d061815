package locate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"setup2cfg/internal/common"
)

// ErrParse indicates the input is not syntactically valid Python.
var ErrParse = errors.New("source contains syntax errors")

// ErrNoInvocationFound indicates the source contains no setup() call.
var ErrNoInvocationFound = errors.New("no setup() call found")

// Position locates a construct in the source text, 1-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// AmbiguousInvocationError reports more than one setup() call. The tool makes
// no attempt to disambiguate: silently picking one risks a wrong conversion.
type AmbiguousInvocationError struct {
	Positions []Position
}

func (e *AmbiguousInvocationError) Error() string {
	locs := make([]string, len(e.Positions))
	for i, p := range e.Positions {
		locs[i] = p.String()
	}

	return fmt.Sprintf("found %d setup() calls (%s); exactly one is required",
		len(e.Positions), strings.Join(locs, "; "))
}

// Argument is one argument of the located call, keyword or not. Name is
// empty for positional, *args, and **kwargs arguments. Node references the
// value expression (the whole argument for positional forms) inside the
// Source's tree and stays valid until Close.
type Argument struct {
	Name string
	Node *sitter.Node
	Pos  Position
}

// Keyword reports whether the argument was passed by keyword.
func (a Argument) Keyword() bool {
	return a.Name != ""
}

// Invocation is the located setup() call: every argument in source order, so
// callers can classify and diagnose them in strict encounter order.
type Invocation struct {
	Arguments []Argument
	Pos       Position
}

// Source is a parsed source unit. It owns the tree-sitter tree; Close
// releases it, invalidating every node handed out by Invocation.
type Source struct {
	text []byte
	tree *sitter.Tree
}

// Parse parses the given source text. Syntax errors are fatal.
func Parse(ctx context.Context, text []byte) (*Source, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, text)
	if err != nil {
		return nil, fmt.Errorf("parsing source: %w", err)
	}

	if tree.RootNode().HasError() {
		tree.Close()
		return nil, ErrParse
	}

	return &Source{text: text, tree: tree}, nil
}

// Close releases the parse tree.
func (s *Source) Close() {
	s.tree.Close()
}

// Text returns the raw source text the tree was parsed from.
func (s *Source) Text() []byte {
	return s.text
}

// Invocation scans the tree for setup() calls and returns the single match.
// Calls nested inside a match's own argument list are not counted as
// candidates.
func (s *Source) Invocation() (*Invocation, error) {
	candidates := s.findSetupCalls()

	if common.IsEmpty(candidates) {
		return nil, ErrNoInvocationFound
	}

	if common.IsMultiple(candidates) {
		positions := make([]Position, len(candidates))
		for i, c := range candidates {
			positions[i] = position(c)
		}
		return nil, &AmbiguousInvocationError{Positions: positions}
	}

	call, _ := common.First(candidates)

	return s.arguments(call)
}

// findSetupCalls walks the tree depth-first, left to right, collecting call
// nodes whose callee names setup. Matched subtrees are not descended into.
func (s *Source) findSetupCalls() []*sitter.Node {
	var calls []*sitter.Node

	stack := []*sitter.Node{s.tree.RootNode()}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Type() == "call" && s.isSetupCallee(n.ChildByFieldName("function")) {
			calls = append(calls, n)
			continue
		}

		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}

	return calls
}

// isSetupCallee matches the identifier setup and attribute chains ending in
// .setup, covering direct imports and module-qualified invocations alike.
func (s *Source) isSetupCallee(fn *sitter.Node) bool {
	if fn == nil {
		return false
	}

	switch fn.Type() {
	case "identifier":
		return fn.Content(s.text) == "setup"
	case "attribute":
		attr := fn.ChildByFieldName("attribute")
		return attr != nil && attr.Content(s.text) == "setup"
	default:
		return false
	}
}

// arguments extracts the call's argument list in source order. A repeated
// keyword name is a Python syntax error the grammar alone does not reject
// (ast.parse refuses it), so it is reported as ErrParse rather than letting
// a later occurrence shadow an earlier one.
func (s *Source) arguments(call *sitter.Node) (*Invocation, error) {
	inv := &Invocation{Pos: position(call)}

	args := call.ChildByFieldName("arguments")
	if args == nil {
		return inv, nil
	}

	seen := make(map[string]Position)

	for i := 0; i < int(args.NamedChildCount()); i++ {
		c := args.NamedChild(i)

		switch c.Type() {
		case "comment":
			// not an argument

		case "keyword_argument":
			name := c.ChildByFieldName("name")
			value := c.ChildByFieldName("value")
			if name == nil || value == nil {
				return nil, fmt.Errorf("malformed keyword argument at %s", position(c))
			}

			kw := name.Content(s.text)
			if first, dup := seen[kw]; dup {
				return nil, fmt.Errorf("%w: keyword argument %s repeated at %s (first at %s)",
					ErrParse, kw, position(c), first)
			}
			seen[kw] = position(c)

			inv.Arguments = append(inv.Arguments, Argument{
				Name: kw,
				Node: value,
				Pos:  position(c),
			})

		default:
			// positional, *args, or **kwargs
			inv.Arguments = append(inv.Arguments, Argument{Node: c, Pos: position(c)})
		}
	}

	return inv, nil
}

func position(n *sitter.Node) Position {
	return Position{
		Line:   int(n.StartPoint().Row) + 1,
		Column: int(n.StartPoint().Column) + 1,
	}
}
