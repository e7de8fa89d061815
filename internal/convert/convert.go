package convert

import (
	"context"
	"fmt"
	"log/slog"

	"setup2cfg/internal/diagnostic"
	"setup2cfg/internal/locate"
	"setup2cfg/internal/mapper"
	"setup2cfg/internal/render"
	"setup2cfg/internal/resolve"
	"setup2cfg/internal/schema"
)

// Supported output formats.
const (
	FormatCfg       = "setup.cfg"
	FormatPyproject = "pyproject.toml"
)

// Options configures one conversion run.
type Options struct {
	// Format selects the output format. Defaults to FormatCfg.
	Format string
}

// Result is a completed run: the converted document plus every diagnostic
// collected along the way, in encounter order. A non-empty diagnostic list
// means the document is best-effort, not complete.
type Result struct {
	Document    string
	Diagnostics []diagnostic.Entry
}

// Run converts one setup.py source text. The returned error is fatal (the
// input is not a conversion candidate); diagnosed constructs never fail the
// run.
func Run(ctx context.Context, source []byte, opts Options) (*Result, error) {
	format := opts.Format
	if format == "" {
		format = FormatCfg
	}
	if format != FormatCfg && format != FormatPyproject {
		return nil, fmt.Errorf("unknown format %q", format)
	}

	src, err := locate.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	inv, err := src.Invocation()
	if err != nil {
		return nil, err
	}

	slog.Debug("located setup() call", "line", inv.Pos.Line, "arguments", len(inv.Arguments))

	sink := &diagnostic.Sink{}
	resolver := resolve.New(src.Text())

	// one argument list in source order, so diagnostics for positional and
	// keyword arguments come out in strict encounter order
	args := make([]mapper.Argument, 0, len(inv.Arguments))
	for _, a := range inv.Arguments {
		if !a.Keyword() {
			args = append(args, mapper.Argument{
				Positional: true,
				Source:     a.Node.Content(src.Text()),
				Line:       a.Pos.Line,
				Column:     a.Pos.Column,
			})
			continue
		}

		v, unres := resolver.Expression(a.Node)
		args = append(args, mapper.Argument{
			Name:       a.Name,
			Value:      v,
			Unresolved: unres,
			Line:       a.Pos.Line,
			Column:     a.Pos.Column,
		})
	}

	var document string
	switch format {
	case FormatCfg:
		doc := mapper.New(schema.Default, sink).Build(args)
		document = render.Cfg(doc)
	case FormatPyproject:
		document, err = render.Pyproject(args, sink)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("conversion finished", "format", format, "diagnostics", sink.Len())

	return &Result{Document: document, Diagnostics: sink.Drain()}, nil
}
