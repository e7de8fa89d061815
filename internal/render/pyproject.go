package render

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"setup2cfg/internal/diagnostic"
	"setup2cfg/internal/mapper"
)

// Pyproject renders resolved arguments as a pyproject.toml [project] table.
// Arguments keep their setup() names; positional arguments, unresolved
// values, and values containing None (which TOML cannot express) are
// diagnosed and skipped.
func Pyproject(args []mapper.Argument, sink *diagnostic.Sink) (string, error) {
	project := make(map[string]any, len(args))

	for _, arg := range args {
		if arg.Positional {
			sink.AddPositional(arg.Source, arg.Line, arg.Column)
			continue
		}

		if u := arg.Unresolved; u != nil {
			sink.AddUnresolved(arg.Name, u.Reason, u.Source, u.Line, u.Column)
			continue
		}

		if arg.Value.ContainsNone() {
			sink.Add(diagnostic.Entry{
				Argument: arg.Name,
				Message:  "None has no TOML rendering",
				Line:     arg.Line,
				Column:   arg.Column,
			})
			continue
		}

		project[arg.Name] = arg.Value.Interface()
	}

	var buf bytes.Buffer

	// the encoder writes map keys sorted, which keeps output deterministic
	if err := toml.NewEncoder(&buf).Encode(map[string]any{"project": project}); err != nil {
		return "", fmt.Errorf("encoding pyproject document: %w", err)
	}

	return buf.String(), nil
}
