package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryString(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			"message only",
			Entry{Message: "positional argument has no declarative form"},
			"positional argument has no declarative form",
		},
		{
			"argument and position",
			Entry{Argument: "packages", Message: "unknown field", Line: 3},
			"line 3: packages: unknown field",
		},
		{
			"with source rendering",
			Entry{Argument: "install_requires", Message: "non-literal value", Source: "get_requirements()", Line: 7},
			"line 7: install_requires: non-literal value\n|  get_requirements()",
		},
		{
			"multi-line source rendering",
			Entry{Argument: "extras_require", Message: "non-literal value", Source: "{\n    k: v\n}"},
			"extras_require: non-literal value\n|  {\n|      k: v\n|  }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.String())
		})
	}
}

func TestSinkKeepsOrderAndDuplicates(t *testing.T) {
	var s Sink

	s.AddUnknownField("custom_arg", 1, 1)
	s.AddUnresolved("install_requires", "the call reqs()", "reqs()", 2, 10)
	s.AddUnknownField("custom_arg", 3, 1)
	s.AddPositional(`**extra`, 3, 20)
	s.AddShapeMismatch("name", "a scalar value", "sequence", 4, 1)

	require.Equal(t, 5, s.Len())

	entries := s.Drain()
	require.Len(t, entries, 5)
	assert.Equal(t, "custom_arg", entries[0].Argument)
	assert.Equal(t, "install_requires", entries[1].Argument)
	assert.Equal(t, "custom_arg", entries[2].Argument)
	assert.Empty(t, entries[3].Argument)
	assert.Equal(t, `**extra`, entries[3].Source)
	assert.Contains(t, entries[3].Message, "positional or unpacked")
	assert.Equal(t, "name: expected a scalar value, got sequence", Entry{
		Argument: entries[4].Argument,
		Message:  entries[4].Message,
	}.String())

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Drain())
}
