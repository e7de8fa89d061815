package locate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Source {
	t.Helper()

	s, err := Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

func TestInvocationSurroundedByCode(t *testing.T) {
	src := parse(t, `
import os
from setuptools import setup, find_packages

def read(path):
    with open(path) as fh:
        return fh.read()

if os.environ.get("CI"):
    print("building in CI")

setup(
    name="demo",
    version="1.0",
)
`)

	inv, err := src.Invocation()
	require.NoError(t, err)

	require.Len(t, inv.Arguments, 2)
	assert.Equal(t, "name", inv.Arguments[0].Name)
	assert.Equal(t, "version", inv.Arguments[1].Name)
	assert.True(t, inv.Arguments[0].Keyword())
	assert.Equal(t, 12, inv.Pos.Line)
}

func TestInvocationKeywordOrderAndNodes(t *testing.T) {
	src := parse(t, `setup(version="2.0", name="demo")`)

	inv, err := src.Invocation()
	require.NoError(t, err)

	require.Len(t, inv.Arguments, 2)
	assert.Equal(t, "version", inv.Arguments[0].Name)
	assert.Equal(t, `"2.0"`, inv.Arguments[0].Node.Content(src.Text()))
	assert.Equal(t, "name", inv.Arguments[1].Name)
	assert.Equal(t, `"demo"`, inv.Arguments[1].Node.Content(src.Text()))
}

func TestInvocationQualifiedCallee(t *testing.T) {
	tests := []struct {
		src   string
		found bool
	}{
		{`import setuptools; setuptools.setup(name="demo")`, true},
		{`import distutils.core; distutils.core.setup(name="demo")`, true},
		// an alias that no longer names setup is out of reach for a
		// static locator
		{`from setuptools import setup as build; build(name="demo")`, false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			inv, err := parse(t, tt.src).Invocation()
			if !tt.found {
				require.ErrorIs(t, err, ErrNoInvocationFound)
				return
			}
			require.NoError(t, err)
			require.Len(t, inv.Arguments, 1)
		})
	}
}

func TestInvocationIgnoresOtherCalls(t *testing.T) {
	src := parse(t, `
print("hello")
configure(name="other")
setup(name="demo")
`)

	inv, err := src.Invocation()
	require.NoError(t, err)
	require.Len(t, inv.Arguments, 1)
}

func TestNestedCallIsNotACandidate(t *testing.T) {
	// a setup call inside the located call's own argument list must not
	// make the invocation ambiguous
	src := parse(t, `setup(name="demo", cmdclass=wrap(setup(name="inner")))`)

	inv, err := src.Invocation()
	require.NoError(t, err)
	require.Len(t, inv.Arguments, 2)
}

func TestNoInvocationFound(t *testing.T) {
	src := parse(t, `print("no build descriptor here")`)

	_, err := src.Invocation()
	require.ErrorIs(t, err, ErrNoInvocationFound)
}

func TestAmbiguousInvocation(t *testing.T) {
	src := parse(t, `
import sys

if sys.version_info >= (3, 0):
    setup(name="demo")
else:
    setup(name="demo-legacy")
`)

	_, err := src.Invocation()

	var ambiguous *AmbiguousInvocationError
	require.ErrorAs(t, err, &ambiguous)
	require.Len(t, ambiguous.Positions, 2)
	assert.Equal(t, 5, ambiguous.Positions[0].Line)
	assert.Equal(t, 7, ambiguous.Positions[1].Line)
	assert.Contains(t, ambiguous.Error(), "line 5")
	assert.Contains(t, ambiguous.Error(), "line 7")
}

func TestParseError(t *testing.T) {
	_, err := Parse(context.Background(), []byte(`setup(name=`))
	require.ErrorIs(t, err, ErrParse)
}

func TestRepeatedKeywordArgument(t *testing.T) {
	// ast.parse rejects this as a syntax error; tree-sitter does not, so the
	// locator has to catch it itself instead of shadowing the first value
	src := parse(t, `setup(name="first", version="1.0", name="second")`)

	_, err := src.Invocation()
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "repeated")
}

func TestPositionalAndUnpackedArguments(t *testing.T) {
	src := parse(t, `setup("legacy", name="demo", **extra)`)

	inv, err := src.Invocation()
	require.NoError(t, err)

	// source order is preserved across keyword and positional forms
	require.Len(t, inv.Arguments, 3)
	assert.False(t, inv.Arguments[0].Keyword())
	assert.Equal(t, `"legacy"`, inv.Arguments[0].Node.Content(src.Text()))
	assert.True(t, inv.Arguments[1].Keyword())
	assert.Equal(t, "name", inv.Arguments[1].Name)
	assert.False(t, inv.Arguments[2].Keyword())
	assert.Equal(t, `**extra`, inv.Arguments[2].Node.Content(src.Text()))
}
