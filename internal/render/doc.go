// Package render serializes the mapped document into declarative text.
//
// The setup.cfg renderer emits sections in canonical order ([metadata],
// [options], then promoted subsections) regardless of how the source ordered
// its arguments, so output is deterministic and diffable. Values are written
// unescaped; quoting characters the target format treats structurally is a
// documented compatibility boundary of the format itself.
//
// The pyproject.toml renderer keeps the upstream tool's raw-name [project]
// dump: resolved arguments under their setup() names, TOML-encoded with
// sorted keys.
package render
