// Package schema holds the fixed table mapping setup() keyword arguments to
// their destinations in the declarative format.
//
// The table is the single source of truth for every mapping decision: which
// arguments are known, which section and key they land in, and how their
// values render (scalar, one-per-line list, flat key-value continuation
// lines, or a promoted subsection). It is declarative data, an embedded YAML
// document parsed and validated once at startup, so it can be audited and
// extended without touching control flow. It is never mutated after
// initialization, which makes unsynchronized concurrent reads safe.
//
// The key set tracks setuptools' declarative config
// (https://setuptools.pypa.io/en/latest/userguide/declarative_config.html).
package schema
