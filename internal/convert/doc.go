// Package convert wires the conversion pipeline: locate the setup() call,
// resolve its keyword arguments, map them onto the declarative schema, and
// serialize the result.
//
// Each run owns its own parse tree, document, and diagnostic sink, so
// concurrent runs share nothing but the read-only schema table. Fatal errors
// (syntax errors, zero or multiple setup() calls) abort before any output;
// everything else degrades to diagnostics alongside a partial document.
package convert
