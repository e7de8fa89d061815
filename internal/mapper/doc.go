// Package mapper classifies setup() keyword arguments against the schema
// table and assembles the output document.
//
// Every argument is classified exactly once: it either contributes to the
// document (resolved value, known field, matching shape) or produces exactly
// one diagnostic (unknown field, unresolved value, or shape mismatch). No
// argument is silently dropped.
//
// Diagnostics keep source encounter order; document keys follow the schema
// table's order, not the source order, so equivalent inputs produce
// identical documents.
package mapper
