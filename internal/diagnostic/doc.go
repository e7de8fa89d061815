// Package diagnostic provides the accumulating sink for constructs that
// cannot be converted declaratively.
//
// Entries are kept in encounter order and are never deduplicated: every
// occurrence is reported. Diagnostics never fail a conversion run; they are
// drained once, after the converted document has been rendered, and written
// to a channel separate from the document itself.
package diagnostic
