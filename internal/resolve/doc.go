// Package resolve evaluates Python expression subtrees to plain in-memory
// values without executing any code.
//
// The evaluator is a closed recursive interpreter over an explicitly
// enumerated set of expression shapes (the "literal sublanguage"): literals,
// string concatenation, list/tuple/set/dict construction, and simple
// comprehensions over literal iterables. Everything outside that allow-list
// (function calls, name lookups, attribute access, conditionals, f-string
// interpolation, unpacking) is reported as unresolved, never guessed at.
//
// The input is untrusted build logic, so the allow-list is deliberately
// conservative. Extending it means adding a case to the evaluator's switch,
// not relaxing a general evaluator.
package resolve
