// Package locate parses Python source text and finds the single setup()
// invocation that declares a package's build metadata.
//
// Parsing uses the tree-sitter Python grammar, so the source is never
// imported or executed. The locator recognizes a call whose callee is the
// bare name setup or an attribute chain ending in .setup (setuptools.setup,
// distutils.core.setup, and aliased imports of the same), wherever it sits
// relative to surrounding imports, conditionals, or helper definitions.
//
// Zero matches, more than one match, and syntax errors in the input are all
// fatal: such input is not a conversion candidate.
package locate
