package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"setup2cfg/internal/mapper"
)

func demoDocument() *mapper.Document {
	return &mapper.Document{Sections: []mapper.Section{
		{Name: "metadata", Items: []mapper.Item{
			{Key: "name", Kind: mapper.ItemScalar, Scalar: "demo"},
			{Key: "version", Kind: mapper.ItemScalar, Scalar: "1.0"},
			{Key: "classifiers", Kind: mapper.ItemList, Values: []string{
				"Programming Language :: Python :: 3",
				"License :: OSI Approved :: MIT License",
			}},
		}},
		{Name: "options", Items: []mapper.Item{
			{Key: "zip_safe", Kind: mapper.ItemScalar, Scalar: "False"},
			{Key: "packages", Kind: mapper.ItemList, Values: []string{"demo", "demo.cli"}},
			{Key: "package_dir", Kind: mapper.ItemPairs, Pairs: []mapper.Pair{
				{Key: "", Value: "src"},
			}},
		}},
		{Name: "options.entry_points", Items: []mapper.Item{
			{Key: "console_scripts", Kind: mapper.ItemList, Values: []string{"demo = demo.cli:main"}},
		}},
	}}
}

func TestCfg(t *testing.T) {
	want := `[metadata]
name = demo
version = 1.0
classifiers =
    Programming Language :: Python :: 3
    License :: OSI Approved :: MIT License

[options]
zip_safe = False
packages =
    demo
    demo.cli
package_dir =
     = src

[options.entry_points]
console_scripts =
    demo = demo.cli:main
`

	assert.Equal(t, want, Cfg(demoDocument()))
}

func TestCfgIsDeterministic(t *testing.T) {
	doc := demoDocument()

	assert.Equal(t, Cfg(doc), Cfg(doc))
}

func TestCfgCanonicalSectionOrder(t *testing.T) {
	// section order in the rendered text does not depend on insertion order
	doc := &mapper.Document{Sections: []mapper.Section{
		{Name: "options.extras_require", Items: []mapper.Item{
			{Key: "dev", Kind: mapper.ItemList, Values: []string{"pytest"}},
		}},
		{Name: "options", Items: []mapper.Item{
			{Key: "python_requires", Kind: mapper.ItemScalar, Scalar: ">=3.8"},
		}},
		{Name: "metadata", Items: []mapper.Item{
			{Key: "name", Kind: mapper.ItemScalar, Scalar: "demo"},
		}},
	}}

	want := `[metadata]
name = demo

[options]
python_requires = >=3.8

[options.extras_require]
dev =
    pytest
`

	assert.Equal(t, want, Cfg(doc))
}

func TestCfgMultilineScalarContinuation(t *testing.T) {
	doc := &mapper.Document{Sections: []mapper.Section{
		{Name: "metadata", Items: []mapper.Item{
			{Key: "long_description", Kind: mapper.ItemScalar, Scalar: "first line\nsecond line"},
		}},
	}}

	want := `[metadata]
long_description = first line
    second line
`

	assert.Equal(t, want, Cfg(doc))
}

func TestCfgEmptyDocument(t *testing.T) {
	assert.Empty(t, Cfg(&mapper.Document{}))
}
