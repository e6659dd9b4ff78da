package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/testutil"
	"github.com/arthur-debert/zen/pkg/tree"
	"github.com/arthur-debert/zen/pkg/ui"
	"github.com/arthur-debert/zen/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func treeResult(t *testing.T, abbr string) *display.TreeResult {
	t.Helper()

	root, err := tree.NewParser(testutil.Settings(t, "")).Parse(abbr, "html")
	require.NoError(t, err)
	return &display.TreeResult{Abbreviation: abbr, DocType: "html", Root: display.FromTree(root)}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextTree(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(treeResult(t, "ul#nav>li.item*2+cc:ie")))

	testutil.AssertLines(t, []string{
		"(root)",
		`  ul id="nav"`,
		`    li class="item" *2`,
		"    cc:ie (snippet)",
		"",
	}, buf.String())
}

func TestTextListing(t *testing.T) {
	s := testutil.BareSettings(t, `
[mini.abbreviations]
"a" = '<a href=""></a>'
"lnk" = "a"
"ul+" = "ul>li"
`)
	res := testutil.ResourceSet(t, s, "mini")

	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, r.RenderResult(display.NewListing(res, display.SectionAbbreviations)))

	testutil.AssertLines(t, []string{
		`a    <a href="">`,
		"lnk  -> a",
		"ul+  ul>li",
		"",
	}, buf.String())
}

func TestJSONTree(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, r.RenderResult(treeResult(t, "img")))

	var decoded display.TreeResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Root.Children, 1)
	img := decoded.Root.Children[0]
	assert.Equal(t, display.KindTag, img.Kind)
	assert.Contains(t, img.Classes, "empty")
	assert.Equal(t, "src", img.Attributes[0].Name)
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, r.RenderError(errors.New(errors.ErrUnknownDocType, "unknown document type \"haml\"").WithDetail("type", "haml")))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "UNKNOWN_DOCUMENT_TYPE", decoded["code"])
	assert.Equal(t, "haml", decoded["details"].(map[string]interface{})["type"])
}

func TestTerminalRenders(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatTerminal, &buf)

	require.NoError(t, r.RenderResult(treeResult(t, "div>p*3")))
	assert.Contains(t, buf.String(), "div")
	assert.Contains(t, buf.String(), "×3")

	buf.Reset()
	s := testutil.Settings(t, "")
	res := testutil.ResourceSet(t, s, "html")
	require.NoError(t, r.RenderResult(display.NewListing(res, display.SectionSnippets)))
	assert.Contains(t, buf.String(), "cc:ie")

	buf.Reset()
	require.NoError(t, r.RenderResult(display.NewSettingsReport(s, []string{"built-in"}, s.Validate())))
	assert.Contains(t, buf.String(), "settings are valid")
}

func TestNewListingElements(t *testing.T) {
	s := testutil.BareSettings(t, `
[mini.element_types]
empty = "br,hr"
block_level = "div"
`)
	l := display.NewListing(testutil.ResourceSet(t, s, "mini"), display.SectionElements)

	require.Len(t, l.Items, 3)
	assert.Equal(t, display.ListItem{Key: "empty", Kind: "elements", Value: "br,hr"}, l.Items[0])
	assert.Equal(t, "div", l.Items[1].Value)
	assert.Equal(t, "", l.Items[2].Value)
}
