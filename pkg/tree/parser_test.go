package tree

import (
	"testing"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(testutil.Settings(t, ""))
}

func TestParseSingleTag(t *testing.T) {
	root, err := newParser(t).Parse("div", "html")
	require.NoError(t, err)

	assert.True(t, root.IsRoot())
	require.Len(t, root.Children(), 1)
	div := root.Children()[0]
	assert.Equal(t, "div", div.Name())
	assert.Equal(t, 1, div.Count())
	assert.Empty(t, div.Attributes())
	assert.Empty(t, div.Children())
}

func TestParseNesting(t *testing.T) {
	root, err := newParser(t).Parse("ul>li*3", "html")
	require.NoError(t, err)

	require.Len(t, root.Children(), 1)
	ul := root.Children()[0]
	assert.Equal(t, "ul", ul.Name())
	require.Len(t, ul.Children(), 1)
	li := ul.Children()[0]
	assert.Equal(t, "li", li.Name())
	assert.Equal(t, 3, li.Count())
}

func TestParsePlacement(t *testing.T) {
	root, err := newParser(t).Parse("div>p>span+em+i>b", "html")
	require.NoError(t, err)

	div := root.Children()[0]
	p := div.Children()[0]
	require.Len(t, p.Children(), 3)
	assert.Equal(t, "span", p.Children()[0].Name())
	assert.Equal(t, "em", p.Children()[1].Name())
	i := p.Children()[2]
	assert.Equal(t, "i", i.Name())
	require.Len(t, i.Children(), 1)
	assert.Equal(t, "b", i.Children()[0].Name())
}

func TestParseSiblingsAtRoot(t *testing.T) {
	root, err := newParser(t).Parse("p+p", "html")
	require.NoError(t, err)
	require.Len(t, root.Children(), 2)

	root, err = newParser(t).Parse(">p", "html")
	require.NoError(t, err)
	require.Len(t, root.Children(), 1, "leading > keeps the root as parent")
}

func TestParseIDAndClasses(t *testing.T) {
	root, err := newParser(t).Parse("div#header.main.dark", "html")
	require.NoError(t, err)

	div := root.Children()[0]
	assert.Equal(t, []resources.Attribute{
		{Name: "id", Value: "header"},
		{Name: "class", Value: "main dark"},
	}, div.Attributes())
}

func TestParseDefaultAttributesComeFirst(t *testing.T) {
	root, err := newParser(t).Parse("a.ext", "html")
	require.NoError(t, err)

	assert.Equal(t, []resources.Attribute{
		{Name: "href", Value: ""},
		{Name: "class", Value: "ext"},
	}, root.Children()[0].Attributes())
}

func TestParseResolvesReferences(t *testing.T) {
	root, err := newParser(t).Parse("bq+input:h", "html")
	require.NoError(t, err)

	bq := root.Children()[0].(*Tag)
	assert.Equal(t, "blockquote", bq.Name())
	assert.True(t, bq.IsBlock())

	input := root.Children()[1].(*Tag)
	assert.Equal(t, "input", input.Name())
	assert.True(t, input.IsEmpty())
	require.NotNil(t, input.Abbreviation())
	assert.Equal(t, "type", input.Attributes()[0].Name)
}

func TestParseIsCaseInsensitive(t *testing.T) {
	root, err := newParser(t).Parse("DIV>IMG", "html")
	require.NoError(t, err)

	div := root.Children()[0].(*Tag)
	assert.Equal(t, "div", div.Name())
	img := div.Children()[0].(*Tag)
	assert.Equal(t, "img", img.Name())
	assert.True(t, img.IsEmpty())
}

func TestParseSnippet(t *testing.T) {
	root, err := newParser(t).Parse("cc:ie>div.x", "html")
	require.NoError(t, err)

	snippet, ok := root.Children()[0].(*Snippet)
	require.True(t, ok)
	assert.Equal(t, "cc:ie", snippet.Name())
	assert.True(t, snippet.IsBlock())
	assert.Contains(t, snippet.Template(), resources.ChildToken)
	require.Len(t, snippet.Children(), 1)
}

func TestParseExpando(t *testing.T) {
	root, err := newParser(t).Parse("div>ul+", "html")
	require.NoError(t, err)

	ul := root.Children()[0].Children()[0]
	assert.Equal(t, "ul", ul.Name())
	require.Len(t, ul.Children(), 1)
	assert.Equal(t, "li", ul.Children()[0].Name())
}

func TestExpandExpando(t *testing.T) {
	res := testutil.ResourceSet(t, testutil.Settings(t, ""), "html")

	assert.Equal(t, "ul>li", ExpandExpando("ul+", res))
	assert.Equal(t, "p>ul>li", ExpandExpando("p>ul+", res))
	assert.Equal(t, "nope+", ExpandExpando("nope+", res), "unknown keys are kept")
	assert.Equal(t, "ul+p", ExpandExpando("ul+p", res), "only a trailing expando counts")
	assert.Equal(t, "UL+", ExpandExpando("UL+", res), "keys match exactly")
}

func TestParseMultiplierZero(t *testing.T) {
	root, err := newParser(t).Parse("li*0", "html")
	require.NoError(t, err)
	assert.Equal(t, 1, root.Children()[0].Count())
}

func TestParseMultiplierLimit(t *testing.T) {
	root, err := newParser(t).Parse("li*1000", "html")
	require.NoError(t, err)
	assert.Equal(t, MaxMultiplier, root.Children()[0].Count())
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"div}}}",
		"div>",
		"div*",
		"div#",
		"div.",
		"1div",
		"div p",
		"div*99999999999999999999999",
		"li*1000000000000000",
		"li*1001",
	}

	p := newParser(t)
	for _, abbr := range tests {
		t.Run(abbr, func(t *testing.T) {
			root, err := p.Parse(abbr, "html")
			assert.Nil(t, root)
			testutil.AssertErrorCode(t, err, errors.ErrInvalidAbbreviation)
		})
	}
}

func TestParseConfigurationErrors(t *testing.T) {
	s := testutil.Settings(t, `
[html.abbreviations]
"ghost" = "nowhere"
"hop" = "bq"
`)
	p := NewParser(s)

	_, err := p.Parse("div>ghost", "html")
	testutil.AssertErrorCode(t, err, errors.ErrUnresolvedReference)

	_, err = p.Parse("hop", "html")
	testutil.AssertErrorCode(t, err, errors.ErrReferenceChain)

	_, err = p.Parse("div", "haml")
	testutil.AssertErrorCode(t, err, errors.ErrUnknownDocType)
}

func TestParseDefaultType(t *testing.T) {
	root, err := newParser(t).Parse("tm", "")
	require.NoError(t, err)
	assert.Equal(t, "tm", root.Children()[0].Name(), "html has no tm abbreviation")

	root, err = newParser(t).Parse("tm", "xsl")
	require.NoError(t, err)
	assert.Equal(t, "xsl:template", root.Children()[0].Name())
}

func TestScan(t *testing.T) {
	tokens, residue := scan("+a#b_1.c-d.e$*12>X:y!-")
	require.Equal(t, -1, residue)
	require.Len(t, tokens, 2)

	assert.Equal(t, token{op: '+', name: "a", id: "b_1", classes: []string{"c-d", "e$"}, count: 12}, tokens[0])
	assert.Equal(t, token{op: '>', name: "X:y!-", count: 1}, tokens[1])

	_, residue = scan("p*2*3")
	assert.Equal(t, 3, residue)
}
