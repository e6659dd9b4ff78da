package resources_test

import (
	"testing"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlSet() *resources.ResourceSet {
	res := resources.NewResourceSet("html")
	res.Abbreviations["a"] = resources.NewAbbreviationEntry("a", &resources.Abbreviation{
		Name:       "a",
		Attributes: []resources.Attribute{{Name: "href", Value: ""}},
	})
	res.Abbreviations["img"] = resources.NewAbbreviationEntry("img", &resources.Abbreviation{
		Name:    "img",
		IsEmpty: true,
	})
	res.Abbreviations["bq"] = resources.NewReferenceEntry("bq", "blockquote")
	res.Abbreviations["blockquote"] = resources.NewAbbreviationEntry("blockquote", &resources.Abbreviation{Name: "blockquote"})
	res.Abbreviations["lnk"] = resources.NewReferenceEntry("lnk", "a")
	res.Abbreviations["l2"] = resources.NewReferenceEntry("l2", "lnk")
	res.Abbreviations["missing"] = resources.NewReferenceEntry("missing", "nowhere")
	res.Abbreviations["ul+"] = resources.NewExpandoEntry("ul+", "ul>li")
	res.Snippets["cc:ie"] = "<!--[if IE]>${child}<![endif]-->"
	res.ElementTypes[resources.ElementsEmpty] = resources.NewElementSet("br,img,hr")
	res.ElementTypes[resources.ElementsBlock] = resources.NewElementSet("div, p ,ul")
	return res
}

func TestNewElementSet(t *testing.T) {
	set := resources.NewElementSet("br,img,hr")

	assert.True(t, set.Has("img"))
	assert.False(t, set.Has("span"))
	assert.Equal(t, []string{"br", "hr", "img"}, set.Names())
	assert.Equal(t, "br,hr,img", set.String())
}

func TestNewElementSetTrimsAndDropsEmpty(t *testing.T) {
	set := resources.NewElementSet(" div , p,,")

	assert.Len(t, set, 2)
	assert.True(t, set.Has("div"))
	assert.True(t, set.Has("p"))
}

func TestResolve(t *testing.T) {
	res := htmlSet()

	tests := []struct {
		name     string
		key      string
		wantName string
		wantNil  bool
		wantCode errors.ErrorCode
	}{
		{name: "plain tag", key: "div", wantNil: true},
		{name: "direct abbreviation", key: "a", wantName: "a"},
		{name: "one hop reference", key: "bq", wantName: "blockquote"},
		{name: "reference to abbreviation with attributes", key: "lnk", wantName: "a"},
		{name: "two hop chain", key: "l2", wantCode: errors.ErrReferenceChain},
		{name: "unresolved reference", key: "missing", wantCode: errors.ErrUnresolvedReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abbr, err := res.Resolve(tt.key)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				assert.True(t, errors.IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, abbr)
				return
			}
			require.NotNil(t, abbr)
			assert.Equal(t, tt.wantName, abbr.Name)
		})
	}
}

func TestExpando(t *testing.T) {
	res := htmlSet()

	v, ok := res.Expando("ul+")
	assert.True(t, ok)
	assert.Equal(t, "ul>li", v)

	_, ok = res.Expando("a")
	assert.False(t, ok, "abbreviations are not expandos")

	_, ok = res.Expando("ol+")
	assert.False(t, ok)
}

func TestClassification(t *testing.T) {
	res := htmlSet()

	assert.True(t, res.IsEmptyElement("br"))
	assert.True(t, res.IsBlock("p"))
	assert.False(t, res.IsInline("span"), "missing set behaves as empty")
	assert.Empty(t, res.Elements("unknown"))

	var nilSet *resources.ResourceSet
	assert.False(t, nilSet.IsBlock("div"))
	assert.False(t, nilSet.IsSnippet("cc:ie"))
}

func TestSnippets(t *testing.T) {
	res := htmlSet()

	assert.True(t, res.IsSnippet("cc:ie"))
	assert.False(t, res.IsSnippet("div"))
	assert.Equal(t, []string{"cc:ie"}, res.SnippetNames())
}

func TestSettingsResourceSet(t *testing.T) {
	s := resources.NewSettings("\t", "\n", "html")
	s.Types["html"] = htmlSet()

	res, err := s.ResourceSet("")
	require.NoError(t, err)
	assert.Equal(t, "html", res.Type)

	_, err = s.ResourceSet("haml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownDocType))
}

func TestSettingsValidate(t *testing.T) {
	s := resources.NewSettings("\t", "\n", "html")
	s.Types["html"] = htmlSet()

	err := s.Validate()
	require.Error(t, err)
	// keys are checked in sorted order: "l2" fails before "missing"
	assert.True(t, errors.IsErrorCode(err, errors.ErrReferenceChain))

	delete(s.Types["html"].Abbreviations, "l2")
	delete(s.Types["html"].Abbreviations, "missing")
	assert.NoError(t, s.Validate())

	s.DefaultType = "xsl"
	assert.True(t, errors.IsErrorCode(s.Validate(), errors.ErrConfigValid))
}

func TestEntryDescribe(t *testing.T) {
	res := htmlSet()

	assert.Equal(t, `<a href="">`, res.Abbreviations["a"].Describe())
	assert.Equal(t, `<img />`, res.Abbreviations["img"].Describe())
	assert.Equal(t, "-> blockquote", res.Abbreviations["bq"].Describe())
	assert.Equal(t, "ul>li", res.Abbreviations["ul+"].Describe())
}
