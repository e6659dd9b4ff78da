package list

import (
	"testing"

	"github.com/arthur-debert/zen/pkg/commands/session"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/resources"
	"github.com/arthur-debert/zen/pkg/testutil"
	"github.com/arthur-debert/zen/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findItem(items []display.ListItem, key string) (display.ListItem, bool) {
	for _, item := range items {
		if item.Key == key {
			return item, true
		}
	}
	return display.ListItem{}, false
}

func TestListAbbreviations(t *testing.T) {
	testutil.NewTestEnvironment(t)

	listing, err := List(ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "html", listing.DocType)
	assert.Equal(t, display.SectionAbbreviations, listing.Section)

	a, ok := findItem(listing.Items, "a")
	require.True(t, ok)
	assert.Equal(t, string(resources.EntryAbbreviation), a.Kind)
	assert.Equal(t, `<a href="">`, a.Value)

	bq, ok := findItem(listing.Items, "bq")
	require.True(t, ok)
	assert.Equal(t, "-> blockquote", bq.Value)
}

func TestListSections(t *testing.T) {
	testutil.NewTestEnvironment(t)

	snippets, err := List(ListOptions{
		Session: session.Options{DocType: "css"},
		Section: display.SectionSnippets,
	})
	require.NoError(t, err)
	assert.Equal(t, "css", snippets.DocType)
	pos, ok := findItem(snippets.Items, "pos")
	require.True(t, ok)
	assert.Equal(t, "position:|;", pos.Value)

	elements, err := List(ListOptions{Section: display.SectionElements})
	require.NoError(t, err)
	require.Len(t, elements.Items, 3)
	assert.Equal(t, resources.ElementsEmpty, elements.Items[0].Key)
	assert.Contains(t, elements.Items[0].Value, "br")
}

func TestListErrors(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := List(ListOptions{Section: "attributes"})
	testutil.AssertErrorCode(t, err, errors.ErrInvalidInput)

	_, err = List(ListOptions{Session: session.Options{DocType: "haml"}})
	testutil.AssertErrorCode(t, err, errors.ErrUnknownDocType)
}
