package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/syntax.md":         {Data: []byte("# Syntax\n\nTokens and operators")},
		"help/option-type.txt":   {Data: []byte("Selects the document type")},
		"help/advanced/xsl.md":   {Data: []byte("# XSL")},
		"help/settings.txxt":     {Data: []byte("Settings Guide")},
		"help/ignored.json":      {Data: []byte("{}")},
		"elsewhere/not-help.txt": {Data: []byte("nope")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), "help")
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"option-type", "syntax", "xsl"}, tm.ListTopics())
		topic, ok := tm.GetTopic("syntax")
		require.True(t, ok)
		assert.Equal(t, "# Syntax\n\nTokens and operators", topic.Content)
		assert.Equal(t, "help/syntax.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), "help", Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"settings"}, tm.ListTopics())
	})

	t.Run("missing directory", func(t *testing.T) {
		tm := New(testFS(), "nope")
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input string
		found bool
	}{
		{"syntax", true},
		{"type", true},
		{"--type", true},
		{"-type", true},
		{"option-type", true},
		{"missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, ok := tm.GetTopic(tt.input)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestWriteIndex(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteIndex(&buf, "zen")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  syntax\n  xsl\n")
	assert.Contains(t, out, "Option topics:\n  --type\n")
	assert.Contains(t, out, "'zen help <topic>'")

	buf.Reset()
	New(fstest.MapFS{}, "help").WriteIndex(&buf, "zen")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "zen", Short: "root"}
	root.AddCommand(&cobra.Command{Use: "expand", Short: "Expand an abbreviation", Run: func(*cobra.Command, []string) {}})
	return root
}

func execute(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestIntegration_HelpCommand(t *testing.T) {
	root := newRoot()
	tm, err := Initialize(root, testFS(), "help")
	require.NoError(t, err)
	require.NotNil(t, tm)

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "Selects the document type", execute(t, root, "help", "type"))
	})

	t.Run("topics index", func(t *testing.T) {
		assert.Contains(t, execute(t, root, "help", "topics"), "Available help topics:")
	})

	t.Run("command help", func(t *testing.T) {
		assert.Contains(t, execute(t, root, "help", "expand"), "Expand an abbreviation")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# raw", r.Render("# raw", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	r.Style = "notty"
	out := r.Render("# Title", ".md")
	assert.True(t, strings.Contains(out, "Title"))
}

func TestGlamourRendererHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := NewGlamourRenderer().Render("# Settings\n\nSome *text*.", ".md")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "text")
}
