package zen

import (
	"embed"

	"github.com/arthur-debert/zen/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// initTopics serves the embedded markdown topics through `zen help`
func initTopics(rootCmd *cobra.Command) error {
	_, err := topics.InitializeWithOptions(rootCmd, topicFiles, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	return err
}
