package list

import (
	"github.com/arthur-debert/zen/pkg/commands/session"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/ui/display"
)

// Sections lists the accepted Section values
var Sections = []string{
	display.SectionAbbreviations,
	display.SectionSnippets,
	display.SectionElements,
}

// ListOptions defines the options for the List command.
type ListOptions struct {
	Session session.Options
	// Section is one of Sections; empty means abbreviations.
	Section string
}

// List returns one section of the resources of the selected document type.
func List(opts ListOptions) (*display.Listing, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "List").Str("section", opts.Section).Msg("Executing command")

	section := opts.Section
	if section == "" {
		section = display.SectionAbbreviations
	}
	if !isSection(section) {
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown section %q (use one of %v)", section, Sections).
			WithDetail("section", section)
	}

	sess, err := session.Load(opts.Session)
	if err != nil {
		return nil, err
	}
	res, err := sess.ResourceSet()
	if err != nil {
		return nil, err
	}

	listing := display.NewListing(res, section)
	log.Info().Str("command", "List").Int("items", len(listing.Items)).Msg("Command finished")
	return listing, nil
}

func isSection(s string) bool {
	for _, name := range Sections {
		if name == s {
			return true
		}
	}
	return false
}
