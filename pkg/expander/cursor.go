package expander

import (
	"strings"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/render"
	"github.com/beevik/etree"
)

// PlaceCursor removes every cursor marker from output and returns the byte
// offset of the first one, or -1 when there is none
func PlaceCursor(output string) (string, int) {
	offset := strings.Index(output, render.CursorMarker)
	if offset < 0 {
		return output, -1
	}
	return strings.ReplaceAll(output, render.CursorMarker, ""), offset
}

const checkRoot = "zen-check"

// CheckWellFormed parses output as an XML fragment and reports the first
// structural problem
func CheckWellFormed(output string) error {
	_, err := readFragment(output)
	return err
}

// CountElements returns the number of elements in a well-formed fragment
func CountElements(output string) (int, error) {
	root, err := readFragment(output)
	if err != nil {
		return 0, err
	}
	return len(root.FindElements(".//*")), nil
}

func readFragment(output string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + checkRoot + ">" + output + "</" + checkRoot + ">"); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedOutput, "output is not well-formed markup")
	}
	return doc.Root(), nil
}
