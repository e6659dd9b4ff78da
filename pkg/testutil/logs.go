package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/arthur-debert/zen/pkg/logging"
)

// CaptureLogs routes the global logger into a buffer for the duration of
// the test
func CaptureLogs(t *testing.T, verbosity int) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logging.SetupWriter(buf, verbosity)
	t.Cleanup(func() { logging.SetupWriter(io.Discard, 0) })
	return buf
}
