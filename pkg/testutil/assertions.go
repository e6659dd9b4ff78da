package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/zen/pkg/errors"
)

// AssertErrorCode checks that err carries the given code
func AssertErrorCode(t *testing.T, err error, code errors.ErrorCode, msgAndArgs ...interface{}) {
	t.Helper()

	if err == nil {
		t.Errorf("%sExpected error with code %s, got nil", formatMessage(msgAndArgs...), code)
		return
	}
	if got := errors.GetErrorCode(err); got != code {
		t.Errorf("%sExpected error code %s, got %s (%v)", formatMessage(msgAndArgs...), code, got, err)
	}
}

// AssertLines compares output line by line, reporting the first mismatch
func AssertLines(t *testing.T, expected []string, actual string, msgAndArgs ...interface{}) {
	t.Helper()

	lines := strings.Split(actual, "\n")
	msg := formatMessage(msgAndArgs...)
	for i := 0; i < len(expected) && i < len(lines); i++ {
		if expected[i] != lines[i] {
			t.Errorf("%sLine %d differs\nExpected: %q\nActual:   %q\nFull output:\n%s", msg, i+1, expected[i], lines[i], actual)
			return
		}
	}
	if len(expected) != len(lines) {
		t.Errorf("%sExpected %d lines, got %d\nFull output:\n%s", msg, len(expected), len(lines), actual)
	}
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) > 1 {
			return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
		}
		return format + "\n"
	}
	return fmt.Sprint(msgAndArgs...) + "\n"
}
