// Package test_utils holds the small pile of test helpers shared across the
// parser's table-driven tests, adapted from the teacher's test_utils package
// for event-stream fixtures instead of printed AST output.
package test_utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
)

func RemoveNewlines(input string) string {
	return strings.ReplaceAll(input, "\n", "")
}

// Dedent strips a fixture's leading indentation so concise-mode source can
// be written inline in a table-driven test without fighting Go's own
// indentation.
func Dedent(input string) string {
	return strings.TrimLeft(
		strings.TrimRight(
			strings.ReplaceAll(dedent.Dedent(input), "\n\n\n", "\n\n"),
			" \n\r"),
		" \t\r\n")
}

func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	escapeCode := func(code int) string {
		return fmt.Sprintf("\x1b[%dm", code)
	}
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	ss := strings.Split(diff, "\n")
	for i, s := range ss {
		switch {
		case strings.HasPrefix(s, "-"):
			ss[i] = escapeCode(31) + s + escapeCode(0)
		case strings.HasPrefix(s, "+"):
			ss[i] = escapeCode(32) + s + escapeCode(0)
		}
	}
	return strings.Join(ss, "\n")
}

// RedactTestName removes characters that are unsafe in a snapshot file name.
func RedactTestName(testCaseName string) string {
	unsafe := []string{"#", "<", ">", ")", "(", ":", " ", "'", "\"", "@", "`", "+"}
	out := testCaseName
	for _, c := range unsafe {
		out = strings.ReplaceAll(out, c, "_")
	}
	return out
}

// MakeEventSnapshot records the input fixture alongside a textual dump of
// the events it produced, the same input/output snapshot shape as the
// teacher's test_utils.MakeSnapshot but for an event trace rather than
// printed source.
func MakeEventSnapshot(t *testing.T, testCaseName, input, eventDump string) {
	s := snaps.WithConfig(
		snaps.Filename(RedactTestName(testCaseName)),
		snaps.Dir("__snapshots__"),
	)

	snapshot := "## Input\n\n```\n"
	snapshot += Dedent(input)
	snapshot += "\n```\n\n## Events\n\n```\n"
	snapshot += strings.TrimRight(eventDump, "\n")
	snapshot += "\n```"

	s.MatchSnapshot(t, snapshot)
}
