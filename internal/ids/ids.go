// Package ids allocates player identifiers, either from a numbered template
// or from an operator-supplied list.
package ids

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	minDigits = 1
	maxDigits = 8
)

// Template configures numbered id generation for the home and away pools.
type Template struct {
	HomePrefix string
	AwayPrefix string
	Start      int
	Digits     int
	HomeCount  int
	AwayCount  int
}

// Total returns the number of ids the template produces.
func (t Template) Total() int {
	return max(0, t.HomeCount) + max(0, t.AwayCount)
}

// Generate returns home ids followed by away ids. Each pool numbers from
// Start. Uniqueness across pools is not checked.
func Generate(t Template) []string {
	digits := min(max(t.Digits, minDigits), maxDigits)
	out := make([]string, 0, t.Total())
	for i := 0; i < t.HomeCount; i++ {
		out = append(out, t.HomePrefix+padLeft(t.Start+i, digits))
	}
	for i := 0; i < t.AwayCount; i++ {
		out = append(out, t.AwayPrefix+padLeft(t.Start+i, digits))
	}
	return out
}

func padLeft(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// ParseList splits text into one id per line, trimming each line and
// dropping blank ones.
func ParseList(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		if id := strings.TrimSpace(raw); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// CountMismatchError reports an id list whose length differs from the number
// of players to generate.
type CountMismatchError struct {
	Want int
	Got  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("custom ID list must contain %d ids, found %d", e.Want, e.Got)
}

// AsCountMismatch attempts to unwrap an error into a CountMismatchError.
func AsCountMismatch(err error) (*CountMismatchError, bool) {
	var mismatch *CountMismatchError
	if errors.As(err, &mismatch) {
		return mismatch, true
	}
	return nil, false
}

// CheckCount returns a CountMismatchError unless len(ids) == want.
func CheckCount(ids []string, want int) error {
	if len(ids) != want {
		return &CountMismatchError{Want: want, Got: len(ids)}
	}
	return nil
}
