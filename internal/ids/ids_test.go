package ids

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateTemplated(t *testing.T) {
	got := Generate(Template{HomePrefix: "H", AwayPrefix: "A", Start: 1, Digits: 4, HomeCount: 2, AwayCount: 1})
	want := []string{"H0001", "H0002", "A0001"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestGenerateClampsDigitsAndCounts(t *testing.T) {
	cases := []struct {
		name string
		tmpl Template
		want []string
	}{
		{"zero digits", Template{HomePrefix: "H", Start: 7, Digits: 0, HomeCount: 1}, []string{"H7"}},
		{"too many digits", Template{HomePrefix: "H", Start: 1, Digits: 12, HomeCount: 1}, []string{"H00000001"}},
		{"number wider than digits", Template{AwayPrefix: "A", Start: 123, Digits: 2, AwayCount: 1}, []string{"A123"}},
		{"negative count", Template{HomePrefix: "H", AwayPrefix: "A", Start: 1, Digits: 1, HomeCount: -3, AwayCount: 1}, []string{"A1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Generate(tc.tmpl)); diff != "" {
				t.Fatalf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplateTotal(t *testing.T) {
	if got := (Template{HomeCount: 11, AwayCount: -1}).Total(); got != 11 {
		t.Fatalf("expected 11, got %d", got)
	}
}

func TestParseList(t *testing.T) {
	got := ParseList("  P1 \r\n\r\nP2\n   \nP3\n")
	want := []string{"P1", "P2", "P3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
	if got := ParseList("   "); len(got) != 0 {
		t.Fatalf("expected empty list for blank text, got %v", got)
	}
}

func TestCheckCountMismatchNamesBothCounts(t *testing.T) {
	err := CheckCount(ParseList("a\nb\nc"), 4)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	mismatch, ok := AsCountMismatch(fmt.Errorf("validate: %w", err))
	if !ok {
		t.Fatalf("expected CountMismatchError, got %T", err)
	}
	if mismatch.Want != 4 || mismatch.Got != 3 {
		t.Fatalf("unexpected counts %+v", mismatch)
	}
	if !strings.Contains(err.Error(), "4") || !strings.Contains(err.Error(), "3") {
		t.Fatalf("expected message to name both counts, got %q", err.Error())
	}
	if err := CheckCount([]string{"a"}, 1); err != nil {
		t.Fatalf("expected matching count to pass, got %v", err)
	}
}
