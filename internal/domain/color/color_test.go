package color

import (
	"encoding/json"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#FF0000", Red},
		{"ffffff", White},
		{"#00800080", Color{G: 128, A: 128}},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHex(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GG0000", "#12345"} {
		if _, err := ParseHex(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestColorJSONUsesHex(t *testing.T) {
	data, err := json.Marshal(struct {
		C Color `json:"c"`
	}{C: Red})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"c":"#FF0000FF"}` {
		t.Fatalf("unexpected json %s", data)
	}

	var decoded struct {
		C Color `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"c":"#FFFFFF"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.C != White {
		t.Fatalf("expected white, got %+v", decoded.C)
	}
}
