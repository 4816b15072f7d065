package vision

import (
	"reflect"
	"testing"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced json", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"clean json untouched", "{\"a\":1}", "{\"a\":1}"},
		{"leading fence only", "```json\n{\"a\":1}", "{\"a\":1}"},
		{"trailing fence only", "{\"a\":1}\n```", "{\"a\":1}"},
		{"surrounding whitespace", "  {\"a\":1}  ", "{\"a\":1}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFences(tc.in); got != tc.want {
				t.Fatalf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	in := "```json\n{\"a\":1}\n```"
	once := StripFences(in)
	twice := StripFences(once)
	if once != twice {
		t.Fatalf("second strip changed output: %q vs %q", once, twice)
	}
}

func TestParseObject(t *testing.T) {
	got, err := ParseObject("```json\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseObjectInvalid(t *testing.T) {
	if _, err := ParseObject("the image shows a prescription for..."); err == nil {
		t.Fatal("expected parse error for non-JSON text")
	}
}
