package zafran

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBoundedBuilderFits(t *testing.T) {
	b := newBounded(8)
	b.WriteString("abc")
	fmt.Fprintf(b, "%d", 12345)
	if got := b.String(); got != "abc12345" {
		t.Errorf("got %q, want %q", got, "abc12345")
	}
	if b.Truncated() {
		t.Error("exact fit must not be reported as truncated")
	}
}

func TestBoundedBuilderTruncatesAtLimit(t *testing.T) {
	b := newBounded(5)
	n, err := b.WriteString("abcdefgh")
	if err != nil || n != 8 {
		t.Errorf("WriteString = (%d, %v), want (8, nil)", n, err)
	}
	if got := b.String(); got != "abcde" {
		t.Errorf("got %q, want %q", got, "abcde")
	}
	if !b.Truncated() {
		t.Error("expected truncation to be reported")
	}
}

// After the first cut nothing else gets in, even if it would fit.
func TestBoundedBuilderDiscardsAfterCut(t *testing.T) {
	b := newBounded(4)
	b.WriteString("ab")
	b.WriteRune('€') // 3 bytes, only 2 left
	b.WriteString("c")
	if got := b.String(); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestTruncateUTF8(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"hello", -1, ""},
		{"héllo", 2, "h"}, // é is 2 bytes
		{"héllo", 3, "hé"},
		{"✅ok", 2, ""},
	}
	for _, tc := range cases {
		got := truncateUTF8(tc.in, tc.n)
		if got != tc.want {
			t.Errorf("truncateUTF8(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestBoundedBuilderStaysValidUTF8(t *testing.T) {
	b := newBounded(11)
	b.WriteString(strings.Repeat("é", 20))
	if !utf8.ValidString(b.String()) {
		t.Fatalf("truncated output is not valid UTF-8: %q", b.String())
	}
	if b.Len() != 10 {
		t.Errorf("expected 10 bytes (5 runes), got %d", b.Len())
	}
}
