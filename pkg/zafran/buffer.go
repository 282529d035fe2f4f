package zafran

import "unicode/utf8"

// boundedBuilder accumulates text up to a fixed byte capacity.
// Text past the capacity is dropped, cutting at the last complete rune,
// and everything written after the first cut is discarded as well.
//
// Write always reports the full length so fmt.Fprintf behaves like
// snprintf into a fixed buffer.
type boundedBuilder struct {
	buf       []byte
	limit     int
	truncated bool
}

func newBounded(limit int) *boundedBuilder {
	return &boundedBuilder{buf: make([]byte, 0, limit), limit: limit}
}

func (b *boundedBuilder) Write(p []byte) (int, error) {
	b.append(string(p))
	return len(p), nil
}

func (b *boundedBuilder) WriteString(s string) (int, error) {
	b.append(s)
	return len(s), nil
}

func (b *boundedBuilder) WriteByte(c byte) error {
	b.append(string([]byte{c}))
	return nil
}

func (b *boundedBuilder) WriteRune(r rune) (int, error) {
	s := string(r)
	b.append(s)
	return len(s), nil
}

func (b *boundedBuilder) append(s string) {
	if b.truncated {
		return
	}
	if room := b.limit - len(b.buf); len(s) > room {
		s = truncateUTF8(s, room)
		b.truncated = true
	}
	b.buf = append(b.buf, s...)
}

func (b *boundedBuilder) String() string { return string(b.buf) }

func (b *boundedBuilder) Len() int { return len(b.buf) }

// Truncated reports whether any write was cut short.
func (b *boundedBuilder) Truncated() bool { return b.truncated }

// truncateUTF8 returns the longest prefix of s that is at most n bytes
// and does not split a rune.
func truncateUTF8(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
