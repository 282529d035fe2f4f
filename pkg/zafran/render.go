package zafran

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Style selects the layout of the rendered line.
type Style int

const (
	// StyleDefault: [bar] [pct | current/total] ETA: eta
	StyleDefault Style = iota
	// StyleDownload: [bar] size / total [pct] in elapsed (~eta, speed)
	StyleDownload
)

func (s Style) String() string {
	switch s {
	case StyleDownload:
		return "download"
	default:
		return "default"
	}
}

// ParseStyle maps a style name to a Style. Names match exactly and are
// case-sensitive.
func ParseStyle(name string) (Style, bool) {
	switch name {
	case "default":
		return StyleDefault, true
	case "download":
		return StyleDownload, true
	}
	return StyleDefault, false
}

// resolveStyle is ParseStyle with the fallback to StyleDefault.
func resolveStyle(name string) Style {
	s, _ := ParseStyle(name)
	return s
}

// render writes one line: a carriage return, the styled content and any
// padding needed to cover the previous line. The whole write is bounded
// by lineMax.
func (b *Bar) render(f frame) {
	line := newBounded(lineMax)
	_ = line.WriteByte('\r')

	switch resolveStyle(b.format) {
	case StyleDownload:
		b.renderDownload(line, f)
	default:
		b.renderDefault(line, f)
	}

	width := runewidth.StringWidth(line.String()[1:])
	line.WriteString(padding(width, b.lastWidth))
	b.lastWidth = width

	_, _ = io.WriteString(b.out, line.String())
	flush(b.out)
}

func (b *Bar) renderDefault(line io.Writer, f frame) {
	elapsed := b.elapsed()
	eta := b.formatETA(elapsed)
	bar := b.formatBar(f)
	pct := formatPercentage(f.ratio)

	if b.prefix != "" {
		fmt.Fprintf(line, "%s: ", b.prefix)
	}
	fmt.Fprintf(line, "[%s] [%s | %d/%d] ETA: %s %s",
		bar, pct, b.current, b.total, eta, b.suffix)
}

func (b *Bar) renderDownload(line io.Writer, f frame) {
	elapsed := b.elapsed()
	bar := b.formatBar(f)
	pct := formatPercentage(f.ratio)
	eta := b.formatETA(elapsed)
	sizeCurrent := FormatSize(float64(b.current))
	sizeTotal := FormatSize(float64(b.total))
	elapsedStr, speedStr := b.formatStats(elapsed)

	if b.prefix != "" {
		fmt.Fprintf(line, "%s: ", b.prefix)
	}
	fmt.Fprintf(line, "[%s] %s / %s [%s] in %s (~%s, %s) %s",
		bar, sizeCurrent, sizeTotal, pct, elapsedStr, eta, speedStr, b.suffix)
}

type flusher interface {
	Flush() error
}

// flush pushes buffered output through writers that buffer, such as
// *bufio.Writer. os.Stdout is unbuffered and needs nothing.
func flush(w io.Writer) {
	if f, ok := w.(flusher); ok {
		_ = f.Flush()
	}
}
