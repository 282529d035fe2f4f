package zafran

import (
	"fmt"
	"strings"
	"time"
)

// formatBar draws f.filled fill glyphs followed by f.empty unfilled glyphs.
func (b *Bar) formatBar(f frame) string {
	buf := newBounded(barMax)
	fill := string(b.fill)
	unfilled := string(b.unfilled)
	for i := 0; i < f.filled; i++ {
		buf.WriteString(fill)
	}
	for i := 0; i < f.empty; i++ {
		buf.WriteString(unfilled)
	}
	return buf.String()
}

// formatPercentage renders ratio as a right-aligned whole percentage, " 42%".
func formatPercentage(ratio float64) string {
	buf := newBounded(percentageMax)
	fmt.Fprintf(buf, "%3.0f%%", ratio*100.0)
	return buf.String()
}

// elapsed returns the whole seconds since the bar was started.
func (b *Bar) elapsed() uint64 {
	d := b.now().Sub(b.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Second)
}

// formatETA estimates the time left from the average speed so far.
// Zero progress or zero speed yield zeroETA. A zero elapsed time counts
// as one second.
func (b *Bar) formatETA(elapsed uint64) string {
	if b.current == 0 {
		return zeroETA
	}
	secs := float64(elapsed)
	if secs == 0 {
		secs = 1
	}
	speed := float64(b.current) / secs
	if speed == 0 {
		return zeroETA
	}
	var remaining uint64
	if b.total > b.current {
		remaining = b.total - b.current
	}
	eta := uint64(float64(remaining)/speed + 0.5)
	return formatClock(eta)
}

// formatClock renders secs as HHh:MMm:SSs. Hours are not capped.
func formatClock(secs uint64) string {
	buf := newBounded(etaMax)
	fmt.Fprintf(buf, "%02dh:%02dm:%02ds", secs/3600, (secs%3600)/60, secs%60)
	return buf.String()
}

// FormatSize renders a byte count with a binary KB or MB unit and a "/s"
// suffix, "1.50KB/s". The same suffix is used for totals and rates.
func FormatSize(bytes float64) string {
	buf := newBounded(sizeMax)
	switch {
	case bytes >= mib:
		fmt.Fprintf(buf, "%.2fMB/s", bytes/mib)
	case bytes >= kib:
		fmt.Fprintf(buf, "%.2fKB/s", bytes/kib)
	default:
		fmt.Fprintf(buf, "%.2fB/s", bytes)
	}
	return buf.String()
}

// formatStats renders the elapsed seconds and the average speed. Unlike
// FormatSize, speeds under a megabyte are always shown in KB/s.
func (b *Bar) formatStats(elapsed uint64) (elapsedStr, speedStr string) {
	var speed float64
	if elapsed > 0 && b.current > 0 {
		speed = float64(b.current) / float64(elapsed)
	}

	e := newBounded(elapsedMax)
	fmt.Fprintf(e, "%ds", elapsed)

	s := newBounded(speedMax)
	if speed >= mib {
		fmt.Fprintf(s, "%.2fMB/s", speed/mib)
	} else {
		fmt.Fprintf(s, "%.2fKB/s", speed/kib)
	}
	return e.String(), s.String()
}

// padding returns the blanks needed to hide the tail of a previous line
// that was wider than the current one.
func padding(width, last int) string {
	if width >= last {
		return ""
	}
	return strings.Repeat(" ", last-width)
}
