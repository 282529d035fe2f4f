package zafran

import (
	"io"
	"math/bits"
	"os"
	"time"
)

// Bar is the state of one progress bar.
//
// The zero value is not initialised: Update, UpdatePrefix, UpdateSuffix,
// Redraw and Finish do nothing until Init succeeds. Use New to get a
// ready bar.
type Bar struct {
	total   uint64
	current uint64

	prefix string
	suffix string

	ncols    int
	fill     rune
	unfilled rune

	// format is kept verbatim and resolved to a Style when rendering.
	format string

	out   io.Writer
	start time.Time
	now   func() time.Time

	// lastWidth is the display width of the previously written line.
	lastWidth int
}

// Option configures a Bar created by New.
type Option func(*Bar)

// WithOutput sets the writer the bar draws on. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *Bar) {
		if w != nil {
			b.out = w
		}
	}
}

// WithClock replaces time.Now as the source of elapsed time.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		if now != nil {
			b.now = now
		}
	}
}

// New returns a bar tracking total units of work.
func New(total uint64, opts ...Option) (*Bar, error) {
	if total == 0 {
		return nil, ErrZeroTotal
	}
	b := &Bar{}
	for _, opt := range opts {
		opt(b)
	}
	b.reset(total)
	return b, nil
}

// Init resets b to track total units of work, restoring every display
// setting to its default. The writer and clock are kept.
// A zero total leaves b untouched.
func (b *Bar) Init(total uint64) error {
	if total == 0 {
		return ErrZeroTotal
	}
	b.reset(total)
	return nil
}

func (b *Bar) reset(total uint64) {
	b.total = total
	b.current = 0
	b.prefix = ""
	b.suffix = ""
	b.ncols = DefaultNCols
	b.fill = DefaultFill
	b.unfilled = DefaultUnfilled
	b.format = DefaultFormat
	if b.out == nil {
		b.out = os.Stdout
	}
	if b.now == nil {
		b.now = time.Now
	}
	b.start = b.now()
	b.lastWidth = 0
}

func (b *Bar) ready() bool { return b.total > 0 }

// SetPrefix sets the label drawn before the bar. An empty prefix hides
// the label together with its ": " separator.
func (b *Bar) SetPrefix(prefix string) { b.prefix = prefix }

// SetSuffix sets the label drawn after the bar.
func (b *Bar) SetSuffix(suffix string) { b.suffix = suffix }

// SetNCols sets the bar width. Widths outside 1..MaxBarWidth fall back
// to DefaultNCols.
func (b *Bar) SetNCols(n int) {
	if n <= 0 || n > MaxBarWidth {
		n = DefaultNCols
	}
	b.ncols = n
}

// SetFillChars sets the glyphs for the completed and remaining parts.
// A zero fill keeps the current one; a zero unfilled resets it to '.'.
func (b *Bar) SetFillChars(fill, unfilled rune) {
	if fill != 0 {
		b.fill = fill
	}
	if unfilled == 0 {
		unfilled = DefaultUnfilled
	}
	b.unfilled = unfilled
}

// SetFormat selects the style by name. The name is stored as given;
// unknown names render in the default style. An empty name is ignored.
func (b *Bar) SetFormat(name string) {
	if name == "" {
		return
	}
	b.format = name
}

// SetOutput changes the writer. A nil writer is ignored. The bar never
// closes its writer.
func (b *Bar) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	b.out = w
}

// Update records current units done and redraws the line. Values past
// the total are kept but drawn as a full bar.
func (b *Bar) Update(current uint64) {
	if !b.ready() {
		return
	}
	b.current = current
	b.render(b.frame())
}

// Redraw draws the line again without changing progress.
func (b *Bar) Redraw() {
	b.Update(b.current)
}

// UpdatePrefix sets the prefix and redraws. An empty prefix is ignored.
func (b *Bar) UpdatePrefix(prefix string) {
	if prefix == "" {
		return
	}
	b.SetPrefix(prefix)
	b.Redraw()
}

// UpdateSuffix sets the suffix and redraws. An empty suffix is ignored.
func (b *Bar) UpdateSuffix(suffix string) {
	if suffix == "" {
		return
	}
	b.SetSuffix(suffix)
	b.Redraw()
}

// Finish marks the work complete, draws the final line and moves to a new
// line. Empty labels keep the current ones.
func (b *Bar) Finish(prefix, suffix string) {
	if !b.ready() {
		return
	}
	if prefix != "" {
		b.prefix = prefix
	}
	if suffix != "" {
		b.suffix = suffix
	}
	b.Update(b.total)
	_, _ = io.WriteString(b.out, "\n")
	flush(b.out)
	b.lastWidth = 0
}

// frame is the geometry of one redraw.
type frame struct {
	ratio  float64
	filled int
	empty  int
}

// frame computes the display ratio, clamped to [0, 1], and splits the bar
// into floor(ncols*ratio) filled cells and the rest.
func (b *Bar) frame() frame {
	done := min(b.current, b.total)
	ncols := b.ncols
	if ncols <= 0 || ncols > MaxBarWidth {
		ncols = DefaultNCols
	}
	hi, lo := bits.Mul64(uint64(ncols), done)
	filled, _ := bits.Div64(hi, lo, b.total)
	return frame{
		ratio:  float64(done) / float64(b.total),
		filled: int(filled),
		empty:  ncols - int(filled),
	}
}

// Total returns the amount of work that makes the bar full.
func (b *Bar) Total() uint64 { return b.total }

// Current returns the last value passed to Update.
func (b *Bar) Current() uint64 { return b.current }

// Prefix returns the label drawn before the bar.
func (b *Bar) Prefix() string { return b.prefix }

// Suffix returns the label drawn after the bar.
func (b *Bar) Suffix() string { return b.suffix }

// NCols returns the bar width in glyphs.
func (b *Bar) NCols() int { return b.ncols }

// Format returns the format name as set, which may be unrecognised.
func (b *Bar) Format() string { return b.format }

// FillChars returns the filled and unfilled glyphs.
func (b *Bar) FillChars() (fill, unfilled rune) { return b.fill, b.unfilled }

// Style returns the style the bar renders with.
func (b *Bar) Style() Style { return resolveStyle(b.format) }
