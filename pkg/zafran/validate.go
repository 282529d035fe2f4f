package zafran

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroTotal is returned by New and Init for a zero total.
	ErrZeroTotal = errors.New("zafran: total must be greater than zero")

	// ErrNotInitialized reports a Bar that was never given a total.
	ErrNotInitialized = errors.New("zafran: bar is not initialized")

	// ErrInvalidNCols reports a width SetNCols would replace with the default.
	ErrInvalidNCols = errors.New("zafran: ncols out of range")

	// ErrUnknownFormat reports a style name that renders as the default.
	ErrUnknownFormat = errors.New("zafran: unknown bar format")

	// ErrOverrun reports progress past the total.
	ErrOverrun = errors.New("zafran: current exceeds total")
)

// CheckNCols reports whether SetNCols would keep n as given.
func CheckNCols(n int) error {
	if n <= 0 || n > MaxBarWidth {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidNCols, n, MaxBarWidth)
	}
	return nil
}

// CheckFormat reports whether name selects a known style.
func CheckFormat(name string) error {
	if _, ok := ParseStyle(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return nil
}

// Validate reports every setting of b that is being normalised when
// rendering. It returns nil for a bar that renders exactly as configured.
func (b *Bar) Validate() error {
	if !b.ready() {
		return ErrNotInitialized
	}
	var errs []error
	if err := CheckNCols(b.ncols); err != nil {
		errs = append(errs, err)
	}
	if err := CheckFormat(b.format); err != nil {
		errs = append(errs, err)
	}
	if b.current > b.total {
		errs = append(errs, fmt.Errorf("%w: %d > %d", ErrOverrun, b.current, b.total))
	}
	return errors.Join(errs...)
}
