package zafran

import "unicode/utf8"

// Display defaults.
const (
	// DefaultNCols is the bar width used when none, or an invalid one, is set.
	DefaultNCols = 100

	// MaxBarWidth is the widest bar SetNCols accepts.
	MaxBarWidth = 128

	// DefaultFormat is the style name a new bar starts with.
	DefaultFormat = "default"

	DefaultFill     = '#'
	DefaultUnfilled = '.'
)

// Fragment capacities in bytes. Anything longer is truncated.
const (
	lineMax       = 512
	barMax        = MaxBarWidth * utf8.UTFMax
	percentageMax = 8
	etaMax        = 16
	sizeMax       = 16
	speedMax      = 16
	elapsedMax    = 32
)

const (
	kib = 1024.0
	mib = 1024.0 * 1024.0
)

const zeroETA = "00h:00m:00s"
