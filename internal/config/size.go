package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSize parses a unit count such as "1000", "512KiB" or "2MB".
// Binary suffixes (KiB, MiB, GiB, TiB) are powers of 1024, SI suffixes
// (KB, MB, GB, TB) powers of 1000.
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)

	units := []struct {
		suffix     string
		multiplier uint64
	}{
		{"TiB", 1 << 40},
		{"GiB", 1 << 30},
		{"MiB", 1 << 20},
		{"KiB", 1 << 10},
		{"TB", 1000 * 1000 * 1000 * 1000},
		{"GB", 1000 * 1000 * 1000},
		{"MB", 1000 * 1000},
		{"KB", 1000},
		{"B", 1},
	}

	multiplier := uint64(1)
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			multiplier = u.multiplier
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			break
		}
	}

	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		if multiplier > 1 && n > ^uint64(0)/multiplier {
			return 0, fmt.Errorf("size out of range: %s", s)
		}
		return n * multiplier, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid size: %q", s)
	}
	total := value * float64(multiplier)
	if math.IsNaN(total) || math.IsInf(total, 0) || total >= math.MaxUint64 {
		return 0, fmt.Errorf("size out of range: %q", s)
	}
	return uint64(total), nil
}
