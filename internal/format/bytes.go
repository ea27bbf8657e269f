// Package format converts raw quantities into human readable strings.
package format

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxPrecision is the highest number of decimals Bytes renders.
const MaxPrecision = 9

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes renders n using binary (1024) multiples and the given number of decimals,
// e.g. Bytes(12636, 2) == "12.34 KB". Precision is clamped to [0, MaxPrecision].
// Counts below one kilobyte are whole bytes and carry no decimals.
func Bytes(n int64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}

	value := float64(n)
	unit := 0
	for (value >= 1024 || value <= -1024) && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		precision = 0
	}

	return humanize.FormatFloat(floatFormat(precision), value) + " " + byteUnits[unit]
}

// floatFormat builds a go-humanize format directive with a thousands separator
// and the requested number of decimals ("#,###." for 0, "#,###.##" for 2).
func floatFormat(precision int) string {
	return "#,###." + strings.Repeat("#", precision)
}
