package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{name: "zero", n: 0, precision: 2, want: "0 B"},
		{name: "bytes", n: 512, precision: 2, want: "512 B"},
		{name: "bytes ignore precision", n: 999, precision: 4, want: "999 B"},
		{name: "largest byte count", n: 1023, precision: 2, want: "1,023 B"},
		{name: "one kilobyte", n: 1024, precision: 2, want: "1.00 KB"},
		{name: "rounded kilobytes", n: 12636, precision: 2, want: "12.34 KB"},
		{name: "one decimal", n: 1536, precision: 1, want: "1.5 KB"},
		{name: "no decimals", n: 1536, precision: 0, want: "2 KB"},
		{name: "megabytes", n: 5 * 1024 * 1024, precision: 2, want: "5.00 MB"},
		{name: "gigabytes", n: 3 * 1024 * 1024 * 1024, precision: 1, want: "3.0 GB"},
		{name: "negative precision", n: 2048, precision: -3, want: "2 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bytes(tt.n, tt.precision))
		})
	}
}

func TestFloatFormat(t *testing.T) {
	assert.Equal(t, "#,###.", floatFormat(0))
	assert.Equal(t, "#,###.###", floatFormat(3))
}
