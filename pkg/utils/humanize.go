package utils

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// HumanFileSize renders a byte count with binary units: no decimals when the
// value divides evenly, one decimal otherwise. "0 B", "1 KB", "1.5 KB",
// "200 MB".
func HumanFileSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if value == math.Trunc(value) {
		return fmt.Sprintf("%d %s", int64(value), sizeUnits[unit])
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}
