package domain

import (
	"fmt"
	"strings"
)

// FormatSize renders a byte count as "123KB" or "4.2MB"
func FormatSize(bytes int64) string {
	if bytes > 1024*1024 {
		return fmt.Sprintf("%.1fMB", float64(bytes)/1024/1024)
	}
	return fmt.Sprintf("%.0fKB", float64(bytes)/1024)
}

// FormatNumber renders a count as "987", "1.2K" or "3.4M"
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

var sparklineChars = []rune(" ▁▂▃▄▅▆▇█")

// Sparkline renders values as a fixed-width block-character strip, sampling
// when there are more values than columns.
func Sparkline(values []int, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := values
	if len(values) > width {
		step := float64(len(values)) / float64(width)
		sampled = make([]int, width)
		for i := 0; i < width; i++ {
			sampled[i] = values[int(float64(i)*step)]
		}
	}

	maxVal := 0
	for _, v := range sampled {
		if v > maxVal {
			maxVal = v
		}
	}

	var b strings.Builder
	for _, v := range sampled {
		if maxVal == 0 {
			b.WriteRune(sparklineChars[0])
			continue
		}
		idx := v * 8 / maxVal
		if idx > 8 {
			idx = 8
		}
		b.WriteRune(sparklineChars[idx])
	}
	return b.String()
}

// Bar renders a value as a filled/empty bar of the given width
func Bar(value, maxValue, width int) string {
	if maxValue == 0 || width <= 0 {
		return ""
	}
	filled := value * width / maxValue
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
