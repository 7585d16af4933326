package schema

import (
	"fmt"
	"strconv"
	"time"
)

// FormatRevision shortens a revision key for display.
func FormatRevision(key string) string {
	runes := []rune(key)
	if len(runes) <= RevisionDisplayLength {
		return key
	}
	return string(runes[:RevisionDisplayLength])
}

// FormatDate renders a revision timestamp as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// TruncateMessage cuts a revision message to at most width display runes.
func TruncateMessage(message string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(message)
	if len(runes) <= width {
		return message
	}
	return string(runes[:width])
}

// FormatNumber renders a metric value or delta compactly: integral values
// without a fractional part, everything else with up to four significant
// decimals trimmed of trailing zeros.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.4g", v)
}
