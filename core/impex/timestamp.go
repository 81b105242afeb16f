package impex

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimestampLayout is the layout of timestamps in import documents.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a local date/time using the given layout.
// A blank value yields nil. An empty layout falls back to DefaultTimestampLayout.
func ParseTimestamp(value, layout string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if layout == "" {
		layout = DefaultTimestampLayout
	}

	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return &t, nil
}
