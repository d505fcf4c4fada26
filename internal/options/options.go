package options

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseCompanyIDHex validates and decodes a 4-hex-digit Bluetooth company
// identifier. An empty input reports ok=false and no error, leaving the
// caller to apply its default.
func ParseCompanyIDHex(input string) (uint16, bool, error) {
	if strings.TrimSpace(input) == "" {
		return 0, false, nil
	}
	clean := strings.ToUpper(stripWhitespace(input))
	clean = strings.TrimPrefix(clean, "0X")
	if len(clean) != 4 {
		return 0, false, fmt.Errorf("company id must be 4 hex digits, got %d", len(clean))
	}
	id, err := strconv.ParseUint(clean, 16, 16)
	if err != nil {
		return 0, false, fmt.Errorf("invalid company id hex: %w", err)
	}
	return uint16(id), true, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
