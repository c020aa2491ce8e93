package entity

import (
	"strconv"
	"strings"
)

// SanitizeBid drops every character that is not a digit or a minus sign.
func SanitizeBid(raw string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' {
			return r
		}

		return -1
	}, raw)
}

// ParseBid reads a bid the lenient way a browser parseInt does: an optional leading minus and
// the longest run of digits after it. Anything that yields no digits, or does not fit an int, is 0.
func ParseBid(raw string) int {
	text := SanitizeBid(raw)

	end := 0
	if strings.HasPrefix(text, "-") {
		end = 1
	}

	start := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}

	if end == start {
		return 0
	}

	value, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0
	}

	return value
}
