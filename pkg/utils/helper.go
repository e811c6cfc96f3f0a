package utils

import (
	"strconv"
	"strings"
)

// ParseID converts a path segment into a positive surrogate key.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
