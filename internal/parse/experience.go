package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var experienceRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:(years?|yrs?|months?|mos?)\b)?`)

// Years extracts whole years of experience from free text such as "5",
// "3 years", "2.5 yrs" or "18 months". Text without a number yields 0.
func Years(raw string) int {
	m := experienceRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	unit := strings.ToLower(m[2])
	if strings.HasPrefix(unit, "mo") {
		return int(value) / 12
	}
	return int(value)
}
