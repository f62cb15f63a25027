package analysis

import (
	"regexp"
	"strconv"
)

// yearsPattern finds a one- or two-digit number directly followed by a
// "years" unit, with an optional plus sign ("7 years", "5+ years", "3 yrs").
var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

// ExperienceYears extracts the maximum years-of-experience figure mentioned
// in the text.
//
// This is a heuristic, not a precise extractor: spelled-out numbers ("five
// years") are not recognized, and a range like "3-5 years" resolves to its
// upper bound because only the number adjacent to the unit counts.
func ExperienceYears(text string) int {
	years := 0
	for _, match := range yearsPattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if value > years {
			years = value
		}
	}
	return years
}
