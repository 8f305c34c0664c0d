package salary

import (
	"strconv"
	"strings"
)

// Range is the parsed monthly salary disclosure of a listing, in EUR.
type Range struct {
	Min int
	Max int
}

// Figures quoted per hour or in Czech crowns are treated as undisclosed
// rather than converted.
var skipMarkers = []string{"/hod", "Kč", "Kc"}

var stripper = strings.NewReplacer(
	"EUR", "",
	"€", "",
	"/mesiac", "",
	"Od", "",
	"Do", "",
	"od", "",
	"do", "",
	" ", "",
	" ", "",
)

// Parse normalizes profesia salary text into a monthly EUR range.
// The second return value is false when the listing does not disclose a
// usable monthly figure.
func Parse(text string) (Range, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Range{}, false
	}

	for _, marker := range skipMarkers {
		if strings.Contains(text, marker) {
			return Range{}, false
		}
	}

	cleaned := stripper.Replace(text)
	if cleaned == "" {
		return Range{}, false
	}

	low, high, found := strings.Cut(cleaned, "-")
	if !found {
		value, err := strconv.Atoi(low)
		if err != nil {
			return Range{}, false
		}
		return Range{Min: value, Max: value}, true
	}

	minValue, err := strconv.Atoi(low)
	if err != nil {
		return Range{}, false
	}
	maxValue, err := strconv.Atoi(high)
	if err != nil {
		return Range{}, false
	}
	return Range{Min: minValue, Max: maxValue}, true
}
