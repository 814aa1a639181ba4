package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// pricePatterns are tried in order and the first match wins. The patterns
// intentionally overlap; listed order is the tie-break. Each captures the
// digit run (possibly with thousands separators) following a price-signal
// phrase, with optional rupiah prefix and magnitude suffix.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:di ?bawah|under|maksimal|max|budget|kurang dari|< ?)\s*(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)\s*(?:ribu|rb|k|juta|jt)?`),
	regexp.MustCompile(`harga\s*(?:di ?bawah|under|maksimal|max|kurang dari)?\s*(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)\s*(?:ribu|rb|k|juta|jt)?`),
	regexp.MustCompile(`(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)\s*(?:ribu|rb|k|juta|jt)\s*(?:ke ?bawah|atau kurang|atau dibawah)`),
	regexp.MustCompile(`budget\s*(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)\s*(?:ribu|rb|k|juta|jt)?`),
	regexp.MustCompile(`(?:yang|yg)\s*(?:kurang dari|< ?)\s*(?:rp\.?\s*)?(\d+(?:[.,]\d+)*)\s*(?:ribu|rb|k|juta|jt)?`),
}

// ExtractPrice pulls a maximum-price constraint in rupiah from free text.
// Returns (0, false) when no price phrase is found or the number fails to
// parse; it never errors. Magnitude suffixes anywhere in the query scale the
// captured number: juta/jt multiplies by one million, ribu/rb (or a bare "k"
// when the number is below 1000) multiplies by one thousand.
func ExtractPrice(query string) (int, bool) {
	lower := strings.ToLower(query)

	for _, pattern := range pricePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}

		digits := strings.NewReplacer(".", "", ",", "").Replace(match[1])
		limit, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}

		if strings.Contains(lower, "juta") || strings.Contains(lower, "jt") {
			limit *= 1_000_000
		} else if strings.Contains(lower, "ribu") || strings.Contains(lower, "rb") ||
			(strings.Contains(lower, "k") && limit < 1000) {
			limit *= 1000
		}

		return limit, true
	}

	return 0, false
}
