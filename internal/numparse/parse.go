// Package numparse converts Brazilian-locale numeric strings into float64s.
//
// Screening spreadsheets format numbers with "." as the thousands separator,
// "," as the decimal separator, an optional trailing "%" and an optional
// leading currency marker ("R$ 1.234,56"). Missing or unparsable cells are
// encoded as a signed-infinity sentinel instead of a nullable type so that
// downstream sorts reduce to plain numeric comparison.
package numparse

import (
	"math"
	"strconv"
	"strings"
)

// Missing is the canonical sentinel for an absent or unparsable value.
var Missing = math.Inf(-1)

// MissingLast is the sentinel variant for ascending sorts, where a missing
// value must order after every concrete one.
var MissingLast = math.Inf(1)

var cleaner = strings.NewReplacer(
	"R$", "",
	"US$", "",
	"$", "",
	"%", "",
	"−", "-", // Unicode minus, pasted by some spreadsheet apps
	" ", "",
	"\t", "",
	" ", "",
)

// Parse converts a locale-formatted numeric string into a float64.
// It returns Missing (negative infinity) when the input is empty, blank
// after stripping markers, or not a number.
func Parse(s string) float64 {
	cleaned := cleaner.Replace(strings.TrimSpace(s))
	// "1.234,56" -> "1234.56"
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return Missing
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) {
		return Missing
	}

	return value
}

// ParseAscending is Parse with the missing sentinel remapped to positive
// infinity, for contexts where missing must sort as worst-in-ascending.
// It is a derived view of Parse, not a second parse strategy.
func ParseAscending(s string) float64 {
	value := Parse(s)
	if value == Missing {
		return MissingLast
	}
	return value
}

// IsMissing reports whether v is either missing sentinel.
func IsMissing(v float64) bool {
	return math.IsInf(v, 0)
}
