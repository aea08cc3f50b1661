// Package substances maps the free-text substance line of a journal entry to a
// 0-10 intensity score.
package substances

// Unknown is reported for entries without a substance line or with a description
// missing from the table.
const Unknown = -1

var intensity = map[string]int{
	// Explicitly nothing.
	"none": 0,
	"no":   0,
	// A date pasted into the substance slot.
	"07.11.24, th:": Unknown,

	// Light.
	"1 glas wine":               1,
	"1 glas of wine":            1,
	"glass glühwein":            1,
	"1 beer":                    1,
	"2 beer":                    2,
	"2 glasses wine":            2,
	"3 glasses of wine":         3,
	"1 beer and 1 glas of wine": 2,
	"1 beer, 1 cocktail":        2,
	"1 glühwein and 1 cocktail": 2,

	// Moderate.
	"4 beer":                        4,
	"half a bottle of wine":         4,
	"1 beer, half a bottle of wine": 4,
	"wine":                          5,
	"about a bottle of wine":        5,
	"a bottle of glühwein":          5,
	"about 1 bottle of wine":        5,
	"1 bottle wine":                 5,
	"4 beer and 2 long drinks":      6,

	// Heavy.
	"2 bottles of wine and 1 beer":      8,
	"1 bottle wine, 1 joint":            7,
	"1 bottle wine, 125 mg promethazin": 8,
	"8/10":                              8,
}

// Intensity looks up the score for a parsed substance line.
func Intensity(substance *string) int {
	if substance == nil {
		return Unknown
	}
	if v, ok := intensity[*substance]; ok {
		return v
	}
	return Unknown
}

// Known reports whether the description has an entry in the table.
func Known(substance string) bool {
	_, ok := intensity[substance]
	return ok
}
