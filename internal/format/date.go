package format

import "time"

// Supported date pattern keys. Anything else falls back to PatternUS.
const (
	PatternUS     = "MM/DD/YYYY"
	PatternEU     = "DD/MM/YYYY"
	PatternISO    = "YYYY-MM-DD"
	PatternLetter = "MMM DD, YYYY"
)

var dateLayouts = map[string]string{
	PatternUS:     "01/02/2006",
	PatternEU:     "02/01/2006",
	PatternISO:    "2006-01-02",
	PatternLetter: "Jan 02, 2006",
}

// Date renders t using one of the four supported pattern keys. Day and month
// are always two digits, the year four; month abbreviations are English.
// The calendar fields come from t's own location, so callers must convert to
// the deployment time zone first.
func Date(t time.Time, pattern string) string {
	layout, ok := dateLayouts[pattern]
	if !ok {
		layout = dateLayouts[PatternUS]
	}
	return t.Format(layout)
}
