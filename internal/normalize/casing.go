package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase capitalizes each word, e.g. "react developer" -> "React
// Developer". Used for search-term display and source labels. A fresh Caser
// per call: Caser carries transform state and is not safe to share.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
