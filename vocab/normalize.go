package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a vocabulary name into its canonical form: accents are
// stripped, letters lowercased and runs of spaces, dashes and underscores
// collapsed into a single underscore.
//
//	Normalize("Peace with Others") == "peace_with_others"
//	Normalize("Éthique")           == "ethique"
func Normalize(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(folded)) {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			pendingSep = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep {
				b.WriteByte('_')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
