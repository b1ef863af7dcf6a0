package catalog

import (
	"strings"
)

// translitTable maps Cyrillic letters (including the Kazakh set) to their
// closest Latin phonetic equivalent. Unmapped characters pass through.
var translitTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "",
	'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'қ': "q", 'ғ': "g", 'ү': "u", 'ұ': "u", 'ө': "o", 'ә': "a", 'і': "i",
	'ң': "n", 'һ': "h",
}

const (
	slugMaxLen      = 100
	slugIDSuffixLen = 8
)

// DeriveSlug builds a URL-safe lowercase token from a product name and
// identifier. The function is pure and deterministic: it doubles as the
// lookup key for products without a persisted slug, so the same inputs
// must always yield the same output.
//
// A short identifier prefix is appended to reduce collision probability.
// Collisions are still possible and lookups resolve them first-match-wins.
func DeriveSlug(name, id string) string {
	if name == "" {
		return id
	}

	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if repl, ok := translitTable[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}

	base := collapseToHyphens(b.String())
	if len(base) > slugMaxLen {
		base = strings.TrimRight(base[:slugMaxLen], "-")
	}
	if base == "" {
		return id
	}

	suffix := id
	if len(suffix) > slugIDSuffixLen {
		suffix = suffix[:slugIDSuffixLen]
	}
	if suffix == "" {
		return base
	}
	return base + "-" + suffix
}

// collapseToHyphens replaces every run of characters outside [a-z0-9]
// with a single hyphen and trims hyphens from both ends.
func collapseToHyphens(s string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
