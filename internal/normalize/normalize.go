// Package normalize canonicalizes candidate and reference text before any
// comparison. Both sides of every match go through the same transform, so
// matchers never mix normalized with raw strings.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options controls which transforms are applied. The zero value is never used
// directly; call DefaultOptions.
type Options struct {
	// StripDiacritics folds accented characters to their base form
	// ("café" -> "cafe").
	StripDiacritics bool
	// StripPunctuation removes punctuation and symbol runes.
	StripPunctuation bool
	// ExpandNumberWords rewrites spelled-out numbers to digits ("seven" -> "7").
	ExpandNumberWords bool
}

// DefaultOptions enables every transform.
func DefaultOptions() Options {
	return Options{
		StripDiacritics:   true,
		StripPunctuation:  true,
		ExpandNumberWords: true,
	}
}

// numberWords is the fixed word->digit table. Kept deliberately small: it
// covers the values that show up in question banks, not general numerals.
var numberWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"ten": "10", "eleven": "11", "twelve": "12", "thirteen": "13",
	"fourteen": "14", "fifteen": "15", "sixteen": "16", "seventeen": "17",
	"eighteen": "18", "nineteen": "19", "twenty": "20", "thirty": "30",
	"forty": "40", "fifty": "50", "sixty": "60", "seventy": "70",
	"eighty": "80", "ninety": "90", "hundred": "100", "thousand": "1000",
}

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Text applies the default normalization. Pure function, no I/O.
func Text(s string) string {
	return WithOptions(s, DefaultOptions())
}

// WithOptions normalizes s according to opts: lowercase, optional diacritic
// folding, optional punctuation stripping, whitespace collapsing, and
// optional number-word expansion, in that order.
func WithOptions(s string, opts Options) string {
	s = strings.ToLower(s)

	if opts.StripDiacritics {
		if folded, _, err := transform.String(diacriticFolder, s); err == nil {
			s = folded
		}
	}

	if opts.StripPunctuation {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			switch {
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				// Hyphens and apostrophes join words; drop them without
				// introducing a break so "jean-paul" stays one token.
				if r == '-' || r == '–' {
					b.WriteRune(' ')
				}
			default:
				b.WriteRune(r)
			}
		}
		s = b.String()
	}

	fields := strings.Fields(s)
	if opts.ExpandNumberWords {
		for i, f := range fields {
			if digits, ok := numberWords[f]; ok {
				fields[i] = digits
			}
		}
	}

	return strings.Join(fields, " ")
}

// Tokens normalizes s and splits it into words.
func Tokens(s string) []string {
	t := Text(s)
	if t == "" {
		return nil
	}
	return strings.Split(t, " ")
}
