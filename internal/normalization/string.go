package normalization

import (
	"regexp"
	"strings"
	"unicode"
)

// Acronyms that must always render in canonical uppercase, whatever the
// source feed did to them.
var acronyms = []string{"AFI", "DHA", "DOD", "AFMS", "MSC"}

var acronymPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(acronyms))
	for _, ac := range acronyms {
		patterns[ac] = regexp.MustCompile(`(?i)\b` + ac + `\b`)
	}
	return patterns
}()

// Small grammatical words kept lowercase inside publication titles.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "nor": true, "but": true,
	"of": true, "on": true, "in": true, "to": true, "at": true,
	"by": true, "for": true, "as": true,
}

// CleanText collapses whitespace runs to single spaces and trims the ends.
// Total over any input; empty in, empty out.
func CleanText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// ToSentenceCase lowers fully-uppercase text and capitalizes only the first
// character, then restores known acronyms. Mixed-case text passes through
// untouched apart from acronym restoration.
func ToSentenceCase(input string) string {
	cleaned := CleanText(input)
	if cleaned == "" {
		return cleaned
	}

	result := cleaned
	if hasLetters(cleaned) && allLettersUpper(cleaned) {
		lowered := strings.ToLower(cleaned)
		result = strings.ToUpper(lowered[:1]) + lowered[1:]
	}
	return restoreAcronyms(result)
}

// ToPublicationTitleCase title-cases a publication name word by word.
// Compound tokens split on "/" and "-" are cased per segment, small
// grammatical words stay lowercase unless they open or close the title,
// and acronyms come back in canonical form.
func ToPublicationTitleCase(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		interior := i > 0 && i < len(words)-1
		if interior && smallWords[strings.ToLower(word)] {
			words[i] = strings.ToLower(word)
			continue
		}
		words[i] = caseSegments(word)
	}
	return strings.Join(words, " ")
}

// caseSegments title-cases each "/"- or "-"-separated segment of a word.
func caseSegments(word string) string {
	var out strings.Builder
	start := 0
	for idx, r := range word {
		if r != '/' && r != '-' {
			continue
		}
		out.WriteString(caseSegment(word[start:idx]))
		out.WriteRune(r)
		start = idx + 1
	}
	out.WriteString(caseSegment(word[start:]))
	return out.String()
}

func caseSegment(segment string) string {
	if segment == "" {
		return segment
	}
	if canonical, ok := canonicalAcronym(segment); ok {
		return canonical
	}
	if !hasLetters(segment) {
		return segment
	}
	lowered := strings.ToLower(segment)
	return strings.ToUpper(lowered[:1]) + lowered[1:]
}

func canonicalAcronym(token string) (string, bool) {
	upper := strings.ToUpper(token)
	for _, ac := range acronyms {
		if upper == ac {
			return ac, true
		}
	}
	return "", false
}

func restoreAcronyms(text string) string {
	for _, ac := range acronyms {
		text = acronymPatterns[ac].ReplaceAllString(text, ac)
	}
	return text
}

func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func allLettersUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
