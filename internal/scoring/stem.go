package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stemVariants returns the lowercased word plus the surface forms produced by
// a handful of naive suffix rules. This is not a linguistic stemmer; the rules
// and their length guards are load-bearing for score reproducibility.
func stemVariants(word string) []string {
	lower := strings.ToLower(word)
	n := utf8.RuneCountInString(lower)
	variants := []string{lower}

	if strings.HasSuffix(lower, "ing") && n > 5 {
		stem := lower[:len(lower)-3]
		variants = append(variants, stem, stem+"e") // managing -> manage
	}
	if strings.HasSuffix(lower, "ed") && n > 4 {
		variants = append(variants, lower[:len(lower)-2], lower[:len(lower)-1]) // managed -> manage
	}
	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && n > 3 {
		variants = append(variants, lower[:len(lower)-1])
	}
	if strings.HasSuffix(lower, "tion") && n > 5 {
		variants = append(variants, lower[:len(lower)-4]+"t", lower[:len(lower)-3]+"e") // generation -> generate
	}
	if strings.HasSuffix(lower, "ment") && n > 5 {
		variants = append(variants, lower[:len(lower)-4]) // management -> manage
	}

	return dedupe(variants)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// isTokenSeparator matches the punctuation that splits corpus text into words.
func isTokenSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', ';', '.', '!', '?', '(', ')', '[', ']', '{', '}', '"', '\'', '/', '\\', '-':
		return true
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, isTokenSeparator)
}

// keywordMatchesText reports whether keyword occurs in text, which must
// already be lowercase. Single words match on any stem variant as a
// substring, or on a corpus token whose own variants overlap. Multi-word
// keywords need every word to match as a substring, in any position. A
// blank keyword never matches; profile validation rejects it.
func keywordMatchesText(keyword, text string) bool {
	words := strings.Fields(strings.ToLower(keyword))
	if len(words) == 0 {
		return false
	}

	if len(words) == 1 {
		variants := stemVariants(words[0])
		for _, v := range variants {
			if strings.Contains(text, v) {
				return true
			}
		}

		wanted := make(map[string]bool, len(variants))
		for _, v := range variants {
			wanted[v] = true
		}
		for _, token := range tokenize(text) {
			for _, tv := range stemVariants(token) {
				if wanted[tv] {
					return true
				}
			}
		}
		return false
	}

	for _, word := range words {
		found := false
		for _, v := range stemVariants(word) {
			if strings.Contains(text, v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
