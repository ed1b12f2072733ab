// Package keywords normalizes technology and service names so that labels
// written by different tools ("AzureKubernetesService",
// "azure_kubernetes_service", "Azure Kubernetes Service") compare equal.
package keywords

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Normalize lowercases s, splits it on punctuation and CamelCase boundaries,
// and joins the words with single spaces.
func Normalize(s string) string {
	return strings.Join(words(s, true), " ")
}

// Fold lowercases s and splits it on punctuation only, leaving
// mixed-case words such as "PostgreSQL" intact.
func Fold(s string) string {
	return strings.Join(words(s, false), " ")
}

func words(s string, splitCamel bool) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !splitCamel {
			out = append(out, strings.ToLower(f))
			continue
		}
		for _, part := range camelcase.Split(f) {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

// Equal reports whether a and b name the same thing.
func Equal(a, b string) bool {
	if Fold(a) == "" {
		return false
	}
	return Normalize(a) == Normalize(b) || Fold(a) == Fold(b)
}

// ContainsPhrase reports whether phrase occurs in haystack on word boundaries.
// "Spring Boot" matches "Spring Boot 2.7" but "Java" does not match "JavaScript".
// CamelCase splitting is only used for multi-word phrases.
func ContainsPhrase(haystack, phrase string) bool {
	if containsWords(Fold(haystack), Fold(phrase)) {
		return true
	}
	norm := Normalize(phrase)
	return strings.Contains(norm, " ") && containsWords(Normalize(haystack), norm)
}

func containsWords(haystack, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+haystack+" ", " "+phrase+" ")
}

// Related reports whether either name contains the other.
func Related(a, b string) bool {
	return ContainsPhrase(a, b) || ContainsPhrase(b, a)
}

// FirstMatch returns the first haystack containing any of the phrases.
func FirstMatch(haystacks []string, phrases ...string) (string, bool) {
	for _, h := range haystacks {
		for _, p := range phrases {
			if ContainsPhrase(h, p) {
				return h, true
			}
		}
	}
	return "", false
}
