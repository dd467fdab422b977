// Package language provides lexical language detection for user utterances.
// Detection gates every downstream stage of the conversation pipeline, so it
// is a single pass over fixed per-language marker sets with no side effects.
package language

import (
	"regexp"
	"strings"
)

// DefaultLanguage is the baseline returned whenever no marker matches.
const DefaultLanguage = "en"

// markerPatterns holds per-language lexical markers: common function words,
// greeting and politeness markers, and domain nouns. Compiled once at init.
var markerPatterns = map[string][]*regexp.Regexp{
	"en": {
		regexp.MustCompile(`\b(the|and|or|but|in|on|at|to|for|of|with|by)\b`),
		regexp.MustCompile(`\b(is|are|was|were|be|been|being)\b`),
		regexp.MustCompile(`\b(restaurant|hotel|shop|store|service)\b`),
		regexp.MustCompile(`\b(hello|hi|hey|thank|you|help|please)\b`),
	},
	"rw": {
		regexp.MustCompile(`\b(na|kandi|cyangwa|ariko|mu|ku|kuri|kubera|hamwe)\b`),
		regexp.MustCompile(`\b(ni|ari|wari|kuba|waba)\b`),
		regexp.MustCompile(`\b(restoran|hoteli|ubucuruzi|serivisi)\b`),
		regexp.MustCompile(`\b(muraho|mwaramutse|mwirirwe|murakoze|nshobora|woshobora)\b`),
		regexp.MustCompile(`\b(ndashaka|nshaka|ndabaza|mfasha|fasha)\b`),
		regexp.MustCompile(`\b(ndi|uri|ari|turi|muri|bari)\b`),
	},
	"fr": {
		regexp.MustCompile(`\b(le|la|les|et|ou|mais|dans|sur|à|pour|de|avec|par)\b`),
		regexp.MustCompile(`\b(est|sont|était|étaient|être|été|étant)\b`),
		regexp.MustCompile(`\b(restaurant|hôtel|magasin|service)\b`),
	},
}

var languageNames = map[string]string{
	"en": "English",
	"rw": "Kinyarwanda",
	"fr": "Français",
}

// Detect returns the language whose marker sets accumulate the highest match
// count over the utterance. Empty input, or input matching no marker at all,
// yields DefaultLanguage.
func Detect(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return DefaultLanguage
	}

	best := DefaultLanguage
	bestScore := 0
	// Iterate in a fixed order so equal scores resolve deterministically.
	for _, lang := range []string{"en", "rw", "fr"} {
		score := 0
		for _, pattern := range markerPatterns[lang] {
			score += len(pattern.FindAllStringIndex(text, -1))
		}
		if score > bestScore {
			best = lang
			bestScore = score
		}
	}
	return best
}

// Supported returns the supported language codes mapped to display names.
func Supported() map[string]string {
	out := make(map[string]string, len(languageNames))
	for code, name := range languageNames {
		out[code] = name
	}
	return out
}

// IsSupported reports whether the given code is a supported language.
func IsSupported(code string) bool {
	_, ok := languageNames[code]
	return ok
}

// Name returns the display name for a language code, or "Unknown".
func Name(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "Unknown"
}
