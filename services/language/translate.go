package language

import "strings"

// lexicon maps domain nouns from each source language to a canonical English
// term, and from English out to each target language. This is a deliberately
// small word-for-word mapping for rendering business terms across languages,
// not a general translator.
var lexicon = map[string]map[string]string{
	"en": {
		"restaurant": "restaurant",
		"hotel":      "hotel",
		"shop":       "shop",
		"store":      "store",
		"service":    "service",
	},
	"rw": {
		"restaurant": "restoran",
		"hotel":      "hoteli",
		"shop":       "ubucuruzi",
		"store":      "ubucuruzi",
		"service":    "serivisi",
	},
	"fr": {
		"restaurant": "restaurant",
		"hotel":      "hôtel",
		"shop":       "magasin",
		"store":      "magasin",
		"service":    "service",
	},
}

// TranslateTerm renders a canonical English domain term in the target
// language. Unknown terms or languages pass through unchanged.
func TranslateTerm(term, target string) string {
	terms, ok := lexicon[target]
	if !ok {
		return term
	}
	if translated, ok := terms[strings.ToLower(term)]; ok {
		return translated
	}
	return term
}
