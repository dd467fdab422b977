package conversation

import (
	"strings"

	"busimap/models"
)

// personality holds the localized conversational voice of the assistant.
// Immutable after process start.
var personality = map[string]map[string]string{
	"en": {
		"greeting":       "Hello! I'm your friendly BusiMap assistant. How can I help you today?",
		"confirmation":   "Got it! Let me help you with that.",
		"clarification":  "I want to make sure I understand you correctly.",
		"encouragement":  "Don't worry, I'm here to help you find exactly what you need!",
		"friendly_close": "Is there anything else I can help you with today?",
		"found":          "Great! I found some options for you:",
		"not_found":      "Hmm, I couldn't find exactly what you're looking for. Let me try a different approach...",
		"follow_up":      "What would you like to know more about?",
		"confused":       "I'm not sure I understood that. Could you help me by saying it differently?",
		"excited":        "That sounds great! Let me help you with that right away!",
		"reassuring":     "No problem at all! I'm here to make this easy for you.",
	},
	"rw": {
		"greeting":       "Muraho! Ndi umufasha wawe wa BusiMap. Nshobora gufasha iki?",
		"confirmation":   "Yego, ndabyumva. Reka ngufashe.",
		"clarification":  "Nshaka kumenya neza ko ndabyumva.",
		"encouragement":  "Ntihangane, ndi hano kugufasha kubona ibyo ushaka!",
		"friendly_close": "Hari ikindi nshobora gufasha?",
		"found":          "Ni byiza! Nabonye amahitamo yawe:",
		"not_found":      "Hmm, sinashoboye kubona ibyo ushaka. Reka ndagerageze nindi nzira...",
		"follow_up":      "Ushaka kumenya iki byongera?",
		"confused":       "Sinumva neza. Woshobora kuvuga nandi nzira?",
		"excited":        "Bisubiza! Reka ngufashe ubu!",
		"reassuring":     "Ntakibazo! Ndi hano kugufasha kugira ibyoroshe.",
	},
}

// actionLine is the pattern-specific closing sentence appended to a flow
// template, location-aware when the caller supplied an address.
func actionLine(pattern, lang string, location *models.UserLocation) string {
	var sb strings.Builder

	if location != nil && location.Address != "" {
		if lang == "rw" {
			sb.WriteString("Nabonye ko uri muri " + location.Address + ". ")
		} else {
			sb.WriteString("I can see you're in " + location.Address + ". ")
		}
	}

	lines := map[string]map[string]string{
		IntentFoodSearch: {
			"en": "Let me find the best restaurants near you.",
			"rw": "Reka nshakire amaresitora akuri hafi nawe.",
		},
		IntentTransportSearch: {
			"en": "Let me find the best transport options for you.",
			"rw": "Reka nshakire uburyo bwo kugenda bukwiriye.",
		},
		IntentEmergencyHelp: {
			"en": "Let me find assistance nearby for you.",
			"rw": "Reka nshakire ubufasha hafi yawe.",
		},
		IntentShoppingSearch: {
			"en": "Let me find great markets and stores nearby.",
			"rw": "Reka nshakire amasoko n'amaduka meza hakwegereye.",
		},
		IntentHealthSearch: {
			"en": "Let me find hospitals and pharmacies near you.",
			"rw": "Reka nshakire ibitaro na famasi hafi yawe.",
		},
	}

	if byLang, ok := lines[pattern]; ok {
		sb.WriteString(byLang[langOrDefault(lang)])
	} else {
		sb.WriteString(personality[langOrDefault(lang)]["follow_up"])
	}
	return sb.String()
}

// clarificationResponse combines the clarification framing with the first
// suggested question; without questions it falls back to the confused line.
func clarificationResponse(analysis models.IntentAnalysis, lang string) string {
	p := personality[langOrDefault(lang)]
	if len(analysis.SuggestedQuestions) > 0 {
		return p["clarification"] + " " + analysis.SuggestedQuestions[0]
	}
	return p["confused"]
}

// contextualSuggestions are the localized suggestion chips for a pattern.
var contextualSuggestions = map[string]map[string][]string{
	IntentFoodSearch: {
		"en": {"Restaurants near me", "Rwandan food", "International cuisine", "Late night dining"},
		"rw": {"Amaresitora akuri hafi", "Ibiribwa by'u Rwanda", "Ibiribwa by'ahandi", "Amaresitora y'ijoro"},
	},
	IntentTransportSearch: {
		"en": {"Moto nearby", "Taxi service", "Bus routes", "Ride options"},
		"rw": {"Moto hafi yawe", "Taxi y'ijoro", "Bus", "Guhaguruka"},
	},
	IntentEmergencyHelp: {
		"en": {"Car repair services", "Medical assistance", "Emergency contacts", "Police services"},
		"rw": {"Amagaraje akora amamodoka", "Ubufasha bw'ubuzima", "Nimero z'ubutabazi", "Polisi"},
	},
	IntentShoppingSearch: {
		"en": {"Markets near me", "Supermarkets", "Electronics shops"},
		"rw": {"Amasoko hafi yanjye", "Amasupermarketi", "Amaduka y'ibikoresho"},
	},
	IntentHealthSearch: {
		"en": {"Hospitals near me", "Pharmacies", "Clinics open now"},
		"rw": {"Ibitaro hafi yanjye", "Famasi", "Kliniki zifunguye"},
	},
}

func suggestionsFor(pattern, lang string) []string {
	if byLang, ok := contextualSuggestions[pattern]; ok {
		return byLang[langOrDefault(lang)]
	}
	return []string{}
}

// nextSteps maps a pattern to the suggested next action, shown alongside the
// response.
var nextSteps = map[string]map[string]string{
	"en": {
		IntentFoodSearch:      "Let me find restaurants near you",
		IntentTransportSearch: "Let me find transport options for you",
		IntentEmergencyHelp:   "Let me find help nearby for you",
		IntentShoppingSearch:  "Let me find shops near you",
		IntentHealthSearch:    "Let me find health services near you",
		IntentGeneralInquiry:  "How can I help you?",
	},
	"rw": {
		IntentFoodSearch:      "Reka nshakire amaresitora akuri hafi nawe",
		IntentTransportSearch: "Reka nshakire uburyo bwo kugenda",
		IntentEmergencyHelp:   "Reka nshakire ubufasha hafi yawe",
		IntentShoppingSearch:  "Reka nshakire amaduka hafi yawe",
		IntentHealthSearch:    "Reka nshakire serivisi z'ubuzima hafi yawe",
		IntentGeneralInquiry:  "Nshobora gufasha iki?",
	},
}

func nextStepFor(pattern, lang string) string {
	steps := nextSteps[langOrDefault(lang)]
	if step, ok := steps[pattern]; ok {
		return step
	}
	return steps[IntentGeneralInquiry]
}

// gracefulErrorMessage is what the user sees on any internal fault. Raw
// errors never reach the end user.
var gracefulErrorMessage = map[string]string{
	"en": "Something went wrong. Let me try a different approach. Don't worry!",
	"rw": "Uwo ni ikibazo. Reka ndagerageze nindi nzira. Ntihangane!",
}
