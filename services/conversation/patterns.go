package conversation

import "regexp"

// Intent taxonomy. The taxonomy is closed: every classified intent is one of
// these values. intentOrder is the declaration order and doubles as the
// tie-break rule when two intents score equally (first declared wins).
const (
	IntentSearchBusiness  = "search_business"
	IntentFoodSearch      = "food_search"
	IntentTransportSearch = "transport_search"
	IntentEmergencyHelp   = "emergency_help"
	IntentShoppingSearch  = "shopping_search"
	IntentHealthSearch    = "health_search"
	IntentGreeting        = "greeting"
	IntentGeneralInquiry  = "general_inquiry"
)

var intentOrder = []string{
	IntentSearchBusiness,
	IntentFoodSearch,
	IntentTransportSearch,
	IntentEmergencyHelp,
	IntentShoppingSearch,
	IntentHealthSearch,
	IntentGreeting,
}

// entityRequiringIntents must come with at least one extracted entity,
// otherwise the turn is flagged for clarification.
var entityRequiringIntents = map[string]bool{
	IntentSearchBusiness: true,
	IntentFoodSearch:     true,
	IntentEmergencyHelp:  true,
}

// intentPattern is one language-specific scoring definition.
type intentPattern struct {
	keywords           []string
	patterns           []*regexp.Regexp
	culturalIndicators []string
	confidenceBoost    float64
}

var intentPatterns = map[string]map[string]intentPattern{
	IntentSearchBusiness: {
		"en": {
			keywords:           []string{"find", "search", "look for", "where is", "near me"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(find|search|look for|where is|near me)`)},
			culturalIndicators: []string{"please", "could you", "would you"},
			confidenceBoost:    0.2,
		},
		"rw": {
			keywords:           []string{"shakira", "reka", "nshakire", "hari he", "hafi yawe"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(shakira|reka|nshakire|hari he|hafi yawe)`)},
			culturalIndicators: []string{"murakoze", "nshobora", "woshobora"},
			confidenceBoost:    0.3,
		},
	},
	IntentFoodSearch: {
		"en": {
			keywords:           []string{"hungry", "eat", "food", "restaurant", "meal"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(hungry|eat|food|restaurant|meal)`)},
			culturalIndicators: []string{"please", "thank you"},
			confidenceBoost:    0.4,
		},
		"rw": {
			keywords:           []string{"inzara", "kurya", "ibiribwa", "restoran", "ifunguro"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(inzara|kurya|ibiribwa|restoran|ifunguro)`)},
			culturalIndicators: []string{"murakoze", "nshobora"},
			confidenceBoost:    0.5,
		},
	},
	IntentTransportSearch: {
		"en": {
			keywords:           []string{"transport", "ride", "taxi", "moto", "bus", "travel", "go to", "motorcycle", "vehicle"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(transport|ride|taxi|moto|bus|travel|go to|motorcycle|vehicle)`)},
			culturalIndicators: []string{"please", "could you", "would you"},
			confidenceBoost:    0.3,
		},
		"rw": {
			keywords:           []string{"genda", "moto", "taxi", "bus", "guhaguruka", "kugenda", "gufata"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(genda|moto|taxi|bus|guhaguruka|kugenda|gufata)`)},
			culturalIndicators: []string{"murakoze", "nshobora", "woshobora"},
			confidenceBoost:    0.4,
		},
	},
	IntentEmergencyHelp: {
		"en": {
			keywords:           []string{"help", "emergency", "broken", "stuck", "lost"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(help|emergency|broken|stuck|lost)`)},
			culturalIndicators: []string{"please", "urgent"},
			confidenceBoost:    0.6,
		},
		"rw": {
			keywords:           []string{"fasha", "ikibazo", "rapfuye", "ntashoboye", "wabuze"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(fasha|ikibazo|rapfuye|ntashoboye|wabuze)`)},
			culturalIndicators: []string{"murakoze", "nshobora"},
			confidenceBoost:    0.7,
		},
	},
	IntentShoppingSearch: {
		"en": {
			keywords:           []string{"shop", "store", "market", "buy", "shopping", "purchase"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(shop|store|market|buy|shopping|purchase)`)},
			culturalIndicators: []string{"please", "could you"},
			confidenceBoost:    0.3,
		},
		"rw": {
			keywords:           []string{"gura", "isoko", "iduka", "gucuruza", "kugura"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(gura|isoko|iduka|gucuruza|kugura)`)},
			culturalIndicators: []string{"murakoze", "nshobora"},
			confidenceBoost:    0.4,
		},
	},
	IntentHealthSearch: {
		"en": {
			keywords:           []string{"hospital", "doctor", "pharmacy", "clinic", "health", "medicine"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(hospital|doctor|pharmacy|clinic|health|medicine)`)},
			culturalIndicators: []string{"please", "urgent"},
			confidenceBoost:    0.4,
		},
		"rw": {
			keywords:           []string{"ibitaro", "muganga", "famasi", "ubuzima", "kliniki", "imiti"},
			patterns:           []*regexp.Regexp{regexp.MustCompile(`(ibitaro|muganga|famasi|ubuzima|kliniki|imiti)`)},
			culturalIndicators: []string{"murakoze", "nshobora"},
			confidenceBoost:    0.5,
		},
	},
	IntentGreeting: {
		"en": {
			keywords:        []string{"hello", "hi", "hey", "good morning", "good evening"},
			patterns:        []*regexp.Regexp{regexp.MustCompile(`\b(hello|hi|hey)\b|(good (morning|afternoon|evening))`)},
			confidenceBoost: 0.2,
		},
		"rw": {
			keywords:        []string{"muraho", "mwaramutse", "mwirirwe", "bite"},
			patterns:        []*regexp.Regexp{regexp.MustCompile(`(muraho|mwaramutse|mwirirwe|bite)`)},
			confidenceBoost: 0.3,
		},
	},
}

// culturalIndicatorSet holds the per-language signal categories used by the
// cultural context analyzer.
type culturalIndicatorSet struct {
	politeness []string
	urgency    []string
	location   []string
}

var culturalIndicators = map[string]culturalIndicatorSet{
	"en": {
		politeness: []string{"please", "thank you", "could you", "would you"},
		urgency:    []string{"urgent", "asap", "immediately", "right now"},
		location:   []string{"here", "there", "near me", "around here"},
	},
	"rw": {
		politeness: []string{"murakoze", "nshobora", "woshobora", "ndasaba"},
		urgency:    []string{"vuba", "mu kanya", "ubungubu", "ubu"},
		location:   []string{"hano", "hariya", "hafi", "mu kigali"},
	},
}

// patternKeywords drives the coarse conversation-pattern detector. Checked in
// patternPriority order; containment of any keyword selects the pattern.
var patternKeywords = map[string]map[string][]string{
	IntentEmergencyHelp: {
		"en": {"help", "emergency", "broken", "stuck", "lost", "problem"},
		"rw": {"fasha", "ikibazo", "rapfuye", "ntashoboye", "wabuze"},
	},
	IntentFoodSearch: {
		"en": {"hungry", "eat", "food", "restaurant", "meal", "dining"},
		"rw": {"inzara", "kurya", "ibiribwa", "restoran", "ifunguro", "gufungura"},
	},
	IntentTransportSearch: {
		"en": {"transport", "ride", "taxi", "moto", "bus", "travel", "go to"},
		"rw": {"genda", "moto", "taxi", "bus", "guhaguruka", "kugenda"},
	},
	IntentShoppingSearch: {
		"en": {"shop", "store", "market", "buy"},
		"rw": {"gura", "isoko", "iduka", "gucuruza"},
	},
	IntentHealthSearch: {
		"en": {"hospital", "doctor", "pharmacy", "clinic", "health"},
		"rw": {"ibitaro", "muganga", "famasi", "ubuzima", "kliniki"},
	},
}

var patternPriority = []string{
	IntentEmergencyHelp,
	IntentFoodSearch,
	IntentTransportSearch,
	IntentShoppingSearch,
	IntentHealthSearch,
}

// businessTypeKeywords maps per-language keywords to canonical business types
// for entity extraction.
var businessTypeKeywords = map[string]map[string][]string{
	"en": {
		"restaurant": {"restaurant", "food", "eat", "meal", "dining", "cafe"},
		"hotel":      {"hotel", "accommodation", "stay", "sleep", "lodge"},
		"shop":       {"shop", "store", "buy", "shopping", "market"},
		"transport":  {"taxi", "moto", "bus", "transport", "ride"},
		"garage":     {"garage", "repair", "fix", "mechanic", "car"},
		"hospital":   {"hospital", "clinic", "doctor", "medical", "health"},
	},
	"rw": {
		"restaurant": {"restoran", "ibiribwa", "kurya", "ifunguro", "gufungura"},
		"hotel":      {"hoteli", "guhagarara", "kurara"},
		"shop":       {"ubucuruzi", "gucururwa", "gucuruza", "isoko"},
		"transport":  {"taxi", "moto", "bus", "guhaguruka", "genda"},
		"garage":     {"igaraje", "gukora", "makanika", "imodoka"},
		"hospital":   {"ibitaro", "kliniki", "muganga", "ubuzima"},
	},
}

// canonicalBusinessTypes fixes the emission order of business-type entities.
var canonicalBusinessTypes = []string{"restaurant", "hotel", "shop", "transport", "garage", "hospital"}

var priceIndicators = map[string][]string{
	"en": {"cheap", "expensive", "budget", "affordable", "price"},
	"rw": {"gihugu", "cyiza", "amafaranga", "gusa", "agaciro"},
}

// clarifyingQuestions are the deterministic, language-specific questions
// attached when a turn requires clarification. Intents without an entry get
// the default set.
var clarifyingQuestions = map[string]map[string][]string{
	IntentSearchBusiness: {
		"en": {"What type of business are you looking for?", "Where do you want to go?"},
		"rw": {"Ushaka ikihe gucuruzi?", "Ushaka kugera he?"},
	},
	IntentFoodSearch: {
		"en": {"What type of food do you want?", "Where would you like to eat?", "What's your budget?"},
		"rw": {"Ushaka ibiribwa byahe?", "Ushaka kurya he?", "Ufite amafaranga angahe?"},
	},
	IntentTransportSearch: {
		"en": {"Where do you need to go?", "What type of transport do you prefer?", "When do you need to travel?"},
		"rw": {"Ushaka kugenda he?", "Ushaka ubuhe bwoko bw'ubwoba?", "Ushaka kugenda ryari?"},
	},
	IntentEmergencyHelp: {
		"en": {"What kind of help do you need?", "Where are you located?", "How urgent is this?"},
		"rw": {"Ufite ikihe kibazo?", "Uri he?", "Kibazo cyahe?"},
	},
	IntentShoppingSearch: {
		"en": {"What are you looking to buy?", "Any preferred market or store?"},
		"rw": {"Ushaka kugura iki?", "Hari isoko cyangwa iduka ukunda?"},
	},
	IntentHealthSearch: {
		"en": {"Do you need a hospital, clinic or pharmacy?", "Where are you located?"},
		"rw": {"Ukeneye ibitaro, kliniki cyangwa famasi?", "Uri he?"},
	},
}

var defaultClarifyingQuestions = map[string][]string{
	"en": {"Could you say that differently?", "What do you need?"},
	"rw": {"Woshobora kuvuga nandi nzira?", "Ushaka iki?"},
}

// langOrDefault narrows a detected language to one carrying pattern data.
// Unknown languages silently fall back to English.
func langOrDefault(lang string) string {
	switch lang {
	case "en", "rw":
		return lang
	default:
		return "en"
	}
}
