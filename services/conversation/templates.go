package conversation

import "busimap/models"

// flowTemplates is the flow pattern registry: (intent, language, state) →
// candidate response templates. Loaded once; never mutated at runtime.
// Intents without an entry (greeting, general_inquiry) resolve to the
// built-in default flow.
var flowTemplates = map[string]map[string]map[models.DialogueState][]string{
	IntentFoodSearch: {
		"en": {
			models.StateGreeting: {
				"I'm here to help you find the perfect place to eat!",
				"Let's find you some great food!",
				"I love helping people discover amazing restaurants!",
			},
			models.StateExploring: {
				"What type of food are you in the mood for?",
				"Are you looking for something specific?",
				"What's your favorite cuisine?",
			},
			models.StateClarifying: {
				"Where are you located? I can find places near you.",
				"Are you looking for something close by?",
				"What's your budget range?",
			},
			models.StateSolving: {
				"Great! I found some options for you:",
				"Here are some places that should work:",
			},
			models.StateSatisfying: {
				"Does this sound good to you?",
				"Is this what you were looking for?",
				"Would you like me to find more options?",
			},
			models.StateFollowingUp: {
				"What else can I help you with?",
				"Is there anything else you need?",
				"Any other questions about these places?",
			},
		},
		"rw": {
			models.StateGreeting: {
				"Ndi hano kugufasha kubona aho warira!",
				"Reka dusakire aho warira!",
				"Nkunda gufasha abantu kubona amaresitora meza!",
			},
			models.StateExploring: {
				"Ushaka ibiribwa byahe?",
				"Ushaka ikintu runaka?",
			},
			models.StateClarifying: {
				"Uri he? Nshobora gushakira aho uri hafi.",
				"Ushaka ikintu hafi?",
				"Ufite amafaranga angahe?",
			},
			models.StateSolving: {
				"Ni byiza! Nabonye amahitamo yawe:",
				"Dore aho washobora kurya:",
			},
			models.StateSatisfying: {
				"Bisubiza?",
				"Ni ibyo wari ushakaga?",
				"Ushaka nshakire andi mahitamo?",
			},
			models.StateFollowingUp: {
				"Nshobora gufasha iki byongera?",
				"Hari ikindi ukeneye?",
			},
		},
	},
	IntentEmergencyHelp: {
		"en": {
			models.StateGreeting: {
				"I'm here to help you right away!",
				"Don't worry, I'll help you solve this!",
			},
			models.StateExploring: {
				"What kind of help do you need?",
				"Can you tell me what's happening?",
				"What's the situation? I'm here to help.",
			},
			models.StateClarifying: {
				"Where are you located? I need to find help nearby.",
				"How urgent is this?",
				"Are you safe right now? Where are you?",
			},
			models.StateSolving: {
				"I found help for you!",
				"Here are your options:",
				"I've located assistance nearby:",
			},
			models.StateSatisfying: {
				"Are you okay now?",
				"Did this help you?",
			},
			models.StateFollowingUp: {
				"Do you need anything else?",
			},
		},
		"rw": {
			models.StateGreeting: {
				"Ndi hano kugufasha ubu!",
				"Ntihangane, nzaguha ubufasha!",
			},
			models.StateExploring: {
				"Ufite ikihe kibazo?",
				"Woshobora kumbwira iki kibaho?",
			},
			models.StateClarifying: {
				"Uri he? Nkeneye gushakira ubufasha hafi.",
				"Kibazo cyahe?",
				"Urakagira neza ubu? Uri he?",
			},
			models.StateSolving: {
				"Nabonye ubufasha bwawe!",
				"Dore amahitamo yawe:",
				"Nabonye ubufasha hafi:",
			},
			models.StateSatisfying: {
				"Urakagira neza ubu?",
				"Bibagufashije?",
			},
			models.StateFollowingUp: {
				"Ukeneye ikindi?",
			},
		},
	},
	IntentTransportSearch: {
		"en": {
			models.StateGreeting: {
				"I'll help you find the best way to get around!",
				"Let's find you the perfect transport option!",
			},
			models.StateExploring: {
				"Where do you need to go?",
				"What's your destination?",
			},
			models.StateClarifying: {
				"What type of transport do you prefer?",
				"Do you have a preference for moto, taxi, or bus?",
				"What's your budget for this trip?",
			},
			models.StateSolving: {
				"Here are your transport options:",
				"These rides are available near you:",
			},
			models.StateSatisfying: {
				"Does this work for you?",
				"Is this what you were looking for?",
			},
			models.StateFollowingUp: {
				"Need anything else for your trip?",
				"Any other questions about transportation?",
			},
		},
		"rw": {
			models.StateGreeting: {
				"Nzaguha ubufasha kubona uburyo bwo kugenda!",
				"Reka dusakire ubuhe bwoko bw'ubwoba!",
			},
			models.StateExploring: {
				"Ushaka kugenda he?",
				"Ushaka kugera he?",
			},
			models.StateClarifying: {
				"Ushaka ubuhe bwoko bw'ubwoba?",
				"Ufite ibyifuza ku moto, taxi, cyangwa bus?",
				"Ufite amafaranga angahe yo kugenda?",
			},
			models.StateSolving: {
				"Dore uburyo bwo kugenda:",
				"Izi ni zo moto na taxi ziri hafi yawe:",
			},
			models.StateSatisfying: {
				"Bibagufasha?",
				"Ni ibyo wari ushakaga?",
			},
			models.StateFollowingUp: {
				"Ukeneye ikindi mu rugendo rwawe?",
			},
		},
	},
	IntentShoppingSearch: {
		"en": {
			models.StateGreeting: {
				"Let's find you a great place to shop!",
				"I can help you find markets and stores nearby!",
			},
			models.StateExploring: {
				"What are you looking to buy?",
				"Any particular kind of store?",
			},
			models.StateClarifying: {
				"Where are you? I'll look for shops close by.",
				"Do you have a budget in mind?",
			},
			models.StateSolving: {
				"Here are some shops and markets for you:",
			},
			models.StateSatisfying: {
				"Do these look right?",
			},
			models.StateFollowingUp: {
				"Anything else you'd like to find?",
			},
		},
		"rw": {
			models.StateGreeting: {
				"Reka dusakire aho wagura ibintu!",
				"Nshobora gufasha kubona amasoko n'amaduka hafi!",
			},
			models.StateExploring: {
				"Ushaka kugura iki?",
				"Hari ubwoko bw'iduka ushaka?",
			},
			models.StateClarifying: {
				"Uri he? Nzashakira amaduka hafi yawe.",
				"Ufite amafaranga angahe?",
			},
			models.StateSolving: {
				"Dore amasoko n'amaduka nabonye:",
			},
			models.StateSatisfying: {
				"Ibi biragufasha?",
			},
			models.StateFollowingUp: {
				"Hari ikindi ushaka kubona?",
			},
		},
	},
	IntentHealthSearch: {
		"en": {
			models.StateGreeting: {
				"I'll help you find health services right away.",
				"Let me find medical help near you.",
			},
			models.StateExploring: {
				"Do you need a hospital, clinic or pharmacy?",
				"What kind of care are you looking for?",
			},
			models.StateClarifying: {
				"Where are you located? I'll find the closest option.",
				"How urgent is this?",
			},
			models.StateSolving: {
				"Here are health services near you:",
			},
			models.StateSatisfying: {
				"Does this cover what you need?",
			},
			models.StateFollowingUp: {
				"Is there anything else I can check for you?",
			},
		},
		"rw": {
			models.StateGreeting: {
				"Nzagufasha kubona serivisi z'ubuzima ubu.",
				"Reka nshakire ubuvuzi hafi yawe.",
			},
			models.StateExploring: {
				"Ukeneye ibitaro, kliniki cyangwa famasi?",
				"Ushaka ubuhe buvuzi?",
			},
			models.StateClarifying: {
				"Uri he? Nzashakira ikiri hafi yawe.",
				"Kibazo cyahe?",
			},
			models.StateSolving: {
				"Dore serivisi z'ubuzima ziri hafi yawe:",
			},
			models.StateSatisfying: {
				"Ibi birakwira?",
			},
			models.StateFollowingUp: {
				"Hari ikindi nshobora kugenzura?",
			},
		},
	},
}

// followUpQuestions are static per (intent, language), independent of state.
var followUpQuestions = map[string]map[string][]string{
	IntentFoodSearch: {
		"en": {"What type of food do you want?", "Where would you like to eat?", "What's your budget?", "Any dietary preferences?"},
		"rw": {"Ushaka ibiribwa byahe?", "Ushaka kurya he?", "Ufite amafaranga angahe?", "Hari ibyo utabaza?"},
	},
	IntentEmergencyHelp: {
		"en": {"What kind of help do you need?", "Where are you located?", "How urgent is this?", "Are you safe right now?"},
		"rw": {"Ufite ikihe kibazo?", "Uri he?", "Kibazo cyahe?", "Urakagira neza ubu?"},
	},
	IntentTransportSearch: {
		"en": {"Where do you need to go?", "What type of transport do you prefer?", "What's your budget?", "When do you need to travel?"},
		"rw": {"Ushaka kugenda he?", "Ushaka ubuhe bwoko bw'ubwoba?", "Ufite amafaranga angahe?", "Ushaka kugenda ryari?"},
	},
	IntentShoppingSearch: {
		"en": {"What are you looking to buy?", "Any preferred market?", "What's your budget?"},
		"rw": {"Ushaka kugura iki?", "Hari isoko ukunda?", "Ufite amafaranga angahe?"},
	},
	IntentHealthSearch: {
		"en": {"Do you need a hospital or a pharmacy?", "Where are you located?", "How urgent is this?"},
		"rw": {"Ukeneye ibitaro cyangwa famasi?", "Uri he?", "Kibazo cyahe?"},
	},
}

// defaultFlowMessage and defaultFlowQuestions back the built-in flow returned
// when the registry has no entry for (intent, language).
var defaultFlowMessage = map[string]string{
	"en": "I'm here to help you. What do you need?",
	"rw": "Ndi hano kugufasha. Ni iki ushaka?",
}

var defaultFlowQuestions = map[string][]string{
	"en": {"What do you need?", "How can I help you?"},
	"rw": {"Ni iki ushaka?", "Nshobora gufasha iki?"},
}

// helpFallbackMessage covers registry entries that exist for an intent but
// carry no templates for the requested state.
var helpFallbackMessage = map[string]string{
	"en": "I'm here to help you!",
	"rw": "Ndi hano kugufasha!",
}
