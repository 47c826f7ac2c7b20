// internal/orchestrator/responses.go
package orchestrator

import "loksarthi/internal/models"

// supportedLanguages are the conversation languages the pipeline accepts
// from the language detector.
var supportedLanguages = map[string]string{
	"hi": "Hindi",
	"en": "English",
	"ta": "Tamil",
	"te": "Telugu",
	"bn": "Bengali",
	"mr": "Marathi",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"pa": "Punjabi",
}

// IsSupportedLanguage reports whether a detected language code can become
// the session language.
func IsSupportedLanguage(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// profileQuestions holds the progressive-profiling questions per field and
// language. Languages without a dedicated translation fall back to English.
var profileQuestions = map[models.Field]map[string]string{
	models.FieldAge: {
		"hi": "🙏 आपकी उम्र कितनी है?",
		"en": "🙏 What is your age?",
	},
	models.FieldGender: {
		"hi": "आप पुरुष हैं या महिला?",
		"en": "Are you male or female?",
	},
	models.FieldState: {
		"hi": "आप किस राज्य में रहते हैं?",
		"en": "Which state do you live in?",
	},
	models.FieldOccupation: {
		"hi": "आप क्या काम करते हैं? (किसान, मज़दूर, दुकानदार, छात्र, गृहिणी...)",
		"en": "What is your occupation? (farmer, labourer, vendor, student, homemaker...)",
	},
	models.FieldCategory: {
		"hi": "आपकी श्रेणी क्या है? (सामान्य, SC, ST, OBC, अल्पसंख्यक)",
		"en": "What is your category? (General, SC, ST, OBC, Minority)",
	},
	models.FieldAnnualIncome: {
		"hi": "आपकी सालाना आय (कमाई) लगभग कितनी है?",
		"en": "What is your approximate annual income?",
	},
	models.FieldMaritalStatus: {
		"hi": "आपकी वैवाहिक स्थिति क्या है? (विवाहित, अविवाहित, विधवा/विधुर)",
		"en": "What is your marital status? (married, single, widowed)",
	},
	models.FieldBPLStatus: {
		"hi": "क्या आपके पास BPL (गरीबी रेखा से नीचे) कार्ड है?",
		"en": "Do you have a BPL (Below Poverty Line) card?",
	},
}

// ProfileQuestion returns the profiling question for a field in the given
// language, English when the language has no translation.
func ProfileQuestion(field models.Field, language string) string {
	questions, ok := profileQuestions[field]
	if !ok {
		return ""
	}
	if q, ok := questions[language]; ok {
		return q
	}
	return questions["en"]
}

var greetingResponses = map[string]string{
	"hi": `🙏 नमस्ते! मैं **लोकसारथी** हूँ — आपका AI सहायक।

मैं आपकी 3 तरह से मदद कर सकता हूँ:

🏛️ **सरकारी योजनाएँ** — बताइए अपने बारे में, मैं बताऊँगा कौन सी योजनाएँ आपके लिए हैं
📝 **RTI / शिकायत** — अपनी समस्या बताइए, मैं RTI आवेदन बना दूँगा
💰 **लोन / पैसा सलाह** — लोन, बचत, या धोखाधड़ी के बारे में पूछिए

बस बोलिए या लिखिए — मैं हिंदी, English, और कई भारतीय भाषाओं में समझता हूँ! 🇮🇳`,

	"en": `🙏 Namaste! I am **LokSarthi** — your AI assistant.

I can help you in 3 ways:

🏛️ **Government Schemes** — Tell me about yourself, I'll find schemes you're eligible for
📝 **RTI / Complaint** — Describe your problem, I'll draft an RTI application
💰 **Loan / Financial Advice** — Ask about loans, savings, or fraud protection

Just speak or type — I understand Hindi, English, and many Indian languages! 🇮🇳`,
}

// GreetingResponse returns the static greeting in the given language,
// English when the language has no translation.
func GreetingResponse(language string) string {
	if g, ok := greetingResponses[language]; ok {
		return g
	}
	return greetingResponses["en"]
}

var profilingIntros = map[string]string{
	"hi": "चलिए, आपके लिए सही योजनाएँ ढूंढते हैं! बस कुछ सवालों के जवाब दीजिए:\n\n",
	"en": "Let me find the right schemes for you! Just answer a few questions:\n\n",
}

var pillarFallbacks = map[string]string{
	"hi": "क्षमा करें, अभी कुछ तकनीकी समस्या है। कृपया थोड़ी देर बाद फिर से प्रयास करें। 🙏",
	"en": "Sorry, something went wrong on our side. Please try again in a moment. 🙏",
}

func pillarFallback(language string) string {
	if f, ok := pillarFallbacks[language]; ok {
		return f
	}
	return pillarFallbacks["en"]
}
