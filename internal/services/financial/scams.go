// internal/services/financial/scams.go
package financial

import "strings"

// ScamPattern is a known fraud signature matched against user messages by
// keyword.
type ScamPattern struct {
	Keywords     []string
	AlertHindi   string
	AlertEnglish string
}

var scamPatterns = []ScamPattern{
	{
		Keywords:     []string{"otp", "share otp", "otp batao", "otp do"},
		AlertHindi:   "🚨 ख़तरा! OTP कभी किसी को मत दीजिए। कोई भी बैंक या सरकारी अधिकारी OTP नहीं मांगता। यह 100% FRAUD है।",
		AlertEnglish: "🚨 DANGER! Never share your OTP with anyone. No bank or government official ever asks for OTP. This is 100% FRAUD.",
	},
	{
		Keywords:     []string{"advance fee", "processing fee pehle", "pehle paisa do", "loan ke liye paisa"},
		AlertHindi:   "🚨 ख़तरा! लोन लेने के लिए पहले पैसा देना FRAUD है। कोई भी सरकारी योजना या बैंक पहले पैसा नहीं मांगता।",
		AlertEnglish: "🚨 DANGER! Paying money upfront to get a loan is FRAUD. No government scheme or bank asks for advance payment.",
	},
	{
		Keywords:     []string{"lottery", "prize", "jackpot", "inam", "crore jeet"},
		AlertHindi:   "🚨 ख़तरा! यह FRAUD है। आपने कोई लॉटरी नहीं जीती। पैसा बिल्कुल मत दीजिए।",
		AlertEnglish: "🚨 DANGER! This is FRAUD. You have not won any lottery. Do NOT send any money.",
	},
	{
		Keywords:     []string{"insurance expire", "kyc update", "account block", "account band"},
		AlertHindi:   "🚨 सावधान! यह शायद FRAUD है। बैंक कभी फोन पर KYC update नहीं करवाता। अपने नज़दीकी बैंक ब्रांच में जाकर पूछें।",
		AlertEnglish: "🚨 CAUTION! This is likely FRAUD. Banks never do KYC updates over phone. Visit your nearest bank branch.",
	},
	{
		Keywords:     []string{"link click", "click karo", "link open", "form bharo online"},
		AlertHindi:   "🚨 सावधान! अनजान लिंक पर क्लिक मत करें। हमेशा सरकारी वेबसाइट (.gov.in) पर ही जाएं।",
		AlertEnglish: "🚨 CAUTION! Do not click unknown links. Always visit official government websites (.gov.in).",
	},
}

// ScamAlert is the result of matching a message against the scam patterns.
type ScamAlert struct {
	IsScam       bool   `json:"is_scam"`
	AlertHindi   string `json:"alert_hi,omitempty"`
	AlertEnglish string `json:"alert_en,omitempty"`
}

// Alert returns the warning in the requested language, falling back to
// English.
func (s *ScamAlert) Alert(language string) string {
	if language == "hi" && s.AlertHindi != "" {
		return s.AlertHindi
	}
	return s.AlertEnglish
}

// DetectScam checks whether the message matches a known scam pattern. The
// first matching pattern wins.
func DetectScam(text string) *ScamAlert {
	lower := strings.ToLower(text)
	for _, pattern := range scamPatterns {
		for _, keyword := range pattern.Keywords {
			if strings.Contains(lower, keyword) {
				return &ScamAlert{
					IsScam:       true,
					AlertHindi:   pattern.AlertHindi,
					AlertEnglish: pattern.AlertEnglish,
				}
			}
		}
	}
	return &ScamAlert{}
}

// LoanScheme is one government loan program offered as an alternative to
// private moneylenders.
type LoanScheme struct {
	Name   string `json:"name"`
	Rate   string `json:"rate"`
	Amount string `json:"amount"`
	For    string `json:"for"`
}

// GovtLoanSchemes lists subsidized government loan programs, cheapest
// audiences first.
var GovtLoanSchemes = []LoanScheme{
	{Name: "PM MUDRA Yojana", Rate: "7-9%", Amount: "Up to ₹10 lakh", For: "Small business"},
	{Name: "PM SVANidhi", Rate: "7% subsidy", Amount: "₹10,000-₹50,000", For: "Street vendors"},
	{Name: "KCC (Kisan Credit Card)", Rate: "4% (subsidized)", Amount: "Up to ₹3 lakh", For: "Farmers"},
	{Name: "Stand-Up India", Rate: "Bank rate", Amount: "₹10 lakh - ₹1 crore", For: "SC/ST/Women entrepreneurs"},
	{Name: "PMEGP", Rate: "25-35% subsidy", Amount: "Up to ₹50 lakh", For: "New businesses"},
	{Name: "SHG Bank Linkage", Rate: "4-7%", Amount: "Up to ₹20 lakh", For: "Women's Self Help Groups"},
}
